package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-handoff/internal/cli"
	"github.com/goliatone/go-handoff/pkg/component"
	"github.com/goliatone/go-handoff/pkg/registry"
	"github.com/goliatone/go-handoff/pkg/validation"
)

func resetValidateFlags(t *testing.T) {
	t.Helper()
	old := validateFlags
	t.Cleanup(func() { validateFlags = old })
	validateFlags.file = ""
	validateFlags.dir = ""
	validateFlags.interactive = false
	validateFlags.watch = false
	validateFlags.strict = false
	validateFlags.format = "text"
}

func testPrinter() (*cli.Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return cli.NewPrinter(&buf, true), &buf
}

func TestCountFindings(t *testing.T) {
	errs, warns := countFindings([]validation.Diagnostic{
		{Message: "a", Attribute: "code"},
		{Message: "b", Attribute: "description", Property: "cta", Severity: validation.SeverityWarning},
		{Message: "c", Attribute: "name", Property: "cta"},
	})
	if errs != 2 || warns != 1 {
		t.Errorf("expected 2 errors and 1 warning, got %d and %d", errs, warns)
	}
}

func TestCollectDocuments(t *testing.T) {
	resetValidateFlags(t)
	validateFlags.dir = "testdata"

	files, err := collectDocuments()
	if err != nil {
		t.Fatalf("collectDocuments: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("expected 3 documents in testdata, got %d: %v", len(files), files)
	}
}

func TestCollectDocuments_Empty(t *testing.T) {
	resetValidateFlags(t)
	validateFlags.dir = t.TempDir()

	if _, err := collectDocuments(); err == nil {
		t.Fatal("expected error for a directory without documents")
	}
}

func TestValidateFilesOnce_Valid(t *testing.T) {
	resetValidateFlags(t)
	validateFlags.file = "testdata/valid-component.json"

	printer, buf := testPrinter()
	if err := validateFilesOnce(printer); err != nil {
		t.Fatalf("expected clean validation, got: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("✓ hero-banner: valid")) {
		t.Errorf("expected valid line, got:\n%s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("0 error(s), 0 warning(s)")) {
		t.Errorf("expected clean summary, got:\n%s", buf.String())
	}
}

func TestValidateFilesOnce_Findings(t *testing.T) {
	resetValidateFlags(t)
	validateFlags.file = "testdata/invalid-component.json"

	printer, buf := testPrinter()
	err := validateFilesOnce(printer)
	if !errors.Is(err, errFindings) {
		t.Fatalf("expected errFindings, got: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("✗ promo-card:")) {
		t.Errorf("expected invalid line, got:\n%s", buf.String())
	}
}

func TestValidateFilesOnce_MissingFile(t *testing.T) {
	resetValidateFlags(t)
	validateFlags.file = "testdata/nonexistent.json"

	printer, _ := testPrinter()
	err := validateFilesOnce(printer)
	if err == nil || errors.Is(err, errFindings) {
		t.Fatalf("expected operational error, got: %v", err)
	}
}

func TestFinishValidation_Strict(t *testing.T) {
	resetValidateFlags(t)
	printer, _ := testPrinter()

	if err := finishValidation(printer, nil, 0, 2); err != nil {
		t.Errorf("expected warnings alone to pass, got: %v", err)
	}

	validateFlags.strict = true
	if err := finishValidation(printer, nil, 0, 2); !errors.Is(err, errFindings) {
		t.Errorf("expected strict mode to fail on warnings, got: %v", err)
	}
}

type stubRegistry struct {
	components []component.Component
}

var _ registry.Client = (*stubRegistry)(nil)

func (s *stubRegistry) Component(ctx context.Context, code string) (component.Component, error) {
	for _, c := range s.components {
		if c.Code == code {
			return c, nil
		}
	}
	return component.Component{}, registry.ErrNotFound
}

func (s *stubRegistry) Components(ctx context.Context) ([]component.Component, error) {
	return s.components, nil
}

type stubDriver struct {
	indices []int
	err     error
}

func (d *stubDriver) MultiSelect(ctx context.Context, cfg cli.SelectConfig) ([]int, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.indices, nil
}

func TestPickComponents(t *testing.T) {
	old := promptDriver
	t.Cleanup(func() { promptDriver = old })
	promptDriver = &stubDriver{indices: []int{1}}

	client := &stubRegistry{components: []component.Component{
		{Code: "hero-banner", Title: "Hero Banner"},
		{Code: "promo-card", Title: "Promo Card"},
	}}

	codes, err := pickComponents(context.Background(), client)
	if err != nil {
		t.Fatalf("pickComponents: %v", err)
	}
	if len(codes) != 1 || codes[0] != "promo-card" {
		t.Errorf("expected [promo-card], got %v", codes)
	}
}

func TestPickComponents_Aborted(t *testing.T) {
	old := promptDriver
	t.Cleanup(func() { promptDriver = old })
	promptDriver = &stubDriver{err: cli.ErrAborted}

	client := &stubRegistry{components: []component.Component{
		{Code: "hero-banner", Title: "Hero Banner"},
	}}

	if _, err := pickComponents(context.Background(), client); !errors.Is(err, cli.ErrAborted) {
		t.Errorf("expected ErrAborted to pass through, got: %v", err)
	}
}
