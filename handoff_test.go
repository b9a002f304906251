package handoff_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	handoff "github.com/goliatone/go-handoff"
	"github.com/goliatone/go-handoff/pkg/config"
	"github.com/goliatone/go-handoff/pkg/registry"
	"github.com/goliatone/go-handoff/pkg/testsupport"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewClient(t *testing.T) {
	client, err := handoff.NewClient(
		registry.WithBaseURL("https://design.example.com/api"),
		registry.WithLogger(quietLogger()),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client == nil {
		t.Fatal("expected a client")
	}

	if _, err := handoff.NewClient(); err == nil {
		t.Fatal("expected error without a base URL")
	}
}

func TestNewRegistryClient(t *testing.T) {
	cfg := config.Default()
	cfg.Registry.URL = "https://design.example.com/api"
	cfg.Cache.Enabled = false

	client, cleanup, err := handoff.NewRegistryClient(cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewRegistryClient: %v", err)
	}
	if client == nil {
		t.Fatal("expected a client")
	}
	if err := cleanup(); err != nil {
		t.Errorf("cleanup: %v", err)
	}
}

func TestNewRegistryClient_OpensCache(t *testing.T) {
	cfg := config.Default()
	cfg.Registry.URL = "https://design.example.com/api"
	cfg.Cache.Path = filepath.Join(t.TempDir(), "handoff", "cache.db")

	client, cleanup, err := handoff.NewRegistryClient(cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewRegistryClient: %v", err)
	}
	if client == nil {
		t.Fatal("expected a client")
	}
	defer cleanup()

	if _, err := os.Stat(cfg.Cache.Path); err != nil {
		t.Errorf("expected cache database at %s: %v", cfg.Cache.Path, err)
	}
}

func TestNewRegistryClient_RequiresURL(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Enabled = false

	if _, _, err := handoff.NewRegistryClient(cfg, quietLogger()); err == nil {
		t.Fatal("expected error without a registry URL")
	}
}

func TestValidateDocument(t *testing.T) {
	doc := []byte(`{
		"code": "hero-banner",
		"title": "Hero Banner",
		"tags": ["marketing"],
		"properties": {
			"headline": {
				"type": "text",
				"name": "Headline",
				"description": "Main headline",
				"default": "Welcome",
				"rules": {
					"required": true,
					"content": {"min": 1, "max": 80}
				}
			}
		}
	}`)

	c, diags, err := handoff.ValidateDocument(doc)
	if err != nil {
		t.Fatalf("ValidateDocument: %v", err)
	}
	if c.Code != "hero-banner" {
		t.Errorf("expected decoded component, got code %q", c.Code)
	}
	if len(diags) != 0 {
		t.Errorf("expected no findings for a complete component, got %v", diags)
	}
}

func TestValidateDocument_CanonicalFixture(t *testing.T) {
	raw, err := json.Marshal(testsupport.ValidComponent())
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	c, diags, err := handoff.ValidateDocument(raw)
	if err != nil {
		t.Fatalf("ValidateDocument: %v", err)
	}
	if len(c.Properties) != 3 {
		t.Errorf("expected 3 properties, got %d", len(c.Properties))
	}
	if len(diags) != 0 {
		t.Errorf("expected no findings, got %v", diags)
	}
}

func TestValidateDocument_ReportsFindings(t *testing.T) {
	doc := []byte(`{"title": "No Code"}`)

	_, diags, err := handoff.ValidateDocument(doc)
	if err != nil {
		t.Fatalf("ValidateDocument: %v", err)
	}
	if len(diags) == 0 {
		t.Error("expected findings for an incomplete component")
	}
}

func TestValidateDocument_DecodeFailure(t *testing.T) {
	if _, _, err := handoff.ValidateDocument([]byte("{{nope")); err == nil {
		t.Fatal("expected decode error")
	}
}
