package component_test

import (
	"testing"

	"github.com/goliatone/go-handoff/pkg/component"
)

func TestNewDocument_Validation(t *testing.T) {
	if _, err := component.NewDocument(nil, []byte("{}")); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if _, err := component.NewDocument(component.SourceFromFile("x.json"), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestDocument_RawIsCopied(t *testing.T) {
	payload := []byte(`{"code":"card","title":"Card"}`)
	doc := component.MustNewDocument(component.SourceFromFile("card.json"), payload)

	payload[2] = 'X'
	raw := doc.Raw()
	if raw[2] == 'X' {
		t.Fatalf("document shares storage with the caller's slice")
	}

	raw[0] = '!'
	if doc.Raw()[0] == '!' {
		t.Fatalf("Raw() must return a fresh copy each call")
	}
}

func TestDocument_Decode(t *testing.T) {
	doc := component.MustNewDocument(component.SourceFromFS("fixtures/card.json"), []byte(`{"code":"card","title":"Card"}`))
	c, err := doc.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Code != "card" {
		t.Fatalf("code mismatch: %s", c.Code)
	}
	if doc.Source().Kind() != component.SourceKindFS {
		t.Fatalf("kind mismatch: %s", doc.Source().Kind())
	}
}

func TestSourceFromURL_PanicsOnGarbage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for invalid URL")
		}
	}()
	component.SourceFromURL("://nope")
}

func TestSourceLocations(t *testing.T) {
	if got := component.SourceFromFile("./x/../card.json").Location(); got != "card.json" {
		t.Fatalf("file source should clean the path, got %s", got)
	}
	src := component.SourceFromURL("https://registry.example.com/components/card")
	if src.Kind() != component.SourceKindURL {
		t.Fatalf("kind mismatch: %s", src.Kind())
	}
}
