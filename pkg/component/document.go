package component

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
)

// Source identifies where a component document came from so loaders can work
// across files, fs.FS entries, and URLs without leaking transport details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the supported document origins.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct {
	path string
}

func (s fileSource) Kind() SourceKind { return SourceKindFile }
func (s fileSource) Location() string { return s.path }

// SourceFromFile returns a Source for an on-disk document.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Kind() SourceKind { return SourceKindFS }
func (s fsSource) Location() string { return s.name }

// SourceFromFS returns a Source naming an entry inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Kind() SourceKind { return SourceKindURL }
func (s urlSource) Location() string { return s.raw }

// SourceFromURL parses the supplied URL and returns a Source. It panics on
// malformed input so wiring mistakes surface at startup rather than on the
// first fetch.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("component: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("component: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// Document pairs a raw component payload with its origin. The payload stays
// opaque here; DecodeComponent turns it into a model value.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument validates its inputs and wraps the payload. The byte slice is
// copied so later caller mutations cannot leak into the document.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("component: document source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("component: document payload is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics when the document cannot be created. Intended for
// tests and static wiring.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata.
func (d Document) Source() Source { return d.source }

// Raw returns a copy of the payload; callers may mutate it freely.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the origin identifier, or "" for the zero document.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Decode parses the wrapped payload into a Component.
func (d Document) Decode() (Component, error) {
	return DecodeComponent(d.raw)
}
