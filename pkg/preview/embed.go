package preview

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in preview templates for consumers that want
// to extend or fork the default page.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// Should never happen, but fall back to the raw FS so the bundle
		// remains usable.
		return embeddedTemplates
	}
	return sub
}
