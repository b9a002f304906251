package handoff

import (
	"io/fs"

	"github.com/goliatone/go-handoff/pkg/preview"
)

// PreviewTemplates exposes the built-in preview templates so callers can
// reuse or extend them without importing the preview package directly.
func PreviewTemplates() fs.FS {
	return preview.TemplatesFS()
}
