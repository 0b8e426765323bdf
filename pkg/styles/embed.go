package styles

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// BaseTemplateName is the stylesheet template compiled bundles are built
// from, resolvable against TemplatesFS.
const BaseTemplateName = "templates/datepicker.css.tmpl"

// TemplatesFS exposes the embedded stylesheet template bundle so callers can
// supply an engine of their own pointed at the same sources.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
