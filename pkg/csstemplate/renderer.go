// Package csstemplate defines the template seam the style resolver compiles
// stylesheets through. The contract mirrors the github.com/goliatone/go-template
// engine so callers can swap in their own engine configuration.
package csstemplate

import "io"

// Renderer is the compilation contract. RenderString compiles inline template
// content, RenderTemplate resolves a named template from the engine's loader.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
