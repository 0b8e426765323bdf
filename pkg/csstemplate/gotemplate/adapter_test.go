package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"sheets/base.css.tmpl": &fstest.MapFile{
			Data: []byte("{{ prelude|safe }}\n.widget { color: red; }\n"),
		},
	}
}

func TestNewRequiresATemplateSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestRenderTemplateResolvesFromFS(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("sheets/base.css", map[string]any{
		"prelude": ":root { --x: 1; }",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, ":root { --x: 1; }") {
		t.Fatalf("expected prelude in output, got:\n%s", out)
	}
	if !strings.Contains(out, ".widget { color: red; }") {
		t.Fatalf("expected template body in output, got:\n%s", out)
	}
}

func TestRenderTemplateCachesCompiledTemplates(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderTemplate("sheets/base.css.tmpl", nil); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if _, err := engine.RenderTemplate("sheets/base.css.tmpl", nil); err != nil {
		t.Fatalf("second render: %v", err)
	}
	if len(engine.templates) != 1 {
		t.Fatalf("expected one cached template, got %d", len(engine.templates))
	}
}

func TestRenderStringCompilesInlineContent(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("a: {{ value }};", map[string]any{"value": "blue"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "a: blue;" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderDispatchesOnContent(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	inline, err := engine.Render("x{{ value }}", map[string]any{"value": "1"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "x1" {
		t.Fatalf("unexpected inline output: %q", inline)
	}

	if _, err := engine.Render("sheets/base.css", map[string]any{"prelude": ""}); err != nil {
		t.Fatalf("render named: %v", err)
	}
}

func TestRenderTemplateMissingTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderTemplate("sheets/missing.css", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestGlobalContextSeedsEveryRender(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithGlobalData(map[string]any{"brand": "acme"}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ brand }}", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "acme" {
		t.Fatalf("expected global data applied, got %q", out)
	}
}
