package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-datepicker/pkg/csstemplate"
	"github.com/goliatone/go-datepicker/pkg/csstemplate/gotemplate"
)

// BundleKind distinguishes the two asset resolutions.
type BundleKind string

const (
	// BundleStatic references the prebuilt stylesheet shipped with the
	// library.
	BundleStatic BundleKind = "static"
	// BundleCompiled references a stylesheet compiled from merged theme
	// defaults and per-instance variables.
	BundleCompiled BundleKind = "compiled"
)

// Script describes a JavaScript dependency a bundle needs emitted once per
// page.
type Script struct {
	Src    string
	Type   string
	Inline string
	Async  bool
	Defer  bool
	Module bool
	Attrs  map[string]string
}

// Bundle is the resolved asset set for one picker instance.
type Bundle struct {
	Kind        BundleKind
	Stylesheets []string
	Scripts     []Script

	// Compiled bundles only.
	Fingerprint  string
	CSS          string
	ArtifactPath string
}

// Default asset locations for the static bundle and the calendar widget
// script. Both are served from AssetsFS at the module root; override them
// when mounting assets elsewhere.
const (
	DefaultStylesheetHref = "/assets/datepicker/datepicker.css"
	DefaultScriptHref     = "/assets/datepicker/datepicker.min.js"
)

// Option configures a Resolver.
type Option func(*config)

type config struct {
	engine         csstemplate.Renderer
	selector       theme.ThemeSelector
	themeName      string
	themeVariant   string
	baseTemplate   string
	artifactDir    string
	stylesheetHref string
	scriptHref     string
}

// WithEngine injects a custom stylesheet template engine.
func WithEngine(engine csstemplate.Renderer) Option {
	return func(cfg *config) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

// WithThemeSelector activates theming. Every resolution selects the named
// theme/variant and merges its manifest tokens into the compiled variable
// set.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = strings.TrimSpace(name)
		cfg.themeVariant = strings.TrimSpace(variant)
	}
}

// WithBaseTemplate overrides the stylesheet template compiled bundles are
// built from.
func WithBaseTemplate(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.baseTemplate = trimmed
		}
	}
}

// WithArtifactDir overrides the directory compiled stylesheets are written
// to. The default is a process-scoped directory under os.TempDir.
func WithArtifactDir(dir string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(dir); trimmed != "" {
			cfg.artifactDir = trimmed
		}
	}
}

// WithStaticStylesheet overrides the href the static bundle references.
func WithStaticStylesheet(href string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(href); trimmed != "" {
			cfg.stylesheetHref = trimmed
		}
	}
}

// WithWidgetScript overrides the calendar widget script href attached to
// every bundle.
func WithWidgetScript(href string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(href); trimmed != "" {
			cfg.scriptHref = trimmed
		}
	}
}

// Resolver decides per render which bundle a picker instance receives. It
// holds no mutable state across calls; concurrent renders computing the same
// fingerprint write the same content to the same artifact name.
type Resolver struct {
	engine         csstemplate.Renderer
	selector       theme.ThemeSelector
	themeName      string
	themeVariant   string
	baseTemplate   string
	artifactDir    string
	stylesheetHref string
	scriptHref     string
}

// NewResolver constructs a resolver applying any provided options. Without a
// theme selector and without per-call variables every resolution returns the
// static bundle.
func NewResolver(options ...Option) (*Resolver, error) {
	cfg := config{
		baseTemplate:   BaseTemplateName,
		artifactDir:    filepath.Join(os.TempDir(), "go-datepicker"),
		stylesheetHref: DefaultStylesheetHref,
		scriptHref:     DefaultScriptHref,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.engine == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("styles: configure template engine: %w", err)
		}
		cfg.engine = engine
	}

	return &Resolver{
		engine:         cfg.engine,
		selector:       cfg.selector,
		themeName:      cfg.themeName,
		themeVariant:   cfg.themeVariant,
		baseTemplate:   cfg.baseTemplate,
		artifactDir:    cfg.artifactDir,
		stylesheetHref: cfg.stylesheetHref,
		scriptHref:     cfg.scriptHref,
	}, nil
}

// Themed reports whether resolution with the supplied overrides would take
// the compiled path.
func (r *Resolver) Themed(overrides Variables) bool {
	return r.selector != nil || !overrides.IsEmpty()
}

// Resolve returns the bundle for one picker instance. The static bundle is
// returned when theming is inactive and no overrides were supplied; otherwise
// theme defaults, manifest tokens and overrides are merged and compiled into
// a fingerprint-named stylesheet artifact.
func (r *Resolver) Resolve(overrides Variables) (Bundle, error) {
	if !r.Themed(overrides) {
		return r.staticBundle(), nil
	}

	major := 0
	tokens := Variables{}
	assetPrefix := ""
	if r.selector != nil {
		selection, err := r.selector.Select(r.themeName, r.themeVariant)
		if err != nil {
			return Bundle{}, fmt.Errorf("styles: select theme %q: %w", r.themeName, err)
		}
		if selection != nil && selection.Manifest != nil {
			major = themeMajor(selection.Manifest.Version)
			tokens = selectionVariables(selection)
			assetPrefix = strings.TrimRight(selection.Manifest.Assets.Prefix, "/")
		}
	}

	merged := DefaultVariables(major).Merge(tokens).Merge(overrides)
	if err := validateVariables(merged); err != nil {
		return Bundle{}, err
	}

	css, err := r.engine.RenderTemplate(r.baseTemplate, map[string]any{
		"prelude": cssVarsBlock(merged),
	})
	if err != nil {
		return Bundle{}, &CompilationError{Err: err}
	}

	fingerprint := merged.Fingerprint()
	assetName := "datepicker-" + fingerprint + ".css"

	artifactPath, err := r.writeArtifact(assetName, css)
	if err != nil {
		return Bundle{}, err
	}

	href := artifactPath
	if assetPrefix != "" {
		href = assetPrefix + "/" + assetName
	}

	return Bundle{
		Kind:         BundleCompiled,
		Stylesheets:  []string{href},
		Scripts:      r.scripts(),
		Fingerprint:  fingerprint,
		CSS:          css,
		ArtifactPath: artifactPath,
	}, nil
}

func (r *Resolver) staticBundle() Bundle {
	return Bundle{
		Kind:        BundleStatic,
		Stylesheets: []string{r.stylesheetHref},
		Scripts:     r.scripts(),
	}
}

func (r *Resolver) scripts() []Script {
	return []Script{{Src: r.scriptHref, Defer: true}}
}

// writeArtifact persists the compiled stylesheet under its fingerprint name.
// Writes are idempotent: the same fingerprint always carries the same
// content, so concurrent renders racing on one name are harmless. Artifacts
// are not cleaned up synchronously.
func (r *Resolver) writeArtifact(name, css string) (string, error) {
	if err := os.MkdirAll(r.artifactDir, 0o755); err != nil {
		return "", fmt.Errorf("styles: create artifact dir: %w", err)
	}
	path := filepath.Join(r.artifactDir, name)
	if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
		return "", fmt.Errorf("styles: write artifact %s: %w", name, err)
	}
	return path, nil
}

// selectionVariables converts a theme selection's tokens into CSS custom
// properties, with variant tokens overriding the manifest base set.
func selectionVariables(selection *theme.Selection) Variables {
	if selection == nil || selection.Manifest == nil {
		return Variables{}
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for name, value := range selection.Manifest.Tokens {
		tokens[name] = value
	}
	if selection.Variant != "" {
		if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
			for name, value := range variant.Tokens {
				tokens[name] = value
			}
		}
	}

	return VariablesFromMap(prefixTokenNames(tokens))
}

func prefixTokenNames(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for name, value := range tokens {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		out[name] = value
	}
	return out
}

func validateVariables(vars Variables) error {
	for _, name := range vars.Names() {
		value, _ := vars.Get(name)
		if err := validateExpression(value); err != nil {
			return &CompilationError{Variable: name, Err: err}
		}
	}
	return nil
}

// validateExpression rejects values that would break out of a declaration
// when emitted into the compiled stylesheet.
func validateExpression(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ErrBadExpression
	}
	if strings.ContainsAny(trimmed, ";{}\n") {
		return ErrBadExpression
	}
	depth := 0
	for _, r := range trimmed {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return ErrBadExpression
			}
		}
	}
	if depth != 0 {
		return ErrBadExpression
	}
	return nil
}

// cssVarsBlock renders the merged variables as a :root declaration block.
// Keys are emitted sorted so compiled output is deterministic.
func cssVarsBlock(vars Variables) string {
	if vars.IsEmpty() {
		return ""
	}
	names := vars.Names()
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		value, _ := vars.Get(name)
		b.WriteString("    ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
