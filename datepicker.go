// Package datepicker renders a date-picker text input as a server-driven
// HTML fragment: a labelled input carrying the data-date-* contract the
// client-side calendar script activates on, plus the stylesheet and script
// assets that instance depends on. Styling is theme-aware; pages mixing
// instances with different style overrides receive distinct
// fingerprint-named stylesheets instead of one overriding another.
package datepicker

import (
	"context"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-datepicker/pkg/picker"
	"github.com/goliatone/go-datepicker/pkg/styles"
)

// Re-exported configuration types so most callers only import the root
// package.
type (
	InputConfig = picker.InputConfig
	ValueSource = picker.ValueSource
	MapValues   = picker.MapValues
	Variables   = styles.Variables
	Bundle      = styles.Bundle
	Script      = styles.Script
)

// NewVariables returns an empty ordered style variable set.
func NewVariables() Variables { return styles.NewVariables() }

// Fragment is one rendered widget instance: the markup plus the asset bundle
// the page head must include (deduplicated by href/fingerprint across
// instances).
type Fragment struct {
	HTML   string
	Bundle styles.Bundle
}

// Option configures a Widget.
type Option func(*config)

type config struct {
	styleOptions []styles.Option
}

// WithStyleOptions forwards options to the underlying style resolver.
func WithStyleOptions(options ...styles.Option) Option {
	return func(cfg *config) {
		cfg.styleOptions = append(cfg.styleOptions, options...)
	}
}

// WithThemeSelector activates theming through a go-theme selector. Rendered
// instances then receive compiled stylesheets merging the detected theme's
// defaults and tokens with any per-instance variables.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.styleOptions = append(cfg.styleOptions, styles.WithThemeSelector(selector, name, variant))
	}
}

// Widget renders picker fragments. Construct once and share; rendering holds
// no mutable state.
type Widget struct {
	resolver *styles.Resolver
}

// New constructs a Widget applying any provided options.
func New(options ...Option) (*Widget, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	resolver, err := styles.NewResolver(cfg.styleOptions...)
	if err != nil {
		return nil, fmt.Errorf("datepicker: configure style resolver: %w", err)
	}
	return &Widget{resolver: resolver}, nil
}

// RenderOption carries per-request data into one Render call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	values picker.ValueSource
}

// WithRestoredValues supplies previously submitted values keyed by field id;
// a hit overrides the configured initial value for that field.
func WithRestoredValues(source picker.ValueSource) RenderOption {
	return func(cfg *renderConfig) {
		cfg.values = source
	}
}

// Render builds the fragment for one picker instance. Validation failures
// and stylesheet compilation failures abort the render and surface to the
// caller; nothing is retried.
func (w *Widget) Render(ctx context.Context, cfg InputConfig, options ...RenderOption) (Fragment, error) {
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}

	rc := renderConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&rc)
	}

	descriptor, err := picker.BuildDescriptor(cfg, rc.values)
	if err != nil {
		return Fragment{}, err
	}

	bundle, err := w.resolver.Resolve(cfg.StyleVariables)
	if err != nil {
		return Fragment{}, err
	}

	return Fragment{
		HTML:   picker.BuildMarkup(descriptor, cfg.Width),
		Bundle: bundle,
	}, nil
}

// CollectAssets aggregates the asset dependencies of multiple fragments for
// page-head inclusion, deduplicating stylesheets by href and scripts by
// source. Fragments sharing a fingerprint contribute their stylesheet once.
func CollectAssets(fragments ...Fragment) (stylesheets []string, scripts []Script) {
	seenStyles := make(map[string]struct{})
	seenScripts := make(map[string]struct{})

	for _, fragment := range fragments {
		for _, href := range fragment.Bundle.Stylesheets {
			if href == "" {
				continue
			}
			if _, exists := seenStyles[href]; exists {
				continue
			}
			seenStyles[href] = struct{}{}
			stylesheets = append(stylesheets, href)
		}
		for _, script := range fragment.Bundle.Scripts {
			key := script.Src
			if key == "" {
				key = "inline:" + script.Inline
			}
			if _, exists := seenScripts[key]; exists {
				continue
			}
			seenScripts[key] = struct{}{}
			scripts = append(scripts, script)
		}
	}
	return stylesheets, scripts
}
