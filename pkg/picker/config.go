// Package picker builds the attribute descriptor and markup fragment for a
// single date-picker input. The rendered input carries the data-date-*
// contract the client-side calendar script activates on; that script is an
// opaque collaborator and is never reimplemented here.
package picker

import (
	"strings"

	"github.com/goliatone/go-datepicker/pkg/styles"
)

// Start view granularities understood by the calendar script.
const (
	StartViewMonth  = "month"
	StartViewYear   = "year"
	StartViewDecade = "decade"
)

// InputConfig is the full parameter set for one picker instance. It is
// constructed fresh per render call and never persisted.
type InputConfig struct {
	// ID doubles as the input element id (prefixed) and the key used for
	// session value restoration.
	ID    string
	Name  string
	Label string

	// Value, Min and Max accept time.Time values or canonical YYYY-MM-DD
	// strings; anything else fails descriptor building.
	Value any
	Min   any
	Max   any

	// Format is the display format the calendar script applies client-side.
	// It never affects server-side serialisation.
	Format string

	// StartView selects the initial calendar granularity.
	StartView string

	// WeekStart is the first day of the week, 0 (Sunday) through 6. Values
	// outside that range are passed through unchanged; keeping them in range
	// is the caller's contract with the calendar script.
	WeekStart int

	Language  string
	Autoclose bool

	// DatesDisabled lists individual non-selectable dates. An empty list
	// serialises to the null token, meaning no restriction.
	DatesDisabled []any

	// DaysOfWeekDisabled lists non-selectable weekday indexes [0..6]. An
	// empty list serialises to the null token.
	DaysOfWeekDisabled []int

	// Width is applied as an inline width on the container when set.
	Width string

	// StyleVariables are per-instance theme overrides consumed by the style
	// resolver; they never reach the attribute set.
	StyleVariables styles.Variables
}

func (c InputConfig) language() string {
	if trimmed := strings.TrimSpace(c.Language); trimmed != "" {
		return trimmed
	}
	return "en"
}

func (c InputConfig) format() string {
	if trimmed := strings.TrimSpace(c.Format); trimmed != "" {
		return trimmed
	}
	return "yyyy-mm-dd"
}

func (c InputConfig) startView() string {
	if trimmed := strings.TrimSpace(c.StartView); trimmed != "" {
		return trimmed
	}
	return StartViewMonth
}

func (c InputConfig) name() string {
	if trimmed := strings.TrimSpace(c.Name); trimmed != "" {
		return trimmed
	}
	return strings.TrimSpace(c.ID)
}
