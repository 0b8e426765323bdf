// Package styles resolves the stylesheet and script assets a picker instance
// needs: either the prebuilt static bundle or a stylesheet compiled on demand
// from theme defaults merged with per-instance variable overrides. Compiled
// bundles are named by a content fingerprint so instances with identical
// effective variables share one asset.
package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Variables is an ordered mapping of CSS custom property name to expression.
// Iteration follows insertion order; fingerprinting uses a sorted canonical
// serialisation so ordering differences never produce distinct assets.
type Variables struct {
	names  []string
	values map[string]string
}

// NewVariables returns an empty set.
func NewVariables() Variables {
	return Variables{}
}

// VariablesFromMap builds a set from a plain map. Keys are inserted in sorted
// order so construction is deterministic.
func VariablesFromMap(src map[string]string) Variables {
	if len(src) == 0 {
		return Variables{}
	}
	keys := make([]string, 0, len(src))
	for key := range src {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := Variables{}
	for _, key := range keys {
		out.Set(key, src[key])
	}
	return out
}

// Set inserts or replaces a variable. Replacing keeps the original insertion
// position. Empty names are ignored.
func (v *Variables) Set(name, value string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if v.values == nil {
		v.values = make(map[string]string)
	}
	if _, exists := v.values[name]; !exists {
		v.names = append(v.names, name)
	}
	v.values[name] = value
}

// Get returns the expression for name.
func (v Variables) Get(name string) (string, bool) {
	value, ok := v.values[name]
	return value, ok
}

// Names returns the variable names in insertion order.
func (v Variables) Names() []string {
	if len(v.names) == 0 {
		return nil
	}
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Len reports the number of variables.
func (v Variables) Len() int {
	return len(v.names)
}

// IsEmpty reports whether the set carries no variables.
func (v Variables) IsEmpty() bool {
	return len(v.names) == 0
}

// Clone returns an independent copy.
func (v Variables) Clone() Variables {
	out := Variables{}
	for _, name := range v.names {
		out.Set(name, v.values[name])
	}
	return out
}

// Merge returns a new set with overrides applied on top of v. Overridden
// names keep their original position; new names append in the overrider's
// order.
func (v Variables) Merge(overrides Variables) Variables {
	out := v.Clone()
	for _, name := range overrides.names {
		out.Set(name, overrides.values[name])
	}
	return out
}

// Canonical serialises the set as sorted name:value lines. Equal effective
// variable sets always produce equal canonical forms.
func (v Variables) Canonical() string {
	if v.IsEmpty() {
		return ""
	}
	names := make([]string, len(v.names))
	copy(names, v.names)
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(v.values[name])
		b.WriteByte('\n')
	}
	return b.String()
}

// Fingerprint derives the asset identifier for the set: a fast xxhash64 over
// the canonical serialisation, rendered as fixed-width hex.
func (v Variables) Fingerprint() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(v.Canonical()))
}
