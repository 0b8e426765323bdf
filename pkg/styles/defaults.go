package styles

import (
	"strconv"
	"strings"
)

// Theme major versions with a known default variable set. Anything else
// resolves to empty defaults and the merged set is driven entirely by the
// caller's overrides.
const (
	ThemeMajorLegacy  = 2
	ThemeMajorCurrent = 3
)

// DefaultVariables returns the fixed variable set for a detected theme major
// version. The legacy and current sets differ in which custom properties they
// define, matching the two widget chrome generations. Unknown versions return
// an empty set.
func DefaultVariables(major int) Variables {
	switch major {
	case ThemeMajorLegacy:
		return legacyDefaults()
	case ThemeMajorCurrent:
		return currentDefaults()
	default:
		return Variables{}
	}
}

func legacyDefaults() Variables {
	out := Variables{}
	out.Set("--dp-background", "#ffffff")
	out.Set("--dp-border", "1px solid #cccccc")
	out.Set("--dp-radius", "4px")
	out.Set("--dp-cell-size", "24px")
	out.Set("--dp-font-size", "13px")
	out.Set("--dp-head-background", "#f5f5f5")
	out.Set("--dp-selected-background", "#006dcc")
	out.Set("--dp-selected-color", "#ffffff")
	out.Set("--dp-disabled-color", "#999999")
	return out
}

func currentDefaults() Variables {
	out := Variables{}
	out.Set("--dp-background", "#ffffff")
	out.Set("--dp-border", "1px solid rgba(0, 0, 0, 0.15)")
	out.Set("--dp-radius", "6px")
	out.Set("--dp-cell-size", "30px")
	out.Set("--dp-font-size", "14px")
	out.Set("--dp-head-background", "transparent")
	out.Set("--dp-selected-background", "#337ab7")
	out.Set("--dp-selected-color", "#ffffff")
	out.Set("--dp-hover-background", "#eeeeee")
	out.Set("--dp-disabled-color", "#777777")
	out.Set("--dp-today-background", "#ffdb99")
	return out
}

// themeMajor extracts the major component from a manifest version string
// such as "3.4.1". Unparseable versions report 0, which maps to empty
// defaults.
func themeMajor(version string) int {
	version = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if version == "" {
		return 0
	}
	head, _, _ := strings.Cut(version, ".")
	major, err := strconv.Atoi(head)
	if err != nil || major < 0 {
		return 0
	}
	return major
}
