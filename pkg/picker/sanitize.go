package picker

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// sanitizeLabelMarkup cleans user-supplied label content. Labels may carry
// light inline markup (icon spans, emphasis); everything else is stripped.
func sanitizeLabelMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(labelSanitizer().Sanitize(trimmed))
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("span", "i", "b", "em", "strong", "abbr", "small", "sup", "sub")
		policy.AllowAttrs("class", "title", "aria-hidden").OnElements("span", "i", "abbr")
		labelPolicy = policy
	})
	return labelPolicy
}
