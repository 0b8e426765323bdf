package picker

import (
	"html"
	"strings"
)

// attributeOrder fixes the emission order so rendered markup is byte-stable
// across renders.
var attributeOrder = []string{
	AttrLanguage,
	AttrWeekStart,
	AttrFormat,
	AttrStartView,
	AttrMinDate,
	AttrMaxDate,
	AttrInitialDate,
	AttrAutoclose,
	AttrDatesDisabled,
	AttrDaysOfWeekDisabled,
}

// Attributes that stay off the element when empty. The rest of the fixed set
// always carries a value.
var omitWhenEmpty = map[string]struct{}{
	AttrMinDate:     {},
	AttrMaxDate:     {},
	AttrInitialDate: {},
}

func controlID(id string) string {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return ""
	}
	return "dp-" + trimmed
}

// BuildMarkup assembles the container fragment: a wrapping div, the label
// bound to the control, and the text input carrying the data-date-*
// attribute contract. Label content is sanitised; everything else is
// HTML-escaped.
func BuildMarkup(desc Descriptor, width string) string {
	var b strings.Builder
	b.Grow(512)

	b.WriteString(`<div class="dp-field"`)
	if w := strings.TrimSpace(width); w != "" {
		b.WriteString(` style="width: `)
		b.WriteString(html.EscapeString(w))
		b.WriteString(`;"`)
	}
	b.WriteString(">\n")

	if label := sanitizeLabelMarkup(desc.Label); label != "" {
		b.WriteString(`    <label`)
		if desc.ID != "" {
			b.WriteString(` for="`)
			b.WriteString(html.EscapeString(desc.ID))
			b.WriteString(`"`)
		}
		b.WriteString(` class="dp-label">`)
		b.WriteString(label)
		b.WriteString("</label>\n")
	}

	b.WriteString(`    <input type="text" class="dp-input"`)
	if desc.ID != "" {
		b.WriteString(` id="`)
		b.WriteString(html.EscapeString(desc.ID))
		b.WriteString(`"`)
	}
	if desc.Name != "" {
		b.WriteString(` name="`)
		b.WriteString(html.EscapeString(desc.Name))
		b.WriteString(`"`)
	}
	if desc.Value != "" {
		b.WriteString(` value="`)
		b.WriteString(html.EscapeString(desc.Value))
		b.WriteString(`"`)
	}

	for _, name := range attributeOrder {
		value, ok := desc.Attributes[name]
		if !ok {
			continue
		}
		if value == "" {
			if _, omit := omitWhenEmpty[name]; omit {
				continue
			}
		}
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`"`)
	}

	b.WriteString(">\n</div>\n")
	return b.String()
}
