package picker

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Extension keys recognised on OpenAPI date schemas.
const (
	extMinDate       = "x-min-date"
	extMaxDate       = "x-max-date"
	extLanguage      = "x-language"
	extWeekStart     = "x-week-start"
	extDatesDisabled = "x-dates-disabled"
)

// FromSchema derives an InputConfig from an OpenAPI property schema with
// format "date". The schema default becomes the initial value; bounds and
// locale come from x-* extensions. The returned config still goes through
// BuildDescriptor validation like any hand-built one.
func FromSchema(name string, schema *openapi3.Schema) (InputConfig, error) {
	if schema == nil {
		return InputConfig{}, fmt.Errorf("picker: nil schema for %q", name)
	}
	if !isDateSchema(schema) {
		return InputConfig{}, fmt.Errorf("picker: schema for %q is not a date (type %q, format %q)", name, schemaType(schema), schema.Format)
	}

	cfg := InputConfig{
		ID:    strings.TrimSpace(name),
		Name:  strings.TrimSpace(name),
		Label: strings.TrimSpace(schema.Title),
	}
	if cfg.Label == "" {
		cfg.Label = cfg.ID
	}

	if schema.Default != nil {
		cfg.Value = schema.Default
	}
	if value, ok := stringExtension(schema.Extensions, extMinDate); ok {
		cfg.Min = value
	}
	if value, ok := stringExtension(schema.Extensions, extMaxDate); ok {
		cfg.Max = value
	}
	if value, ok := stringExtension(schema.Extensions, extLanguage); ok {
		cfg.Language = value
	}
	if raw, ok := schema.Extensions[extWeekStart]; ok {
		if day, ok := intValue(raw); ok {
			cfg.WeekStart = day
		}
	}
	if raw, ok := schema.Extensions[extDatesDisabled]; ok {
		if list, ok := raw.([]any); ok {
			cfg.DatesDisabled = list
		}
	}

	return cfg, nil
}

func isDateSchema(schema *openapi3.Schema) bool {
	if !strings.EqualFold(strings.TrimSpace(schema.Format), "date") {
		return false
	}
	kind := schemaType(schema)
	return kind == "" || kind == "string"
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func stringExtension(extensions map[string]any, key string) (string, bool) {
	raw, ok := extensions[key]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func intValue(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
