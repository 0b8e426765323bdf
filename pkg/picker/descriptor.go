package picker

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goliatone/go-datepicker/pkg/dates"
)

// Attribute names emitted on the input element. The set is fixed; the
// calendar script keys its behaviour off these names verbatim.
const (
	AttrLanguage           = "data-date-language"
	AttrWeekStart          = "data-date-week-start"
	AttrFormat             = "data-date-format"
	AttrStartView          = "data-date-start-view"
	AttrMinDate            = "data-date-min-date"
	AttrMaxDate            = "data-date-max-date"
	AttrInitialDate        = "data-date-initial-date"
	AttrAutoclose          = "data-date-autoclose"
	AttrDatesDisabled      = "data-date-dates-disabled"
	AttrDaysOfWeekDisabled = "data-date-days-of-week-disabled"
)

// NullToken is the serialisation of an absent list restriction. The calendar
// script distinguishes it from an empty array, which would mean "restrict to
// nothing".
const NullToken = "null"

// Descriptor is the normalised attribute set for one input element plus its
// label fragment.
type Descriptor struct {
	ID         string
	Name       string
	Label      string
	Value      string
	Attributes map[string]string
}

// BuildDescriptor normalises an InputConfig into a Descriptor. Date inputs
// are validated independently through the canonical normalisation rule; the
// first failure aborts with a *dates.ValidationError. When source holds a
// previously submitted value for the field id, it overrides the configured
// initial value before serialisation.
func BuildDescriptor(cfg InputConfig, source ValueSource) (Descriptor, error) {
	attrs := map[string]string{
		AttrLanguage:  cfg.language(),
		AttrWeekStart: strconv.Itoa(cfg.WeekStart),
		AttrFormat:    cfg.format(),
		AttrStartView: cfg.startView(),
		AttrAutoclose: strconv.FormatBool(cfg.Autoclose),
	}

	value := ""
	if cfg.Value != nil {
		parsed, err := dates.Parse("value", cfg.Value)
		if err != nil {
			return Descriptor{}, err
		}
		value = parsed.String()
	}
	if source != nil {
		if restored, ok := source.Lookup(cfg.ID); ok {
			value = restored
		}
	}
	attrs[AttrInitialDate] = value

	if cfg.Min != nil {
		parsed, err := dates.Parse("min", cfg.Min)
		if err != nil {
			return Descriptor{}, err
		}
		attrs[AttrMinDate] = parsed.String()
	} else {
		attrs[AttrMinDate] = ""
	}

	if cfg.Max != nil {
		parsed, err := dates.Parse("max", cfg.Max)
		if err != nil {
			return Descriptor{}, err
		}
		attrs[AttrMaxDate] = parsed.String()
	} else {
		attrs[AttrMaxDate] = ""
	}

	disabledDates, err := serializeDatesDisabled(cfg.DatesDisabled)
	if err != nil {
		return Descriptor{}, err
	}
	attrs[AttrDatesDisabled] = disabledDates
	attrs[AttrDaysOfWeekDisabled] = serializeWeekdays(cfg.DaysOfWeekDisabled)

	return Descriptor{
		ID:         controlID(cfg.ID),
		Name:       cfg.name(),
		Label:      cfg.Label,
		Value:      value,
		Attributes: attrs,
	}, nil
}

// serializeDatesDisabled normalises each entry and emits a JSON array of
// canonical dates, or the null token when the list is absent.
func serializeDatesDisabled(values []any) (string, error) {
	if len(values) == 0 {
		return NullToken, nil
	}
	parsed, err := dates.ParseList("datesDisabled", values)
	if err != nil {
		return "", err
	}
	out := make([]string, 0, len(parsed))
	for _, value := range parsed {
		out = append(out, value.String())
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("picker: serialise datesDisabled: %w", err)
	}
	return string(payload), nil
}

func serializeWeekdays(days []int) string {
	if len(days) == 0 {
		return NullToken
	}
	payload, err := json.Marshal(days)
	if err != nil {
		return NullToken
	}
	return string(payload)
}
