package picker

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datepicker/pkg/dates"
)

func TestBuildDescriptorNormalisesEquivalentValues(t *testing.T) {
	native := time.Date(2012, time.February, 29, 9, 0, 0, 0, time.UTC)

	fromTime, err := BuildDescriptor(InputConfig{ID: "start", Value: native}, nil)
	if err != nil {
		t.Fatalf("build from time: %v", err)
	}
	fromString, err := BuildDescriptor(InputConfig{ID: "start", Value: "2012-02-29"}, nil)
	if err != nil {
		t.Fatalf("build from string: %v", err)
	}

	if fromTime.Attributes[AttrInitialDate] != fromString.Attributes[AttrInitialDate] {
		t.Fatalf("initial-date mismatch: %q vs %q",
			fromTime.Attributes[AttrInitialDate], fromString.Attributes[AttrInitialDate])
	}
	if got := fromString.Attributes[AttrInitialDate]; got != "2012-02-29" {
		t.Fatalf("expected canonical initial date, got %q", got)
	}
}

func TestBuildDescriptorKeepsCanonicalValueUnderDisplayFormat(t *testing.T) {
	desc, err := BuildDescriptor(InputConfig{
		ID:     "published",
		Value:  "2012-02-29",
		Format: "mm/dd/yy",
	}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := desc.Attributes[AttrInitialDate]; got != "2012-02-29" {
		t.Fatalf("initial date must stay canonical, got %q", got)
	}
	if got := desc.Attributes[AttrFormat]; got != "mm/dd/yy" {
		t.Fatalf("display format must pass through, got %q", got)
	}
}

func TestBuildDescriptorAbsentListsSerialiseNull(t *testing.T) {
	desc, err := BuildDescriptor(InputConfig{ID: "due"}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := desc.Attributes[AttrDatesDisabled]; got != NullToken {
		t.Fatalf("expected null token for absent dates, got %q", got)
	}
	if got := desc.Attributes[AttrDaysOfWeekDisabled]; got != NullToken {
		t.Fatalf("expected null token for absent weekdays, got %q", got)
	}
}

func TestBuildDescriptorSerialisesNonEmptyLists(t *testing.T) {
	desc, err := BuildDescriptor(InputConfig{
		ID:                 "due",
		DatesDisabled:      []any{"2024-12-25", time.Date(2024, time.December, 26, 0, 0, 0, 0, time.UTC)},
		DaysOfWeekDisabled: []int{1, 2},
	}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := desc.Attributes[AttrDatesDisabled]; got != `["2024-12-25","2024-12-26"]` {
		t.Fatalf("unexpected dates-disabled: %q", got)
	}
	if got := desc.Attributes[AttrDaysOfWeekDisabled]; got != "[1,2]" {
		t.Fatalf("unexpected days-of-week-disabled: %q", got)
	}
}

func TestBuildDescriptorValidatesBoundsIndependently(t *testing.T) {
	_, err := BuildDescriptor(InputConfig{ID: "due", Min: "01/01/2024"}, nil)
	var verr *dates.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *dates.ValidationError, got %v", err)
	}
	if verr.Field != "min" {
		t.Fatalf("expected field min, got %q", verr.Field)
	}

	_, err = BuildDescriptor(InputConfig{ID: "due", Max: 12}, nil)
	if !errors.Is(err, dates.ErrUnsupportedType) {
		t.Fatalf("expected unsupported type error for max, got %v", err)
	}

	_, err = BuildDescriptor(InputConfig{ID: "due", DatesDisabled: []any{"bogus"}}, nil)
	if !errors.Is(err, dates.ErrMalformedDate) {
		t.Fatalf("expected malformed date error for list entry, got %v", err)
	}
}

func TestBuildDescriptorRestoresSubmittedValue(t *testing.T) {
	source := MapValues{"due": "2025-06-01"}

	desc, err := BuildDescriptor(InputConfig{ID: "due", Value: "2025-01-01"}, source)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if desc.Value != "2025-06-01" {
		t.Fatalf("expected restored value to win, got %q", desc.Value)
	}
	if got := desc.Attributes[AttrInitialDate]; got != "2025-06-01" {
		t.Fatalf("expected restored initial date, got %q", got)
	}

	// No entry for the id leaves the configured default in place.
	desc, err = BuildDescriptor(InputConfig{ID: "other", Value: "2025-01-01"}, source)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if desc.Value != "2025-01-01" {
		t.Fatalf("expected configured default, got %q", desc.Value)
	}
}

func TestBuildDescriptorDefaultsAndPassThrough(t *testing.T) {
	desc, err := BuildDescriptor(InputConfig{ID: "due", WeekStart: 9, Autoclose: true}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := map[string]string{
		AttrLanguage:           "en",
		AttrWeekStart:          "9", // out of range is the caller's contract, not enforced here
		AttrFormat:             "yyyy-mm-dd",
		AttrStartView:          StartViewMonth,
		AttrMinDate:            "",
		AttrMaxDate:            "",
		AttrInitialDate:        "",
		AttrAutoclose:          "true",
		AttrDatesDisabled:      NullToken,
		AttrDaysOfWeekDisabled: NullToken,
	}
	if diff := cmp.Diff(want, desc.Attributes); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
	if desc.ID != "dp-due" {
		t.Fatalf("expected prefixed control id, got %q", desc.ID)
	}
	if desc.Name != "due" {
		t.Fatalf("expected name to default to id, got %q", desc.Name)
	}
}
