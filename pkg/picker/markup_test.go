package picker

import (
	"strings"
	"testing"
)

func TestBuildMarkupEmitsLabelAndInput(t *testing.T) {
	desc, err := BuildDescriptor(InputConfig{
		ID:    "due",
		Label: "Due date",
		Value: "2024-05-01",
	}, nil)
	if err != nil {
		t.Fatalf("build descriptor: %v", err)
	}

	markup := BuildMarkup(desc, "220px")

	for _, want := range []string{
		`<div class="dp-field" style="width: 220px;">`,
		`<label for="dp-due" class="dp-label">Due date</label>`,
		`id="dp-due"`,
		`name="due"`,
		`value="2024-05-01"`,
		`data-date-initial-date="2024-05-01"`,
		`data-date-language="en"`,
		`data-date-autoclose="false"`,
		`data-date-dates-disabled="null"`,
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("expected markup to contain %q, got:\n%s", want, markup)
		}
	}
}

func TestBuildMarkupOmitsEmptyBounds(t *testing.T) {
	desc, err := BuildDescriptor(InputConfig{ID: "due"}, nil)
	if err != nil {
		t.Fatalf("build descriptor: %v", err)
	}

	markup := BuildMarkup(desc, "")
	if strings.Contains(markup, "data-date-min-date") {
		t.Fatalf("expected empty min bound omitted, got:\n%s", markup)
	}
	if strings.Contains(markup, "data-date-initial-date") {
		t.Fatalf("expected empty initial date omitted, got:\n%s", markup)
	}
	if !strings.Contains(markup, `data-date-days-of-week-disabled="null"`) {
		t.Fatalf("expected null weekday restriction emitted, got:\n%s", markup)
	}
}

func TestBuildMarkupSanitisesLabel(t *testing.T) {
	desc, err := BuildDescriptor(InputConfig{
		ID:    "due",
		Label: `<span class="icon">cal</span> Due <script>alert(1)</script>`,
	}, nil)
	if err != nil {
		t.Fatalf("build descriptor: %v", err)
	}

	markup := BuildMarkup(desc, "")
	if strings.Contains(markup, "<script>") {
		t.Fatalf("expected script stripped from label, got:\n%s", markup)
	}
	if !strings.Contains(markup, `<span class="icon">cal</span>`) {
		t.Fatalf("expected inline span preserved, got:\n%s", markup)
	}
}

func TestBuildMarkupEscapesAttributeValues(t *testing.T) {
	desc, err := BuildDescriptor(InputConfig{
		ID:     `due"x`,
		Format: `mm"dd`,
	}, nil)
	if err != nil {
		t.Fatalf("build descriptor: %v", err)
	}

	markup := BuildMarkup(desc, "")
	if strings.Contains(markup, `id="dp-due"x"`) {
		t.Fatalf("expected escaped id, got:\n%s", markup)
	}
	if !strings.Contains(markup, "mm&#34;dd") {
		t.Fatalf("expected escaped format value, got:\n%s", markup)
	}
}

func TestBuildMarkupAttributeOrderIsStable(t *testing.T) {
	desc, err := BuildDescriptor(InputConfig{ID: "due", Min: "2024-01-01", Max: "2024-12-31"}, nil)
	if err != nil {
		t.Fatalf("build descriptor: %v", err)
	}

	first := BuildMarkup(desc, "")
	second := BuildMarkup(desc, "")
	if first != second {
		t.Fatalf("markup not byte-stable:\n%s\n---\n%s", first, second)
	}
	if strings.Index(first, AttrMinDate) > strings.Index(first, AttrMaxDate) {
		t.Fatalf("expected fixed attribute order, got:\n%s", first)
	}
}
