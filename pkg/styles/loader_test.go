package styles

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLoadVariablesPreservesFileOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"themes/site.yaml": &fstest.MapFile{Data: []byte(
			"--dp-selected-background: \"#bd362f\"\n" +
				"--dp-background: \"#fdf6e3\"\n" +
				"--dp-radius: 0\n",
		)},
	}

	vars, err := LoadVariables(fsys, "themes/site.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{"--dp-selected-background", "--dp-background", "--dp-radius"}
	if diff := cmp.Diff(want, vars.Names()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if value, _ := vars.Get("--dp-background"); value != "#fdf6e3" {
		t.Fatalf("unexpected value: %q", value)
	}
}

func TestParseVariablesRejectsNonScalarValues(t *testing.T) {
	_, err := ParseVariables([]byte("--dp-background:\n  nested: true\n"))
	if err == nil {
		t.Fatalf("expected error for nested value")
	}
	if !strings.Contains(err.Error(), "--dp-background") {
		t.Fatalf("expected variable name in error, got %v", err)
	}
}

func TestParseVariablesEmptyDocument(t *testing.T) {
	vars, err := ParseVariables(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !vars.IsEmpty() {
		t.Fatalf("expected empty set")
	}
}

func TestLoadVariablesMissingFile(t *testing.T) {
	if _, err := LoadVariables(fstest.MapFS{}, "themes/missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
