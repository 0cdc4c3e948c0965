package rubric

import (
	"testing"
)

func TestBuiltinVariants(t *testing.T) {
	cases := []struct {
		name      string
		wantCats  int
		wantMax   float64
		wantMode  DenominatorMode
	}{
		{"standard-10", 7, 10, FixedDenominator},
		{"standard-20", 7, 20, FixedDenominator},
		{"extended-100", 9, 100, ReadDenominator},
	}
	for _, tc := range cases {
		r, ok := Builtin(tc.name)
		if !ok {
			t.Fatalf("builtin %q not found", tc.name)
		}
		if len(r.Categories) != tc.wantCats {
			t.Fatalf("%s: expected %d categories, got %d", tc.name, tc.wantCats, len(r.Categories))
		}
		if r.Mode != tc.wantMode {
			t.Fatalf("%s: unexpected mode %v", tc.name, r.Mode)
		}
		for _, c := range r.Categories {
			if c.Max != tc.wantMax {
				t.Fatalf("%s: category %q max %v, want %v", tc.name, c.Name, c.Max, tc.wantMax)
			}
		}
		if err := r.Validate(); err != nil {
			t.Fatalf("%s: builtin rubric invalid: %v", tc.name, err)
		}
	}
}

func TestBuiltinEmptyNameDefaults(t *testing.T) {
	r, ok := Builtin("")
	if !ok {
		t.Fatalf("empty rubric name should resolve to the default")
	}
	if r.Name != "standard-10" {
		t.Fatalf("expected standard-10, got %q", r.Name)
	}
}

func TestBuiltinUnknown(t *testing.T) {
	if _, ok := Builtin("nope"); ok {
		t.Fatalf("unknown rubric name should not resolve")
	}
}

func TestCategoryMatches(t *testing.T) {
	c := Category{Name: "차별점 및 강점", Synonyms: []string{"strength", "differentiation"}, Max: 10}
	cases := []struct {
		line string
		want bool
	}{
		{"차별점 및 강점: 8/10", true},
		{"강점이 분명합니다", false}, // fragment "강점" not registered here; name must match whole
		{"Differentiation and Strengths: 7/10", true},
		{"Key STRENGTH of the team", true},
		{"위험 요인 관리: 5/10", false},
	}
	for _, tc := range cases {
		if got := c.Matches(tc.line); got != tc.want {
			t.Fatalf("Matches(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestValidateRejectsBadRubrics(t *testing.T) {
	bad := []Rubric{
		{},
		{Categories: []Category{{Name: "", Max: 10}}},
		{Categories: []Category{{Name: "a", Max: 0}}},
		{Categories: []Category{{Name: "a", Max: 10}, {Name: "a", Max: 10}}},
	}
	for i, r := range bad {
		if err := r.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestParseYAMLRubric(t *testing.T) {
	src := []byte(`
name: custom
mode: read
categories:
  - name: 시장 분석
    synonyms: [market analysis, market sizing]
    max: 20
  - name: 재무 계획
    synonyms: [financial plan]
    max: 20
`)
	r, err := Parse(src)
	if err != nil {
		t.Fatalf("parse rubric: %v", err)
	}
	if r.Name != "custom" || r.Mode != ReadDenominator {
		t.Fatalf("unexpected rubric header: %+v", r)
	}
	if len(r.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(r.Categories))
	}
	if !r.Categories[0].Matches("market sizing approach") {
		t.Fatalf("synonyms not carried through parse")
	}
}

func TestParseRejectsUnknownMode(t *testing.T) {
	if _, err := Parse([]byte("mode: sideways\ncategories: [{name: a, max: 10}]")); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
