package validate

import (
	"strings"
	"testing"

	"github.com/cocohazell1/planfeedback/internal/rubric"
	"github.com/cocohazell1/planfeedback/internal/scores"
)

func TestWarnings_CleanSet(t *testing.T) {
	r := rubric.Rubric{
		Mode: rubric.FixedDenominator,
		Categories: []rubric.Category{
			{Name: "시장 분석", Max: 10},
			{Name: "재무 계획", Max: 10},
		},
	}
	set := scores.Extract("시장 분석: 8/10\n재무 계획: 5/10", r)
	if ws := Warnings(set); len(ws) != 0 {
		t.Fatalf("expected no warnings, got %v", ws)
	}
}

func TestWarnings_OutOfRangeAndUnmatched(t *testing.T) {
	r := rubric.Rubric{
		Mode: rubric.FixedDenominator,
		Categories: []rubric.Category{
			{Name: "팀 역량", Max: 10},
			{Name: "재무 계획", Max: 10},
		},
	}
	set := scores.Extract("팀 역량: 14/10", r)
	ws := Warnings(set)
	if len(ws) != 2 {
		t.Fatalf("expected 2 warnings, got %v", ws)
	}
	joined := strings.Join(ws, "\n")
	if !strings.Contains(joined, "팀 역량") || !strings.Contains(joined, "초과") {
		t.Fatalf("missing out-of-range warning: %v", ws)
	}
	if !strings.Contains(joined, "재무 계획") {
		t.Fatalf("missing unmatched warning: %v", ws)
	}
}

func TestWarnings_ExplicitZeroIsNotWarned(t *testing.T) {
	r := rubric.Rubric{
		Mode:       rubric.FixedDenominator,
		Categories: []rubric.Category{{Name: "시장 분석", Max: 10}},
	}
	set := scores.Extract("시장 분석: 0/10", r)
	if ws := Warnings(set); len(ws) != 0 {
		t.Fatalf("explicit zero should not warn, got %v", ws)
	}
}
