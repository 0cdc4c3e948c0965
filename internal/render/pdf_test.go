package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cocohazell1/planfeedback/internal/rubric"
	"github.com/cocohazell1/planfeedback/internal/scores"
)

func TestWritePDF(t *testing.T) {
	r := rubric.Rubric{
		Mode: rubric.FixedDenominator,
		Categories: []rubric.Category{
			{Name: "Market Analysis", Max: 10},
			{Name: "Financial Plan", Max: 10},
		},
	}
	set := scores.Extract("Market Analysis: 8/10\nFinancial Plan: 4/10", r)

	out := filepath.Join(t.TempDir(), "report.pdf")
	feedback := "# Overview\n\nSolid plan with weak financials.\n\n## Detail\nMore text here."
	if err := WritePDF("Plan Feedback", feedback, set, "", out); err != nil {
		t.Fatalf("write pdf: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatalf("output is not a PDF (starts with %q)", b[:min(len(b), 8)])
	}
	if len(b) < 500 {
		t.Fatalf("suspiciously small PDF: %d bytes", len(b))
	}
}
