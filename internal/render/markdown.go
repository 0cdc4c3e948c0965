// Package render is the presentation layer: it turns an extracted score set
// plus the raw feedback into a Markdown report, a text bar chart, and an
// optional PDF. It relies on the score set invariant that every rubric
// category is always present, so there is no missing-key handling here.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/cocohazell1/planfeedback/internal/scores"
)

// Report assembles the full Markdown document: the model feedback verbatim,
// then the score table and bar chart.
func Report(title string, feedback string, set scores.Set) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n\n")
	sb.WriteString(strings.TrimSpace(feedback))
	sb.WriteString("\n\n## 점수 요약\n\n")
	sb.WriteString(Table(set))
	sb.WriteString("\n")
	sb.WriteString("```\n")
	sb.WriteString(BarChart(set, 30))
	sb.WriteString("```\n")
	return sb.String()
}

// Table renders the score set as a Markdown table in rubric order.
func Table(set scores.Set) string {
	var sb strings.Builder
	sb.WriteString("| 항목 | 점수 | 비고 |\n")
	sb.WriteString("| --- | ---: | --- |\n")
	for _, name := range set.Categories() {
		e, _ := set.Entry(name)
		detail := e.Detail
		if e.Outcome == scores.Matched && detail == "" {
			detail = "-"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s/%s | %s |\n",
			name, formatScore(e.Score), formatScore(e.Max), escapePipes(detail)))
	}
	return sb.String()
}

// BarChart draws a fixed-width text bar per category, scaled against each
// category's own maximum. Scores above the maximum fill the whole bar; the
// numeric column still shows the raw value so the inconsistency is visible.
func BarChart(set scores.Set, barWidth int) string {
	if barWidth <= 0 {
		barWidth = 30
	}
	labelWidth := 0
	for _, name := range set.Categories() {
		if w := displayWidth(name); w > labelWidth {
			labelWidth = w
		}
	}
	var sb strings.Builder
	for _, name := range set.Categories() {
		e, _ := set.Entry(name)
		ratio := 0.0
		if e.Max > 0 {
			ratio = e.Score / e.Max
		}
		if ratio > 1 {
			ratio = 1
		}
		if ratio < 0 {
			ratio = 0
		}
		filled := int(ratio*float64(barWidth) + 0.5)
		sb.WriteString(name)
		sb.WriteString(strings.Repeat(" ", labelWidth-displayWidth(name)+1))
		sb.WriteString(strings.Repeat("█", filled))
		sb.WriteString(strings.Repeat("░", barWidth-filled))
		sb.WriteString(" ")
		sb.WriteString(formatScore(e.Score))
		sb.WriteString("/")
		sb.WriteString(formatScore(e.Max))
		sb.WriteString("\n")
	}
	return sb.String()
}

// displayWidth measures terminal columns, counting East Asian wide and
// fullwidth runes as two so Korean labels line up with the bars.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
