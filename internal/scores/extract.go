// Package scores turns free-form model feedback into a fully populated score
// table. Extraction is deliberately total: any input, including garbage or an
// empty string, yields one Entry per rubric category, degrading to defaults
// instead of failing. Range checking is left to callers so an inconsistent
// model score (e.g. "14/10") stays visible.
package scores

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cocohazell1/planfeedback/internal/rubric"
)

// readScoreRe matches "<number> / <number>" with an arbitrary denominator.
var readScoreRe = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*/\s*([0-9]+(?:\.[0-9]+)?)`)

// fixedScoreRe builds a pattern for "<number> / <max>" with the exact
// denominator the rubric declares. The trailing guard stops "/10" from
// matching inside "/100".
func fixedScoreRe(max float64) *regexp.Regexp {
	lit := regexp.QuoteMeta(strconv.FormatFloat(max, 'f', -1, 64))
	return regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*/\s*(` + lit + `)(?:[^0-9.]|$)`)
}

// Extract scans feedback text against a rubric and returns the complete score
// set. It never fails; categories the text does not cover come back as
// zero-valued defaults with the NoInformation detail.
func Extract(text string, r rubric.Rubric) Set {
	lines := strings.Split(text, "\n")
	s := Set{
		order:   make([]string, 0, len(r.Categories)),
		entries: make(map[string]Entry, len(r.Categories)),
	}
	fixed := make(map[float64]*regexp.Regexp)
	for _, c := range r.Categories {
		s.order = append(s.order, c.Name)
		s.entries[c.Name] = extractOne(lines, c, r, fixed)
	}
	return s
}

// extractOne resolves a single category. The scan runs backwards so the last
// occurrence wins: score summaries conventionally come after the discussion,
// and the later tally is the authoritative one. Matched lines without a
// parseable score token are passed over in favor of earlier scored mentions;
// only when no mention anywhere carries a score does the category degrade to
// the default entry.
func extractOne(lines []string, c rubric.Category, r rubric.Rubric, fixed map[float64]*regexp.Regexp) Entry {
	re := readScoreRe
	if r.Mode == rubric.FixedDenominator {
		if fixed[c.Max] == nil {
			fixed[c.Max] = fixedScoreRe(c.Max)
		}
		re = fixed[c.Max]
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if !c.Matches(lines[i]) {
			continue
		}
		ms := re.FindAllStringSubmatchIndex(lines[i], -1)
		if len(ms) == 0 {
			continue
		}
		m := ms[len(ms)-1]
		score, err := strconv.ParseFloat(lines[i][m[2]:m[3]], 64)
		if err != nil {
			continue
		}
		max := c.Max
		if r.Mode == rubric.ReadDenominator {
			if d, derr := strconv.ParseFloat(lines[i][m[4]:m[5]], 64); derr == nil && d > 0 {
				max = d
			}
		}
		return Entry{
			Score:   score,
			Max:     max,
			Detail:  captureDetail(lines, i, m[5], r),
			Outcome: Matched,
		}
	}
	return Entry{Score: 0, Max: c.Max, Detail: NoInformation, Outcome: Unmatched}
}

// captureDetail collects the explanatory text following the score token, up
// to the next blank line or the next line that names any rubric category.
// This is best effort: an empty result leaves the score standing on its own.
func captureDetail(lines []string, idx int, tokenEnd int, r rubric.Rubric) string {
	parts := make([]string, 0, 4)
	head := strings.TrimLeft(lines[idx][tokenEnd:], " \t-–—:,.)")
	if t := strings.TrimSpace(head); t != "" {
		parts = append(parts, t)
	}
	for j := idx + 1; j < len(lines); j++ {
		t := strings.TrimSpace(lines[j])
		if t == "" {
			break
		}
		if r.MatchesAny(lines[j]) {
			break
		}
		parts = append(parts, t)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
