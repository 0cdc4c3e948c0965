// Package validate performs the range checks the extractor deliberately does
// not: extraction reflects the text as written, and any disagreement with the
// rubric is reported here, on the presentation side.
package validate

import (
	"fmt"

	"github.com/cocohazell1/planfeedback/internal/scores"
)

// Warnings inspects an extracted score set and returns human-readable notes
// about entries the model scored outside its own scale or never mentioned.
// An empty slice means the set is clean.
func Warnings(set scores.Set) []string {
	var out []string
	for _, name := range set.Categories() {
		e, _ := set.Entry(name)
		if e.Outcome == scores.Unmatched {
			out = append(out, fmt.Sprintf("%s: 피드백에서 점수를 찾지 못해 0점으로 표시됨", name))
			continue
		}
		if e.Score > e.Max {
			out = append(out, fmt.Sprintf("%s: 점수 %v이(가) 최대 %v을(를) 초과함", name, e.Score, e.Max))
		}
		if e.Score < 0 {
			out = append(out, fmt.Sprintf("%s: 음수 점수 %v", name, e.Score))
		}
	}
	return out
}
