package scores

// NoInformation is the detail sentinel used when the feedback text yielded
// nothing for a category. It is user-facing, so it is written in the report
// language rather than as an empty string.
const NoInformation = "정보 없음"

// Outcome tags how an Entry was produced, so a zero score from an explicit
// "0/10" in the text stays distinguishable from a zero-valued default for a
// category the text never mentioned.
type Outcome int

const (
	Unmatched Outcome = iota
	Matched
)

// Entry is one category's extracted result. Score is never clamped: a value
// above Max is passed through so the caller can see the model contradicting
// its own scale.
type Entry struct {
	Score   float64
	Max     float64
	Detail  string
	Outcome Outcome
}

// Set is the complete extraction result for one report: exactly one Entry per
// requested category, iterated in the rubric's category order regardless of
// the order the text mentioned them. A Set is built once by Extract and not
// mutated afterwards.
type Set struct {
	order   []string
	entries map[string]Entry
}

// Len returns the number of categories in the set.
func (s Set) Len() int { return len(s.order) }

// Categories returns the category names in rubric order.
func (s Set) Categories() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Entry returns the entry for a category name. The second return is false
// only for names that were never part of the rubric; every rubric category is
// always present.
func (s Set) Entry(name string) (Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}
