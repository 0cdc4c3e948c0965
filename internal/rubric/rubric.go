package rubric

import (
	"errors"
	"fmt"
	"strings"
)

// DenominatorMode selects how the score denominator is obtained when scanning
// feedback text. Fixed means the rubric supplies the maximum and only tokens
// written against that exact denominator count (e.g. "8/10" for a 10-point
// category). Read means the denominator is parsed from the text itself, so
// "85/100" and "17/20" both resolve against whatever the model wrote.
type DenominatorMode int

const (
	FixedDenominator DenominatorMode = iota
	ReadDenominator
)

// Category is one named evaluation dimension. Synonyms are substring
// fragments matched ANY-OF against a line of feedback; a single fragment hit
// resolves the line to this category. Matching folds case so lowercase
// English fragments still hit capitalized section headers; Korean text is
// unaffected by the fold.
type Category struct {
	Name     string
	Synonyms []string
	Max      float64
}

// Matches reports whether the line mentions this category, either by its
// canonical name or by any registered synonym fragment.
func (c Category) Matches(line string) bool {
	folded := strings.ToLower(line)
	if c.Name != "" && strings.Contains(folded, strings.ToLower(c.Name)) {
		return true
	}
	for _, s := range c.Synonyms {
		if s != "" && strings.Contains(folded, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// Rubric is the full ordered category list for one report format variant,
// plus the denominator mode that variant uses. A Rubric is built once and
// treated as immutable by everything that consumes it.
type Rubric struct {
	Name       string
	Mode       DenominatorMode
	Categories []Category
}

// Validate checks the rubric is usable: at least one category, every category
// named with a positive maximum, and no duplicate canonical names.
func (r Rubric) Validate() error {
	if len(r.Categories) == 0 {
		return errors.New("rubric: no categories")
	}
	seen := make(map[string]struct{}, len(r.Categories))
	for i, c := range r.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("rubric: category %d has no name", i)
		}
		if c.Max <= 0 {
			return fmt.Errorf("rubric: category %q has non-positive max %v", c.Name, c.Max)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("rubric: duplicate category %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// MatchesAny reports whether the line mentions any category of the rubric.
// The extractor uses this to stop detail capture at the next category header.
func (r Rubric) MatchesAny(line string) bool {
	for _, c := range r.Categories {
		if c.Matches(line) {
			return true
		}
	}
	return false
}

// standardCategories is the seven-dimension business plan rubric. The max is
// applied uniformly by the callers below.
func standardCategories(max float64) []Category {
	return []Category{
		{Name: "명확성 및 논리성", Synonyms: []string{"명확성", "논리성", "clarity", "logic"}, Max: max},
		{Name: "시장 분석", Synonyms: []string{"market analysis", "market sizing"}, Max: max},
		{Name: "사업 모델", Synonyms: []string{"비즈니스 모델", "business model"}, Max: max},
		{Name: "실행 계획", Synonyms: []string{"execution plan", "action plan"}, Max: max},
		{Name: "재무 계획", Synonyms: []string{"financial plan", "financials"}, Max: max},
		{Name: "차별점 및 강점", Synonyms: []string{"차별점", "강점", "differentiation", "strength"}, Max: max},
		{Name: "위험 요인 관리", Synonyms: []string{"위험", "약점", "risk", "weakness"}, Max: max},
	}
}

// Standard10 returns the default business plan rubric scored out of 10 with a
// fixed denominator, matching the baseline report format.
func Standard10() Rubric {
	return Rubric{Name: "standard-10", Mode: FixedDenominator, Categories: standardCategories(10)}
}

// Standard20 is the same seven dimensions scored out of 20.
func Standard20() Rubric {
	return Rubric{Name: "standard-20", Mode: FixedDenominator, Categories: standardCategories(20)}
}

// Extended100 is the nine-dimension variant scored out of 100. It reads the
// denominator from the text because that report format lets the model weight
// categories unevenly.
func Extended100() Rubric {
	cats := standardCategories(100)
	cats = append(cats,
		Category{Name: "기술 및 제품 차별성", Synonyms: []string{"기술", "technology", "product differentiation"}, Max: 100},
		Category{Name: "팀 역량", Synonyms: []string{"팀", "team capability", "team"}, Max: 100},
	)
	return Rubric{Name: "extended-100", Mode: ReadDenominator, Categories: cats}
}

// Builtin resolves a rubric by name. Unknown names return false so callers
// can fall back to a rubric file.
func Builtin(name string) (Rubric, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "standard", "standard-10", "10":
		return Standard10(), true
	case "standard-20", "20":
		return Standard20(), true
	case "extended", "extended-100", "100":
		return Extended100(), true
	}
	return Rubric{}, false
}
