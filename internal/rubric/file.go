package rubric

import (
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// fileRubric is the YAML schema for an externalized rubric. Example:
//
//	name: standard-10
//	mode: fixed
//	categories:
//	  - name: 시장 분석
//	    synonyms: [market analysis, market sizing]
//	    max: 10
type fileRubric struct {
	Name       string `yaml:"name"`
	Mode       string `yaml:"mode"`
	Categories []struct {
		Name     string   `yaml:"name"`
		Synonyms []string `yaml:"synonyms"`
		Max      float64  `yaml:"max"`
	} `yaml:"categories"`
}

// LoadFile reads a rubric definition from a YAML file and validates it.
func LoadFile(path string) (Rubric, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Rubric{}, fmt.Errorf("read rubric file: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML rubric bytes and validates the result.
func Parse(b []byte) (Rubric, error) {
	var fr fileRubric
	if err := yaml.Unmarshal(b, &fr); err != nil {
		return Rubric{}, fmt.Errorf("parse rubric yaml: %w", err)
	}
	mode, err := parseMode(fr.Mode)
	if err != nil {
		return Rubric{}, err
	}
	r := Rubric{Name: fr.Name, Mode: mode}
	for _, c := range fr.Categories {
		r.Categories = append(r.Categories, Category{
			Name:     strings.TrimSpace(c.Name),
			Synonyms: c.Synonyms,
			Max:      c.Max,
		})
	}
	if err := r.Validate(); err != nil {
		return Rubric{}, err
	}
	return r, nil
}

func parseMode(s string) (DenominatorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed", "fixed-denominator":
		return FixedDenominator, nil
	case "read", "read-denominator", "dynamic":
		return ReadDenominator, nil
	}
	return FixedDenominator, fmt.Errorf("rubric: unknown mode %q", s)
}
