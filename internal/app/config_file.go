package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to flags and env vars.
type FileConfig struct {
	Input     string `yaml:"input" json:"input"`
	Output    string `yaml:"output" json:"output"`
	OutputPDF string `yaml:"outputPDF" json:"outputPDF"`
	Feedback  string `yaml:"feedback" json:"feedback"`
	Title     string `yaml:"title" json:"title"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	Rubric struct {
		Name string `yaml:"name" json:"name"`
		File string `yaml:"file" json:"file"`
	} `yaml:"rubric" json:"rubric"`

	Max struct {
		DocChars int `yaml:"docChars" json:"docChars"`
	} `yaml:"max" json:"max"`

	Language string `yaml:"language" json:"language"`
	Verbose  bool   `yaml:"verbose" json:"verbose"`

	PDF struct {
		Font string `yaml:"font" json:"font"`
	} `yaml:"pdf" json:"pdf"`

	Cache struct {
		Dir         string        `yaml:"dir" json:"dir"`
		MaxAge      time.Duration `yaml:"maxAge" json:"maxAge"`
		Clear       bool          `yaml:"clear" json:"clear"`
		StrictPerms bool          `yaml:"strictPerms" json:"strictPerms"`
		Only        bool          `yaml:"only" json:"only"`
	} `yaml:"cache" json:"cache"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if yerr := yaml.Unmarshal(b, &fc); yerr != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", yerr, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for fields that are
// still at their flag defaults, so explicit flags keep precedence.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	const (
		inputDefault       = "plan.pdf"
		outputDefault      = "feedback.md"
		cacheDirDefault    = ".planfeedback-cache"
		maxDocCharsDefault = 60000
		titleDefault       = "사업계획서 AI 피드백"
	)

	if (cfg.InputPath == "" || cfg.InputPath == inputDefault) && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == outputDefault) && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.OutputPDFPath == "" && fc.OutputPDF != "" {
		cfg.OutputPDFPath = fc.OutputPDF
	}
	if cfg.FeedbackPath == "" && fc.Feedback != "" {
		cfg.FeedbackPath = fc.Feedback
	}
	if (cfg.Title == "" || cfg.Title == titleDefault) && fc.Title != "" {
		cfg.Title = fc.Title
	}

	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}

	if cfg.RubricName == "" && fc.Rubric.Name != "" {
		cfg.RubricName = fc.Rubric.Name
	}
	if cfg.RubricFile == "" && fc.Rubric.File != "" {
		cfg.RubricFile = fc.Rubric.File
	}

	if (cfg.MaxDocChars == 0 || cfg.MaxDocChars == maxDocCharsDefault) && fc.Max.DocChars > 0 {
		cfg.MaxDocChars = fc.Max.DocChars
	}
	if cfg.LanguageHint == "" && fc.Language != "" {
		cfg.LanguageHint = fc.Language
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
	if cfg.FontPath == "" && fc.PDF.Font != "" {
		cfg.FontPath = fc.PDF.Font
	}

	if (cfg.CacheDir == "" || cfg.CacheDir == cacheDirDefault) && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = fc.Cache.MaxAge
	}
	if !cfg.CacheClear && fc.Cache.Clear {
		cfg.CacheClear = true
	}
	if !cfg.CacheStrictPerms && fc.Cache.StrictPerms {
		cfg.CacheStrictPerms = true
	}
	if !cfg.CacheOnly && fc.Cache.Only {
		cfg.CacheOnly = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
// When a pre-supplied feedback file is used, document and LLM settings may be
// omitted.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return errors.New("config: output path is required")
	}
	if strings.TrimSpace(cfg.FeedbackPath) == "" {
		if strings.TrimSpace(cfg.InputPath) == "" {
			return errors.New("config: input path is required")
		}
		if strings.TrimSpace(cfg.LLMModel) == "" {
			return errors.New("config: llm.model is required (or set LLM_MODEL)")
		}
	}
	if cfg.MaxDocChars < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	return nil
}
