package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
	}
	if cfg.LLMAPIKey == "" {
		// OPENAI_API_KEY is the conventional name; LLM_API_KEY wins when both
		// are set.
		v := os.Getenv("LLM_API_KEY")
		if v == "" {
			v = os.Getenv("OPENAI_API_KEY")
		}
		cfg.LLMAPIKey = v
	}

	if cfg.RubricName == "" {
		cfg.RubricName = os.Getenv("RUBRIC")
	}
	if cfg.RubricFile == "" {
		cfg.RubricFile = os.Getenv("RUBRIC_FILE")
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = os.Getenv("CACHE_DIR")
	}
	if cfg.LanguageHint == "" {
		cfg.LanguageHint = os.Getenv("LANGUAGE")
	}
	if cfg.FontPath == "" {
		cfg.FontPath = os.Getenv("PDF_FONT")
	}

	if cfg.MaxDocChars == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("MAX_DOC_CHARS"))); err == nil && n > 0 {
			cfg.MaxDocChars = n
		}
	}
	if cfg.CacheMaxAge == 0 {
		if s := os.Getenv("CACHE_MAX_AGE"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.CacheMaxAge = d
			}
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		}
	}
	setBool(&cfg.Verbose, "VERBOSE")
	setBool(&cfg.CacheClear, "CACHE_CLEAR")
	setBool(&cfg.CacheStrictPerms, "CACHE_STRICT_PERMS")
	setBool(&cfg.CacheOnly, "CACHE_ONLY")
}

// ApplyEnvOverrides forcefully overrides cfg fields with environment
// variables when set. This lets env take precedence over a config file while
// flags remain highest precedence.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLMBaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLMModel = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLMAPIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = v
	}
	if v := os.Getenv("RUBRIC"); v != "" {
		cfg.RubricName = v
	}
	if v := os.Getenv("RUBRIC_FILE"); v != "" {
		cfg.RubricFile = v
	}
	if v := os.Getenv("CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("LANGUAGE"); v != "" {
		cfg.LanguageHint = v
	}
	if v := os.Getenv("PDF_FONT"); v != "" {
		cfg.FontPath = v
	}
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("MAX_DOC_CHARS"))); err == nil && n > 0 {
		cfg.MaxDocChars = n
	}
	if s := os.Getenv("CACHE_MAX_AGE"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			cfg.CacheMaxAge = d
		}
	}

	setBool := func(dst *bool, envKey string) {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		case "0", "false", "no", "off":
			*dst = false
		}
	}
	setBool(&cfg.Verbose, "VERBOSE")
	setBool(&cfg.CacheClear, "CACHE_CLEAR")
	setBool(&cfg.CacheStrictPerms, "CACHE_STRICT_PERMS")
	setBool(&cfg.CacheOnly, "CACHE_ONLY")
}
