package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyEnvToConfig_FillsUnsetOnly(t *testing.T) {
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("LLM_BASE_URL", "http://env:1234/v1")
	t.Setenv("RUBRIC", "standard-20")
	t.Setenv("CACHE_MAX_AGE", "24h")
	t.Setenv("VERBOSE", "1")

	cfg := Config{LLMModel: "flag-model"}
	ApplyEnvToConfig(&cfg)

	if cfg.LLMModel != "flag-model" {
		t.Fatalf("explicit value must win over env, got %q", cfg.LLMModel)
	}
	if cfg.LLMBaseURL != "http://env:1234/v1" {
		t.Fatalf("unset field not filled from env: %q", cfg.LLMBaseURL)
	}
	if cfg.RubricName != "standard-20" {
		t.Fatalf("rubric not filled: %q", cfg.RubricName)
	}
	if cfg.CacheMaxAge != 24*time.Hour {
		t.Fatalf("cache max age not parsed: %v", cfg.CacheMaxAge)
	}
	if !cfg.Verbose {
		t.Fatalf("verbose bool not applied")
	}
}

func TestApplyEnvToConfig_OpenAIKeyFallback(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-fallback")
	cfg := Config{}
	ApplyEnvToConfig(&cfg)
	if cfg.LLMAPIKey != "sk-fallback" {
		t.Fatalf("expected OPENAI_API_KEY fallback, got %q", cfg.LLMAPIKey)
	}
}

func TestApplyEnvOverrides_EnvWinsOverFile(t *testing.T) {
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("VERBOSE", "0")
	cfg := Config{LLMModel: "file-model", Verbose: true}
	ApplyEnvOverrides(&cfg)
	if cfg.LLMModel != "env-model" {
		t.Fatalf("env override not applied: %q", cfg.LLMModel)
	}
	if cfg.Verbose {
		t.Fatalf("falsey env bool must switch verbose off")
	}
}

func TestLoadConfigFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yaml")
	src := []byte(`
input: plan-final.pdf
output: out.md
llm:
  base: http://localhost:8081/v1
  model: local-model
rubric:
  name: extended-100
max:
  docChars: 1234
cache:
  dir: /tmp/pf-cache
`)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cfg := Config{InputPath: "plan.pdf", OutputPath: "feedback.md", MaxDocChars: 60000, CacheDir: ".planfeedback-cache"}
	ApplyFileConfig(&cfg, fc)

	if cfg.InputPath != "plan-final.pdf" || cfg.OutputPath != "out.md" {
		t.Fatalf("paths not overlaid: %+v", cfg)
	}
	if cfg.LLMBaseURL != "http://localhost:8081/v1" || cfg.LLMModel != "local-model" {
		t.Fatalf("llm section not overlaid: %+v", cfg)
	}
	if cfg.RubricName != "extended-100" {
		t.Fatalf("rubric not overlaid: %q", cfg.RubricName)
	}
	if cfg.MaxDocChars != 1234 {
		t.Fatalf("docChars default not replaced: %d", cfg.MaxDocChars)
	}
	if cfg.CacheDir != "/tmp/pf-cache" {
		t.Fatalf("cache dir default not replaced: %q", cfg.CacheDir)
	}
}

func TestApplyFileConfig_FlagsKeepPrecedence(t *testing.T) {
	fc := FileConfig{}
	fc.LLM.Model = "file-model"
	cfg := Config{LLMModel: "flag-model"}
	ApplyFileConfig(&cfg, fc)
	if cfg.LLMModel != "flag-model" {
		t.Fatalf("flag value lost: %q", cfg.LLMModel)
	}
}

func TestValidateConfig(t *testing.T) {
	ok := Config{InputPath: "plan.pdf", OutputPath: "out.md", LLMModel: "m"}
	if err := ValidateConfig(ok); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	if err := ValidateConfig(Config{InputPath: "plan.pdf", OutputPath: "out.md"}); err == nil {
		t.Fatalf("missing model must be rejected")
	}
	if err := ValidateConfig(Config{OutputPath: "out.md", LLMModel: "m"}); err == nil {
		t.Fatalf("missing input must be rejected")
	}
	if err := ValidateConfig(Config{InputPath: "p", LLMModel: "m"}); err == nil {
		t.Fatalf("missing output must be rejected")
	}

	// Pre-supplied feedback needs neither document nor model.
	offline := Config{OutputPath: "out.md", FeedbackPath: "fb.txt"}
	if err := ValidateConfig(offline); err != nil {
		t.Fatalf("feedback-only config rejected: %v", err)
	}
}
