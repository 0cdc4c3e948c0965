package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	InputPath  string
	OutputPath string
	// OutputPDFPath, when non-empty, also renders the report as a PDF.
	OutputPDFPath string
	// FontPath points at a UTF-8 TTF used for PDF output of Korean text.
	FontPath string
	// FeedbackPath skips the model call and scores a pre-supplied feedback
	// text file instead.
	FeedbackPath string

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Rubric selection: a builtin name or a YAML rubric file. The file wins
	// when both are set.
	RubricName string
	RubricFile string

	// Budgeting
	MaxDocChars  int
	LanguageHint string
	Title        string

	// Behavior
	CacheDir         string
	CacheMaxAge      time.Duration
	CacheClear       bool
	CacheStrictPerms bool
	CacheOnly        bool
	Verbose          bool
}
