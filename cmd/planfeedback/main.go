package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cocohazell1/planfeedback/internal/app"
	"github.com/cocohazell1/planfeedback/internal/review"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath    string
		outputPath   string
		outputPDF    string
		fontPath     string
		feedbackPath string
		title        string
		configPath   string
		llmBaseURL   string
		llmModel     string
		llmKey       string
		rubricName   string
		rubricFile   string
		maxDocChars  int
		language     string
		verbose      bool
		cacheDir     string
		cacheMaxAge  time.Duration
		cacheClear   bool
		cacheStrict  bool
		cacheOnly    bool
	)

	flag.StringVar(&inputPath, "input", "plan.pdf", "Path to the business plan document (PDF, HTML, or plain text)")
	flag.StringVar(&outputPath, "output", "feedback.md", "Path to write the Markdown feedback report")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path to also write a PDF report")
	flag.StringVar(&fontPath, "pdf.font", os.Getenv("PDF_FONT"), "Path to a UTF-8 TTF font for PDF output (required for Korean text)")
	flag.StringVar(&feedbackPath, "feedback", "", "Score a pre-supplied feedback text file instead of calling the model")
	flag.StringVar(&title, "title", "사업계획서 AI 피드백", "Report title")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	flag.StringVar(&rubricName, "rubric", "standard-10", "Builtin rubric name (standard-10, standard-20, extended-100)")
	flag.StringVar(&rubricFile, "rubric.file", os.Getenv("RUBRIC_FILE"), "Path to a YAML rubric file (overrides -rubric)")
	flag.IntVar(&maxDocChars, "max.docChars", 60000, "Maximum characters of plan text sent to the model")
	flag.StringVar(&language, "lang", "", "Optional response language hint, e.g. 'ko' or 'en'")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.StringVar(&cacheDir, "cache.dir", ".planfeedback-cache", "Cache directory path (empty disables caching)")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.BoolVar(&cacheStrict, "cache.strictPerms", false, "Restrict cache permissions (0700 dirs, 0600 files)")
	flag.BoolVar(&cacheOnly, "cache.only", false, "Serve feedback from cache only; fail fast when missing")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		InputPath:        inputPath,
		OutputPath:       outputPath,
		OutputPDFPath:    outputPDF,
		FontPath:         fontPath,
		FeedbackPath:     feedbackPath,
		Title:            title,
		LLMBaseURL:       llmBaseURL,
		LLMModel:         llmModel,
		LLMAPIKey:        llmKey,
		RubricName:       rubricName,
		RubricFile:       rubricFile,
		MaxDocChars:      maxDocChars,
		LanguageHint:     language,
		Verbose:          verbose,
		CacheDir:         cacheDir,
		CacheMaxAge:      cacheMaxAge,
		CacheClear:       cacheClear,
		CacheStrictPerms: cacheStrict,
		CacheOnly:        cacheOnly,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config failed")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
		app.ApplyEnvOverrides(&cfg)
	} else {
		app.ApplyEnvToConfig(&cfg)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 for unreadable documents or no model feedback,
		// 1 for everything else.
		if errors.Is(err, app.ErrNoDocumentText) || errors.Is(err, review.ErrEmptyFeedback) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
