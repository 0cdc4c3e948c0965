package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/cocohazell1/planfeedback/internal/cache"
	"github.com/cocohazell1/planfeedback/internal/docload"
	"github.com/cocohazell1/planfeedback/internal/render"
	"github.com/cocohazell1/planfeedback/internal/review"
	"github.com/cocohazell1/planfeedback/internal/rubric"
	"github.com/cocohazell1/planfeedback/internal/scores"
	"github.com/cocohazell1/planfeedback/internal/validate"
)

// ErrNoDocumentText is returned when the input document yields no usable
// text, e.g. a scanned PDF without a text layer. Per the exit code policy the
// CLI maps this to a non-zero exit.
var ErrNoDocumentText = errors.New("no usable document text")

type App struct {
	cfg Config
	ai  *openai.Client
}

func New(ctx context.Context, cfg Config) (*App, error) {
	a := &App{cfg: cfg}

	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			_ = cache.ClearDir(cfg.CacheDir)
		}
		if cfg.CacheMaxAge > 0 {
			_, _ = cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge)
		}
	}

	// The model client is only needed when feedback is not pre-supplied.
	if strings.TrimSpace(cfg.FeedbackPath) == "" {
		transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
		if cfg.LLMBaseURL != "" {
			transportCfg.BaseURL = cfg.LLMBaseURL
		}
		a.ai = openai.NewClientWithConfig(transportCfg)

		// Best-effort connectivity preflight; downstream calls surface real
		// failures with their own errors.
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if models, err := a.ai.ListModels(pctx); err != nil {
			log.Warn().Err(err).Msg("LLM model list failed; continuing")
		} else if len(models.Models) == 0 {
			log.Warn().Msg("LLM returned zero models")
		} else {
			log.Info().Int("count", len(models.Models)).Msg("LLM models available")
		}
	}

	return a, nil
}

func (a *App) Close() {
	// nothing yet
}

func (a *App) Run(ctx context.Context) error {
	r, err := a.resolveRubric()
	if err != nil {
		return err
	}

	// 1) Obtain feedback text: either a pre-supplied file or the full
	// document -> model pipeline.
	feedback, usedModel, err := a.obtainFeedback(ctx, r)
	if err != nil {
		return err
	}

	// 2) Extract scores. This step is total and cannot fail.
	set := scores.Extract(feedback, r)

	// 3) Range-check on the presentation side and keep the document with
	// appended warnings rather than failing.
	md := render.Report(a.title(), feedback, set)
	for _, w := range validate.Warnings(set) {
		log.Warn().Str("issue", w).Msg("score validation")
		md += "\n> WARNING: " + w + "\n"
	}

	// 4) Reproducibility footer.
	md = appendReproFooter(md, a.cfg.LLMModel, a.cfg.LLMBaseURL, r.Name, usedModel, a.cfg.CacheDir != "")

	if err := os.WriteFile(a.cfg.OutputPath, []byte(md), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("out", a.cfg.OutputPath).Msg("wrote report")

	if strings.TrimSpace(a.cfg.OutputPDFPath) != "" {
		if err := render.WritePDF(a.title(), feedback, set, a.cfg.FontPath, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote pdf report")
	}
	return nil
}

func (a *App) title() string {
	if strings.TrimSpace(a.cfg.Title) != "" {
		return a.cfg.Title
	}
	return "사업계획서 AI 피드백"
}

func (a *App) resolveRubric() (rubric.Rubric, error) {
	if strings.TrimSpace(a.cfg.RubricFile) != "" {
		return rubric.LoadFile(a.cfg.RubricFile)
	}
	if r, ok := rubric.Builtin(a.cfg.RubricName); ok {
		return r, nil
	}
	return rubric.Rubric{}, fmt.Errorf("unknown rubric %q", a.cfg.RubricName)
}

// obtainFeedback returns the narrative feedback text and whether a model call
// was involved. Document or model failures short-circuit here, before the
// extractor ever runs.
func (a *App) obtainFeedback(ctx context.Context, r rubric.Rubric) (string, bool, error) {
	if p := strings.TrimSpace(a.cfg.FeedbackPath); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return "", false, fmt.Errorf("read feedback file: %w", err)
		}
		return string(b), false, nil
	}

	text, err := docload.FromFile(a.cfg.InputPath)
	if err != nil {
		if errors.Is(err, docload.ErrNoTextLayer) || errors.Is(err, docload.ErrNotText) {
			log.Warn().Err(err).Str("input", a.cfg.InputPath).Msg("document not readable as text")
			return "", false, ErrNoDocumentText
		}
		return "", false, err
	}
	text = truncatePlan(text, a.cfg.MaxDocChars)

	rev := &review.Reviewer{
		Client:    a.ai,
		Cache:     &cache.ReviewCache{Dir: a.cfg.CacheDir, StrictPerms: a.cfg.CacheStrictPerms},
		CacheOnly: a.cfg.CacheOnly,
		Verbose:   a.cfg.Verbose,
	}
	if a.cfg.CacheDir == "" {
		rev.Cache = nil
	}
	feedback, err := rev.Review(ctx, review.Input{
		PlanText:     text,
		Rubric:       r,
		Model:        a.cfg.LLMModel,
		LanguageHint: a.cfg.LanguageHint,
	})
	if err != nil {
		return "", true, fmt.Errorf("review: %w", err)
	}
	return feedback, true, nil
}

// truncatePlan caps the plan text at max bytes, backing off to a rune
// boundary so the prompt never ends mid-character.
func truncatePlan(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && (text[cut]&0xC0) == 0x80 {
		cut--
	}
	return text[:cut]
}
