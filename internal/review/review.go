// Package review asks an OpenAI-compatible model for consultant feedback on a
// business plan. The model's reply is free-form prose; the only contract is
// that it is prompted to end with a score summary the scores package can scan.
package review

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/rs/zerolog/log"

	"github.com/cocohazell1/planfeedback/internal/cache"
	"github.com/cocohazell1/planfeedback/internal/rubric"
)

// ChatClient mirrors the subset of the OpenAI client the reviewer needs, so
// tests can substitute a fake and any compatible backend can be adapted.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ErrEmptyFeedback indicates the model produced no usable feedback text.
var ErrEmptyFeedback = errors.New("empty feedback")

const systemMessage = "당신은 매우 경험 많은 사업 컨설턴트이자 투자 심사역입니다. 사업계획서를 검토하고 구체적이고 실행 가능한 피드백을 작성합니다."

// Input bundles everything needed for one review call.
type Input struct {
	PlanText     string
	Rubric       rubric.Rubric
	Model        string
	LanguageHint string
}

// Reviewer performs the model call with a single fixed-backoff retry and an
// optional on-disk response cache for deterministic re-runs.
type Reviewer struct {
	Client ChatClient
	Cache  *cache.ReviewCache
	// SystemPrompt, when non-empty, overrides the default system message.
	SystemPrompt string
	// CacheOnly returns from cache and fails fast when the entry is missing.
	CacheOnly bool
	Verbose   bool
}

// Review returns the model's feedback text for the plan. Transport errors are
// retried once; an empty reply is ErrEmptyFeedback.
func (r *Reviewer) Review(ctx context.Context, in Input) (string, error) {
	if r.Client == nil || strings.TrimSpace(in.Model) == "" {
		return "", errors.New("reviewer not configured")
	}
	system := systemMessage
	if strings.TrimSpace(r.SystemPrompt) != "" {
		system = r.SystemPrompt
	}
	user := buildUserMessage(in)

	if r.Cache != nil {
		key := cache.KeyFrom(in.Model, system+"\n\n"+user)
		if text, ok, _ := r.Cache.Get(ctx, key); ok && strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	if r.CacheOnly {
		return "", ErrEmptyFeedback
	}
	if r.Verbose {
		log.Debug().Str("stage", "review").Str("model", in.Model).
			Int("system_len", len(system)).Int("user_len", len(user)).Msg("review prompt")
	}

	req := openai.ChatCompletionRequest{
		Model: in.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.5,
		N:           1,
	}
	resp, err := r.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		sleep(100)
		resp, err = r.Client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("review call (after retry): %w", err)
		}
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyFeedback
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrEmptyFeedback
	}
	if r.Cache != nil {
		_ = r.Cache.Save(ctx, cache.KeyFrom(in.Model, system+"\n\n"+user), out)
	}
	return out, nil
}

// buildUserMessage renders the evaluation rubric into scoring instructions
// and appends the plan text. The summary block at the end is what makes the
// reply machine-scannable.
func buildUserMessage(in Input) string {
	var sb strings.Builder
	sb.WriteString("다음 사업계획서 내용을 검토하고, 구체적이고 실행 가능한 피드백과 함께 각 항목별 점수를 부여해주세요.\n")
	sb.WriteString("\n[피드백 항목 및 점수 평가 기준]\n")
	for i, c := range in.Rubric.Categories {
		sb.WriteString(fmt.Sprintf("%d. %s (최대 %s점)\n", i+1, c.Name, formatMax(c.Max)))
	}
	sb.WriteString("\n[출력 형식]\n")
	sb.WriteString("- 먼저 각 항목에 대한 상세한 텍스트 피드백 (강점, 약점, 개선 제안)을 작성해주세요.\n")
	sb.WriteString("- 피드백 마지막 부분에 아래와 같은 형식으로 각 항목별 점수를 명확하게 요약해주세요.\n")
	sb.WriteString("\n[점수 요약]\n")
	for _, c := range in.Rubric.Categories {
		sb.WriteString(c.Name)
		sb.WriteString(": 점수/")
		sb.WriteString(formatMax(c.Max))
		sb.WriteString("\n")
	}
	if strings.TrimSpace(in.LanguageHint) != "" {
		sb.WriteString("\n응답 언어: ")
		sb.WriteString(in.LanguageHint)
		sb.WriteString("\n")
	}
	sb.WriteString("\n[사업계획서 내용]\n")
	sb.WriteString(in.PlanText)
	return sb.String()
}

func formatMax(max float64) string {
	return strconv.FormatFloat(max, 'f', -1, 64)
}

// sleepFunc lets tests replace the retry backoff with a no-op.
var sleepFunc func(ms int)

func sleep(ms int) {
	if sleepFunc != nil {
		sleepFunc(ms)
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
