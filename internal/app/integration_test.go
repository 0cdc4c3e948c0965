package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newFakeLLM serves an OpenAI-compatible API returning the given feedback for
// any chat completion request.
func newFakeLLM(t *testing.T, feedback string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": "test-model", "object": "model"}},
		})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "fake",
			"object": "chat.completion",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": feedback},
			}},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_EndToEndWithModel(t *testing.T) {
	feedback := `피드백 본문입니다.

[점수 요약]
명확성 및 논리성: 6/10
시장 분석: 9/10
사업 모델: 7/10
실행 계획: 7/10
재무 계획: 3/10
차별점 및 강점: 8/10
위험 요인 관리: 6/10`
	srv := newFakeLLM(t, feedback)

	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.md")
	if err := os.WriteFile(planPath, []byte("# 사업 개요\n\n시장과 제품 설명"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "report.md")

	cfg := Config{
		InputPath:   planPath,
		OutputPath:  out,
		LLMBaseURL:  srv.URL + "/v1",
		LLMModel:    "test-model",
		LLMAPIKey:   "test-key",
		RubricName:  "standard-10",
		MaxDocChars: 60000,
		CacheDir:    filepath.Join(dir, "cache"),
	}
	a, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Close()
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	md := string(b)
	for _, want := range []string{
		"피드백 본문입니다.",
		"| 시장 분석 | 9/10 |",
		"| 재무 계획 | 3/10 |",
		"model_called=true",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("report missing %q:\n%s", want, md)
		}
	}

	// The response must have been cached for deterministic re-runs.
	entries, err := os.ReadDir(cfg.CacheDir)
	if err != nil || len(entries) == 0 {
		t.Fatalf("expected cache entries, err=%v", err)
	}
}
