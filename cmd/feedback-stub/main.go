// feedback-stub is a tiny OpenAI-compatible server that returns canned
// consultant feedback with a score summary block. It lets the full pipeline
// run offline, e.g. in integration checks or demos.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

const cannedFeedback = `전반적으로 시장 이해도가 높고 실행 의지가 분명한 계획서입니다.

1. 명확성 및 논리성: 핵심 메시지가 잘 전달되나 일부 장에서 논리 비약이 있습니다.
2. 시장 분석: 타겟 시장 정의가 구체적이고 경쟁 분석이 충실합니다.
3. 재무 계획: 매출 추정 근거가 부족합니다. 손익분기점 분석을 보강하세요.

[점수 요약]
명확성 및 논리성: 7/10
시장 분석: 8/10
사업 모델: 7/10
실행 계획: 6/10
재무 계획: 4/10 (자금 조달 계획 보강 필요)
차별점 및 강점: 8/10
위험 요인 관리: 5/10`

func main() {
	model := os.Getenv("MODEL_ID")
	if strings.TrimSpace(model) == "" {
		model = "test-model"
	}
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8081"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": model, "object": "model"}},
		})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "stub",
			"object": "chat.completion",
			"model":  req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": cannedFeedback,
				},
			}},
		})
	})

	log.Printf("feedback-stub listening on %s (model %s)", addr, model)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
