package app

import (
	"fmt"
	"strings"
)

// appendReproFooter appends a minimal, deterministic footer recording the
// configuration useful for reproducing and auditing a report: model, base
// URL, rubric variant, whether the model was actually called, and whether the
// response cache was active.
func appendReproFooter(markdown string, model string, baseURL string, rubricName string, usedModel bool, cacheActive bool) string {
	var b strings.Builder
	b.WriteString(markdown)
	b.WriteString("\n\n---\n")
	b.WriteString("Reproducibility: ")
	b.WriteString("model=")
	b.WriteString(strings.TrimSpace(model))
	b.WriteString("; llm_base_url=")
	b.WriteString(strings.TrimSpace(baseURL))
	b.WriteString("; rubric=")
	b.WriteString(strings.TrimSpace(rubricName))
	b.WriteString("; model_called=")
	b.WriteString(fmt.Sprintf("%t", usedModel))
	b.WriteString("; cache=")
	b.WriteString(fmt.Sprintf("%t", cacheActive))
	b.WriteString("\n")
	return b.String()
}
