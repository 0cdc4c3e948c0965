package docload

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFProvider extracts the embedded text layer of a PDF, page by page in
// document order. Scanned PDFs parse fine but yield no text; those surface as
// ErrNoTextLayer so the caller can warn the user instead of sending an empty
// plan to the model.
type PDFProvider struct{}

func (PDFProvider) Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single damaged page should not sink the document.
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrNoTextLayer
	}
	return out, nil
}
