// Package docload turns an uploaded business plan into plain text. It is the
// document-text provider collaborator of the pipeline: the extractor core
// only ever sees the string this package produces, and unreadable documents
// fail here, before any model call happens.
package docload

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNoTextLayer is returned for documents that are structurally valid but
// contain no extractable text, typically a scanned PDF without an embedded
// text layer.
var ErrNoTextLayer = errors.New("document has no extractable text layer")

// ErrNotText is returned when the payload is not machine-readable text at all.
var ErrNotText = errors.New("document is not machine-readable text")

// Provider converts one binary document payload into plain text.
// Implementations are deterministic and side-effect free.
type Provider interface {
	Extract(data []byte) (string, error)
}

// Detect picks a Provider by sniffing the payload. PDF by magic bytes, HTML
// by an early tag, otherwise plain text.
func Detect(data []byte) Provider {
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return PDFProvider{}
	}
	head := strings.ToLower(string(data[:min(len(data), 512)]))
	if strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html") {
		return HTMLProvider{}
	}
	return PlainTextProvider{}
}

// FromFile reads a document from disk and extracts its text with the detected
// provider.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return Detect(data).Extract(data)
}

// PlainTextProvider passes through text and Markdown documents unchanged. It
// rejects payloads with NUL bytes or invalid UTF-8, which indicate a binary
// format we cannot read.
type PlainTextProvider struct{}

func (PlainTextProvider) Extract(data []byte) (string, error) {
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return "", ErrNotText
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", ErrNoTextLayer
	}
	return text, nil
}
