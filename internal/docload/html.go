package docload

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// HTMLProvider handles business plans exported as HTML. It walks the body,
// skips script/style and obvious page chrome, and emits block elements on
// their own lines so the extractor still sees a line-oriented document.
type HTMLProvider struct{}

func (HTMLProvider) Extract(data []byte) (string, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil || root == nil {
		return "", ErrNotText
	}
	body := firstElement(root, "body")
	if body == nil {
		body = root
	}
	var b strings.Builder
	walkText(&b, body)
	out := normalizeLines(b.String())
	if out == "" {
		return "", ErrNoTextLayer
	}
	return out, nil
}

func firstElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func walkText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "aside", "iframe":
			return
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr", "br", "hr", "div":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(strings.ReplaceAll(n.Data, "\t", " "))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr", "div":
			b.WriteString("\n")
		}
	}
}

// normalizeLines trims every line, collapses internal whitespace runs, and
// keeps at most one consecutive blank line.
func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		t := strings.Join(strings.Fields(line), " ")
		if t == "" {
			if len(out) == 0 || out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, t)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
