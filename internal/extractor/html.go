package extractor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// HTMLExtractor takes the <title> text and sniffs a version from the
// visible text of the page.
type HTMLExtractor struct {
	DefaultVersion string
}

func (h *HTMLExtractor) Extract(path string) (md Metadata, err error) {
	defer recoverPanic(path, &err)

	src, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read html: %w", err)
	}
	if !utf8.Valid(src) {
		return Metadata{}, ErrInvalidEncoding
	}

	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return Metadata{}, fmt.Errorf("parse html: %w", err)
	}

	title := documentTitle(doc)
	if title == "" {
		title = FallbackTitle(path)
	}
	if title == "" {
		return Metadata{}, ErrNoMetadata
	}

	return Metadata{
		Title:   title,
		Version: FindVersion(visibleText(doc), h.DefaultVersion),
	}, nil
}

// documentTitle returns the trimmed text of the first HTML <title> element.
// Titles inside SVG or MathML content are not the document's title.
func documentTitle(n *html.Node) string {
	if t := firstElement(n, "title"); t != nil {
		return strings.TrimSpace(collectText(t, nil))
	}
	return ""
}

func firstElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Namespace == "" && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// visibleText joins text nodes back to back, outside of script-like
// elements, so inline markup such as <b>2</b>.<b>5</b> reads as "2.5".
func visibleText(n *html.Node) string {
	return collectText(n, func(el *html.Node) bool {
		switch el.Data {
		case "script", "style", "noscript", "template":
			return true
		}
		return false
	})
}

// collectText concatenates the text below n, skipping elements for which
// skip reports true.
func collectText(n *html.Node, skip func(*html.Node) bool) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if skip != nil && skip(n) {
				return
			}
		case html.TextNode:
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}
