// Package emit writes the structured index and the link page. Both files
// are replaced atomically so an interrupted run never leaves partial output.
package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgallion1/docindex/internal/catalog"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteIndex serializes idx as 2-space indented JSON. "&", "<" and ">"
// are written literally.
func WriteIndex(path string, idx *catalog.Index) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(idx); err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// Page holds the fixed strings of the link page.
type Page struct {
	Title   string
	Heading string
}

// WritePage writes a static page listing links in the given order.
func WritePage(path string, page Page, links []catalog.Link) error {
	data, err := RenderPage(page, links)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

// RenderPage returns the page markup.
func RenderPage(page Page, links []catalog.Link) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(page.Title))
	buf.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&buf, "<h1>%s</h1>\n<ul>\n", html.EscapeString(page.Heading))
	for _, l := range links {
		if err := html.Render(&buf, linkItem(l)); err != nil {
			return nil, fmt.Errorf("render link %s: %w", l.Href, err)
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("</ul>\n</body>\n</html>\n")
	return buf.Bytes(), nil
}

// linkItem builds <li><a href=".." target="_blank">text</a></li>.
func linkItem(l catalog.Link) *html.Node {
	a := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr: []html.Attribute{
			{Key: "href", Val: l.Href},
			{Key: "target", Val: "_blank"},
		},
	}
	a.AppendChild(&html.Node{Type: html.TextNode, Data: l.Text})

	li := &html.Node{Type: html.ElementNode, Data: "li", DataAtom: atom.Li}
	li.AppendChild(a)
	return li
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
