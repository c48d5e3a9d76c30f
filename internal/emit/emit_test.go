package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/docindex/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPage_LinkMarkup(t *testing.T) {
	doc := catalog.Document{Title: "Setup Guide", Version: "2.0", Path: "install/setup/index.html"}

	out, err := RenderPage(Page{Title: "Document Index", Heading: "Available Documents"}, []catalog.Link{catalog.NewLink(doc)})
	require.NoError(t, err)

	page := string(out)
	assert.Contains(t, page, `<li><a href="install/setup/index.html" target="_blank">Setup Guide (v2.0)</a></li>`)
	assert.Contains(t, page, "<title>Document Index</title>")
	assert.Contains(t, page, "<h1>Available Documents</h1>")
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>\n"))
}

func TestRenderPage_KeepsOrderAndDuplicates(t *testing.T) {
	links := []catalog.Link{
		{Text: "B (v1.0)", Href: "b/x/b.pdf"},
		{Text: "A (v1.0)", Href: "a/x/a.pdf"},
		{Text: "B (v1.0)", Href: "b/y/b.pdf"},
	}
	out, err := RenderPage(Page{Title: "t", Heading: "h"}, links)
	require.NoError(t, err)

	page := string(out)
	assert.Equal(t, 3, strings.Count(page, "<li>"))
	assert.Less(t, strings.Index(page, "b/x/b.pdf"), strings.Index(page, "a/x/a.pdf"))
	assert.Less(t, strings.Index(page, "a/x/a.pdf"), strings.Index(page, "b/y/b.pdf"))
}

func TestRenderPage_EscapesText(t *testing.T) {
	links := []catalog.Link{{Text: "Q&A <draft> (v1.0)", Href: "faq/q&a/index.html"}}
	out, err := RenderPage(Page{Title: "t", Heading: "h"}, links)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<a href="faq/q&amp;a/index.html" target="_blank">Q&amp;A &lt;draft&gt; (v1.0)</a>`)
}

func TestRenderPage_NoLinks(t *testing.T) {
	out, err := RenderPage(Page{Title: "t", Heading: "h"}, nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<ul>\n</ul>")
}

func TestWriteIndex_IndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")
	idx := catalog.NewIndex()
	idx.Add("Install", "Setup", catalog.Document{
		Title: "Setup Guide", Filename: "index.html", Format: catalog.FormatHTML,
		Version: "2.0", UpdatedOn: "2024-05-01", Path: "install/setup/index.html",
	})

	require.NoError(t, WriteIndex(path, idx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `{
  "sections": {
    "Install": {
      "subsections": {
        "Setup": {
          "documents": [
            {
              "title": "Setup Guide",
              "filename": "index.html",
              "format": "HTML",
              "version": "2.0",
              "updated_on": "2024-05-01",
              "path": "install/setup/index.html"
            }
          ]
        }
      }
    }
  }
}
`
	assert.Equal(t, want, string(data))
}

func TestWriteIndex_ReplacesExistingAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteIndex(path, catalog.NewIndex()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections":{}}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWritePage_UnwritableDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "index.html")
	err := WritePage(path, Page{Title: "t", Heading: "h"}, nil)
	assert.Error(t, err)
}

func TestWriteIndex_NoHTMLEscaping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")
	idx := catalog.NewIndex()
	idx.Add("Q&A", "Tips <New>", catalog.Document{
		Title: "Tips & Tricks", Filename: "index.html", Format: catalog.FormatHTML,
		Version: "1.0", UpdatedOn: "2024-05-01", Path: "q&a/tips-<new>/index.html",
	})

	require.NoError(t, WriteIndex(path, idx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"Q&A": {`)
	assert.Contains(t, out, `"Tips <New>": {`)
	assert.Contains(t, out, `"title": "Tips & Tricks"`)
	assert.Contains(t, out, `"path": "q&a/tips-<new>/index.html"`)
	assert.NotContains(t, out, `\u0026`)
	assert.NotContains(t, out, `\u003c`)
}
