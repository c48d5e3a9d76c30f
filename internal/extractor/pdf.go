package extractor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor reads the document info title and sniffs a version from
// the leading page text.
type PDFExtractor struct {
	TextPrefixLimit int
	DefaultVersion  string
}

func (p *PDFExtractor) Extract(path string) (md Metadata, err error) {
	defer recoverPanic(path, &err)

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	title := strings.TrimSpace(infoTitle(reader))
	if title == "" {
		title = FallbackTitle(path)
	}
	if title == "" {
		return Metadata{}, ErrNoMetadata
	}

	text, err := p.textPrefix(reader)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{
		Title:   title,
		Version: FindVersion(text, p.DefaultVersion),
	}, nil
}

func infoTitle(reader *pdflib.Reader) string {
	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	return info.Key("Title").Text()
}

// textPrefix concatenates page text until at least TextPrefixLimit
// characters have been collected.
func (p *PDFExtractor) textPrefix(reader *pdflib.Reader) (string, error) {
	var buf strings.Builder
	n := 0
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d text: %w", i, err)
		}
		buf.WriteString(text)
		n += utf8.RuneCountInString(text)
		if n >= p.TextPrefixLimit {
			break
		}
	}
	return buf.String(), nil
}
