package extractor

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dgallion1/docindex/internal/catalog"
	"github.com/dgallion1/docindex/internal/classify"
)

var (
	// ErrNoMetadata means the file was read but yielded no usable title.
	ErrNoMetadata = errors.New("no usable metadata")
	// ErrInvalidEncoding means the file is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("invalid utf-8")
)

// Metadata is the best-effort title and version recovered from a document.
type Metadata struct {
	Title   string
	Version string
}

// Extractor recovers Metadata from a document on disk.
type Extractor interface {
	Extract(path string) (Metadata, error)
}

// Options tune both extractor variants.
type Options struct {
	// TextPrefixLimit is how many characters of PDF text to collect
	// before searching for a version.
	TextPrefixLimit int
	// DefaultVersion is used when no version pattern matches.
	DefaultVersion string
}

// ForFormat returns the extractor for a document format.
func ForFormat(format catalog.Format, opts Options) (Extractor, error) {
	switch format {
	case catalog.FormatPDF:
		return &PDFExtractor{TextPrefixLimit: opts.TextPrefixLimit, DefaultVersion: opts.DefaultVersion}, nil
	case catalog.FormatHTML:
		return &HTMLExtractor{DefaultVersion: opts.DefaultVersion}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
}

var versionPattern = regexp.MustCompile(`(?i)\b(?:version|v)?\s*(\d+\.\d+)`)

// FindVersion returns the first "digits.digits" in text, optionally preceded
// by "v" or "version", or fallback when nothing matches. Dates and page
// references can match too.
func FindVersion(text, fallback string) string {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return fallback
	}
	return m[1]
}

// FallbackTitle derives a title from the file name: "user_guide.pdf"
// becomes "User Guide".
func FallbackTitle(path string) string {
	base := filepath.Base(path)
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}
	return classify.TitleCase(strings.ReplaceAll(base, "_", " "))
}

// recoverPanic turns a panic from a document library into err.
func recoverPanic(path string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("read %s: panic: %v", path, r)
	}
}
