// Package classify decides which files in the documentation tree are
// indexed and where in the section/subsection taxonomy they belong.
package classify

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/docindex/internal/catalog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNotDeepEnough is returned for files fewer than two directories below the root.
var ErrNotDeepEnough = errors.New("not deep enough")

// MinSegments is the minimum number of root-relative path segments,
// file name included, a document needs to be classified.
const MinSegments = 3

// Placement is where a document lands in the index.
type Placement struct {
	Section    string
	Subsection string
}

// Format reports the document format for a file name, and whether the file
// qualifies at all: any ".pdf", or an HTML file named exactly "index.html".
func Format(filename string) (catalog.Format, bool) {
	base := filepath.Base(filename)
	if strings.EqualFold(filepath.Ext(base), ".pdf") {
		return catalog.FormatPDF, true
	}
	if strings.EqualFold(base, "index.html") {
		return catalog.FormatHTML, true
	}
	return "", false
}

// Classify derives the placement from a root-relative path. Segments past
// the second directory do not affect placement.
func Classify(relPath string) (Placement, error) {
	parts := Segments(relPath)
	if len(parts) < MinSegments {
		return Placement{}, ErrNotDeepEnough
	}
	return Placement{
		Section:    SectionName(parts[0]),
		Subsection: SubsectionName(parts[1]),
	}, nil
}

// Segments splits a relative path on either separator style.
func Segments(relPath string) []string {
	return strings.Split(NormalizePath(relPath), "/")
}

// NormalizePath returns relPath with forward slashes.
func NormalizePath(relPath string) string {
	return strings.ReplaceAll(filepath.ToSlash(relPath), `\`, "/")
}

// SectionName upper-cases the first letter and leaves the rest unchanged.
func SectionName(dir string) string {
	r, size := utf8.DecodeRuneInString(dir)
	if r == utf8.RuneError {
		return dir
	}
	return string(unicode.ToUpper(r)) + dir[size:]
}

// SubsectionName turns "getting-started" or "api_reference" into
// "Getting Started" / "Api Reference".
func SubsectionName(dir string) string {
	return TitleCase(strings.NewReplacer("-", " ", "_", " ").Replace(dir))
}

// TitleCase capitalizes each word and lower-cases the remainder.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
