package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Format is the kind of document a record was extracted from.
type Format string

const (
	FormatPDF  Format = "PDF"
	FormatHTML Format = "HTML"
)

// Document is the extracted metadata for a single file in the tree.
type Document struct {
	Title     string `json:"title"`
	Filename  string `json:"filename"`
	Format    Format `json:"format"`
	Version   string `json:"version"`
	UpdatedOn string `json:"updated_on"` // YYYY-MM-DD
	Path      string `json:"path"`       // root-relative, forward slashes
}

// Index is the Section -> Subsection -> Document aggregate. Keys keep
// insertion order when serialized.
type Index struct {
	Sections *orderedmap.OrderedMap[string, *Section] `json:"sections"`
}

// Section owns the subsections found under one top-level directory.
type Section struct {
	Subsections *orderedmap.OrderedMap[string, *Subsection] `json:"subsections"`
}

// Subsection owns documents in scan order.
type Subsection struct {
	Documents []Document `json:"documents"`
}

func NewIndex() *Index {
	return &Index{Sections: orderedmap.New[string, *Section]()}
}

// Section returns the named section, creating it on first use.
func (idx *Index) Section(name string) *Section {
	if s, ok := idx.Sections.Get(name); ok {
		return s
	}
	s := &Section{Subsections: orderedmap.New[string, *Subsection]()}
	idx.Sections.Set(name, s)
	return s
}

// Subsection returns the named subsection, creating it on first use.
func (s *Section) Subsection(name string) *Subsection {
	if sub, ok := s.Subsections.Get(name); ok {
		return sub
	}
	sub := &Subsection{Documents: []Document{}}
	s.Subsections.Set(name, sub)
	return sub
}

// Add appends doc under (section, subsection).
func (idx *Index) Add(section, subsection string, doc Document) {
	sub := idx.Section(section).Subsection(subsection)
	sub.Documents = append(sub.Documents, doc)
}

func (idx *Index) MarshalJSON() ([]byte, error) {
	sections, err := marshalOrdered(idx.Sections)
	if err != nil {
		return nil, err
	}
	return append(append([]byte(`{"sections":`), sections...), '}'), nil
}

func (s *Section) MarshalJSON() ([]byte, error) {
	subsections, err := marshalOrdered(s.Subsections)
	if err != nil {
		return nil, err
	}
	return append(append([]byte(`{"subsections":`), subsections...), '}'), nil
}

// marshalOrdered writes m as a JSON object in insertion order. Keys and
// values are encoded without HTML escaping.
func marshalOrdered[V any](m *orderedmap.OrderedMap[string, V]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m != nil {
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if pair != m.Oldest() {
				buf.WriteByte(',')
			}
			key, err := encodeLiteral(pair.Key)
			if err != nil {
				return nil, err
			}
			value, err := encodeLiteral(pair.Value)
			if err != nil {
				return nil, fmt.Errorf("encode %q: %w", pair.Key, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeLiteral(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Len returns the total number of documents in the index.
func (idx *Index) Len() int {
	n := 0
	for sp := idx.Sections.Oldest(); sp != nil; sp = sp.Next() {
		for pair := sp.Value.Subsections.Oldest(); pair != nil; pair = pair.Next() {
			n += len(pair.Value.Documents)
		}
	}
	return n
}

// Link is the rendered anchor for a document on the index page.
type Link struct {
	Text string
	Href string
}

func NewLink(doc Document) Link {
	return Link{
		Text: fmt.Sprintf("%s (v%s)", doc.Title, doc.Version),
		Href: doc.Path,
	}
}
