package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/docindex/internal/catalog"
	"github.com/dgallion1/docindex/internal/classify"
	"github.com/dgallion1/docindex/internal/config"
	"github.com/dgallion1/docindex/internal/extractor"
	"github.com/dgallion1/docindex/internal/walker"
)

// Stats counts what happened to the files seen during one scan.
type Stats struct {
	Seen    int // files that passed the format filter
	Indexed int
	Skipped int // not deep enough
	Failed  int
}

// Result is the aggregate produced by a scan.
type Result struct {
	Index *catalog.Index
	Links []catalog.Link
	Stats Stats
}

// Scanner runs Walker -> Classifier -> Extractor -> Aggregator over one root.
type Scanner struct {
	cfg        config.Config
	log        *slog.Logger
	extractors map[catalog.Format]extractor.Extractor
}

func NewScanner(cfg config.Config, log *slog.Logger) (*Scanner, error) {
	opts := extractor.Options{
		TextPrefixLimit: cfg.TextPrefixLimit,
		DefaultVersion:  cfg.DefaultVersion,
	}
	s := &Scanner{
		cfg:        cfg,
		log:        log,
		extractors: make(map[catalog.Format]extractor.Extractor),
	}
	for _, format := range []catalog.Format{catalog.FormatPDF, catalog.FormatHTML} {
		e, err := extractor.ForFormat(format, opts)
		if err != nil {
			return nil, err
		}
		s.extractors[format] = e
	}
	return s, nil
}

// Scan builds the index in a single pass. Per-file failures are logged and
// the file is left out; only an unreadable root is returned as an error.
func (s *Scanner) Scan() (*Result, error) {
	res := &Result{Index: catalog.NewIndex()}

	s.log.Info("scanning folders", "root", s.cfg.RootDir)
	for entry, err := range walker.Walk(s.cfg.RootDir, s.log) {
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		format, ok := classify.Format(entry.RelPath)
		if !ok {
			continue
		}
		res.Stats.Seen++

		relPath := classify.NormalizePath(entry.RelPath)
		placement, err := classify.Classify(relPath)
		if errors.Is(err, classify.ErrNotDeepEnough) {
			s.log.Warn("skipped, not deep enough", "path", relPath)
			res.Stats.Skipped++
			continue
		}

		log := s.log.With("path", relPath)
		log.Info("processing")

		doc, err := s.document(entry, relPath, format)
		if err != nil {
			log.Error("skipped or failed", "file", filepath.Base(entry.Path), "error", err)
			res.Stats.Failed++
			continue
		}
		log.Info("indexed", "title", doc.Title, "version", doc.Version, "format", doc.Format)

		res.Index.Add(placement.Section, placement.Subsection, doc)
		res.Links = append(res.Links, catalog.NewLink(doc))
		res.Stats.Indexed++
	}
	return res, nil
}

func (s *Scanner) document(entry walker.Entry, relPath string, format catalog.Format) (catalog.Document, error) {
	info, err := os.Stat(entry.Path)
	if err != nil {
		return catalog.Document{}, fmt.Errorf("stat: %w", err)
	}

	md, err := s.extractors[format].Extract(entry.Path)
	if err != nil {
		return catalog.Document{}, err
	}

	return catalog.Document{
		Title:     md.Title,
		Filename:  filepath.Base(entry.Path),
		Format:    format,
		Version:   md.Version,
		UpdatedOn: info.ModTime().Format("2006-01-02"),
		Path:      relPath,
	}, nil
}
