package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/dgallion1/docindex/internal/config"
	"github.com/dgallion1/docindex/internal/emit"
)

// Run scans cfg.RootDir and, once the scan has finished, writes the
// structured index and the link page.
func Run(cfg config.Config, log *slog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	scanner, err := NewScanner(cfg, log)
	if err != nil {
		return nil, err
	}
	res, err := scanner.Scan()
	if err != nil {
		return nil, err
	}

	if err := emit.WriteIndex(cfg.OutputJSON, res.Index); err != nil {
		return nil, err
	}
	log.Info("documentation structure exported", "path", cfg.OutputJSON)

	page := emit.Page{Title: cfg.PageTitle, Heading: cfg.PageHeading}
	if err := emit.WritePage(cfg.OutputHTML, page, res.Links); err != nil {
		return nil, err
	}
	log.Info("index page generated", "path", cfg.OutputHTML, "entries", len(res.Links))

	return res, nil
}
