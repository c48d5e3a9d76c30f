package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	// Scan input
	RootDir string

	// Outputs
	OutputJSON string
	OutputHTML string

	// Index page
	PageTitle   string
	PageHeading string

	// Extraction
	TextPrefixLimit int
	DefaultVersion  string
}

const (
	defaultRootDir         = "docs"
	defaultOutputJSON      = "docs.json"
	defaultPageTitle       = "Document Index"
	defaultPageHeading     = "Available Documents"
	defaultTextPrefix      = 2000
	defaultDocumentVersion = "1.0"
)

// Default returns the fixed configuration the docindex command runs with.
func Default() Config {
	return ForRoot(defaultRootDir, defaultOutputJSON)
}

// ForRoot returns the default configuration rooted at dir, writing the
// structured index to jsonPath and the link page inside dir.
func ForRoot(dir, jsonPath string) Config {
	return Config{
		RootDir:    dir,
		OutputJSON: jsonPath,
		OutputHTML: filepath.Join(dir, "index.html"),

		PageTitle:   defaultPageTitle,
		PageHeading: defaultPageHeading,

		TextPrefixLimit: defaultTextPrefix,
		DefaultVersion:  defaultDocumentVersion,
	}
}

func (c Config) Validate() error {
	if c.RootDir == "" {
		return fmt.Errorf("root directory is required")
	}
	if c.OutputJSON == "" {
		return fmt.Errorf("structured output path is required")
	}
	if c.OutputHTML == "" {
		return fmt.Errorf("index page output path is required")
	}
	if c.TextPrefixLimit <= 0 {
		return fmt.Errorf("text prefix limit must be positive, got %d", c.TextPrefixLimit)
	}
	if c.DefaultVersion == "" {
		return fmt.Errorf("default version is required")
	}
	return nil
}
