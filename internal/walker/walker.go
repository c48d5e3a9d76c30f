package walker

import (
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
)

// Entry is a regular file found under the scan root.
type Entry struct {
	Path    string // absolute or root-joined path, usable with os.Open
	RelPath string // relative to the root, OS separators
}

// Walk lazily yields every regular file below root in lexical order.
// An unreadable root is yielded once as an error and ends the sequence.
// Unreadable subdirectories are logged and skipped.
func Walk(root string, log *slog.Logger) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return fmt.Errorf("walk %s: %w", root, err)
				}
				log.Warn("unreadable path, skipping", "path", path, "error", err)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !isRegular(path, d) {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return fmt.Errorf("relative path for %s: %w", path, err)
			}
			if !yield(Entry{Path: path, RelPath: rel}, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield(Entry{}, err)
		}
	}
}

// isRegular reports whether d is a regular file, following file symlinks.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		return err == nil && info.Mode().IsRegular()
	}
	return d.Type().IsRegular()
}
