package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Discover lists candidate documents in dir, sorted by name. Directories are
// skipped. Symlinks are followed; a dangling link is still returned so the
// open failure gets reported. When extensions is non-empty only matching
// names (case-insensitive) are kept.
func Discover(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory %s: %w", dir, err)
	}

	wanted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(ext)] = struct{}{}
	}

	var docs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !isDocument(path, entry) {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
				continue
			}
		}
		docs = append(docs, path)
	}
	return docs, nil
}

func isDocument(path string, entry os.DirEntry) bool {
	mode := entry.Type()
	switch {
	case mode.IsRegular():
		return true
	case mode&os.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			return true
		}
		return info.Mode().IsRegular()
	default:
		return false
	}
}
