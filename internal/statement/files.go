package statement

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindStatements lists candidate statement PDFs in dir, ordered by name.
// An empty directory yields an empty list, not an error.
func FindStatements(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read statements directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
