package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/grindlemire/go-grid/pkg/gridfile"
)

// isLayoutFile reports whether path has a layout file extension.
func isLayoutFile(path string) bool {
	_, err := gridfile.FormatFromPath(path)
	return err == nil
}

// collectLayoutFiles finds all layout files from the given paths.
// Supports:
//   - Direct file paths: "four.toml"
//   - Directory paths: "./layouts"
//   - Recursive pattern: "./..."
func collectLayoutFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") || path == "..." {
			root := strings.TrimSuffix(strings.TrimSuffix(path, "..."), "/")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isLayoutFile(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && isLayoutFile(entry.Name()) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else {
			// Named files are passed through so Load reports a bad extension.
			files = append(files, path)
		}
	}

	return files, nil
}
