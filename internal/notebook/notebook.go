// Package notebook enumerates the notebooks a validation run covers.
// Collection itself is the validation tool's job; this listing exists so
// CI logs show what the gate is actually protecting.
package notebook

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// checkpointDir is Jupyter's autosave directory; its copies must never be
// validated.
const checkpointDir = ".ipynb_checkpoints"

// Discover returns the notebook files under dir, sorted by path.
func Discover(dir string) ([]string, error) {
	var notebooks []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == checkpointDir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".ipynb") {
			notebooks = append(notebooks, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan notebook directory '%s': %w", dir, err)
	}

	sort.Strings(notebooks)
	return notebooks, nil
}
