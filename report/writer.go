package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the artifact set for the given format under dir. FormatBoth
// writes the sql and python sets into sql/ and python/ subdirectories.
// Directories are created as needed.
func (r *Reporter) Save(dir string, format Format) ([]string, error) {
	if format == FormatBoth {
		sqlPaths, err := r.saveSet(filepath.Join(dir, "sql"), FormatSQL)
		if err != nil {
			return nil, err
		}

		pyPaths, err := r.saveSet(filepath.Join(dir, "python"), FormatPython)
		if err != nil {
			return nil, err
		}

		return append(sqlPaths, pyPaths...), nil
	}

	return r.saveSet(dir, format)
}

func (r *Reporter) saveSet(dir string, format Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	artifacts := r.Artifacts(format)
	paths := make([]string, 0, len(artifacts))

	for _, artifact := range artifacts {
		path := filepath.Join(dir, artifact.Name)
		if err := os.WriteFile(path, []byte(artifact.Content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}

		paths = append(paths, path)
	}

	return paths, nil
}
