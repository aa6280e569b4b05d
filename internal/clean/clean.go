// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clean empties publish directories while keeping marker files.
package clean

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Summary counts what a cleaning run removed.
type Summary struct {
	Files int
	Dirs  int
	Kept  int
}

// Dir removes every file directly under dir whose name does not end in
// keepSuffix, then removes every subdirectory with all of its contents.
// Marker files inside subdirectories go with their directory. A missing
// dir is not an error.
func Dir(dir, keepSuffix string) (Summary, error) {
	var s Summary

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading %s: %w", dir, err)
	}

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			subdirs = append(subdirs, path)
			continue
		}
		if keepSuffix != "" && strings.HasSuffix(entry.Name(), keepSuffix) {
			s.Kept++
			continue
		}
		if err := os.Remove(path); err != nil {
			return s, fmt.Errorf("removing %s: %w", path, err)
		}
		s.Files++
	}

	for _, path := range subdirs {
		if err := os.RemoveAll(path); err != nil {
			return s, fmt.Errorf("removing %s: %w", path, err)
		}
		s.Dirs++
	}

	return s, nil
}
