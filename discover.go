// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// DefaultDirectory is the discovery directory used when caller does not provide one.
const DefaultDirectory = "docs"

// SchemaFile is one discovered schema candidate.
type SchemaFile struct {
	Path string
	Size int64
}

// Discover finds all *.json files under dir recursively in sorted order.
// Missing directory yields an empty list and an ErrNotFound diagnostic.
func Discover(dir string) ([]SchemaFile, error) {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDirectory
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("directory %q %w", dir, ErrNotFound)
		}

		return nil, fmt.Errorf("%w %q: %w", ErrWalkDirectory, dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("directory %q %w", dir, ErrNotFound)
	}

	out := make([]SchemaFile, 0, 16)
	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			return nil
		}

		matched, err := filepath.Match("*.json", entry.Name())
		if err != nil || !matched {
			return err
		}

		fileInfo, err := entry.Info()
		if err != nil {
			return err
		}

		out = append(out, SchemaFile{Path: path, Size: fileInfo.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrWalkDirectory, dir, err)
	}

	slices.SortFunc(out, func(a, b SchemaFile) int {
		return comparePaths(a.Path, b.Path)
	})

	return out, nil
}

// SelectSchema picks one schema by 1-based numeric choice.
func SelectSchema(files []SchemaFile, choice string) (SchemaFile, error) {
	choice = strings.TrimSpace(choice)
	number, err := strconv.Atoi(choice)
	if err != nil {
		return SchemaFile{}, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, choice)
	}

	if number < 1 || number > len(files) {
		return SchemaFile{}, fmt.Errorf("%w: please select 1-%d", ErrInvalidSelection, len(files))
	}

	return files[number-1], nil
}

// IsNumericChoice reports whether argument consists of decimal digits only.
func IsNumericChoice(value string) bool {
	if value == "" {
		return false
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// FormatSize renders byte count as B, KB or MB.
func FormatSize(size int64) string {
	switch {
	case size < 1024:
		return strconv.FormatInt(size, 10) + " B"
	case size < 1024*1024:
		return strconv.FormatFloat(float64(size)/1024, 'f', 1, 64) + " KB"
	default:
		return strconv.FormatFloat(float64(size)/(1024*1024), 'f', 1, 64) + " MB"
	}
}

// DisplayPath shows absolute paths relative to cwd when path is below it.
func DisplayPath(path, cwd string) string {
	if !filepath.IsAbs(path) || strings.TrimSpace(cwd) == "" {
		return path
	}

	rel, err := filepath.Rel(cwd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}

	return rel
}

// comparePaths orders paths component by component.
func comparePaths(a, b string) int {
	return slices.Compare(
		strings.Split(filepath.ToSlash(a), "/"),
		strings.Split(filepath.ToSlash(b), "/"),
	)
}
