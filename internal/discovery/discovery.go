// SPDX-License-Identifier: MPL-2.0

// Package discovery handles locating the runfile to load.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"runner-cli/internal/issue"
)

// RunfileNames lists the file names probed in each directory, in order of
// precedence.
var RunfileNames = []string{"runfile", "Runfile"}

// ErrRunfileNotFound is the sentinel error wrapped by RunfileNotFoundError.
var ErrRunfileNotFound = errors.New("runfile not found")

// Source represents where a runfile was found.
type Source int

const (
	// SourceExplicit indicates the file was given via the --runfile flag.
	SourceExplicit Source = iota
	// SourceCurrentDir indicates the file was found in the start directory.
	SourceCurrentDir
	// SourceAncestorDir indicates the file was found in a parent directory.
	SourceAncestorDir
)

// String returns a human-readable source name
func (s Source) String() string {
	switch s {
	case SourceExplicit:
		return "explicit path"
	case SourceCurrentDir:
		return "current directory"
	case SourceAncestorDir:
		return "ancestor directory"
	default:
		return "unknown"
	}
}

// DiscoveredFile represents a located runfile with its source.
type DiscoveredFile struct {
	// Path is the absolute path to the runfile.
	Path string
	// Source indicates where the file was found.
	Source Source
}

// RunfileNotFoundError is returned when no runfile exists in the start
// directory or any of its ancestors. It wraps ErrRunfileNotFound.
type RunfileNotFoundError struct {
	StartDir string
}

// Error implements the error interface.
func (e *RunfileNotFoundError) Error() string {
	return fmt.Sprintf("no runfile found in %s or any parent directory", e.StartDir)
}

// Unwrap returns ErrRunfileNotFound for errors.Is() compatibility.
func (e *RunfileNotFoundError) Unwrap() error { return ErrRunfileNotFound }

// Find locates the runfile to load.
//
// When explicit is non-empty it must name an existing file; no fallback
// search happens. Otherwise the search starts at startDir and walks parent
// directories up to the filesystem root, probing RunfileNames in each.
func Find(explicit, startDir string) (*DiscoveredFile, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve runfile path: %w", err)
		}
		if !fileExists(abs) {
			return nil, issue.NewErrorContext().
				WithOperation("load runfile").
				WithResource(explicit).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("runfile not found: %s", explicit)).
				BuildError()
		}
		return &DiscoveredFile{Path: abs, Source: SourceExplicit}, nil
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	source := SourceCurrentDir
	for {
		for _, name := range RunfileNames {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return &DiscoveredFile{Path: candidate, Source: source}, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
		source = SourceAncestorDir
	}

	return nil, issue.NewErrorContext().
		WithOperation("find runfile").
		WithResource(startDir).
		WithSuggestion("Create a runfile in your project directory").
		WithSuggestion("Or pass one explicitly with --runfile").
		Wrap(&RunfileNotFoundError{StartDir: startDir}).
		BuildError()
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
