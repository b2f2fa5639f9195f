// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// DefaultMaxFileSize bounds the size of user-supplied CUE files.
const DefaultMaxFileSize int64 = 1 << 20 // 1 MiB

// FormatError formats a CUE error with JSON path prefixes for clear error messages.
//
// Error format: <file-path>: <json-path>: <message>
//
// Examples:
//   - config.cue: ui.verbose: expected bool, got string
//   - config.cue: default_runtime: invalid value
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrors := errors.Errors(err)
	if len(cueErrors) == 0 {
		// Fallback: not a CUE error, return as-is
		return fmt.Errorf("%s: %w", filePath, err)
	}

	var lines []string
	for _, e := range cueErrors {
		path := errors.Path(e)
		pathStr := formatPath(path)
		msg := e.Error()

		// CUE sometimes includes the path in the message itself
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimPrefix(msg, pathStr)
			msg = strings.TrimPrefix(msg, ":")
			msg = strings.TrimSpace(msg)
		}

		if pathStr != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", pathStr, msg))
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// formatPath converts a CUE error path to JSON-path notation. CUE provides
// error paths as flat string slices (e.g., ["ui", "0", "verbose"]) where
// numeric elements represent array indices; users expect "ui[0].verbose".
func formatPath(path []string) string {
	if len(path) == 0 {
		return ""
	}

	var result strings.Builder
	for i, part := range path {
		isIndex := true
		for _, c := range part {
			if c < '0' || c > '9' {
				isIndex = false
				break
			}
		}

		if isIndex && i > 0 {
			result.WriteString("[")
			result.WriteString(part)
			result.WriteString("]")
		} else {
			if i > 0 {
				result.WriteString(".")
			}
			result.WriteString(part)
		}
	}

	return result.String()
}

// CheckFileSize verifies that data does not exceed the specified maximum size.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), maxSize)
	}
	return nil
}
