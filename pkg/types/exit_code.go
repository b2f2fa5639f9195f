// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting value types shared by the CLI and the
// execution runtimes. It is a leaf package: it imports only the standard
// library and never imports domain packages.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

// Reserved dispatcher exit codes. Child exit statuses pass through verbatim
// on the success path, so the reserved block sits above the range build
// tools commonly use and below the 128+signal range.
const (
	// ExitSuccess means every command line ran and exited zero.
	ExitSuccess ExitCode = 0
	// ExitFailure is the generic code for unclassified failures.
	ExitFailure ExitCode = 1
	// ExitInternal signals a broken internal invariant, such as a
	// placeholder left unresolved after a successful bind.
	ExitInternal ExitCode = 70
	// ExitParseError signals malformed runfile syntax.
	ExitParseError ExitCode = 102
	// ExitDuplicateRecipe signals two recipes sharing one name.
	ExitDuplicateRecipe ExitCode = 103
	// ExitUnknownRecipe signals a lookup of a recipe that is not defined.
	ExitUnknownRecipe ExitCode = 104
	// ExitMissingArgument signals a required parameter left unfilled.
	ExitMissingArgument ExitCode = 105
	// ExitExtraArgument signals surplus arguments for a recipe without a
	// variadic parameter.
	ExitExtraArgument ExitCode = 106
)

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// FromSignal returns the conventional exit code for a process terminated by
// the given signal number (128 + signum).
func FromSignal(sig int) ExitCode { return ExitCode(128 + sig) }

// Validate returns an error if the ExitCode is outside the valid range (0-255).
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
