// SPDX-License-Identifier: MPL-2.0

package runtime

import "runner-cli/pkg/types"

// Result contains the result of a recipe execution.
type Result struct {
	// ExitCode is the exit status of the recipe: the status of the first
	// failing command line, or 0 when every line succeeded.
	ExitCode types.ExitCode
	// FailedLine is the zero-based index of the command line that failed,
	// or -1 when every line succeeded.
	FailedLine int
	// Error contains any infrastructure error (shell missing, spawn failure);
	// it is nil for normal non-zero exits.
	Error error
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code types.ExitCode, err error) *Result {
	return &Result{ExitCode: code, FailedLine: -1, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{FailedLine: -1}
}

// Success reports whether the recipe ran to completion with status 0.
func (r *Result) Success() bool {
	return r.ExitCode.IsSuccess() && r.Error == nil
}
