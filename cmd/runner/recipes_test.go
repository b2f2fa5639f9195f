// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"reflect"
	"testing"

	"runner-cli/internal/discovery"
	"runner-cli/pkg/runfile"
	"runner-cli/pkg/types"
)

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want types.ExitCode
	}{
		{
			"parse error",
			&runfile.ParseError{Path: "runfile", Line: 3, Msg: "missing colon"},
			types.ExitParseError,
		},
		{
			"duplicate recipe",
			&runfile.DuplicateRecipeError{Name: "build", FirstLine: 1, Line: 4},
			types.ExitDuplicateRecipe,
		},
		{
			"unknown recipe",
			&runfile.UnknownRecipeError{Name: "deploy"},
			types.ExitUnknownRecipe,
		},
		{
			"missing argument",
			&runfile.MissingArgumentError{Recipe: "build", Param: "target"},
			types.ExitMissingArgument,
		},
		{
			"extra argument",
			&runfile.ExtraArgumentError{Recipe: "test", Capacity: 1, Extra: []string{"x"}},
			types.ExitExtraArgument,
		},
		{
			"unresolved placeholder is internal",
			&runfile.UnresolvedPlaceholderError{Recipe: "r", Placeholder: "ghost"},
			types.ExitInternal,
		},
		{
			"runfile not found",
			&discovery.RunfileNotFoundError{StartDir: "."},
			types.ExitFailure,
		},
		{
			"unclassified error",
			errors.New("boom"),
			types.ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeForError(tt.err); got != tt.want {
				t.Errorf("exitCodeForError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCodesAreDistinctPerFailureClass(t *testing.T) {
	t.Parallel()

	errs := []error{
		&runfile.ParseError{},
		&runfile.DuplicateRecipeError{},
		&runfile.UnknownRecipeError{},
		&runfile.MissingArgumentError{},
		&runfile.ExtraArgumentError{},
	}

	seen := make(map[types.ExitCode]bool)
	for _, err := range errs {
		code := exitCodeForError(err)
		if seen[code] {
			t.Errorf("exit code %d assigned to more than one failure class", code)
		}
		seen[code] = true
		if code == types.ExitSuccess {
			t.Error("a failure class maps to the success exit code")
		}
	}
}

func TestWrapLoadError(t *testing.T) {
	t.Parallel()

	if wrapLoadError(nil) != nil {
		t.Error("wrapLoadError(nil) should return nil")
	}

	err := wrapLoadError(&runfile.UnknownRecipeError{Name: "x"})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("wrapLoadError() = %T, want *ExitError", err)
	}
	if exitErr.Code != types.ExitUnknownRecipe {
		t.Errorf("Code = %d, want %d", exitErr.Code, types.ExitUnknownRecipe)
	}
	if !errors.Is(err, runfile.ErrUnknownRecipe) {
		t.Error("wrapped error chain must preserve the original sentinel")
	}
}

func TestStripTerminator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"leading terminator dropped", []string{"--", "--release"}, []string{"--release"}},
		{"no terminator", []string{"a", "b"}, []string{"a", "b"}},
		{"interior terminator kept", []string{"a", "--", "b"}, []string{"a", "--", "b"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := stripTerminator(tt.args); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("stripTerminator(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	plain := &ExitError{Code: 2}
	if plain.Error() != "exit status 2" {
		t.Errorf("Error() = %q", plain.Error())
	}

	cause := errors.New("underlying")
	wrapped := &ExitError{Code: 70, Err: cause}
	if wrapped.Error() != "underlying" {
		t.Errorf("Error() = %q, want cause message", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}
