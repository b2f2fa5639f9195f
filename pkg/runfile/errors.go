// SPDX-License-Identifier: MPL-2.0

package runfile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse is the sentinel error wrapped by ParseError.
	ErrParse = errors.New("runfile parse error")
	// ErrDuplicateRecipe is the sentinel error wrapped by DuplicateRecipeError.
	ErrDuplicateRecipe = errors.New("duplicate recipe")
	// ErrUnknownRecipe is the sentinel error wrapped by UnknownRecipeError.
	ErrUnknownRecipe = errors.New("unknown recipe")
	// ErrMissingArgument is the sentinel error wrapped by MissingArgumentError.
	ErrMissingArgument = errors.New("missing argument")
	// ErrExtraArgument is the sentinel error wrapped by ExtraArgumentError.
	ErrExtraArgument = errors.New("extra argument")
	// ErrUnresolvedPlaceholder is the sentinel error wrapped by UnresolvedPlaceholderError.
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")
)

type (
	// ParseError reports malformed runfile syntax with its source location.
	ParseError struct {
		// Path is the source path ("" for in-memory sources).
		Path string
		// Line is the 1-based line number the error was detected on.
		Line int
		// Msg describes what is wrong with the line.
		Msg string
	}

	// DuplicateRecipeError is returned by Load when two recipes share a name.
	DuplicateRecipeError struct {
		Name      string
		FirstLine int
		Line      int
	}

	// UnknownRecipeError is returned by Lookup for a recipe that is not defined.
	UnknownRecipeError struct {
		Name  string
		Known []string
	}

	// MissingArgumentError is returned by Bind when a required parameter
	// cannot be filled from the supplied tokens.
	MissingArgumentError struct {
		Recipe string
		Param  string
	}

	// ExtraArgumentError is returned by Bind when tokens remain after every
	// parameter is filled and the recipe has no variadic parameter.
	ExtraArgumentError struct {
		Recipe   string
		Capacity int
		Extra    []string
	}

	// UnresolvedPlaceholderError is returned by Render when a body
	// placeholder has no bound value after a successful bind. Load validates
	// that every placeholder references a declared parameter, so this is an
	// internal invariant violation, not a user-facing condition.
	UnresolvedPlaceholderError struct {
		Recipe      string
		Placeholder string
		Template    string
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// Unwrap returns ErrParse so callers can use errors.Is for programmatic detection.
func (e *ParseError) Unwrap() error { return ErrParse }

// Error implements the error interface.
func (e *DuplicateRecipeError) Error() string {
	return fmt.Sprintf("recipe %q defined twice (lines %d and %d)", e.Name, e.FirstLine, e.Line)
}

// Unwrap returns ErrDuplicateRecipe for errors.Is() compatibility.
func (e *DuplicateRecipeError) Unwrap() error { return ErrDuplicateRecipe }

// Error implements the error interface.
func (e *UnknownRecipeError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown recipe %q (the runfile defines no recipes)", e.Name)
	}
	return fmt.Sprintf("unknown recipe %q (available: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Unwrap returns ErrUnknownRecipe for errors.Is() compatibility.
func (e *UnknownRecipeError) Unwrap() error { return ErrUnknownRecipe }

// Error implements the error interface.
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("recipe %q: missing argument for required parameter %q", e.Recipe, e.Param)
}

// Unwrap returns ErrMissingArgument for errors.Is() compatibility.
func (e *MissingArgumentError) Unwrap() error { return ErrMissingArgument }

// Error implements the error interface.
func (e *ExtraArgumentError) Error() string {
	return fmt.Sprintf("recipe %q accepts at most %d argument(s); %d left over: %s",
		e.Recipe, e.Capacity, len(e.Extra), strings.Join(e.Extra, " "))
}

// Unwrap returns ErrExtraArgument for errors.Is() compatibility.
func (e *ExtraArgumentError) Unwrap() error { return ErrExtraArgument }

// Error implements the error interface.
func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("recipe %q: placeholder {{%s}} has no bound value in template %q",
		e.Recipe, e.Placeholder, e.Template)
}

// Unwrap returns ErrUnresolvedPlaceholder for errors.Is() compatibility.
func (e *UnresolvedPlaceholderError) Unwrap() error { return ErrUnresolvedPlaceholder }
