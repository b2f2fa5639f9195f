// SPDX-License-Identifier: MPL-2.0

package runfile

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidParameterName is the sentinel error wrapped by InvalidParameterNameError.
var ErrInvalidParameterName = errors.New("invalid parameter name")

// parameterNamePattern matches POSIX-style identifiers: a letter or
// underscore followed by letters, digits, hyphens, or underscores.
var parameterNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

type (
	// InvalidParameterNameError is returned when a parameter name is not a
	// valid identifier. It wraps ErrInvalidParameterName for errors.Is().
	InvalidParameterNameError struct {
		Value string
	}

	// Parameter represents a formal positional input to a recipe.
	Parameter struct {
		// Name identifies the parameter (unique within its recipe).
		Name string
		// Default is the value used when the caller supplies no token.
		// Only meaningful when HasDefault is true.
		Default string
		// HasDefault reports whether a default value was declared.
		// A parameter without a default is required.
		HasDefault bool
		// Variadic marks the trailing parameter that captures all remaining
		// tokens. At most one per recipe, and it must be declared last.
		Variadic bool
	}
)

// Error implements the error interface.
func (e *InvalidParameterNameError) Error() string {
	return fmt.Sprintf("invalid parameter name %q (must start with a letter or underscore, followed by letters, digits, hyphens, or underscores)", e.Value)
}

// Unwrap returns ErrInvalidParameterName for errors.Is() compatibility.
func (e *InvalidParameterNameError) Unwrap() error { return ErrInvalidParameterName }

// IsValidParameterName returns whether name is a valid parameter identifier,
// and a list of validation errors if it is not.
func IsValidParameterName(name string) (bool, []error) {
	if !parameterNamePattern.MatchString(name) {
		return false, []error{&InvalidParameterNameError{Value: name}}
	}
	return true, nil
}

// Required reports whether the parameter must be filled by a caller token.
func (p *Parameter) Required() bool { return !p.HasDefault }
