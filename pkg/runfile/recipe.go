// SPDX-License-Identifier: MPL-2.0

package runfile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecipeName is the sentinel error wrapped by InvalidRecipeNameError.
var ErrInvalidRecipeName = errors.New("invalid recipe name")

type (
	// InvalidRecipeNameError is returned when a recipe name is not a valid
	// identifier. It wraps ErrInvalidRecipeName for errors.Is() compatibility.
	InvalidRecipeNameError struct {
		Value string
	}

	// Recipe is a named unit consisting of an ordered formal parameter list
	// and an ordered sequence of command-line templates. Recipes are built
	// once by Load and never mutated afterward, so they are safe to share
	// across concurrent invocations.
	Recipe struct {
		// Name is the unique recipe identifier within its registry.
		Name string
		// Params are the formal parameters in declaration order.
		Params []Parameter
		// Body holds the command templates, one command line per entry.
		Body []string
		// Line is the 1-based header line in the source, for error messages.
		Line int
	}
)

// Error implements the error interface.
func (e *InvalidRecipeNameError) Error() string {
	return fmt.Sprintf("invalid recipe name %q (must start with a letter or underscore, followed by letters, digits, hyphens, or underscores)", e.Value)
}

// Unwrap returns ErrInvalidRecipeName for errors.Is() compatibility.
func (e *InvalidRecipeNameError) Unwrap() error { return ErrInvalidRecipeName }

// IsValidRecipeName returns whether name is a valid recipe identifier,
// and a list of validation errors if it is not.
func IsValidRecipeName(name string) (bool, []error) {
	if !parameterNamePattern.MatchString(name) {
		return false, []error{&InvalidRecipeNameError{Value: name}}
	}
	return true, nil
}

// HasVariadic reports whether the recipe's last parameter is variadic.
func (r *Recipe) HasVariadic() bool {
	return len(r.Params) > 0 && r.Params[len(r.Params)-1].Variadic
}

// VariadicParam returns the trailing variadic parameter, or nil when the
// recipe has none.
func (r *Recipe) VariadicParam() *Parameter {
	if !r.HasVariadic() {
		return nil
	}
	return &r.Params[len(r.Params)-1]
}

// FixedParams returns the non-variadic parameters in declaration order.
func (r *Recipe) FixedParams() []Parameter {
	if r.HasVariadic() {
		return r.Params[:len(r.Params)-1]
	}
	return r.Params
}

// Param returns the declared parameter with the given name, or nil.
func (r *Recipe) Param(name string) *Parameter {
	for i := range r.Params {
		if r.Params[i].Name == name {
			return &r.Params[i]
		}
	}
	return nil
}

// MinArgs returns the number of tokens the recipe requires. A variadic
// parameter without a default needs at least one token.
func (r *Recipe) MinArgs() int {
	n := 0
	for i := range r.Params {
		if r.Params[i].Required() {
			n++
		}
	}
	return n
}

// MaxArgs returns the maximum number of tokens the recipe accepts, or -1
// when a variadic parameter makes it unbounded.
func (r *Recipe) MaxArgs() int {
	if r.HasVariadic() {
		return -1
	}
	return len(r.Params)
}

// UsageString renders the recipe signature for help output, e.g.
// "build <target> [profile] [flags]...".
func (r *Recipe) UsageString() string {
	parts := []string{r.Name}
	for i := range r.Params {
		p := &r.Params[i]
		var s string
		switch {
		case p.Variadic && p.Required():
			s = fmt.Sprintf("<%s>...", p.Name)
		case p.Variadic:
			s = fmt.Sprintf("[%s]...", p.Name)
		case p.Required():
			s = fmt.Sprintf("<%s>", p.Name)
		default:
			s = fmt.Sprintf("[%s]", p.Name)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
