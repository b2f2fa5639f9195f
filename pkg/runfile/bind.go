// SPDX-License-Identifier: MPL-2.0

package runfile

import (
	"slices"
	"strings"
)

// ParameterMap holds the resolved parameter values for one invocation.
// Plain parameters bind scalar strings; the variadic parameter additionally
// keeps its captured tokens in their original order. A ParameterMap is
// produced fresh by every Bind call and never persisted.
type ParameterMap struct {
	values   map[string]string
	variadic []string
}

// Value returns the bound value for the named parameter. The variadic
// parameter's value is its captured tokens joined with single spaces.
func (m *ParameterMap) Value(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// VariadicTokens returns the tokens captured by the variadic parameter in
// their original order. It is nil when the recipe has no variadic parameter
// or the variadic parameter bound to its declared default.
func (m *ParameterMap) VariadicTokens() []string {
	return slices.Clone(m.variadic)
}

// Len returns the number of bound parameters.
func (m *ParameterMap) Len() int { return len(m.values) }

// Bind resolves a recipe's formal parameters against caller-supplied
// positional tokens. Leading tokens fill the non-variadic parameters in
// declaration order; optionals whose tokens are exhausted fall back to
// their defaults; a trailing variadic parameter captures every remaining
// token. Binding is pure and deterministic: identical inputs always yield
// an identical ParameterMap.
func Bind(r *Recipe, args []string) (*ParameterMap, error) {
	m := &ParameterMap{values: make(map[string]string, len(r.Params))}

	fixed := r.FixedParams()
	next := 0
	for i := range fixed {
		p := &fixed[i]
		switch {
		case next < len(args):
			m.values[p.Name] = args[next]
			next++
		case p.HasDefault:
			m.values[p.Name] = p.Default
		default:
			return nil, &MissingArgumentError{Recipe: r.Name, Param: p.Name}
		}
	}

	rest := args[next:]
	v := r.VariadicParam()
	if v == nil {
		if len(rest) > 0 {
			return nil, &ExtraArgumentError{Recipe: r.Name, Capacity: len(r.Params), Extra: slices.Clone(rest)}
		}
		return m, nil
	}

	switch {
	case len(rest) > 0:
		m.variadic = slices.Clone(rest)
		m.values[v.Name] = strings.Join(rest, " ")
	case v.HasDefault:
		m.values[v.Name] = v.Default
	default:
		return nil, &MissingArgumentError{Recipe: r.Name, Param: v.Name}
	}
	return m, nil
}
