// SPDX-License-Identifier: MPL-2.0

package runfile

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry maps recipe names to their immutable definitions. It is built
// once by Load and never mutated afterward, so concurrent lookups from
// multiple invocations need no locking.
type Registry struct {
	recipes map[string]*Recipe
	order   []string // names in definition order
}

// Lookup returns the recipe with the given name, or UnknownRecipeError.
func (reg *Registry) Lookup(name string) (*Recipe, error) {
	r, ok := reg.recipes[name]
	if !ok {
		return nil, &UnknownRecipeError{Name: name, Known: reg.Names()}
	}
	return r, nil
}

// Names returns all recipe names in lexical order.
func (reg *Registry) Names() []string {
	names := maps.Keys(reg.recipes)
	slices.Sort(names)
	return names
}

// Recipes returns the recipes in definition order.
func (reg *Registry) Recipes() []*Recipe {
	out := make([]*Recipe, 0, len(reg.order))
	for _, name := range reg.order {
		out = append(out, reg.recipes[name])
	}
	return out
}

// Len returns the number of recipes in the registry.
func (reg *Registry) Len() int { return len(reg.recipes) }
