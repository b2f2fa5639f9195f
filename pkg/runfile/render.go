// SPDX-License-Identifier: MPL-2.0

package runfile

import "regexp"

// placeholderPattern matches {{name}} markers in body templates, with
// optional whitespace inside the braces.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_-]*)\s*\}\}`)

// Render substitutes every placeholder occurrence in the recipe body with
// its bound value and returns the fully resolved command lines in order.
// Substituted values are not re-scanned, so a bound value containing braces
// is passed through literally. A placeholder without a bound value after a
// successful Bind yields UnresolvedPlaceholderError; Load guarantees this
// cannot happen for registries it produced.
func Render(r *Recipe, params *ParameterMap) ([]string, error) {
	lines := make([]string, 0, len(r.Body))
	for _, tmpl := range r.Body {
		var unresolved *UnresolvedPlaceholderError
		line := placeholderPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
			name := placeholderPattern.FindStringSubmatch(match)[1]
			v, ok := params.Value(name)
			if !ok {
				if unresolved == nil {
					unresolved = &UnresolvedPlaceholderError{Recipe: r.Name, Placeholder: name, Template: tmpl}
				}
				return match
			}
			return v
		})
		if unresolved != nil {
			return nil, unresolved
		}
		lines = append(lines, line)
	}
	return lines, nil
}
