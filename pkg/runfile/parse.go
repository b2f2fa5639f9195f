// SPDX-License-Identifier: MPL-2.0

package runfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads recipe definitions from src. The path is used only in error
// messages. The format is line-oriented:
//
//	# comment
//	name param other="default" *rest="":
//	    first command using {{param}}
//	    second command using {{rest}}
//
// A header starts at column 0 and ends with ':'; indented lines below it
// form the recipe body; blank lines and '#' comment lines are ignored.
func Load(src io.Reader, path string) (*Registry, error) {
	reg := &Registry{recipes: make(map[string]*Recipe)}
	var current *Recipe

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimRight(scanner.Text(), "\r")

		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if raw[0] == ' ' || raw[0] == '\t' {
			if current == nil {
				return nil, &ParseError{Path: path, Line: lineNo, Msg: "indented line outside of a recipe body"}
			}
			current.Body = append(current.Body, trimmed)
			continue
		}

		recipe, err := parseHeader(raw, path, lineNo)
		if err != nil {
			return nil, err
		}
		if prev, ok := reg.recipes[recipe.Name]; ok {
			return nil, &DuplicateRecipeError{Name: recipe.Name, FirstLine: prev.Line, Line: lineNo}
		}
		reg.recipes[recipe.Name] = recipe
		reg.order = append(reg.order, recipe.Name)
		current = recipe
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runfile: %w", err)
	}

	for _, name := range reg.order {
		if err := validateRecipe(reg.recipes[name], path); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// LoadFile reads recipe definitions from the file at path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open runfile: %w", err)
	}
	defer f.Close()
	return Load(f, path)
}

// parseHeader parses a "name param... :" line into a Recipe.
func parseHeader(line, path string, lineNo int) (*Recipe, error) {
	stripped := strings.TrimRight(line, " \t")
	if !strings.HasSuffix(stripped, ":") {
		return nil, &ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("recipe header must end with ':' (got %q)", line)}
	}
	header := strings.TrimRight(strings.TrimSuffix(stripped, ":"), " \t")

	tokens, err := splitHeader(header)
	if err != nil {
		return nil, &ParseError{Path: path, Line: lineNo, Msg: err.Error()}
	}
	if len(tokens) == 0 {
		return nil, &ParseError{Path: path, Line: lineNo, Msg: "recipe header has no name"}
	}

	name := tokens[0]
	if ok, errs := IsValidRecipeName(name); !ok {
		return nil, &ParseError{Path: path, Line: lineNo, Msg: errs[0].Error()}
	}

	r := &Recipe{Name: name, Line: lineNo}
	for _, tok := range tokens[1:] {
		p, err := parseParameter(tok)
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Msg: err.Error()}
		}
		r.Params = append(r.Params, p)
	}
	return r, nil
}

// splitHeader splits a header into whitespace-separated tokens, keeping
// quoted default values (including any spaces inside them) attached to
// their parameter token.
func splitHeader(s string) ([]string, error) {
	var tokens []string
	var b strings.Builder
	var quote byte // active quote character, 0 when outside quotes

	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			b.WriteByte(c)
			if c == '\\' && quote == '"' && i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			b.WriteByte(c)
		case c == ' ' || c == '\t':
			flush()
		default:
			b.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote in recipe header", quote)
	}
	flush()
	return tokens, nil
}

// parseParameter parses a single header token of the form [*]name[=default].
func parseParameter(tok string) (Parameter, error) {
	var p Parameter
	rest := tok
	if strings.HasPrefix(rest, "*") {
		p.Variadic = true
		rest = rest[1:]
	}

	name, value, found := strings.Cut(rest, "=")
	if ok, errs := IsValidParameterName(name); !ok {
		return Parameter{}, errs[0]
	}
	p.Name = name
	if found {
		def, err := unquote(value)
		if err != nil {
			return Parameter{}, fmt.Errorf("parameter %q: %w", name, err)
		}
		p.Default = def
		p.HasDefault = true
	}
	return p, nil
}

// unquote interprets a default value literal. Double-quoted strings support
// \\, \", \n and \t escapes; single-quoted strings are taken verbatim; bare
// values are allowed when they contain no whitespace (guaranteed by the
// header tokenizer).
func unquote(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	switch s[0] {
	case '\'':
		if len(s) < 2 || s[len(s)-1] != '\'' {
			return "", fmt.Errorf("unterminated single-quoted default %s", s)
		}
		return s[1 : len(s)-1], nil
	case '"':
		if len(s) < 2 || s[len(s)-1] != '"' {
			return "", fmt.Errorf("unterminated double-quoted default %s", s)
		}
		body := s[1 : len(s)-1]
		var b strings.Builder
		for i := 0; i < len(body); i++ {
			c := body[i]
			if c != '\\' {
				b.WriteByte(c)
				continue
			}
			i++
			if i >= len(body) {
				return "", fmt.Errorf("trailing backslash in default %s", s)
			}
			switch body[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\', '"':
				b.WriteByte(body[i])
			default:
				return "", fmt.Errorf("unsupported escape \\%c in default %s", body[i], s)
			}
		}
		return b.String(), nil
	default:
		return s, nil
	}
}

// validateRecipe enforces the load-time invariants: unique parameter names,
// required before optional before variadic ordering, variadic last, and
// body placeholders referencing declared parameters only.
func validateRecipe(r *Recipe, path string) error {
	seen := make(map[string]bool, len(r.Params))
	sawDefault := false
	for i := range r.Params {
		p := &r.Params[i]
		if seen[p.Name] {
			return &ParseError{Path: path, Line: r.Line, Msg: fmt.Sprintf("recipe %q: duplicate parameter %q", r.Name, p.Name)}
		}
		seen[p.Name] = true

		if p.Variadic && i != len(r.Params)-1 {
			return &ParseError{Path: path, Line: r.Line, Msg: fmt.Sprintf("recipe %q: variadic parameter %q must be last", r.Name, p.Name)}
		}
		if sawDefault && p.Required() {
			return &ParseError{Path: path, Line: r.Line, Msg: fmt.Sprintf("recipe %q: required parameter %q follows an optional parameter", r.Name, p.Name)}
		}
		if p.HasDefault {
			sawDefault = true
		}
	}

	for _, tmpl := range r.Body {
		for _, m := range placeholderPattern.FindAllStringSubmatch(tmpl, -1) {
			if r.Param(m[1]) == nil {
				return &ParseError{Path: path, Line: r.Line, Msg: fmt.Sprintf("recipe %q: placeholder {{%s}} does not reference a declared parameter", r.Name, m[1])}
			}
		}
	}
	return nil
}
