// SPDX-License-Identifier: MPL-2.0

package runfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Basic(t *testing.T) {
	t.Parallel()

	src := `
# build the project
build target profile="debug" *flags="":
    cargo build --target {{target}} --profile {{profile}} {{flags}}

# run the test suite
test:
    cargo test
`
	reg, err := Load(strings.NewReader(src), "runfile")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}

	build, err := reg.Lookup("build")
	if err != nil {
		t.Fatalf("Lookup(build) error = %v", err)
	}
	if len(build.Params) != 3 {
		t.Fatalf("build has %d params, want 3", len(build.Params))
	}

	target := build.Params[0]
	if target.Name != "target" || target.HasDefault || target.Variadic {
		t.Errorf("Params[0] = %+v, want required non-variadic %q", target, "target")
	}

	profile := build.Params[1]
	if profile.Name != "profile" || !profile.HasDefault || profile.Default != "debug" {
		t.Errorf("Params[1] = %+v, want optional with default %q", profile, "debug")
	}

	flags := build.Params[2]
	if !flags.Variadic || !flags.HasDefault || flags.Default != "" {
		t.Errorf("Params[2] = %+v, want variadic with empty default", flags)
	}

	if len(build.Body) != 1 {
		t.Fatalf("build body has %d lines, want 1", len(build.Body))
	}
	want := "cargo build --target {{target}} --profile {{profile}} {{flags}}"
	if build.Body[0] != want {
		t.Errorf("Body[0] = %q, want %q", build.Body[0], want)
	}
}

func TestLoad_MultiLineBody(t *testing.T) {
	t.Parallel()

	src := `release version:
    git tag {{version}}
    git push origin {{version}}
    cargo publish
`
	reg, err := Load(strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	r, err := reg.Lookup("release")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if len(r.Body) != 3 {
		t.Fatalf("body has %d lines, want 3", len(r.Body))
	}
	if r.Body[2] != "cargo publish" {
		t.Errorf("Body[2] = %q, want %q", r.Body[2], "cargo publish")
	}
}

func TestLoad_CommentsAndBlanksIgnored(t *testing.T) {
	t.Parallel()

	src := `# leading comment

run *args="":
    # this indented comment is ignored too

    cross run {{args}}
`
	reg, err := Load(strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	r, err := reg.Lookup("run")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if len(r.Body) != 1 {
		t.Fatalf("body has %d lines, want 1 (comments and blanks must be dropped)", len(r.Body))
	}
}

func TestLoad_DefaultValueForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"double quoted", `r p="hello world":`, "hello world"},
		{"single quoted verbatim", `r p='a\nb':`, `a\nb`},
		{"bare", `r p=value:`, "value"},
		{"empty", `r p="":`, ""},
		{"escaped quote", `r p="say \"hi\"":`, `say "hi"`},
		{"newline escape", `r p="a\nb":`, "a\nb"},
		{"tab escape", `r p="a\tb":`, "a\tb"},
		{"escaped backslash", `r p="a\\b":`, `a\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg, err := Load(strings.NewReader(tt.header+"\n    echo {{p}}\n"), "")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			r, err := reg.Lookup("r")
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if got := r.Params[0].Default; got != tt.want {
				t.Errorf("Default = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad_DuplicateRecipe(t *testing.T) {
	t.Parallel()

	src := `build:
    go build ./...

build:
    go build -v ./...
`
	_, err := Load(strings.NewReader(src), "runfile")
	if err == nil {
		t.Fatal("Load() error = nil, want DuplicateRecipeError")
	}
	var dup *DuplicateRecipeError
	if !errors.As(err, &dup) {
		t.Fatalf("Load() error = %v, want DuplicateRecipeError", err)
	}
	if dup.Name != "build" {
		t.Errorf("DuplicateRecipeError.Name = %q, want %q", dup.Name, "build")
	}
	if dup.FirstLine != 1 || dup.Line != 4 {
		t.Errorf("duplicate reported at lines (%d, %d), want (1, 4)", dup.FirstLine, dup.Line)
	}
	if !errors.Is(err, ErrDuplicateRecipe) {
		t.Error("error does not wrap ErrDuplicateRecipe")
	}
}

func TestLoad_SyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"missing colon", "build target\n    go build\n"},
		{"indented line without recipe", "    echo orphan\n"},
		{"empty header", ":\n    echo\n"},
		{"invalid recipe name", "1build:\n    echo\n"},
		{"invalid parameter name", "build 1target:\n    echo\n"},
		{"unterminated quote", `build p="oops:` + "\n    echo\n"},
		{"bad escape", `build p="\q":` + "\n    echo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(strings.NewReader(tt.src), "runfile")
			if err == nil {
				t.Fatal("Load() error = nil, want ParseError")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Load() error = %v, want ParseError", err)
			}
			if pe.Line == 0 {
				t.Error("ParseError.Line = 0, want a 1-based line number")
			}
			if !errors.Is(err, ErrParse) {
				t.Error("error does not wrap ErrParse")
			}
		})
	}
}

func TestLoad_ParameterOrderingViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"required after optional", `r a="x" b:` + "\n    echo\n"},
		{"variadic not last", `r *a b:` + "\n    echo\n"},
		{"required variadic after optional", `r a="x" *b:` + "\n    echo\n"},
		{"duplicate parameter", `r a a:` + "\n    echo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(strings.NewReader(tt.src), "")
			if err == nil {
				t.Fatal("Load() error = nil, want ParseError")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("Load() error = %v, want ErrParse", err)
			}
		})
	}
}

func TestLoad_RequiredVariadicAfterRequiredIsValid(t *testing.T) {
	t.Parallel()

	reg, err := Load(strings.NewReader("r a *b:\n    echo {{a}} {{b}}\n"), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	r, err := reg.Lookup("r")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if r.MinArgs() != 2 {
		t.Errorf("MinArgs() = %d, want 2 (defaultless variadic needs a token)", r.MinArgs())
	}
}

func TestLoad_UndeclaredPlaceholder(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader("r a:\n    echo {{a}} {{nope}}\n"), "runfile")
	if err == nil {
		t.Fatal("Load() error = nil, want ParseError for undeclared placeholder")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Load() error = %v, want ParseError", err)
	}
	if !strings.Contains(pe.Msg, "nope") {
		t.Errorf("ParseError.Msg = %q, want mention of placeholder %q", pe.Msg, "nope")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "runfile")
	src := "greet name=\"world\":\n    echo hello {{name}}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	reg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if _, err := reg.Lookup("greet"); err != nil {
		t.Errorf("Lookup(greet) error = %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("LoadFile() error = nil, want error for missing file")
	}
}

func TestLoad_CRLFLineEndings(t *testing.T) {
	t.Parallel()

	src := "run *args=\"\":\r\n    cross run {{args}}\r\n"
	reg, err := Load(strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	r, err := reg.Lookup("run")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if strings.ContainsRune(r.Body[0], '\r') {
		t.Errorf("Body[0] = %q, carriage return must be stripped", r.Body[0])
	}
}
