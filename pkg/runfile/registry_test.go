// SPDX-License-Identifier: MPL-2.0

package runfile

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
)

const registryFixture = `build target:
    go build {{target}}

test:
    go test ./...

all:
    go build ./...
    go test ./...
`

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	reg, err := Load(strings.NewReader(registryFixture), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	r, err := reg.Lookup("test")
	if err != nil {
		t.Fatalf("Lookup(test) error = %v", err)
	}
	if r.Name != "test" {
		t.Errorf("Lookup(test).Name = %q", r.Name)
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	t.Parallel()

	reg, err := Load(strings.NewReader(registryFixture), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	_, err = reg.Lookup("deploy")
	if err == nil {
		t.Fatal("Lookup(deploy) error = nil, want UnknownRecipeError")
	}
	var unknown *UnknownRecipeError
	if !errors.As(err, &unknown) {
		t.Fatalf("Lookup() error = %v, want UnknownRecipeError", err)
	}
	if unknown.Name != "deploy" {
		t.Errorf("UnknownRecipeError.Name = %q, want %q", unknown.Name, "deploy")
	}
	if !reflect.DeepEqual(unknown.Known, []string{"all", "build", "test"}) {
		t.Errorf("UnknownRecipeError.Known = %v, want sorted recipe names", unknown.Known)
	}
	if !errors.Is(err, ErrUnknownRecipe) {
		t.Error("error does not wrap ErrUnknownRecipe")
	}
}

func TestRegistry_NamesSortedAndRecipesInDefinitionOrder(t *testing.T) {
	t.Parallel()

	reg, err := Load(strings.NewReader(registryFixture), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := reg.Names(); !reflect.DeepEqual(got, []string{"all", "build", "test"}) {
		t.Errorf("Names() = %v, want lexical order", got)
	}

	var order []string
	for _, r := range reg.Recipes() {
		order = append(order, r.Name)
	}
	if !reflect.DeepEqual(order, []string{"build", "test", "all"}) {
		t.Errorf("Recipes() order = %v, want definition order", order)
	}
}

func TestRegistry_ConcurrentLookupIsSafe(t *testing.T) {
	t.Parallel()

	reg, err := Load(strings.NewReader(registryFixture), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if _, err := reg.Lookup("build"); err != nil {
					t.Errorf("Lookup() error = %v", err)
					return
				}
				reg.Names()
			}
		}()
	}
	wg.Wait()
}

func TestRecipe_UsageString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"no params", "clean:\n    rm -rf out\n", "clean"},
		{"required", "build target:\n    echo {{target}}\n", "build <target>"},
		{"optional", "build target=\"debug\":\n    echo {{target}}\n", "build [target]"},
		{"optional variadic", "run *args=\"\":\n    echo {{args}}\n", "run [args]..."},
		{"required variadic", "exec cmd *rest:\n    echo {{cmd}} {{rest}}\n", "exec <cmd> <rest>..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recipeName, _, _ := strings.Cut(tt.want, " ")
			r := mustLoadRecipe(t, tt.src, recipeName)
			if got := r.UsageString(); got != tt.want {
				t.Errorf("UsageString() = %q, want %q", got, tt.want)
			}
		})
	}
}
