// SPDX-License-Identifier: MPL-2.0

package cmd

import "testing"

func TestFlagValueFromArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		flag string
		want string
	}{
		{"equals form", []string{"--runfile=./tasks", "build"}, "runfile", "./tasks"},
		{"space form", []string{"--runfile", "./tasks", "build"}, "runfile", "./tasks"},
		{"absent", []string{"build", "x"}, "runfile", ""},
		{"stops at recipe name", []string{"build", "--runfile=./tasks"}, "runfile", ""},
		{"stops at terminator", []string{"--", "--runfile=./tasks"}, "runfile", ""},
		{"other flags skipped", []string{"--verbose", "--config=c.cue", "--runfile", "rf", "build"}, "runfile", "rf"},
		{"config flag", []string{"--config", "custom.cue", "build"}, "config", "custom.cue"},
		{"value token not mistaken for recipe", []string{"--config", "custom.cue", "--runfile=rf", "build"}, "runfile", "rf"},
		{"trailing flag without value", []string{"--runfile"}, "runfile", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := flagValueFromArgs(tt.args, tt.flag); got != tt.want {
				t.Errorf("flagValueFromArgs(%v, %q) = %q, want %q", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}

func TestBoolFlagInArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		long  string
		short string
		want  bool
	}{
		{"long form", []string{"--verbose", "build"}, "--verbose", "-v", true},
		{"short form", []string{"-v", "build"}, "--verbose", "-v", true},
		{"absent", []string{"build"}, "--verbose", "-v", false},
		{"after recipe name ignored", []string{"build", "--verbose"}, "--verbose", "-v", false},
		{"after terminator ignored", []string{"--", "--verbose"}, "--verbose", "-v", false},
		{"dry-run without short", []string{"--dry-run", "build"}, "--dry-run", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := boolFlagInArgs(tt.args, tt.long, tt.short); got != tt.want {
				t.Errorf("boolFlagInArgs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestGetVersionString(t *testing.T) {
	if got := getVersionString(); got == "" {
		t.Error("getVersionString() returned empty string")
	}
}
