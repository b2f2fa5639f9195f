// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// RuntimeNative runs recipe command lines in the host system shell.
	RuntimeNative RuntimeMode = "native"
	// RuntimeVirtual runs recipe command lines in the embedded mvdan/sh interpreter.
	RuntimeVirtual RuntimeMode = "virtual"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidConfigRuntimeMode is returned when a config RuntimeMode value is not recognized.
	ErrInvalidConfigRuntimeMode = errors.New("invalid runtime mode")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidShellPath is returned when a ShellPath value is whitespace-only.
	ErrInvalidShellPath = errors.New("invalid shell path")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// RuntimeMode specifies the execution runtime for recipe command lines.
	RuntimeMode string

	// InvalidConfigRuntimeModeError is returned when a config RuntimeMode value is not recognized.
	// It wraps ErrInvalidConfigRuntimeMode for errors.Is() compatibility.
	InvalidConfigRuntimeModeError struct {
		Value RuntimeMode
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// ShellPath represents a filesystem path to a shell executable.
	// The zero value ("") is valid and means "auto-detect the shell".
	// Non-zero values must not be whitespace-only.
	ShellPath string

	// InvalidShellPathError is returned when a ShellPath value is
	// non-empty but whitespace-only.
	InvalidShellPathError struct {
		Value ShellPath
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Shell overrides the shell used by the native runtime.
		Shell ShellPath `json:"shell" mapstructure:"shell"`
		// ShellArgs overrides the arguments passed to the shell before the command line.
		ShellArgs []string `json:"shell_args" mapstructure:"shell_args"`
		// DefaultRuntime sets the global default runtime mode.
		DefaultRuntime RuntimeMode `json:"default_runtime" mapstructure:"default_runtime"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to Shell.IsValid(), DefaultRuntime.IsValid(), and UI.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Shell.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.DefaultRuntime.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the ShellPath.
func (p ShellPath) String() string { return string(p) }

// IsValid returns whether the ShellPath is valid.
// The zero value ("") is valid (means "auto-detect the shell").
// Non-zero values must not be whitespace-only.
func (p ShellPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidShellPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidShellPathError.
func (e *InvalidShellPathError) Error() string {
	return fmt.Sprintf("invalid shell path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidShellPath for errors.Is() compatibility.
func (e *InvalidShellPathError) Unwrap() error { return ErrInvalidShellPath }

// Error implements the error interface for InvalidConfigRuntimeModeError.
func (e *InvalidConfigRuntimeModeError) Error() string {
	return fmt.Sprintf("invalid runtime mode %q (valid: native, virtual)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidConfigRuntimeModeError) Unwrap() error {
	return ErrInvalidConfigRuntimeMode
}

// String returns the string representation of the config RuntimeMode.
func (m RuntimeMode) String() string { return string(m) }

// IsValid returns whether the config RuntimeMode is one of the defined runtime modes,
// and a list of validation errors if it is not.
func (m RuntimeMode) IsValid() (bool, []error) {
	switch m {
	case RuntimeNative, RuntimeVirtual:
		return true, nil
	default:
		return false, []error{&InvalidConfigRuntimeModeError{Value: m}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Shell:          "",
		ShellArgs:      nil,
		DefaultRuntime: RuntimeNative,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
