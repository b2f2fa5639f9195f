// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"runner-cli/internal/issue"
	"runner-cli/pkg/cueutil"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "runner"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the primary config file extension.
	ConfigFileExt = "cue"
	// ConfigFileExtTOML is the fallback config file extension.
	ConfigFileExtTOML = "toml"
	// EnvPrefix is the prefix for environment variable overrides
	// (e.g. RUNNER_DEFAULT_RUNTIME).
	EnvPrefix = "RUNNER"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the runner configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level cache state. Callers that want caching can wrap this function.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("shell", defaults.Shell)
	v.SetDefault("shell_args", defaults.ShellArgs)
	v.SetDefault("default_runtime", defaults.DefaultRuntime)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	// Environment overrides: RUNNER_SHELL, RUNNER_DEFAULT_RUNTIME, RUNNER_UI_VERBOSE, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""

	// If a custom config file path is set via --config flag, use it exclusively.
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		if err := loadFileIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Check that the file contains valid CUE or TOML syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				Wrap(err).
				BuildError()
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
		if err != nil {
			return nil, "", err
		}

		// Prefer the CUE config file, fall back to TOML, then to defaults.
		for _, candidate := range []string{
			filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt),
			filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExtTOML),
		} {
			if !fileExists(candidate) {
				continue
			}
			if err := loadFileIntoViper(v, candidate); err != nil {
				return nil, "", issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(candidate).
					WithSuggestion("Check that the file contains valid CUE or TOML syntax").
					WithSuggestion("Verify the configuration values match the expected schema").
					Wrap(err).
					BuildError()
			}
			resolvedPath = candidate
			break
		}
		// If no config file found, use defaults (no error)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Check default_runtime is one of: native, virtual").
			WithSuggestion("Check ui.color_scheme is one of: auto, dark, light").
			Wrap(errs[0]).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadFileIntoViper dispatches on the config file extension.
func loadFileIntoViper(v *viper.Viper, path string) error {
	if strings.EqualFold(filepath.Ext(path), "."+ConfigFileExtTOML) {
		return loadTOMLIntoViper(v, path)
	}
	return loadCUEIntoViper(v, path)
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// Note: the config decodes to map[string]any (not a struct) so that the
// values merge with Viper's defaults and env overrides, and validation uses
// Concrete(false) because all config fields are optional.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	// Compile the schema
	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	// Compile the user's config file
	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	// Unify with schema to validate against #Config definition
	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// loadTOMLIntoViper parses a TOML config file and merges its contents into
// Viper. TOML values skip CUE schema unification; Config.IsValid catches
// invalid enum values after unmarshaling.
func loadTOMLIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	var configMap map[string]any
	if err := toml.Unmarshal(data, &configMap); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cfgDir, 0o755)
}

// CreateDefaultConfig creates a default config file if it doesn't exist
func CreateDefaultConfig() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)

	if _, err := os.Stat(cfgPath); err == nil {
		return nil // File exists
	}

	defaults := DefaultConfig()
	cueContent := GenerateCUE(defaults)

	if err := os.WriteFile(cfgPath, []byte(cueContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Save writes the current configuration to file
func Save(cfg *Config) error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)

	cueContent := GenerateCUE(cfg)

	if err := os.WriteFile(cfgPath, []byte(cueContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// Runner Configuration File\n\n")

	if cfg.Shell != "" {
		sb.WriteString(fmt.Sprintf("shell: %q\n", cfg.Shell))
	}

	if len(cfg.ShellArgs) > 0 {
		sb.WriteString("shell_args: [\n")
		for _, arg := range cfg.ShellArgs {
			sb.WriteString(fmt.Sprintf("\t%q,\n", arg))
		}
		sb.WriteString("]\n")
	}

	sb.WriteString(fmt.Sprintf("default_runtime: %q\n", cfg.DefaultRuntime))

	sb.WriteString("\nui: {\n")
	sb.WriteString(fmt.Sprintf("\tcolor_scheme: %q\n", cfg.UI.ColorScheme))
	sb.WriteString(fmt.Sprintf("\tverbose: %v\n", cfg.UI.Verbose))
	sb.WriteString("}\n")

	return sb.String()
}
