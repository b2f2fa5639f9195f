// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"runner-cli/internal/config"
	"runner-cli/internal/issue"

	"github.com/spf13/cobra"
)

// configCmd manages the tool configuration file.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage runner configuration",
	Long: `Manage runner configuration.

Configuration is stored in:
  - Linux: ~/.config/runner/config.cue
  - macOS: ~/Library/Application Support/runner/config.cue
  - Windows: %APPDATA%\runner\config.cue`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.OutOrStdout())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd.OutOrStdout())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfigPath(cmd.OutOrStdout())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cmd.OutOrStdout(), args[0], args[1])
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
			return nil
		},
	})
}

func showConfig(w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		reportIssueId(os.Stderr, issue.ConfigLoadFailedId)
		return err
	}

	renderConfigShow(w, cfg, config.ResolvedPath())
	return nil
}

func renderConfigShow(w io.Writer, cfg *config.Config, path string) {
	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", VerboseHighlightStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", VerboseHighlightStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	shell := cfg.Shell.String()
	if shell == "" {
		shell = "(auto-detect)"
	}
	fmt.Fprintf(w, "%s: %s\n", VerboseHighlightStyle.Render("shell"), shell)
	if len(cfg.ShellArgs) > 0 {
		fmt.Fprintf(w, "%s: %v\n", VerboseHighlightStyle.Render("shell_args"), cfg.ShellArgs)
	}
	fmt.Fprintf(w, "%s: %s\n", VerboseHighlightStyle.Render("default_runtime"), cfg.DefaultRuntime)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", VerboseHighlightStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", cfg.UI.ColorScheme)
	fmt.Fprintf(w, "  verbose: %v\n", cfg.UI.Verbose)
}

func initConfig(w io.Writer) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err := config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	fmt.Fprintf(w, "Created default configuration at %s\n", cfgPath)
	return nil
}

func showConfigPath(w io.Writer) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(w, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

func setConfigValue(w io.Writer, key, value string) error {
	cfg, err := config.Load()
	if err != nil {
		reportIssueId(os.Stderr, issue.ConfigLoadFailedId)
		return err
	}

	if err := applyConfigValue(cfg, key, value); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(w, "Set %s = %s\n", key, value)
	return nil
}

// applyConfigValue maps a "config set" key to its Config field, validating
// enum values before they can reach the file.
func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "shell":
		shell := config.ShellPath(value)
		if ok, errs := shell.IsValid(); !ok {
			return errs[0]
		}
		cfg.Shell = shell

	case "default_runtime":
		mode := config.RuntimeMode(value)
		if ok, errs := mode.IsValid(); !ok {
			return errs[0]
		}
		cfg.DefaultRuntime = mode

	case "ui.color_scheme":
		scheme := config.ColorScheme(value)
		if ok, errs := scheme.IsValid(); !ok {
			return errs[0]
		}
		cfg.UI.ColorScheme = scheme

	case "ui.verbose":
		cfg.UI.Verbose = value == "true" || value == "1"

	default:
		return fmt.Errorf("unknown configuration key %q (valid keys: shell, default_runtime, ui.color_scheme, ui.verbose)", key)
	}

	return nil
}
