// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for runner.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"runner-cli/internal/config"
	"runner-cli/internal/discovery"
	"runner-cli/internal/issue"
	"runner-cli/pkg/runfile"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// runfilePath allows specifying a custom runfile
	runfilePath string
	// runtimeMode overrides the configured execution runtime
	runtimeMode string
	// dryRun prints the rendered command lines without executing them
	dryRun bool

	// logger is the shared CLI logger, configured in initRootState.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "runner",
	})

	// loadedRegistry holds the recipes from the discovered runfile.
	// It is nil when loading failed; loadErr carries the reason.
	loadedRegistry *runfile.Registry
	// loadedRunfile is the discovered runfile (nil when loading failed).
	loadedRunfile *discovery.DiscoveredFile
	// loadErr is the error that prevented recipe registration, if any.
	loadErr error

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "runner <recipe> [arg...]",
		Short: "A recipe-based command dispatcher",
		Long: TitleStyle.Render("runner") + SubtitleStyle.Render(" - A recipe-based command dispatcher") + `

runner executes named recipes defined in a 'runfile': shell command
templates with positional parameters, defaults, and a trailing variadic
catch-all. Command lines run sequentially and stop at the first failure.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create a runfile in your project directory
  2. Define recipes with parameters and {{placeholders}}
  3. Run them with: runner <recipe-name> [arg...]

` + SubtitleStyle.Render("Examples:") + `
  runner list               List all available recipes
  runner build aarch64      Run 'build' with target=aarch64
  runner run -- --release   Run 'run' forwarding --release verbatim`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if loadErr != nil {
					return wrapLoadError(loadErr)
				}
				renderRecipeList(cmd.OutOrStdout(), loadedRegistry)
				return nil
			}

			// A recipe name that matched nothing: report it with the
			// known names for context.
			if loadErr != nil {
				return wrapLoadError(loadErr)
			}
			_, err := loadedRegistry.Lookup(args[0])
			return wrapLoadError(err)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/runner/config.cue)")
	rootCmd.PersistentFlags().StringVar(&runfilePath, "runfile", "", "runfile to load (default is ./runfile, searching upward)")
	rootCmd.PersistentFlags().StringVar(&runtimeMode, "runtime", "", "execution runtime: native or virtual (default from config)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print the rendered command lines without executing them")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute loads the runfile, registers its recipes as subcommands, and runs
// the CLI. This is called by main.main().
func Execute() {
	initRootState(os.Args[1:])

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootState resolves flags that must be known before cobra dispatch,
// loads the configuration and the runfile, and registers recipe subcommands.
//
// Recipe subcommands disable cobra flag parsing so that recipe arguments
// pass through verbatim; global flags are therefore pre-scanned from the
// raw argument list instead of relying on cobra's parser.
func initRootState(args []string) {
	verbose = boolFlagInArgs(args, "--verbose", "-v")
	dryRun = boolFlagInArgs(args, "--dry-run", "")
	if v := flagValueFromArgs(args, "config"); v != "" {
		cfgFile = v
	}
	if v := flagValueFromArgs(args, "runfile"); v != "" {
		runfilePath = v
	}
	if v := flagValueFromArgs(args, "runtime"); v != "" {
		runtimeMode = v
	}

	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Config trouble never blocks recipe execution; surface it and
		// continue with defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		reportIssueId(os.Stderr, issue.ConfigLoadFailedId)
		cfg = config.DefaultConfig()
	}

	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	loadedRunfile, loadErr = discovery.Find(runfilePath, ".")
	if loadErr == nil {
		logger.Debug("loaded runfile", "path", loadedRunfile.Path, "source", loadedRunfile.Source)
		loadedRegistry, loadErr = runfile.LoadFile(loadedRunfile.Path)
	}
	if loadErr == nil {
		registerRecipeCommands(rootCmd, loadedRegistry)
	}
}

// boolFlagInArgs reports whether a boolean flag appears before the first
// non-flag token.
func boolFlagInArgs(args []string, long, short string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == long || (short != "" && arg == short) {
			return true
		}
		if !strings.HasPrefix(arg, "-") {
			return false
		}
	}
	return false
}

// flagValueFromArgs extracts the value of --name from the raw argument list,
// supporting both "--name=value" and "--name value". The scan stops at the
// first non-flag token (the recipe name) so that recipe arguments are never
// mistaken for global flags.
func flagValueFromArgs(args []string, name string) string {
	prefix := "--" + name + "="
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		if strings.HasPrefix(arg, prefix) {
			return strings.TrimPrefix(arg, prefix)
		}
		if arg == "--"+name {
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		}
		if !strings.HasPrefix(arg, "-") {
			return ""
		}
		// A "--flag value" pair: skip the value token so it is not
		// mistaken for the recipe name.
		if takesValue(arg) {
			i++
		}
	}
	return ""
}

// takesValue reports whether a global flag token consumes the next token.
func takesValue(arg string) bool {
	switch arg {
	case "--config", "--runfile", "--runtime":
		return true
	default:
		return false
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
