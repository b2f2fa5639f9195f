// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"runner-cli/internal/config"
	"runner-cli/internal/discovery"
	"runner-cli/internal/runtime"
	"runner-cli/pkg/runfile"
	"runner-cli/pkg/types"

	"github.com/spf13/cobra"
)

// ExitError carries the process exit status a recipe run resolved to, so
// RunE handlers can report it without forcing os.Exit themselves; Execute
// unwraps it after cobra dispatch. Code holds either a reserved failure
// class or the child's own status.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the underlying message, or the bare status when the exit
// code is the whole story (a failed command line).
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// registerRecipeCommands adds one subcommand per recipe, in runfile
// definition order. Flag parsing is disabled on each so that recipe
// arguments (including ones starting with '-') reach Bind verbatim.
func registerRecipeCommands(root *cobra.Command, reg *runfile.Registry) {
	for _, r := range reg.Recipes() {
		recipe := r
		root.AddCommand(&cobra.Command{
			Use:                recipe.UsageString(),
			Short:              "Run the '" + recipe.Name + "' recipe",
			DisableFlagParsing: true,
			SilenceUsage:       true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runRecipe(cmd, recipe, stripTerminator(args))
			},
		})
	}
}

// stripTerminator drops a leading "--" so that
// "runner run -- --release" forwards just "--release".
func stripTerminator(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

// runRecipe binds arguments, renders the command lines, and executes them.
func runRecipe(cmd *cobra.Command, recipe *runfile.Recipe, args []string) error {
	params, err := runfile.Bind(recipe, args)
	if err != nil {
		return wrapLoadError(err)
	}

	lines, err := runfile.Render(recipe, params)
	if err != nil {
		return wrapLoadError(err)
	}

	if dryRun {
		renderDryRun(cmd.OutOrStdout(), recipe, args, lines)
		return nil
	}

	cfg := config.Get()
	mode := cfg.DefaultRuntime
	if runtimeMode != "" {
		mode = config.RuntimeMode(runtimeMode)
	}

	rt, err := runtime.ForMode(mode, cfg)
	if err != nil {
		reportIssue(os.Stderr, err)
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	execCtx := &runtime.ExecutionContext{
		Context: cmd.Context(),
		Recipe:  recipe,
		Lines:   lines,
		WorkDir: filepath.Dir(loadedRunfile.Path),
		IO:      runtime.StdIO(),
		Logger:  logger,
	}

	res := rt.Execute(execCtx)
	if res.Error != nil {
		reportIssue(os.Stderr, res.Error)
		return &ExitError{Code: res.ExitCode, Err: res.Error}
	}
	if !res.Success() {
		logger.Debug("recipe failed", "recipe", recipe.Name, "line", res.FailedLine, "status", res.ExitCode)
		return &ExitError{Code: res.ExitCode}
	}
	return nil
}

// wrapLoadError maps runfile and discovery errors to their reserved exit
// codes so that scripts can tell failure classes apart, rendering the
// matching catalog entry on the way out.
func wrapLoadError(err error) error {
	if err == nil {
		return nil
	}
	reportIssue(os.Stderr, err)
	return &ExitError{Code: exitCodeForError(err), Err: err}
}

// exitCodeForError maps an error chain to the reserved exit code of its
// failure class.
func exitCodeForError(err error) types.ExitCode {
	switch {
	case errors.Is(err, runfile.ErrDuplicateRecipe):
		return types.ExitDuplicateRecipe
	case errors.Is(err, runfile.ErrParse):
		return types.ExitParseError
	case errors.Is(err, runfile.ErrUnknownRecipe):
		return types.ExitUnknownRecipe
	case errors.Is(err, runfile.ErrMissingArgument):
		return types.ExitMissingArgument
	case errors.Is(err, runfile.ErrExtraArgument):
		return types.ExitExtraArgument
	case errors.Is(err, runfile.ErrUnresolvedPlaceholder):
		return types.ExitInternal
	case errors.Is(err, discovery.ErrRunfileNotFound):
		return types.ExitFailure
	default:
		return types.ExitFailure
	}
}
