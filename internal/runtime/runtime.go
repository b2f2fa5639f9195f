// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"io"
	"os"

	"runner-cli/internal/config"
	"runner-cli/pkg/runfile"

	"github.com/charmbracelet/log"
)

type (
	// IO bundles the standard streams handed to executed command lines.
	IO struct {
		// Stdin is where to read standard input
		Stdin io.Reader
		// Stdout is where to write standard output
		Stdout io.Writer
		// Stderr is where to write standard error
		Stderr io.Writer
	}

	// ExecutionContext contains all information needed to execute a recipe.
	ExecutionContext struct {
		// Context is the Go context for cancellation
		Context context.Context
		// Recipe is the recipe being executed
		Recipe *runfile.Recipe
		// Lines are the fully rendered command lines, in body order
		Lines []string
		// WorkDir is the working directory for every command line
		// (the directory containing the loaded runfile)
		WorkDir string
		// IO carries the standard streams; executed lines inherit them
		IO IO
		// Logger receives per-line debug output (may be nil)
		Logger *log.Logger
	}

	// Runtime defines the interface for recipe execution.
	Runtime interface {
		// Name returns the runtime name
		Name() string
		// Available returns whether this runtime is available on the current system
		Available() bool
		// Execute runs the context's command lines sequentially, stopping at
		// the first line that exits non-zero.
		Execute(ctx *ExecutionContext) *Result
	}
)

// StdIO returns an IO bound to the process standard streams.
func StdIO() IO {
	return IO{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// ForMode returns the runtime implementation for the given mode.
func ForMode(mode config.RuntimeMode, cfg *config.Config) (Runtime, error) {
	switch mode {
	case config.RuntimeNative:
		return NewNativeRuntime(cfg.Shell.String(), cfg.ShellArgs), nil
	case config.RuntimeVirtual:
		return NewVirtualRuntime(), nil
	default:
		return nil, &config.InvalidConfigRuntimeModeError{Value: mode}
	}
}

// debugf logs through the context logger when one is attached.
func (ctx *ExecutionContext) debugf(format string, args ...any) {
	if ctx.Logger != nil {
		ctx.Logger.Debugf(format, args...)
	}
}
