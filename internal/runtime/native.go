package runtime

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"runner-cli/pkg/types"
)

// ErrShellNotFound is returned when no usable shell can be located for the
// native runtime.
var ErrShellNotFound = errors.New("shell not found")

// NativeRuntime executes command lines using the system's default shell
type NativeRuntime struct {
	// Shell overrides the default shell
	Shell string
	// ShellArgs are arguments passed to the shell before the command line
	ShellArgs []string
}

// NewNativeRuntime creates a new native runtime
func NewNativeRuntime(shell string, shellArgs []string) *NativeRuntime {
	return &NativeRuntime{Shell: shell, ShellArgs: shellArgs}
}

// Name returns the runtime name
func (r *NativeRuntime) Name() string {
	return "native"
}

// Available returns whether this runtime is available
func (r *NativeRuntime) Available() bool {
	_, err := r.getShell()
	return err == nil
}

// Execute runs the rendered command lines sequentially through the system
// shell. The first line that exits non-zero stops the run; later lines never
// start. Each line spawns its own shell process inheriting the caller's
// streams and environment.
func (r *NativeRuntime) Execute(ctx *ExecutionContext) *Result {
	shell, err := r.getShell()
	if err != nil {
		return NewErrorResult(types.ExitInternal, err)
	}

	shellArgs := r.getShellArgs(shell)

	for i, line := range ctx.Lines {
		ctx.debugf("exec %s: %s", ctx.Recipe.Name, line)

		args := append(append([]string{}, shellArgs...), line)
		cmd := exec.CommandContext(ctx.Context, shell, args...)

		if ctx.WorkDir != "" {
			cmd.Dir = ctx.WorkDir
		}

		// nil Env inherits the full parent environment
		cmd.Stdin = ctx.IO.Stdin
		cmd.Stdout = ctx.IO.Stdout
		cmd.Stderr = ctx.IO.Stderr

		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return &Result{ExitCode: exitCodeFromExitError(exitErr), FailedLine: i}
			}
			return NewErrorResult(types.ExitInternal, fmt.Errorf("failed to execute command line: %w", err))
		}
	}

	return NewSuccessResult()
}

// getShell determines which shell to use
func (r *NativeRuntime) getShell() (string, error) {
	// Use configured shell if set
	if r.Shell != "" {
		return r.Shell, nil
	}

	// Platform-specific defaults
	switch runtime.GOOS {
	case "windows":
		// Try PowerShell first, then cmd
		if pwsh, err := exec.LookPath("pwsh"); err == nil {
			return pwsh, nil
		}
		if ps, err := exec.LookPath("powershell"); err == nil {
			return ps, nil
		}
		if cmd, err := exec.LookPath("cmd"); err == nil {
			return cmd, nil
		}
		return "", ErrShellNotFound
	default:
		// Unix-like: use SHELL env var, or fall back to common shells
		if shell := os.Getenv("SHELL"); shell != "" {
			return shell, nil
		}
		if bash, err := exec.LookPath("bash"); err == nil {
			return bash, nil
		}
		if sh, err := exec.LookPath("sh"); err == nil {
			return sh, nil
		}
		return "", ErrShellNotFound
	}
}

// getShellArgs returns the arguments to pass to the shell
func (r *NativeRuntime) getShellArgs(shell string) []string {
	if len(r.ShellArgs) > 0 {
		return r.ShellArgs
	}

	base := filepath.Base(shell)
	base = strings.TrimSuffix(base, ".exe")

	switch base {
	case "cmd":
		return []string{"/C"}
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-Command"}
	default:
		// Assume POSIX shell
		return []string{"-c"}
	}
}
