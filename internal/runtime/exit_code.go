// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"os/exec"
	"syscall"

	"runner-cli/pkg/types"
)

// exitCodeFromExitError maps a finished process's state to an ExitCode.
// A process killed by a signal reports 128 plus the signal number, the
// convention shells use for signal deaths.
func exitCodeFromExitError(exitErr *exec.ExitError) types.ExitCode {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return types.FromSignal(int(ws.Signal()))
	}
	return types.ExitCode(exitErr.ExitCode())
}
