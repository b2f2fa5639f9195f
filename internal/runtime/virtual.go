// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"runner-cli/pkg/types"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRuntime executes command lines using the embedded mvdan/sh
// interpreter. It needs no shell installed on the host, which also makes
// recipe behavior consistent across platforms.
type VirtualRuntime struct{}

// NewVirtualRuntime creates a new virtual runtime
func NewVirtualRuntime() *VirtualRuntime {
	return &VirtualRuntime{}
}

// Name returns the runtime name
func (r *VirtualRuntime) Name() string {
	return "virtual"
}

// Available returns whether this runtime is available
func (r *VirtualRuntime) Available() bool {
	// Virtual runtime is always available as it's built-in
	return true
}

// Execute runs the rendered command lines sequentially in the embedded
// interpreter, stopping at the first line that exits non-zero. Each line
// gets a fresh interpreter so that a failing line cannot leak shell state
// into the next one.
func (r *VirtualRuntime) Execute(ctx *ExecutionContext) *Result {
	parser := syntax.NewParser()

	execCtx := ctx.Context
	if execCtx == nil {
		execCtx = context.Background()
	}

	for i, line := range ctx.Lines {
		ctx.debugf("exec %s: %s", ctx.Recipe.Name, line)

		prog, err := parser.Parse(strings.NewReader(line), ctx.Recipe.Name)
		if err != nil {
			return NewErrorResult(types.ExitInternal, fmt.Errorf("failed to parse command line: %w", err))
		}

		runner, err := interp.New(
			interp.Dir(ctx.WorkDir),
			interp.StdIO(ctx.IO.Stdin, ctx.IO.Stdout, ctx.IO.Stderr),
		)
		if err != nil {
			return NewErrorResult(types.ExitInternal, fmt.Errorf("failed to create interpreter: %w", err))
		}

		if err := runner.Run(execCtx, prog); err != nil {
			var exitStatus interp.ExitStatus
			if errors.As(err, &exitStatus) {
				return &Result{ExitCode: types.ExitCode(exitStatus), FailedLine: i}
			}
			return NewErrorResult(types.ExitInternal, fmt.Errorf("command line execution failed: %w", err))
		}
	}

	return NewSuccessResult()
}
