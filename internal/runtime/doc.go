// SPDX-License-Identifier: MPL-2.0

// Package runtime executes rendered recipe command lines.
//
// Two implementations exist: NativeRuntime spawns the system shell for each
// line, and VirtualRuntime runs lines in the embedded mvdan/sh interpreter.
// Both execute lines sequentially and stop at the first non-zero exit.
package runtime
