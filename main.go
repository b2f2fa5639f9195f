// SPDX-License-Identifier: MPL-2.0

package main

import cmd "runner-cli/cmd/runner"

func main() {
	cmd.Execute()
}
