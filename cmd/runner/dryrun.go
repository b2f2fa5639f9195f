// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"runner-cli/pkg/runfile"
)

// renderDryRun prints the resolved execution plan without executing.
// It shows the recipe name, the bound arguments, the working directory,
// and every rendered command line — everything a user needs to understand
// what runner would do.
func renderDryRun(w io.Writer, recipe *runfile.Recipe, args, lines []string) {
	fmt.Fprintln(w, TitleStyle.Render("Dry Run"))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Recipe:"), recipe.Name)
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Usage:"), recipe.UsageString())
	if len(args) > 0 {
		fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Arguments:"), strings.Join(args, " "))
	}
	if loadedRunfile != nil {
		fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Runfile:"), loadedRunfile.Path)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, VerboseHighlightStyle.Render("  Command lines:"))
	for _, line := range lines {
		fmt.Fprintf(w, "    %s\n", line)
	}

	fmt.Fprintln(w)
}
