// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"runner-cli/pkg/runfile"

	"github.com/spf13/cobra"
)

// listCmd prints every recipe with its usage line.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available recipes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if loadErr != nil {
			return wrapLoadError(loadErr)
		}
		renderRecipeList(cmd.OutOrStdout(), loadedRegistry)
		return nil
	},
}

// renderRecipeList prints recipes in definition order, the order the
// runfile's author chose.
func renderRecipeList(w io.Writer, reg *runfile.Registry) {
	title := TitleStyle.Render("Available recipes")
	if loadedRunfile != nil {
		title += SubtitleStyle.Render(" (" + loadedRunfile.Path + ")")
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	for _, r := range reg.Recipes() {
		fmt.Fprintf(w, "  %s\n", RecipeStyle.Render(r.UsageString()))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, SubtitleStyle.Render("Run a recipe with: runner <recipe> [arg...]"))
}
