// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"runner-cli/internal/config"
	"runner-cli/internal/discovery"
	"runner-cli/internal/issue"
	"runner-cli/internal/runtime"
	"runner-cli/pkg/runfile"
)

// issueIdForError maps an error chain to the catalog entry explaining it.
// Not every failure has a catalog entry; binding and parse details already
// carry their own messages.
func issueIdForError(err error) (issue.Id, bool) {
	switch {
	case errors.Is(err, discovery.ErrRunfileNotFound):
		return issue.RunfileNotFoundId, true
	case errors.Is(err, runfile.ErrParse), errors.Is(err, runfile.ErrDuplicateRecipe):
		return issue.RunfileParseErrorId, true
	case errors.Is(err, runfile.ErrUnknownRecipe):
		return issue.RecipeNotFoundId, true
	case errors.Is(err, runfile.ErrMissingArgument), errors.Is(err, runfile.ErrExtraArgument):
		return issue.RecipeUsageErrorId, true
	case errors.Is(err, runtime.ErrShellNotFound):
		return issue.ShellNotFoundId, true
	case errors.Is(err, config.ErrInvalidConfigRuntimeMode):
		return issue.InvalidRuntimeModeId, true
	default:
		return 0, false
	}
}

// reportIssue renders the catalog entry for err to w, when one exists.
func reportIssue(w io.Writer, err error) {
	if id, ok := issueIdForError(err); ok {
		reportIssueId(w, id)
	}
}

// reportIssueId renders a catalog entry with the configured color scheme.
// Rendering problems are swallowed; the plain error message still reaches
// the user through the normal error path.
func reportIssueId(w io.Writer, id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}

	rendered, err := entry.Render(issueStyle())
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}

// issueStyle maps the configured color scheme to a glamour style name.
func issueStyle() string {
	if config.Get().UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
