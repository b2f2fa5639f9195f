// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		RunfileNotFoundId,
		RunfileParseErrorId,
		RecipeNotFoundId,
		RecipeUsageErrorId,
		ShellNotFoundId,
		ConfigLoadFailedId,
		InvalidRuntimeModeId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// IDs start at 1 (iota + 1)
	if RunfileNotFoundId != 1 {
		t.Errorf("RunfileNotFoundId = %d, want 1", RunfileNotFoundId)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{RunfileNotFoundId, false, "No runfile found"},
		{RunfileParseErrorId, false, "Failed to parse"},
		{RecipeNotFoundId, false, "Recipe not found"},
		{RecipeUsageErrorId, false, "Wrong number of arguments"},
		{ShellNotFoundId, false, "Shell not found"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{InvalidRuntimeModeId, false, "Invalid runtime mode"},
		{Id(9999), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}

			if tt.contains != "" && !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain '%s'", tt.id, tt.contains)
			}
		})
	}
}

func TestValues(t *testing.T) {
	all := Values()

	if len(all) != 7 {
		t.Errorf("Values() returned %d issues, want 7", len(all))
	}

	for _, issue := range all {
		if issue.Id() == 0 {
			t.Error("found issue with ID 0")
		}
		if issue.MarkdownMsg() == "" {
			t.Errorf("issue %d has empty MarkdownMsg", issue.Id())
		}
	}
}

func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	for _, issue := range Values() {
		rendered, err := issue.Render("")
		if err != nil {
			t.Errorf("issue %d failed to render: %v", issue.Id(), err)
		}
		if rendered == "" {
			t.Errorf("issue %d rendered to empty string", issue.Id())
		}
	}
}

func TestIssue_Render_WithLinks(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	testIssue := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test Issue\n\nThis is a test.",
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if !strings.Contains(rendered, "See also") {
		t.Error("Render() with links should contain 'See also'")
	}
}

func TestIssue_Render_NoLinks(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	testIssue := &Issue{
		id:    Id(9998),
		mdMsg: "# Test Issue\n\nNo links here.",
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not contain 'See also'")
	}
}
