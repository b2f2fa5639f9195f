// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	RunfileNotFoundId Id = iota + 1
	RunfileParseErrorId
	RecipeNotFoundId
	RecipeUsageErrorId
	ShellNotFoundId
	ConfigLoadFailedId
	InvalidRuntimeModeId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	runfileNotFoundIssue = &Issue{
		id: RunfileNotFoundId,
		mdMsg: `
# No runfile found!

We searched for a runfile but couldn't find one in the expected locations.

## Search locations (in order of precedence):
1. The path given via --runfile
2. The current directory ('runfile' or 'Runfile')
3. Parent directories, walking upward to the filesystem root

## Things you can try:
- Create a runfile in your current directory:
~~~
build target profile="debug":
    cargo build --target {{target}} --profile {{profile}}

run *args="":
    cross run --release {{args}}
~~~

- Or point at one explicitly:
~~~
$ runner --runfile /path/to/runfile <recipe>
~~~`,
	}

	runfileParseErrorIssue = &Issue{
		id: RunfileParseErrorId,
		mdMsg: `
# Failed to parse runfile!

Your runfile contains a syntax error.

## Common issues:
- A recipe header missing its trailing colon
- An indented command line before any recipe header
- A required parameter declared after one with a default
- A variadic ('*'-prefixed) parameter that is not last
- A body line referencing a placeholder the header never declares
- Two recipes sharing the same name

## Things you can try:
- Check the error message above for the exact line number
- Run with verbose mode for more details:
~~~
$ runner --verbose list
~~~

## Example of a valid recipe:
~~~
deploy env region="us-east-1" *flags="":
    ./deploy.sh --env {{env}} --region {{region}} {{flags}}
~~~`,
	}

	recipeNotFoundIssue = &Issue{
		id: RecipeNotFoundId,
		mdMsg: `
# Recipe not found!

The recipe you specified is not defined in the loaded runfile.

## Things you can try:
- List all available recipes:
~~~
$ runner list
~~~

- Check for typos in the recipe name
- Verify the right runfile was loaded (use --verbose to see its path)`,
	}

	recipeUsageErrorIssue = &Issue{
		id: RecipeUsageErrorId,
		mdMsg: `
# Wrong number of arguments!

The recipe was invoked with too few or too many arguments.

## How arguments bind:
- Tokens fill parameters left to right
- Parameters with a default may be omitted
- A variadic ('*'-prefixed) last parameter soaks up every remaining token

## Things you can try:
- Check the recipe's usage line:
~~~
$ runner list
~~~

- Quote arguments containing spaces so the shell passes them as one token`,
	}

	shellNotFoundIssue = &Issue{
		id: ShellNotFoundId,
		mdMsg: `
# Shell not found!

Could not find a suitable shell for the 'native' runtime.

## Shells we look for:
- Linux/macOS: $SHELL, bash, sh
- Windows: pwsh, powershell, cmd

## Things you can try:
- Install bash or another POSIX shell
- Set the SHELL environment variable
- Use the 'virtual' runtime instead (built-in shell):
~~~
$ runner --runtime virtual <recipe>
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the runner configuration file.

## Configuration file locations:
- Linux: ~/.config/runner/config.cue
- macOS: ~/Library/Application Support/runner/config.cue
- Windows: %APPDATA%\runner\config.cue

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/runner/config.cue
~~~

## Example configuration:
~~~cue
shell: "/bin/bash"
default_runtime: "native"

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	invalidRuntimeModeIssue = &Issue{
		id: InvalidRuntimeModeId,
		mdMsg: `
# Invalid runtime mode!

The specified runtime mode is not recognized.

## Valid runtime modes:
- **native**: Execute using system shell
- **virtual**: Execute using built-in sh interpreter

## Example:
~~~
$ runner --runtime virtual <recipe>
~~~`,
	}

	issues = map[Id]*Issue{
		runfileNotFoundIssue.Id():    runfileNotFoundIssue,
		runfileParseErrorIssue.Id():  runfileParseErrorIssue,
		recipeNotFoundIssue.Id():     recipeNotFoundIssue,
		recipeUsageErrorIssue.Id():   recipeUsageErrorIssue,
		shellNotFoundIssue.Id():      shellNotFoundIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		invalidRuntimeModeIssue.Id(): invalidRuntimeModeIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
