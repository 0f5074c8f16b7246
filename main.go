package main

import (
	"os"

	"github.com/temirov/git-workflow/cmd/cli"
	"github.com/temirov/git-workflow/internal/ui"
	"github.com/temirov/git-workflow/internal/workflow"
)

// main executes the git-workflow command-line application.
func main() {
	executionError := cli.Execute()
	if executionError != nil {
		ui.NewErrorRenderer(os.Stderr).Render(executionError)
	}
	os.Exit(workflow.ExitCode(executionError))
}
