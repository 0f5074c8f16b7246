package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/temirov/git-workflow/internal/execshell"
	"github.com/temirov/git-workflow/internal/shared"
)

const (
	commandEchoPrefixConstant     = "----->"
	commandEchoTemplateConstant   = "%s %s\n"
	outputLineSeparatorConstant   = "\n"
	commandOutputIndentConstant   = "       "
	commandOutputTemplateConstant = "%s%s\n"
)

// CommandEchoObserver prints every git command before it runs so the operator sees exactly what is executed.
type CommandEchoObserver struct {
	output io.Writer
	styles Styles
}

// NewCommandEchoObserver constructs an observer writing to output.
func NewCommandEchoObserver(output io.Writer) *CommandEchoObserver {
	if output == nil {
		output = io.Discard
	}
	return &CommandEchoObserver{output: output, styles: NewStyles(output)}
}

// CommandStarted implements execshell.CommandEventObserver by echoing git invocations.
func (observer *CommandEchoObserver) CommandStarted(command execshell.ShellCommand) {
	if observer == nil || command.Name != execshell.CommandGit {
		return
	}
	fmt.Fprintf(observer.output, commandEchoTemplateConstant, observer.styles.Echo.Render(commandEchoPrefixConstant), command.CommandLine())
}

// CommandCompleted implements execshell.CommandEventObserver. Failures are reported by the error renderer.
func (observer *CommandEchoObserver) CommandCompleted(execshell.ShellCommand, execshell.ExecutionResult) {}

// CommandExecutionFailed implements execshell.CommandEventObserver.
func (observer *CommandEchoObserver) CommandExecutionFailed(execshell.ShellCommand, error) {}

// WriteCommandOutput relays the trimmed output git produced for a mutating command, indented under its echo.
func WriteCommandOutput(output io.Writer, result execshell.ExecutionResult) error {
	combinedOutput := strings.TrimSpace(strings.Join([]string{strings.TrimSpace(result.StandardOutput), strings.TrimSpace(result.StandardError)}, outputLineSeparatorConstant))
	if len(combinedOutput) == 0 {
		return nil
	}
	for _, line := range strings.Split(combinedOutput, outputLineSeparatorConstant) {
		if _, writeError := fmt.Fprintf(output, commandOutputTemplateConstant, commandOutputIndentConstant, line); writeError != nil {
			return writeError
		}
	}
	return nil
}

// RunGit executes a mutating git command at the repository root and relays its output.
func RunGit(executionContext context.Context, executor shared.GitExecutor, rootPath string, output io.Writer, arguments ...string) error {
	result, executionError := executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: rootPath,
	})
	if executionError != nil {
		return executionError
	}
	return WriteCommandOutput(output, result)
}
