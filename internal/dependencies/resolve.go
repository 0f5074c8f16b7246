package dependencies

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/temirov/git-workflow/internal/browser"
	"github.com/temirov/git-workflow/internal/execshell"
	"github.com/temirov/git-workflow/internal/gitrepo"
	"github.com/temirov/git-workflow/internal/prompt"
	"github.com/temirov/git-workflow/internal/shared"
	"github.com/temirov/git-workflow/internal/workflow"
)

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default notifying observers.
func ResolveGitExecutor(existing shared.GitExecutor, logger *zap.Logger, observers ...execshell.CommandEventObserver) (shared.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}
	shellExecutor, creationError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner(), observers...)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolveWorkingDirectory returns the provided directory or the process working directory.
func ResolveWorkingDirectory(existing string) (string, error) {
	if trimmedDirectory := strings.TrimSpace(existing); len(trimmedDirectory) > 0 {
		return trimmedDirectory, nil
	}
	return os.Getwd()
}

// ResolveRepositoryInspector returns the provided inspector or a go-git backed default.
func ResolveRepositoryInspector(existing workflow.RepositoryInspector) workflow.RepositoryInspector {
	if existing != nil {
		return existing
	}
	return gitrepo.NewInspector()
}

// ResolvePrompter returns the provided prompter, a survey prompter when both streams are
// terminals, or a line reader otherwise.
func ResolvePrompter(existing prompt.Prompter, input io.Reader, output io.Writer, errorsOutput io.Writer) prompt.Prompter {
	if existing != nil {
		return existing
	}
	inputFile, inputIsFile := input.(*os.File)
	outputFile, outputIsFile := output.(*os.File)
	if inputIsFile && outputIsFile && isTerminal(inputFile) && isTerminal(outputFile) {
		return prompt.NewSurveyPrompter(inputFile, outputFile, errorsOutput)
	}
	return prompt.NewIOPrompter(input, output)
}

// ResolveURLOpener returns the provided opener or a browser opener whose launcher runs through a silent shell executor.
func ResolveURLOpener(existing shared.URLOpener, logger *zap.Logger, output io.Writer, launchBrowser bool) (shared.URLOpener, error) {
	if existing != nil {
		return existing, nil
	}
	launcherExecutor, executorError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
	if executorError != nil {
		return nil, executorError
	}
	opener, openerError := browser.NewOpener(logger, launcherExecutor, output, browser.Options{LaunchBrowser: launchBrowser})
	if openerError != nil {
		return nil, openerError
	}
	return opener, nil
}

// ResolveClock returns the provided clock or the system clock.
func ResolveClock(existing shared.Clock) shared.Clock {
	if existing != nil {
		return existing
	}
	return shared.SystemClock{}
}

func isTerminal(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
