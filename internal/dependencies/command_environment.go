package dependencies

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/git-workflow/internal/shared"
	"github.com/temirov/git-workflow/internal/ui"
	"github.com/temirov/git-workflow/internal/workflow"
)

// CommandEnvironmentOptions carries the collaborators a command builder was configured with.
// Nil fields fall back to their defaults.
type CommandEnvironmentOptions struct {
	LoggerProvider      func() *zap.Logger
	SettingsProvider    func() workflow.Settings
	GitExecutor         shared.GitExecutor
	RepositoryInspector workflow.RepositoryInspector
	WorkingDirectory    string
}

// CommandEnvironment is the per-invocation state shared by every workflow verb.
type CommandEnvironment struct {
	Logger            *zap.Logger
	Settings          workflow.Settings
	RepositoryContext workflow.RepositoryContext
	GitExecutor       shared.GitExecutor
}

// ResolveCommandEnvironment loads the repository context once and wires a git executor
// that echoes each command to the command's standard output.
func ResolveCommandEnvironment(command *cobra.Command, options CommandEnvironmentOptions) (CommandEnvironment, error) {
	logger := ResolveLogger(options.LoggerProvider)
	settings := ResolveSettings(options.SettingsProvider)

	workingDirectory, directoryError := ResolveWorkingDirectory(options.WorkingDirectory)
	if directoryError != nil {
		return CommandEnvironment{}, directoryError
	}
	repositoryContext, contextError := workflow.LoadRepositoryContext(ResolveRepositoryInspector(options.RepositoryInspector), workingDirectory, settings)
	if contextError != nil {
		return CommandEnvironment{}, contextError
	}

	gitExecutor, executorError := ResolveGitExecutor(options.GitExecutor, logger, ui.NewCommandEchoObserver(command.OutOrStdout()))
	if executorError != nil {
		return CommandEnvironment{}, executorError
	}

	return CommandEnvironment{
		Logger:            logger,
		Settings:          settings,
		RepositoryContext: repositoryContext,
		GitExecutor:       gitExecutor,
	}, nil
}

// ResolveLogger returns the provider's logger or a no-op logger.
func ResolveLogger(provider func() *zap.Logger) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	if logger := provider(); logger != nil {
		return logger
	}
	return zap.NewNop()
}

// ResolveSettings returns the sanitized provider settings or the defaults.
func ResolveSettings(provider func() workflow.Settings) workflow.Settings {
	if provider == nil {
		return workflow.DefaultSettings()
	}
	return provider().Sanitize()
}
