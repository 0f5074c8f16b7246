package publish

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/git-workflow/internal/dependencies"
	"github.com/temirov/git-workflow/internal/shared"
	"github.com/temirov/git-workflow/internal/workflow"
)

const (
	commitUseConstant        = "commit <message...>"
	commitShortConstant      = "Stage all changes, commit them and push the current branch"
	commitExampleConstant    = "git-workflow commit fix typo in readme"
	pullRequestUseConstant   = "pull-request [target]"
	pullRequestShortConstant = "Open the pull request compare page for the current branch"
	pullRequestLongConstant  = "pull-request opens the hosting service compare page proposing the current branch into its default target: the development branch for feature, bug and refactor branches and the production branch for release and hotfix branches. Release and hotfix branches may target the development branch explicitly."
	deployUseConstant        = "deploy"
	deployShortConstant      = "Open a pull request proposing the development branch into production"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the workflow settings.
type ConfigurationProvider func() workflow.Settings

// CommandBuilder assembles the publishing verbs.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	GitExecutor           shared.GitExecutor
	RepositoryInspector   workflow.RepositoryInspector
	URLOpener             shared.URLOpener
	Clock                 shared.Clock
	WorkingDirectory      string
}

// Build constructs the commit, pull-request and deploy commands.
func (builder *CommandBuilder) Build() ([]*cobra.Command, error) {
	return []*cobra.Command{
		{
			Use:     commitUseConstant,
			Short:   commitShortConstant,
			Example: commitExampleConstant,
			Args:    cobra.ArbitraryArgs,
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, arguments []string) error {
				return service.Commit(command.Context(), repositoryContext, arguments)
			}),
		},
		{
			Use:   pullRequestUseConstant,
			Short: pullRequestShortConstant,
			Long:  pullRequestLongConstant,
			Args:  cobra.MaximumNArgs(1),
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, arguments []string) error {
				requestedTarget := ""
				if len(arguments) > 0 {
					requestedTarget = arguments[0]
				}
				_, pullRequestError := service.PullRequest(command.Context(), repositoryContext, requestedTarget)
				return pullRequestError
			}),
		},
		{
			Use:   deployUseConstant,
			Short: deployShortConstant,
			Args:  cobra.NoArgs,
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, _ []string) error {
				_, deployError := service.Deploy(command.Context(), repositoryContext)
				return deployError
			}),
		},
	}, nil
}

type serviceAction func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, arguments []string) error

func (builder *CommandBuilder) withService(action serviceAction) func(*cobra.Command, []string) error {
	return func(command *cobra.Command, arguments []string) error {
		environment, environmentError := dependencies.ResolveCommandEnvironment(command, dependencies.CommandEnvironmentOptions{
			LoggerProvider:      builder.LoggerProvider,
			SettingsProvider:    builder.ConfigurationProvider,
			GitExecutor:         builder.GitExecutor,
			RepositoryInspector: builder.RepositoryInspector,
			WorkingDirectory:    builder.WorkingDirectory,
		})
		if environmentError != nil {
			return environmentError
		}

		opener, openerError := dependencies.ResolveURLOpener(builder.URLOpener, environment.Logger, command.OutOrStdout(), environment.Settings.OpenBrowser)
		if openerError != nil {
			return openerError
		}

		service, serviceError := NewService(ServiceDependencies{
			GitExecutor: environment.GitExecutor,
			URLOpener:   opener,
			Clock:       dependencies.ResolveClock(builder.Clock),
			Output:      command.OutOrStdout(),
		})
		if serviceError != nil {
			return serviceError
		}

		return action(command, service, environment.RepositoryContext, arguments)
	}
}
