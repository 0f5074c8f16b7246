package tags

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/git-workflow/internal/dependencies"
	"github.com/temirov/git-workflow/internal/prompt"
	"github.com/temirov/git-workflow/internal/shared"
	"github.com/temirov/git-workflow/internal/workflow"
)

const (
	tagsUseConstant              = "tags"
	tagsShortConstant            = "List all tags"
	tagUseConstant               = "tag"
	tagShortConstant             = "Create an annotated tag and push it"
	tagLongConstant              = "tag prompts for a version and a message, runs git tag -a <version> -m <message> and pushes the tag to the configured remote."
	deleteLocalTagUseConstant    = "delete-local-tag <tag>"
	deleteLocalTagShortConstant  = "Delete a local tag"
	deleteRemoteTagUseConstant   = "delete-remote-tag <tag>"
	deleteRemoteTagShortConstant = "Delete a tag on the configured remote"
	deleteTagUseConstant         = "delete-tag <tag>"
	deleteTagShortConstant       = "Delete a tag locally and on the remote after confirmation"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the workflow settings.
type ConfigurationProvider func() workflow.Settings

// CommandBuilder assembles the tag verbs.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	GitExecutor           shared.GitExecutor
	RepositoryInspector   workflow.RepositoryInspector
	Prompter              prompt.Prompter
	WorkingDirectory      string
}

// Build constructs every tag command.
func (builder *CommandBuilder) Build() ([]*cobra.Command, error) {
	return []*cobra.Command{
		{
			Use:   tagsUseConstant,
			Short: tagsShortConstant,
			Args:  cobra.NoArgs,
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, _ []string) error {
				return service.List(command.Context(), repositoryContext)
			}),
		},
		{
			Use:   tagUseConstant,
			Short: tagShortConstant,
			Long:  tagLongConstant,
			Args:  cobra.NoArgs,
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, _ []string) error {
				_, createError := service.Create(command.Context(), repositoryContext)
				return createError
			}),
		},
		{
			Use:   deleteLocalTagUseConstant,
			Short: deleteLocalTagShortConstant,
			Args:  cobra.MaximumNArgs(1),
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, arguments []string) error {
				return service.DeleteLocal(command.Context(), repositoryContext, firstArgument(arguments))
			}),
		},
		{
			Use:   deleteRemoteTagUseConstant,
			Short: deleteRemoteTagShortConstant,
			Args:  cobra.MaximumNArgs(1),
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, arguments []string) error {
				return service.DeleteRemote(command.Context(), repositoryContext, firstArgument(arguments))
			}),
		},
		{
			Use:   deleteTagUseConstant,
			Short: deleteTagShortConstant,
			Args:  cobra.MaximumNArgs(1),
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, arguments []string) error {
				_, deleteError := service.Delete(command.Context(), repositoryContext, firstArgument(arguments))
				return deleteError
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

		service, serviceError := NewService(ServiceDependencies{
			GitExecutor: environment.GitExecutor,
			Prompter:    dependencies.ResolvePrompter(builder.Prompter, command.InOrStdin(), command.OutOrStdout(), command.ErrOrStderr()),
			Output:      command.OutOrStdout(),
		})
		if serviceError != nil {
			return serviceError
		}

		return action(command, service, environment.RepositoryContext, arguments)
	}
}

func firstArgument(arguments []string) string {
	if len(arguments) == 0 {
		return ""
	}
	return arguments[0]
}
