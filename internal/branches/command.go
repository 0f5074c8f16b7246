package branches

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/git-workflow/internal/dependencies"
	"github.com/temirov/git-workflow/internal/prompt"
	"github.com/temirov/git-workflow/internal/shared"
	"github.com/temirov/git-workflow/internal/workflow"
)

const (
	createUsageSuffixConstant             = " <words...>"
	createShortTemplateConstant           = "Create a %s branch from %s"
	branchesUseConstant                   = "branches"
	branchesShortConstant                 = "List local branches, highlighting the current one"
	checkoutUseConstant                   = "checkout <branch>"
	checkoutShortConstant                 = "Switch to an existing branch"
	developmentUseConstant                = "development"
	developmentShortConstant              = "Switch to the development branch"
	mergeReleaseUseConstant               = "merge-release"
	mergeReleaseShortConstant             = "Merge the current release branch into the development branch"
	mergeReleaseLongConstant              = "merge-release asks for confirmation, checks out the development branch, merges the current release branch with --no-ff and returns to the release branch. Open the production pull request afterwards with pull-request."
	deleteLocalBranchUseConstant          = "delete-local-branch <branch>"
	deleteLocalBranchShortConstant        = "Delete a local branch (refuses unmerged branches)"
	deleteRemoteBranchUseConstant         = "delete-remote-branch <branch>"
	deleteRemoteBranchShortConstant       = "Delete a branch on the configured remote"
	deleteBranchUseConstant               = "delete-branch <branch>"
	deleteBranchShortConstant             = "Delete a branch locally and on the remote after confirmation"
	deleteBranchLongConstant              = "delete-branch refuses the development and production branches, asks for confirmation, then deletes the branch locally and on the remote. Both deletions are attempted even if the first one fails."
	productionRoleDescriptionConstant     = "the production branch"
	developmentRoleDescriptionConstant    = "the development branch"
	createExampleTemplateConstant         = "git-workflow %s add login form"
	createLongTemplateConstant            = "%s joins the words with hyphens and runs git checkout -b %s/<words> from %s."
	createRoleListSeparatorConstant       = " or "
	createRoleDescriptionFallbackConstant = "the configured source"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the workflow settings.
type ConfigurationProvider func() workflow.Settings

// CommandBuilder assembles the branch verbs.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	GitExecutor           shared.GitExecutor
	RepositoryInspector   workflow.RepositoryInspector
	Prompter              prompt.Prompter
	WorkingDirectory      string
}

// Build constructs every branch command.
func (builder *CommandBuilder) Build() ([]*cobra.Command, error) {
	commands := make([]*cobra.Command, 0, len(workflow.Rules())+7)
	for _, rule := range workflow.Rules() {
		commands = append(commands, builder.buildCreateCommand(rule))
	}

	commands = append(commands,
		&cobra.Command{
			Use:   branchesUseConstant,
			Short: branchesShortConstant,
			Args:  cobra.NoArgs,
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, _ []string) error {
				return service.List(command.Context(), repositoryContext)
			}),
		},
		&cobra.Command{
			Use:   checkoutUseConstant,
			Short: checkoutShortConstant,
			Args:  cobra.MaximumNArgs(1),
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, arguments []string) error {
				return service.Checkout(command.Context(), repositoryContext, firstArgument(arguments))
			}),
		},
		&cobra.Command{
			Use:   developmentUseConstant,
			Short: developmentShortConstant,
			Args:  cobra.NoArgs,
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, _ []string) error {
				return service.Development(command.Context(), repositoryContext)
			}),
		},
		&cobra.Command{
			Use:   mergeReleaseUseConstant,
			Short: mergeReleaseShortConstant,
			Long:  mergeReleaseLongConstant,
			Args:  cobra.NoArgs,
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, _ []string) error {
				_, mergeError := service.MergeRelease(command.Context(), repositoryContext)
				return mergeError
			}),
		},
		&cobra.Command{
			Use:   deleteLocalBranchUseConstant,
			Short: deleteLocalBranchShortConstant,
			Args:  cobra.MaximumNArgs(1),
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, arguments []string) error {
				return service.DeleteLocal(command.Context(), repositoryContext, firstArgument(arguments))
			}),
		},
		&cobra.Command{
			Use:   deleteRemoteBranchUseConstant,
			Short: deleteRemoteBranchShortConstant,
			Args:  cobra.MaximumNArgs(1),
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, arguments []string) error {
				return service.DeleteRemote(command.Context(), repositoryContext, firstArgument(arguments))
			}),
		},
		&cobra.Command{
			Use:   deleteBranchUseConstant,
			Short: deleteBranchShortConstant,
			Long:  deleteBranchLongConstant,
			Args:  cobra.MaximumNArgs(1),
			RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, arguments []string) error {
				_, deleteError := service.Delete(command.Context(), repositoryContext, firstArgument(arguments))
				return deleteError
			}),
		},
	)

	return commands, nil
}

func (builder *CommandBuilder) buildCreateCommand(rule workflow.Rule) *cobra.Command {
	branchType := rule.Type
	sourceDescription := describeRoles(rule.Sources)
	return &cobra.Command{
		Use:     string(branchType) + createUsageSuffixConstant,
		Short:   fmt.Sprintf(createShortTemplateConstant, branchType, sourceDescription),
		Long:    fmt.Sprintf(createLongTemplateConstant, branchType, branchType, sourceDescription),
		Example: fmt.Sprintf(createExampleTemplateConstant, branchType),
		Args:    cobra.ArbitraryArgs,
		RunE: builder.withService(func(command *cobra.Command, service *Service, repositoryContext workflow.RepositoryContext, arguments []string) error {
			_, createError := service.Create(command.Context(), repositoryContext, branchType, arguments)
			return createError
		}),
	}
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

func describeRoles(roles []workflow.BranchRole) string {
	descriptions := make([]string, 0, len(roles))
	for _, role := range roles {
		switch role {
		case workflow.BranchRoleProduction:
			descriptions = append(descriptions, productionRoleDescriptionConstant)
		case workflow.BranchRoleDevelopment:
			descriptions = append(descriptions, developmentRoleDescriptionConstant)
		}
	}
	if len(descriptions) == 0 {
		return createRoleDescriptionFallbackConstant
	}
	return strings.Join(descriptions, createRoleListSeparatorConstant)
}

func firstArgument(arguments []string) string {
	if len(arguments) == 0 {
		return ""
	}
	return arguments[0]
}
