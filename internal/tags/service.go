package tags

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/temirov/git-workflow/internal/execshell"
	"github.com/temirov/git-workflow/internal/prompt"
	"github.com/temirov/git-workflow/internal/shared"
	"github.com/temirov/git-workflow/internal/ui"
	"github.com/temirov/git-workflow/internal/workflow"
)

const (
	gitExecutorMissingMessageConstant     = "git executor not configured"
	prompterMissingMessageConstant        = "prompter not configured"
	gitTagSubcommandConstant              = "tag"
	gitListFlagConstant                   = "--list"
	gitAnnotateFlagConstant               = "-a"
	gitMessageFlagConstant                = "-m"
	gitDeleteTagFlagConstant              = "-d"
	gitPushSubcommandConstant             = "push"
	gitDeleteRemoteFlagConstant           = "--delete"
	remoteTagReferencePrefixConstant      = "refs/tags/"
	tagSubjectConstant                    = "tag"
	versionPromptConstant                 = "Tag version: "
	messagePromptConstant                 = "Tag message: "
	deletionPromptConstant                = "Are you sure? (Y/N) "
	deletionCancelledMessageConstant      = "Deletion cancelled.\n"
	listFailureTemplateConstant           = "failed to list tags: %w"
	createFailureTemplateConstant         = "failed to create tag %s: %w"
	pushFailureTemplateConstant           = "failed to push tag %s to %s: %w"
	localDeletionFailureTemplateConstant  = "failed to delete local tag %s: %w"
	remoteDeletionFailureTemplateConstant = "failed to delete remote tag %s on %s: %w"
)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrPrompterNotConfigured indicates an interactive verb ran without a prompter.
var ErrPrompterNotConfigured = errors.New(prompterMissingMessageConstant)

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	GitExecutor shared.GitExecutor
	Prompter    prompt.Prompter
	Output      io.Writer
}

// Service runs the tag verbs.
type Service struct {
	executor shared.GitExecutor
	prompter prompt.Prompter
	output   io.Writer
}

// Tag is an annotated tag created by Create.
type Tag struct {
	Version string
	Message string
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	output := dependencies.Output
	if output == nil {
		output = io.Discard
	}
	return &Service{executor: dependencies.GitExecutor, prompter: dependencies.Prompter, output: output}, nil
}

// List prints every tag.
func (service *Service) List(executionContext context.Context, repositoryContext workflow.RepositoryContext) error {
	result, listError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitTagSubcommandConstant, gitListFlagConstant},
		WorkingDirectory: repositoryContext.RootPath,
	})
	if listError != nil {
		return fmt.Errorf(listFailureTemplateConstant, listError)
	}
	_, writeError := io.WriteString(service.output, result.StandardOutput)
	return writeError
}

// Create prompts for a version and message, creates the annotated tag and pushes it.
// The version format is not validated.
func (service *Service) Create(executionContext context.Context, repositoryContext workflow.RepositoryContext) (Tag, error) {
	if service.prompter == nil {
		return Tag{}, ErrPrompterNotConfigured
	}

	version, versionError := service.prompter.Ask(versionPromptConstant)
	if versionError != nil {
		return Tag{}, versionError
	}
	version = strings.TrimSpace(version)
	if len(version) == 0 {
		return Tag{}, workflow.MissingNameError{Subject: tagSubjectConstant}
	}

	message, messageError := service.prompter.Ask(messagePromptConstant)
	if messageError != nil {
		return Tag{}, messageError
	}
	message = strings.TrimSpace(message)
	if len(message) == 0 {
		return Tag{}, workflow.MissingMessageError{Subject: tagSubjectConstant}
	}

	if runError := ui.RunGit(executionContext, service.executor, repositoryContext.RootPath, service.output, gitTagSubcommandConstant, gitAnnotateFlagConstant, version, gitMessageFlagConstant, message); runError != nil {
		return Tag{}, fmt.Errorf(createFailureTemplateConstant, version, runError)
	}
	if runError := ui.RunGit(executionContext, service.executor, repositoryContext.RootPath, service.output, gitPushSubcommandConstant, repositoryContext.RemoteName, version); runError != nil {
		return Tag{}, fmt.Errorf(pushFailureTemplateConstant, version, repositoryContext.RemoteName, runError)
	}
	return Tag{Version: version, Message: message}, nil
}

// DeleteLocal removes a local tag.
func (service *Service) DeleteLocal(executionContext context.Context, repositoryContext workflow.RepositoryContext, tagName string) error {
	trimmedTagName := strings.TrimSpace(tagName)
	if len(trimmedTagName) == 0 {
		return workflow.MissingNameError{Subject: tagSubjectConstant}
	}
	if runError := ui.RunGit(executionContext, service.executor, repositoryContext.RootPath, service.output, gitTagSubcommandConstant, gitDeleteTagFlagConstant, trimmedTagName); runError != nil {
		return fmt.Errorf(localDeletionFailureTemplateConstant, trimmedTagName, runError)
	}
	return nil
}

// DeleteRemote removes a tag from the configured remote. The fully qualified reference
// keeps a branch with the same name untouched.
func (service *Service) DeleteRemote(executionContext context.Context, repositoryContext workflow.RepositoryContext, tagName string) error {
	trimmedTagName := strings.TrimSpace(tagName)
	if len(trimmedTagName) == 0 {
		return workflow.MissingNameError{Subject: tagSubjectConstant}
	}
	reference := remoteTagReferencePrefixConstant + trimmedTagName
	if runError := ui.RunGit(executionContext, service.executor, repositoryContext.RootPath, service.output, gitPushSubcommandConstant, repositoryContext.RemoteName, gitDeleteRemoteFlagConstant, reference); runError != nil {
		return fmt.Errorf(remoteDeletionFailureTemplateConstant, trimmedTagName, repositoryContext.RemoteName, runError)
	}
	return nil
}

// Delete confirms and then removes the tag locally and on the remote, attempting both steps.
// It reports false when the operator declined.
func (service *Service) Delete(executionContext context.Context, repositoryContext workflow.RepositoryContext, tagName string) (bool, error) {
	trimmedTagName := strings.TrimSpace(tagName)
	if len(trimmedTagName) == 0 {
		return false, workflow.MissingNameError{Subject: tagSubjectConstant}
	}
	if service.prompter == nil {
		return false, ErrPrompterNotConfigured
	}

	confirmed, confirmError := service.prompter.Confirm(deletionPromptConstant)
	if confirmError != nil {
		return false, confirmError
	}
	if !confirmed {
		_, writeError := io.WriteString(service.output, deletionCancelledMessageConstant)
		return false, writeError
	}

	localError := service.DeleteLocal(executionContext, repositoryContext, trimmedTagName)
	remoteError := service.DeleteRemote(executionContext, repositoryContext, trimmedTagName)
	return true, errors.Join(localError, remoteError)
}

