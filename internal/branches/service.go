package branches

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/temirov/git-workflow/internal/execshell"
	"github.com/temirov/git-workflow/internal/prompt"
	"github.com/temirov/git-workflow/internal/shared"
	"github.com/temirov/git-workflow/internal/ui"
	"github.com/temirov/git-workflow/internal/workflow"
)

const (
	gitExecutorMissingMessageConstant     = "git executor not configured"
	prompterMissingMessageConstant        = "prompter not configured"
	gitCheckoutSubcommandConstant         = "checkout"
	gitCreateBranchFlagConstant           = "-b"
	gitBranchSubcommandConstant           = "branch"
	gitDeleteBranchFlagConstant           = "-d"
	gitMergeSubcommandConstant            = "merge"
	gitNoFastForwardFlagConstant          = "--no-ff"
	gitPushSubcommandConstant             = "push"
	gitDeleteRemoteFlagConstant           = "--delete"
	branchSubjectConstant                 = "branch"
	deletionPromptConstant                = "Are you sure? (Y/N) "
	deletionCancelledMessageConstant      = "Deletion cancelled.\n"
	mergePromptTemplateConstant           = "Merge '%s' into '%s'? (Y/N) "
	mergeCancelledMessageConstant         = "Merge cancelled.\n"
	createFailureTemplateConstant         = "failed to create branch %s: %w"
	listFailureTemplateConstant           = "failed to list branches: %w"
	mergeFailureTemplateConstant          = "failed to merge %s into %s: %w"
	localDeletionFailureTemplateConstant  = "failed to delete local branch %s: %w"
	remoteDeletionFailureTemplateConstant = "failed to delete remote branch %s on %s: %w"
	checkoutFailureTemplateConstant       = "failed to checkout %s: %v"
	suggestionHintTemplateConstant        = "Did you mean '%s'?"
	suggestionSeparatorConstant           = "' or '"
	maximumSuggestionsConstant            = 3
)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrPrompterNotConfigured indicates a confirmation was needed but no prompter was provided.
var ErrPrompterNotConfigured = errors.New(prompterMissingMessageConstant)

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	GitExecutor shared.GitExecutor
	Prompter    prompt.Prompter
	Output      io.Writer
}

// Service runs the branch verbs.
type Service struct {
	executor shared.GitExecutor
	prompter prompt.Prompter
	output   io.Writer
	styles   ui.Styles
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
	return &Service{
		executor: dependencies.GitExecutor,
		prompter: dependencies.Prompter,
		output:   output,
		styles:   ui.NewStyles(output),
	}, nil
}

// CheckoutError reports a failed checkout and carries close matches among the local branches.
type CheckoutError struct {
	BranchName  string
	Suggestions []string
	Cause       error
}

func (checkoutError CheckoutError) Error() string {
	return fmt.Sprintf(checkoutFailureTemplateConstant, checkoutError.BranchName, checkoutError.Cause)
}

func (checkoutError CheckoutError) Unwrap() error { return checkoutError.Cause }

// Hint suggests the closest local branch names, if any.
func (checkoutError CheckoutError) Hint() string {
	if len(checkoutError.Suggestions) == 0 {
		return ""
	}
	return fmt.Sprintf(suggestionHintTemplateConstant, strings.Join(checkoutError.Suggestions, suggestionSeparatorConstant))
}

// Create validates and creates a <type>/<slug> branch from the current branch.
func (service *Service) Create(executionContext context.Context, repositoryContext workflow.RepositoryContext, branchType workflow.BranchType, words []string) (workflow.BranchCreationPlan, error) {
	plan, planError := repositoryContext.PlanBranchCreation(branchType, words)
	if planError != nil {
		return workflow.BranchCreationPlan{}, planError
	}

	if runError := ui.RunGit(executionContext, service.executor, repositoryContext.RootPath, service.output, gitCheckoutSubcommandConstant, gitCreateBranchFlagConstant, plan.BranchName, plan.SourceBranch); runError != nil {
		return workflow.BranchCreationPlan{}, fmt.Errorf(createFailureTemplateConstant, plan.BranchName, runError)
	}
	return plan, nil
}

// List prints the local branches with the current one highlighted.
func (service *Service) List(executionContext context.Context, repositoryContext workflow.RepositoryContext) error {
	result, listError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant},
		WorkingDirectory: repositoryContext.RootPath,
	})
	if listError != nil {
		return fmt.Errorf(listFailureTemplateConstant, listError)
	}
	if len(strings.TrimSpace(result.StandardOutput)) == 0 {
		return nil
	}
	_, writeError := io.WriteString(service.output, ui.HighlightCurrentBranch(service.styles, result.StandardOutput))
	return writeError
}

// Checkout switches to branchName. When git refuses and the name is not a local branch,
// the returned CheckoutError lists up to three similar local branch names.
func (service *Service) Checkout(executionContext context.Context, repositoryContext workflow.RepositoryContext, branchName string) error {
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return workflow.MissingNameError{Subject: branchSubjectConstant}
	}

	checkoutError := ui.RunGit(executionContext, service.executor, repositoryContext.RootPath, service.output, gitCheckoutSubcommandConstant, trimmedBranchName)
	if checkoutError == nil {
		return nil
	}
	failure := CheckoutError{BranchName: trimmedBranchName, Cause: checkoutError}
	if !repositoryContext.HasLocalBranch(trimmedBranchName) {
		failure.Suggestions = suggestBranches(trimmedBranchName, repositoryContext.LocalBranches)
	}
	return failure
}

// Development switches to the configured development branch.
func (service *Service) Development(executionContext context.Context, repositoryContext workflow.RepositoryContext) error {
	return service.Checkout(executionContext, repositoryContext, repositoryContext.DevelopmentBranch)
}

// MergeRelease merges the current release branch into the development branch with a merge
// commit and returns to the release branch. It reports false when the operator declined.
func (service *Service) MergeRelease(executionContext context.Context, repositoryContext workflow.RepositoryContext) (bool, error) {
	plan, planError := repositoryContext.PlanReleaseMerge()
	if planError != nil {
		return false, planError
	}

	confirmed, confirmError := service.confirm(fmt.Sprintf(mergePromptTemplateConstant, plan.SourceBranch, plan.TargetBranch))
	if confirmError != nil {
		return false, confirmError
	}
	if !confirmed {
		_, writeError := io.WriteString(service.output, mergeCancelledMessageConstant)
		return false, writeError
	}

	steps := [][]string{
		{gitCheckoutSubcommandConstant, plan.TargetBranch},
		{gitMergeSubcommandConstant, gitNoFastForwardFlagConstant, plan.SourceBranch},
		{gitCheckoutSubcommandConstant, plan.SourceBranch},
	}
	for _, arguments := range steps {
		if runError := ui.RunGit(executionContext, service.executor, repositoryContext.RootPath, service.output, arguments...); runError != nil {
			return true, fmt.Errorf(mergeFailureTemplateConstant, plan.SourceBranch, plan.TargetBranch, runError)
		}
	}
	return true, nil
}

// DeleteLocal removes a local branch without forcing; git refuses unmerged branches.
func (service *Service) DeleteLocal(executionContext context.Context, repositoryContext workflow.RepositoryContext, branchName string) error {
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return workflow.MissingNameError{Subject: branchSubjectConstant}
	}
	if runError := ui.RunGit(executionContext, service.executor, repositoryContext.RootPath, service.output, gitBranchSubcommandConstant, gitDeleteBranchFlagConstant, trimmedBranchName); runError != nil {
		return fmt.Errorf(localDeletionFailureTemplateConstant, trimmedBranchName, runError)
	}
	return nil
}

// DeleteRemote removes a branch from the configured remote.
func (service *Service) DeleteRemote(executionContext context.Context, repositoryContext workflow.RepositoryContext, branchName string) error {
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return workflow.MissingNameError{Subject: branchSubjectConstant}
	}
	if runError := ui.RunGit(executionContext, service.executor, repositoryContext.RootPath, service.output, gitPushSubcommandConstant, repositoryContext.RemoteName, gitDeleteRemoteFlagConstant, trimmedBranchName); runError != nil {
		return fmt.Errorf(remoteDeletionFailureTemplateConstant, trimmedBranchName, repositoryContext.RemoteName, runError)
	}
	return nil
}

// Delete confirms and then removes the branch locally and on the remote. Both steps run
// even when the first fails; a partial deletion is not rolled back. It reports false
// when the operator declined.
func (service *Service) Delete(executionContext context.Context, repositoryContext workflow.RepositoryContext, branchName string) (bool, error) {
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return false, workflow.MissingNameError{Subject: branchSubjectConstant}
	}
	if protectedError := repositoryContext.RequireDeletableBranch(trimmedBranchName); protectedError != nil {
		return false, protectedError
	}

	confirmed, confirmError := service.confirm(deletionPromptConstant)
	if confirmError != nil {
		return false, confirmError
	}
	if !confirmed {
		_, writeError := io.WriteString(service.output, deletionCancelledMessageConstant)
		return false, writeError
	}

	localError := service.DeleteLocal(executionContext, repositoryContext, trimmedBranchName)
	remoteError := service.DeleteRemote(executionContext, repositoryContext, trimmedBranchName)
	return true, errors.Join(localError, remoteError)
}

func (service *Service) confirm(question string) (bool, error) {
	if service.prompter == nil {
		return false, ErrPrompterNotConfigured
	}
	return service.prompter.Confirm(question)
}


func suggestBranches(branchName string, localBranches []string) []string {
	matches := fuzzy.Find(branchName, localBranches)
	suggestions := make([]string, 0, maximumSuggestionsConstant)
	for _, match := range matches {
		if len(suggestions) == maximumSuggestionsConstant {
			break
		}
		suggestions = append(suggestions, match.Str)
	}
	return suggestions
}
