package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/temirov/git-workflow/internal/shared"
	"github.com/temirov/git-workflow/internal/ui"
	"github.com/temirov/git-workflow/internal/workflow"
)

const (
	gitExecutorMissingMessageConstant = "git executor not configured"
	urlOpenerMissingMessageConstant   = "url opener not configured"
	gitAddSubcommandConstant          = "add"
	gitAllFlagConstant                = "--all"
	gitCommitSubcommandConstant       = "commit"
	gitMessageFlagConstant            = "-m"
	gitPushSubcommandConstant         = "push"
	gitSetUpstreamFlagConstant        = "--set-upstream"
	commitSubjectConstant             = "commit"
	commitMessageSeparatorConstant    = " "
	deployTitleLayoutConstant         = "2006-01-02 15:04"
	deployTitlePrefixConstant         = "Deploy "
	stageFailureTemplateConstant      = "failed to stage changes: %w"
	commitFailureTemplateConstant     = "failed to commit: %w"
	pushFailureTemplateConstant       = "failed to push %s to %s: %w"
	openFailureTemplateConstant       = "failed to open %s: %w"
)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrURLOpenerNotConfigured indicates the URL opener dependency was missing.
var ErrURLOpenerNotConfigured = errors.New(urlOpenerMissingMessageConstant)

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	GitExecutor shared.GitExecutor
	URLOpener   shared.URLOpener
	Clock       shared.Clock
	Output      io.Writer
}

// Service runs the publishing verbs.
type Service struct {
	executor shared.GitExecutor
	opener   shared.URLOpener
	clock    shared.Clock
	output   io.Writer
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.URLOpener == nil {
		return nil, ErrURLOpenerNotConfigured
	}
	clock := dependencies.Clock
	if clock == nil {
		clock = shared.SystemClock{}
	}
	output := dependencies.Output
	if output == nil {
		output = io.Discard
	}
	return &Service{executor: dependencies.GitExecutor, opener: dependencies.URLOpener, clock: clock, output: output}, nil
}

// Commit stages every change, commits it with the joined words and pushes the current
// branch, creating the upstream link. It stops at the first failing step.
func (service *Service) Commit(executionContext context.Context, repositoryContext workflow.RepositoryContext, words []string) error {
	message := strings.TrimSpace(strings.Join(words, commitMessageSeparatorConstant))
	if len(message) == 0 {
		return workflow.MissingMessageError{Subject: commitSubjectConstant}
	}

	currentBranch, mutableError := repositoryContext.RequireMutableBranch(workflow.OperationCommit)
	if mutableError != nil {
		return mutableError
	}

	if runError := ui.RunGit(executionContext, service.executor, repositoryContext.RootPath, service.output, gitAddSubcommandConstant, gitAllFlagConstant); runError != nil {
		return fmt.Errorf(stageFailureTemplateConstant, runError)
	}
	if runError := ui.RunGit(executionContext, service.executor, repositoryContext.RootPath, service.output, gitCommitSubcommandConstant, gitMessageFlagConstant, message); runError != nil {
		return fmt.Errorf(commitFailureTemplateConstant, runError)
	}
	if runError := ui.RunGit(executionContext, service.executor, repositoryContext.RootPath, service.output, gitPushSubcommandConstant, gitSetUpstreamFlagConstant, repositoryContext.RemoteName, currentBranch); runError != nil {
		return fmt.Errorf(pushFailureTemplateConstant, currentBranch, repositoryContext.RemoteName, runError)
	}
	return nil
}

// PullRequest opens the compare page proposing the current branch into requestedTarget,
// or into the default target of the branch type when requestedTarget is empty.
func (service *Service) PullRequest(executionContext context.Context, repositoryContext workflow.RepositoryContext, requestedTarget string) (string, error) {
	plan, planError := repositoryContext.PlanPullRequest(requestedTarget)
	if planError != nil {
		return "", planError
	}
	return service.openCompare(executionContext, repositoryContext, plan, "")
}

// Deploy opens the compare page proposing the development branch into production with a
// timestamped title.
func (service *Service) Deploy(executionContext context.Context, repositoryContext workflow.RepositoryContext) (string, error) {
	plan, planError := repositoryContext.PlanDeploy()
	if planError != nil {
		return "", planError
	}
	title := deployTitlePrefixConstant + service.clock.Now().Format(deployTitleLayoutConstant)
	return service.openCompare(executionContext, repositoryContext, plan, title)
}

func (service *Service) openCompare(executionContext context.Context, repositoryContext workflow.RepositoryContext, plan workflow.PullRequestPlan, title string) (string, error) {
	location, locationError := repositoryContext.Location()
	if locationError != nil {
		return "", locationError
	}
	compareURL := location.CompareURL(plan.TargetBranch, plan.SourceBranch, title)
	if openError := service.opener.Open(executionContext, compareURL); openError != nil {
		return compareURL, fmt.Errorf(openFailureTemplateConstant, compareURL, openError)
	}
	return compareURL, nil
}

