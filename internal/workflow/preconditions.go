package workflow

import (
	"fmt"
	"strings"
)

// Operation labels used in error messages.
const (
	OperationCreateBranch  = "create branch"
	OperationCommit        = "commit"
	OperationPullRequest   = "open a pull request"
	OperationDeploy        = "deploy"
	OperationMergeRelease  = "merge a release"
	OperationDeleteBranch  = "delete branch"
	deployHintTemplate     = "Use 'deploy' to propose merging '%s' into '%s'."
	mergeReleaseHintFormat = "Checkout a '%s/<name>' branch first."
)

// BranchCreationPlan is the validated outcome of a branch creation request.
type BranchCreationPlan struct {
	BranchName   string
	SourceBranch string
}

// PlanBranchCreation validates that a <branchType>/<slug> branch may be created from the current branch.
func (repositoryContext RepositoryContext) PlanBranchCreation(branchType BranchType, words []string) (BranchCreationPlan, error) {
	rule, ruleFound := RuleFor(branchType)
	if !ruleFound {
		return BranchCreationPlan{}, InvalidBranchTypeError{BranchName: repositoryContext.CurrentBranch, BranchType: branchType, Operation: OperationCreateBranch}
	}

	slug := Slug(words)
	if len(slug) == 0 {
		return BranchCreationPlan{}, MissingNameError{Subject: string(branchType) + " branch"}
	}

	acceptedSources := repositoryContext.acceptedSources(rule.Sources)
	if repositoryContext.Detached || !containsString(acceptedSources, repositoryContext.CurrentBranch) {
		return BranchCreationPlan{}, WrongSourceBranchError{
			BranchType:      branchType,
			CurrentBranch:   repositoryContext.describeCurrentBranch(),
			RequiredSources: acceptedSources,
		}
	}

	return BranchCreationPlan{BranchName: BranchName(branchType, slug), SourceBranch: repositoryContext.CurrentBranch}, nil
}

// RequireMutableBranch returns the current branch when it is neither detached nor a production branch.
func (repositoryContext RepositoryContext) RequireMutableBranch(operation string) (string, error) {
	if repositoryContext.Detached || len(repositoryContext.CurrentBranch) == 0 {
		return "", InvalidBranchNameError{}
	}
	if repositoryContext.IsProductionBranch(repositoryContext.CurrentBranch) {
		return "", ProtectedBranchError{BranchName: repositoryContext.CurrentBranch, Operation: operation}
	}
	return repositoryContext.CurrentBranch, nil
}

// PullRequestPlan names the two sides of a compare URL.
type PullRequestPlan struct {
	SourceBranch string
	TargetBranch string
}

// PlanPullRequest validates the current branch and resolves the pull request target.
// An empty requestedTarget selects the rule's default target.
func (repositoryContext RepositoryContext) PlanPullRequest(requestedTarget string) (PullRequestPlan, error) {
	currentBranch, mutableError := repositoryContext.RequireMutableBranch(OperationPullRequest)
	if mutableError != nil {
		return PullRequestPlan{}, mutableError
	}

	if currentBranch == repositoryContext.DevelopmentBranch {
		return PullRequestPlan{}, InvalidBranchTypeError{
			BranchName: currentBranch,
			Operation:  OperationPullRequest,
			Suggestion: fmt.Sprintf(deployHintTemplate, repositoryContext.DevelopmentBranch, repositoryContext.ProductionBranch),
		}
	}

	branchType, typeError := ParseBranchType(currentBranch)
	if typeError != nil {
		return PullRequestPlan{}, typeError
	}
	rule, ruleFound := RuleFor(branchType)
	if !ruleFound {
		return PullRequestPlan{}, InvalidBranchTypeError{BranchName: currentBranch, BranchType: branchType, Operation: OperationPullRequest}
	}

	allowedTargets := repositoryContext.ResolveRoles(rule.Targets)
	targetBranch := strings.TrimSpace(requestedTarget)
	if len(targetBranch) == 0 {
		targetBranch = allowedTargets[0]
	}
	if !containsString(allowedTargets, targetBranch) {
		return PullRequestPlan{}, DisallowedTargetError{BranchType: branchType, Target: targetBranch, AllowedTargets: allowedTargets}
	}

	return PullRequestPlan{SourceBranch: currentBranch, TargetBranch: targetBranch}, nil
}

// PlanDeploy validates that the current branch is the development branch and returns the deploy pull request.
func (repositoryContext RepositoryContext) PlanDeploy() (PullRequestPlan, error) {
	if _, mutableError := repositoryContext.RequireMutableBranch(OperationDeploy); mutableError != nil {
		return PullRequestPlan{}, mutableError
	}
	if repositoryContext.CurrentBranch != repositoryContext.DevelopmentBranch {
		return PullRequestPlan{}, WrongBranchError{
			CurrentBranch:  repositoryContext.CurrentBranch,
			RequiredBranch: repositoryContext.DevelopmentBranch,
			Operation:      OperationDeploy,
		}
	}
	return PullRequestPlan{SourceBranch: repositoryContext.DevelopmentBranch, TargetBranch: repositoryContext.ProductionBranch}, nil
}

// PlanReleaseMerge validates that the current branch is a release branch and returns it with the development branch it merges into.
func (repositoryContext RepositoryContext) PlanReleaseMerge() (PullRequestPlan, error) {
	branchType, typeError := repositoryContext.CurrentBranchType()
	if typeError != nil {
		return PullRequestPlan{}, typeError
	}
	if branchType != BranchTypeRelease {
		return PullRequestPlan{}, InvalidBranchTypeError{
			BranchName: repositoryContext.CurrentBranch,
			BranchType: branchType,
			Operation:  OperationMergeRelease,
			Suggestion: fmt.Sprintf(mergeReleaseHintFormat, BranchTypeRelease),
		}
	}
	return PullRequestPlan{SourceBranch: repositoryContext.CurrentBranch, TargetBranch: repositoryContext.DevelopmentBranch}, nil
}

// RequireDeletableBranch refuses deletion of long-lived branches.
func (repositoryContext RepositoryContext) RequireDeletableBranch(branchName string) error {
	if repositoryContext.IsProtectedBranch(branchName) {
		return ProtectedBranchError{BranchName: branchName, Operation: OperationDeleteBranch}
	}
	return nil
}

func (repositoryContext RepositoryContext) describeCurrentBranch() string {
	if repositoryContext.Detached || len(repositoryContext.CurrentBranch) == 0 {
		return "detached HEAD"
	}
	return repositoryContext.CurrentBranch
}
