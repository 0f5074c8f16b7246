package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/git-workflow/internal/gitrepo"
	"github.com/temirov/git-workflow/internal/workflow"
)

func newRepositoryContext(currentBranch string, localBranches ...string) workflow.RepositoryContext {
	return workflow.NewRepositoryContext(
		gitrepo.Snapshot{
			RootPath:      "/workspace/repo",
			CurrentBranch: currentBranch,
			LocalBranches: localBranches,
			RemoteName:    "origin",
			RemoteURL:     "git@github.com:acme/widgets.git",
		},
		workflow.DefaultSettings(),
	)
}

func TestPlanBranchCreation(testInstance *testing.T) {
	testCases := []struct {
		name           string
		currentBranch  string
		detached       bool
		branchType     workflow.BranchType
		words          []string
		expectedPlan   workflow.BranchCreationPlan
		expectedExit   int
		expectedSource []string
	}{
		{
			name:          "feature_from_development",
			currentBranch: "development",
			branchType:    workflow.BranchTypeFeature,
			words:         []string{"add login"},
			expectedPlan:  workflow.BranchCreationPlan{BranchName: "feature/add-login", SourceBranch: "development"},
		},
		{
			name:          "release_from_development",
			currentBranch: "development",
			branchType:    workflow.BranchTypeRelease,
			words:         []string{"1.2.0"},
			expectedPlan:  workflow.BranchCreationPlan{BranchName: "release/1.2.0", SourceBranch: "development"},
		},
		{
			name:          "hotfix_from_main",
			currentBranch: "main",
			branchType:    workflow.BranchTypeHotfix,
			words:         []string{"urgent", "fix"},
			expectedPlan:  workflow.BranchCreationPlan{BranchName: "hotfix/urgent-fix", SourceBranch: "main"},
		},
		{
			name:           "hotfix_from_feature",
			currentBranch:  "feature/x",
			branchType:     workflow.BranchTypeHotfix,
			words:          []string{"urgent fix"},
			expectedExit:   workflow.ExitCodeWrongSourceBranch,
			expectedSource: []string{"master", "main"},
		},
		{
			name:           "bug_from_master",
			currentBranch:  "master",
			branchType:     workflow.BranchTypeBug,
			words:          []string{"crash"},
			expectedExit:   workflow.ExitCodeWrongSourceBranch,
			expectedSource: []string{"development"},
		},
		{
			name:           "feature_from_detached_head",
			detached:       true,
			branchType:     workflow.BranchTypeFeature,
			words:          []string{"x"},
			expectedExit:   workflow.ExitCodeWrongSourceBranch,
			expectedSource: []string{"development"},
		},
		{
			name:          "missing_name",
			currentBranch: "development",
			branchType:    workflow.BranchTypeFeature,
			words:         []string{" - "},
			expectedExit:  workflow.ExitCodeMissingName,
		},
		{
			name:          "unknown_type",
			currentBranch: "development",
			branchType:    workflow.BranchType("chore"),
			words:         []string{"x"},
			expectedExit:  workflow.ExitCodeInvalidBranchType,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			repositoryContext := newRepositoryContext(testCase.currentBranch)
			repositoryContext.Detached = testCase.detached

			plan, planError := repositoryContext.PlanBranchCreation(testCase.branchType, testCase.words)
			if testCase.expectedExit == 0 {
				require.NoError(testInstance, planError)
				require.Equal(testInstance, testCase.expectedPlan, plan)
				return
			}

			require.Error(testInstance, planError)
			require.Equal(testInstance, testCase.expectedExit, workflow.ExitCode(planError))
			if testCase.expectedSource != nil {
				var sourceError workflow.WrongSourceBranchError
				require.ErrorAs(testInstance, planError, &sourceError)
				require.Equal(testInstance, testCase.expectedSource, sourceError.RequiredSources)
				require.Contains(testInstance, workflow.HintFor(planError), testCase.expectedSource[0])
			}
		})
	}
}

func TestWrongSourceBranchMessageNamesAliases(testInstance *testing.T) {
	_, planError := newRepositoryContext("feature/x").PlanBranchCreation(workflow.BranchTypeHotfix, []string{"urgent fix"})
	require.EqualError(testInstance, planError, "hotfix branches must be created from 'master' or 'main', but the current branch is 'feature/x'")
	require.Equal(testInstance, "Stash or commit your local changes then checkout the 'master' branch.", workflow.HintFor(planError))
}

func TestRequireMutableBranch(testInstance *testing.T) {
	currentBranch, mutableError := newRepositoryContext("feature/x").RequireMutableBranch(workflow.OperationCommit)
	require.NoError(testInstance, mutableError)
	require.Equal(testInstance, "feature/x", currentBranch)

	for _, productionBranch := range []string{"master", "main"} {
		_, protectedError := newRepositoryContext(productionBranch).RequireMutableBranch(workflow.OperationCommit)
		var branchError workflow.ProtectedBranchError
		require.ErrorAs(testInstance, protectedError, &branchError)
		require.Equal(testInstance, productionBranch, branchError.BranchName)
		require.Equal(testInstance, workflow.ExitCodeProtectedBranch, workflow.ExitCode(protectedError))
	}

	detachedContext := newRepositoryContext("")
	detachedContext.Detached = true
	_, detachedError := detachedContext.RequireMutableBranch(workflow.OperationCommit)
	require.Equal(testInstance, workflow.ExitCodeInvalidBranchName, workflow.ExitCode(detachedError))
}

func TestPlanPullRequest(testInstance *testing.T) {
	testCases := []struct {
		name            string
		currentBranch   string
		localBranches   []string
		requestedTarget string
		expectedPlan    workflow.PullRequestPlan
		expectedExit    int
	}{
		{
			name:          "feature_defaults_to_development",
			currentBranch: "feature/add-login",
			expectedPlan:  workflow.PullRequestPlan{SourceBranch: "feature/add-login", TargetBranch: "development"},
		},
		{
			name:          "release_defaults_to_production",
			currentBranch: "release/1.2.0",
			localBranches: []string{"development", "main", "release/1.2.0"},
			expectedPlan:  workflow.PullRequestPlan{SourceBranch: "release/1.2.0", TargetBranch: "main"},
		},
		{
			name:            "hotfix_explicit_development",
			currentBranch:   "hotfix/urgent-fix",
			requestedTarget: "development",
			expectedPlan:    workflow.PullRequestPlan{SourceBranch: "hotfix/urgent-fix", TargetBranch: "development"},
		},
		{
			name:            "feature_into_production_disallowed",
			currentBranch:   "feature/add-login",
			requestedTarget: "master",
			expectedExit:    workflow.ExitCodeDisallowedTarget,
		},
		{
			name:          "development_suggests_deploy",
			currentBranch: "development",
			expectedExit:  workflow.ExitCodeInvalidBranchType,
		},
		{
			name:          "production_protected",
			currentBranch: "master",
			expectedExit:  workflow.ExitCodeProtectedBranch,
		},
		{
			name:          "untyped_branch",
			currentBranch: "experiment",
			expectedExit:  workflow.ExitCodeInvalidBranchName,
		},
		{
			name:          "unknown_type",
			currentBranch: "chore/cleanup",
			expectedExit:  workflow.ExitCodeInvalidBranchType,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			repositoryContext := newRepositoryContext(testCase.currentBranch, testCase.localBranches...)

			plan, planError := repositoryContext.PlanPullRequest(testCase.requestedTarget)
			if testCase.expectedExit == 0 {
				require.NoError(testInstance, planError)
				require.Equal(testInstance, testCase.expectedPlan, plan)
				return
			}
			require.Equal(testInstance, testCase.expectedExit, workflow.ExitCode(planError))
		})
	}
}

func TestPlanPullRequestFromDevelopmentSuggestsDeploy(testInstance *testing.T) {
	_, planError := newRepositoryContext("development").PlanPullRequest("")
	require.Equal(testInstance, "Use 'deploy' to propose merging 'development' into 'master'.", workflow.HintFor(planError))
}

func TestDisallowedTargetHintListsTargets(testInstance *testing.T) {
	_, planError := newRepositoryContext("release/2.0").PlanPullRequest("staging")
	require.EqualError(testInstance, planError, "release branches cannot be merged into 'staging'")
	require.Equal(testInstance, "Allowed targets are 'master', 'development'.", workflow.HintFor(planError))
}

func TestPlanDeploy(testInstance *testing.T) {
	plan, planError := newRepositoryContext("development", "development", "main").PlanDeploy()
	require.NoError(testInstance, planError)
	require.Equal(testInstance, workflow.PullRequestPlan{SourceBranch: "development", TargetBranch: "main"}, plan)

	_, featureError := newRepositoryContext("feature/x").PlanDeploy()
	var branchError workflow.WrongBranchError
	require.ErrorAs(testInstance, featureError, &branchError)
	require.Equal(testInstance, "development", branchError.RequiredBranch)

	_, productionError := newRepositoryContext("master").PlanDeploy()
	require.Equal(testInstance, workflow.ExitCodeProtectedBranch, workflow.ExitCode(productionError))
}

func TestPlanReleaseMerge(testInstance *testing.T) {
	plan, planError := newRepositoryContext("release/1.2.0").PlanReleaseMerge()
	require.NoError(testInstance, planError)
	require.Equal(testInstance, workflow.PullRequestPlan{SourceBranch: "release/1.2.0", TargetBranch: "development"}, plan)

	_, featureError := newRepositoryContext("feature/x").PlanReleaseMerge()
	require.Equal(testInstance, workflow.ExitCodeInvalidBranchType, workflow.ExitCode(featureError))
	require.Equal(testInstance, "Checkout a 'release/<name>' branch first.", workflow.HintFor(featureError))

	_, untypedError := newRepositoryContext("development").PlanReleaseMerge()
	require.Equal(testInstance, workflow.ExitCodeInvalidBranchName, workflow.ExitCode(untypedError))
}

func TestRequireDeletableBranch(testInstance *testing.T) {
	repositoryContext := newRepositoryContext("feature/x")
	for _, protectedBranch := range []string{"development", "master", "main"} {
		deleteError := repositoryContext.RequireDeletableBranch(protectedBranch)
		require.Equal(testInstance, workflow.ExitCodeProtectedBranch, workflow.ExitCode(deleteError), protectedBranch)
	}
	require.NoError(testInstance, repositoryContext.RequireDeletableBranch("feature/old"))
}
