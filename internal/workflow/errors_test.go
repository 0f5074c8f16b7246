package workflow_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/git-workflow/internal/workflow"
)

func TestExitCodeResolution(testInstance *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
		expectedHint string
	}{
		{name: "nil", err: nil, expectedCode: workflow.ExitCodeSuccess},
		{name: "plain", err: errors.New("boom"), expectedCode: workflow.ExitCodeGenericFailure},
		{
			name:         "wrapped_missing_message",
			err:          fmt.Errorf("commit: %w", workflow.MissingMessageError{Subject: "commit"}),
			expectedCode: workflow.ExitCodeMissingMessage,
			expectedHint: "Provide the commit message.",
		},
		{
			name:         "missing_name",
			err:          workflow.MissingNameError{Subject: "tag"},
			expectedCode: workflow.ExitCodeMissingName,
			expectedHint: "Provide the tag name as an argument.",
		},
		{
			name:         "no_repository",
			err:          workflow.NoRepositoryError{StartDirectory: "/tmp"},
			expectedCode: workflow.ExitCodeNoRepository,
			expectedHint: "Run 'git init' to create a repository, or change into an existing one.",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedCode, workflow.ExitCode(testCase.err))
			require.Equal(testInstance, testCase.expectedHint, workflow.HintFor(testCase.err))
		})
	}
}

func TestInvalidBranchTypeDefaultHintListsTypes(testInstance *testing.T) {
	typeError := workflow.InvalidBranchTypeError{BranchName: "chore/x", BranchType: "chore", Operation: workflow.OperationPullRequest}
	require.EqualError(testInstance, typeError, "cannot open a pull request from branch 'chore/x' of type 'chore'")
	require.Equal(testInstance, "Supported branch types are 'feature', 'bug', 'refactor', 'release', 'hotfix'.", typeError.Hint())
}
