package execshell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandMessageFormatterDescribesGitCommands(t *testing.T) {
	testCases := []struct {
		name            string
		arguments       []string
		expectedStarted string
	}{
		{
			name:            "branch_creation",
			arguments:       []string{"checkout", "-b", "feature/add-login", "development"},
			expectedStarted: "Creating branch feature/add-login from development in /workspace/repo",
		},
		{
			name:            "checkout",
			arguments:       []string{"checkout", "development"},
			expectedStarted: "Switching /workspace/repo to branch development",
		},
		{
			name:            "branch_deletion",
			arguments:       []string{"branch", "-d", "feature/old"},
			expectedStarted: "Removing local branch feature/old in /workspace/repo",
		},
		{
			name:            "branch_listing",
			arguments:       []string{"branch"},
			expectedStarted: "Listing branches in /workspace/repo",
		},
		{
			name:            "commit",
			arguments:       []string{"commit", "-m", "fix typo"},
			expectedStarted: `Committing "fix typo" in /workspace/repo`,
		},
		{
			name:            "push_upstream",
			arguments:       []string{"push", "--set-upstream", "origin", "feature/x"},
			expectedStarted: "Pushing feature/x to origin from /workspace/repo",
		},
		{
			name:            "push_delete",
			arguments:       []string{"push", "origin", "--delete", "refs/tags/v1.0.0"},
			expectedStarted: "Deleting remote reference refs/tags/v1.0.0 from origin in /workspace/repo",
		},
		{
			name:            "tag_creation",
			arguments:       []string{"tag", "-a", "v1.0.0", "-m", "first"},
			expectedStarted: "Creating tag v1.0.0 in /workspace/repo",
		},
		{
			name:            "merge",
			arguments:       []string{"merge", "--no-ff", "release/1.2"},
			expectedStarted: "Merging release/1.2 in /workspace/repo",
		},
		{
			name:            "unrecognized",
			arguments:       []string{"stash"},
			expectedStarted: "Running git stash (in /workspace/repo)",
		},
	}

	formatter := CommandMessageFormatter{}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			command := ShellCommand{
				Name:    CommandGit,
				Details: CommandDetails{Arguments: testCase.arguments, WorkingDirectory: "/workspace/repo"},
			}
			require.Equal(t, testCase.expectedStarted, formatter.BuildStartedMessage(command))
		})
	}
}

func TestCommandMessageFormatterFailureIncludesStandardError(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name:    CommandGit,
		Details: CommandDetails{Arguments: []string{"branch", "-d", "feature/old"}},
	}

	message := formatter.BuildFailureMessage(command, ExecutionResult{ExitCode: 1, StandardError: "error: branch not fully merged\n"})
	require.Equal(t, "Failed to remove local branch feature/old in current directory (exit code 1: error: branch not fully merged)", message)

	executionMessage := formatter.BuildExecutionFailureMessage(command, errors.New("git not found"))
	require.Equal(t, "Unable to remove local branch feature/old in current directory: git not found", executionMessage)
}

func TestCommandMessageFormatterGenericCommand(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{Name: CommandName("xdg-open"), Details: CommandDetails{Arguments: []string{"https://example.com"}}}

	require.Equal(t, "Running xdg-open https://example.com", formatter.BuildStartedMessage(command))
	require.Equal(t, "Completed xdg-open https://example.com", formatter.BuildSuccessMessage(command))
}
