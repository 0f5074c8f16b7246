package tags_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/temirov/git-workflow/internal/execshell"
	"github.com/temirov/git-workflow/internal/gitrepo"
	"github.com/temirov/git-workflow/internal/tags"
	"github.com/temirov/git-workflow/internal/workflow"
)

const testRepositoryRootConstant = "/workspace/repo"

type stubGitExecutor struct {
	recorded  [][]string
	responses []error
	output    string
}

func (executor *stubGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recorded = append(executor.recorded, details.Arguments)
	if len(executor.responses) > 0 {
		next := executor.responses[0]
		executor.responses = executor.responses[1:]
		if next != nil {
			return execshell.ExecutionResult{}, next
		}
	}
	return execshell.ExecutionResult{StandardOutput: executor.output}, nil
}

type scriptedPrompter struct {
	answers       []string
	confirmations []bool
	prompts       []string
}

func (prompter *scriptedPrompter) Ask(question string) (string, error) {
	prompter.prompts = append(prompter.prompts, question)
	if len(prompter.answers) == 0 {
		return "", nil
	}
	answer := prompter.answers[0]
	prompter.answers = prompter.answers[1:]
	return answer, nil
}

func (prompter *scriptedPrompter) Confirm(question string) (bool, error) {
	prompter.prompts = append(prompter.prompts, question)
	if len(prompter.confirmations) == 0 {
		return false, nil
	}
	confirmation := prompter.confirmations[0]
	prompter.confirmations = prompter.confirmations[1:]
	return confirmation, nil
}

type stubInspector struct{}

func (stubInspector) Inspect(string, string) (gitrepo.Snapshot, error) {
	return gitrepo.Snapshot{RootPath: testRepositoryRootConstant, CurrentBranch: "development"}, nil
}

func testRepositoryContext() workflow.RepositoryContext {
	return workflow.NewRepositoryContext(gitrepo.Snapshot{RootPath: testRepositoryRootConstant, CurrentBranch: "development"}, workflow.Settings{RemoteName: "upstream"})
}

func TestCreatePromptsAndPushes(testInstance *testing.T) {
	testCases := []struct {
		name              string
		answers           []string
		expectedTag       tags.Tag
		expectedArguments [][]string
		expectedExitCode  int
		expectedPrompts   []string
	}{
		{
			name:        "version_and_message",
			answers:     []string{"v1.2.0", "First stable release"},
			expectedTag: tags.Tag{Version: "v1.2.0", Message: "First stable release"},
			expectedArguments: [][]string{
				{"tag", "-a", "v1.2.0", "-m", "First stable release"},
				{"push", "upstream", "v1.2.0"},
			},
			expectedPrompts: []string{"Tag version: ", "Tag message: "},
		},
		{
			name:             "empty_version",
			answers:          []string{"  "},
			expectedExitCode: workflow.ExitCodeMissingName,
			expectedPrompts:  []string{"Tag version: "},
		},
		{
			name:             "empty_message",
			answers:          []string{"v1.2.0", ""},
			expectedExitCode: workflow.ExitCodeMissingMessage,
			expectedPrompts:  []string{"Tag version: ", "Tag message: "},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &stubGitExecutor{}
			prompter := &scriptedPrompter{answers: testCase.answers}
			service, serviceError := tags.NewService(tags.ServiceDependencies{GitExecutor: executor, Prompter: prompter})
			require.NoError(testInstance, serviceError)

			tag, createError := service.Create(context.Background(), testRepositoryContext())

			require.Equal(testInstance, testCase.expectedExitCode, workflow.ExitCode(createError))
			require.Equal(testInstance, testCase.expectedTag, tag)
			require.Equal(testInstance, testCase.expectedArguments, executor.recorded)
			require.Equal(testInstance, testCase.expectedPrompts, prompter.prompts)
		})
	}
}

func TestCreateStopsWhenTaggingFails(testInstance *testing.T) {
	executor := &stubGitExecutor{responses: []error{errors.New("tag 'v1' already exists")}}
	service, serviceError := tags.NewService(tags.ServiceDependencies{GitExecutor: executor, Prompter: &scriptedPrompter{answers: []string{"v1", "again"}}})
	require.NoError(testInstance, serviceError)

	_, createError := service.Create(context.Background(), testRepositoryContext())
	require.ErrorContains(testInstance, createError, "already exists")
	require.Len(testInstance, executor.recorded, 1)
}

func TestDeleteVerbs(testInstance *testing.T) {
	testCases := []struct {
		name              string
		invoke            func(*tags.Service) error
		confirmations     []bool
		expectedArguments [][]string
		expectedOutput    string
		expectedExitCode  int
	}{
		{
			name: "local",
			invoke: func(service *tags.Service) error {
				return service.DeleteLocal(context.Background(), testRepositoryContext(), "v1.0.0")
			},
			expectedArguments: [][]string{{"tag", "-d", "v1.0.0"}},
		},
		{
			name: "remote",
			invoke: func(service *tags.Service) error {
				return service.DeleteRemote(context.Background(), testRepositoryContext(), "v1.0.0")
			},
			expectedArguments: [][]string{{"push", "upstream", "--delete", "refs/tags/v1.0.0"}},
		},
		{
			name: "both_confirmed",
			invoke: func(service *tags.Service) error {
				_, deleteError := service.Delete(context.Background(), testRepositoryContext(), "v1.0.0")
				return deleteError
			},
			confirmations:     []bool{true},
			expectedArguments: [][]string{{"tag", "-d", "v1.0.0"}, {"push", "upstream", "--delete", "refs/tags/v1.0.0"}},
		},
		{
			name: "both_declined",
			invoke: func(service *tags.Service) error {
				_, deleteError := service.Delete(context.Background(), testRepositoryContext(), "v1.0.0")
				return deleteError
			},
			confirmations:  []bool{false},
			expectedOutput: "Deletion cancelled.\n",
		},
		{
			name: "missing_name",
			invoke: func(service *tags.Service) error {
				return service.DeleteRemote(context.Background(), testRepositoryContext(), "")
			},
			expectedExitCode: workflow.ExitCodeMissingName,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &stubGitExecutor{}
			outputBuffer := &bytes.Buffer{}
			service, serviceError := tags.NewService(tags.ServiceDependencies{
				GitExecutor: executor,
				Prompter:    &scriptedPrompter{confirmations: testCase.confirmations},
				Output:      outputBuffer,
			})
			require.NoError(testInstance, serviceError)

			deleteError := testCase.invoke(service)

			require.Equal(testInstance, testCase.expectedExitCode, workflow.ExitCode(deleteError))
			require.Equal(testInstance, testCase.expectedArguments, executor.recorded)
			require.Equal(testInstance, testCase.expectedOutput, outputBuffer.String())
		})
	}
}

func TestTagsCommandListsTags(testInstance *testing.T) {
	executor := &stubGitExecutor{output: "v1.0.0\nv1.1.0\n"}
	commands, buildError := (&tags.CommandBuilder{
		GitExecutor:         executor,
		RepositoryInspector: stubInspector{},
		Prompter:            &scriptedPrompter{},
		WorkingDirectory:    testRepositoryRootConstant,
	}).Build()
	require.NoError(testInstance, buildError)

	rootCommand := &cobra.Command{Use: "git-workflow", SilenceErrors: true, SilenceUsage: true}
	rootCommand.AddCommand(commands...)
	outputBuffer := &bytes.Buffer{}
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetIn(strings.NewReader(""))
	rootCommand.SetArgs([]string{"tags"})

	require.NoError(testInstance, rootCommand.Execute())
	require.Equal(testInstance, [][]string{{"tag", "--list"}}, executor.recorded)
	require.Equal(testInstance, "v1.0.0\nv1.1.0\n", outputBuffer.String())
}
