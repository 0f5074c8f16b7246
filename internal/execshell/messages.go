package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
	failureDetailsTemplateConstant          = " (exit code %d%s)"
)

const (
	gitCheckoutSubcommandNameConstant = "checkout"
	gitBranchSubcommandNameConstant   = "branch"
	gitAddSubcommandNameConstant      = "add"
	gitCommitSubcommandNameConstant   = "commit"
	gitPushSubcommandNameConstant     = "push"
	gitTagSubcommandNameConstant      = "tag"
	gitMergeSubcommandNameConstant    = "merge"
	gitCreateBranchFlagConstant       = "-b"
	gitDeleteShortFlagConstant        = "-d"
	gitDeleteFlagConstant             = "--delete"
	gitAnnotateFlagConstant           = "-a"
	gitMessageFlagConstant            = "-m"
	gitListFlagConstant               = "--list"
	gitSetUpstreamFlagConstant        = "--set-upstream"
	gitNoFastForwardFlagConstant      = "--no-ff"
	gitFlagPrefixConstant             = "-"
)

// Lifecycle templates take the described subject first and the working directory last.
type gitMessageTemplates struct {
	start            string
	success          string
	failure          string
	executionFailure string
}

var (
	gitCheckoutTemplates = gitMessageTemplates{
		start:            "Switching %s to branch %s",
		success:          "%s now on branch %s",
		failure:          "Failed to switch %s to branch %s",
		executionFailure: "Unable to switch %s to branch %s: %s",
	}
	gitBranchCreationTemplates = gitMessageTemplates{
		start:            "Creating branch %s from %s in %s",
		success:          "Created branch %s from %s in %s",
		failure:          "Failed to create branch %s from %s in %s",
		executionFailure: "Unable to create branch %s from %s in %s: %s",
	}
	gitBranchDeletionTemplates = gitMessageTemplates{
		start:            "Removing local branch %s in %s",
		success:          "Removed local branch %s in %s",
		failure:          "Failed to remove local branch %s in %s",
		executionFailure: "Unable to remove local branch %s in %s: %s",
	}
	gitBranchListTemplates = gitMessageTemplates{
		start:            "Listing branches in %s",
		success:          "Listed branches in %s",
		failure:          "Failed to list branches in %s",
		executionFailure: "Unable to list branches in %s: %s",
	}
	gitAddTemplates = gitMessageTemplates{
		start:            "Staging changes in %s",
		success:          "Staged changes in %s",
		failure:          "Failed to stage changes in %s",
		executionFailure: "Unable to stage changes in %s: %s",
	}
	gitCommitTemplates = gitMessageTemplates{
		start:            "Committing %q in %s",
		success:          "Committed %q in %s",
		failure:          "Failed to commit %q in %s",
		executionFailure: "Unable to commit %q in %s: %s",
	}
	gitPushTemplates = gitMessageTemplates{
		start:            "Pushing %s to %s from %s",
		success:          "Pushed %s to %s from %s",
		failure:          "Failed to push %s to %s from %s",
		executionFailure: "Unable to push %s to %s from %s: %s",
	}
	gitPushDeletionTemplates = gitMessageTemplates{
		start:            "Deleting remote reference %s from %s in %s",
		success:          "Deleted remote reference %s from %s in %s",
		failure:          "Failed to delete remote reference %s from %s in %s",
		executionFailure: "Unable to delete remote reference %s from %s in %s: %s",
	}
	gitTagCreationTemplates = gitMessageTemplates{
		start:            "Creating tag %s in %s",
		success:          "Created tag %s in %s",
		failure:          "Failed to create tag %s in %s",
		executionFailure: "Unable to create tag %s in %s: %s",
	}
	gitTagDeletionTemplates = gitMessageTemplates{
		start:            "Removing local tag %s in %s",
		success:          "Removed local tag %s in %s",
		failure:          "Failed to remove local tag %s in %s",
		executionFailure: "Unable to remove local tag %s in %s: %s",
	}
	gitTagListTemplates = gitMessageTemplates{
		start:            "Listing tags in %s",
		success:          "Listed tags in %s",
		failure:          "Failed to list tags in %s",
		executionFailure: "Unable to list tags in %s: %s",
	}
	gitMergeTemplates = gitMessageTemplates{
		start:            "Merging %s in %s",
		success:          "Merged %s in %s",
		failure:          "Failed to merge %s in %s",
		executionFailure: "Unable to merge %s in %s: %s",
	}
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name == CommandGit {
		if message := formatter.describeGitMessage(command, result, failure, stage); len(message) > 0 {
			return message
		}
	}
	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) == 0 {
		return emptyStringConstant
	}
	workingDirectory := formatter.describeWorkingDirectory(command)
	subcommandArguments := arguments[1:]

	switch arguments[0] {
	case gitCheckoutSubcommandNameConstant:
		if containsArgument(subcommandArguments, gitCreateBranchFlagConstant) {
			branchName := formatter.ensureValue(findFlagValue(subcommandArguments, gitCreateBranchFlagConstant))
			startPoint := formatter.ensureValue(formatter.argumentAfterFlagValue(subcommandArguments, gitCreateBranchFlagConstant))
			return formatter.render(gitBranchCreationTemplates, stage, result, failure, branchName, startPoint, workingDirectory)
		}
		branchName := formatter.ensureValue(formatter.extractFirstNonFlagArgument(subcommandArguments))
		return formatter.render(gitCheckoutTemplates, stage, result, failure, workingDirectory, branchName)
	case gitBranchSubcommandNameConstant:
		if containsArgument(subcommandArguments, gitDeleteShortFlagConstant) || containsArgument(subcommandArguments, gitDeleteFlagConstant) {
			branchName := formatter.ensureValue(formatter.extractFirstNonFlagArgument(subcommandArguments))
			return formatter.render(gitBranchDeletionTemplates, stage, result, failure, branchName, workingDirectory)
		}
		return formatter.render(gitBranchListTemplates, stage, result, failure, workingDirectory)
	case gitAddSubcommandNameConstant:
		return formatter.render(gitAddTemplates, stage, result, failure, workingDirectory)
	case gitCommitSubcommandNameConstant:
		commitMessage := formatter.ensureValue(findFlagValue(subcommandArguments, gitMessageFlagConstant))
		return formatter.render(gitCommitTemplates, stage, result, failure, commitMessage, workingDirectory)
	case gitPushSubcommandNameConstant:
		return formatter.describeGitPush(subcommandArguments, result, failure, stage, workingDirectory)
	case gitTagSubcommandNameConstant:
		if containsArgument(subcommandArguments, gitDeleteShortFlagConstant) {
			tagName := formatter.ensureValue(formatter.extractFirstNonFlagArgument(subcommandArguments))
			return formatter.render(gitTagDeletionTemplates, stage, result, failure, tagName, workingDirectory)
		}
		if containsArgument(subcommandArguments, gitAnnotateFlagConstant) {
			tagName := formatter.ensureValue(findFlagValue(subcommandArguments, gitAnnotateFlagConstant))
			return formatter.render(gitTagCreationTemplates, stage, result, failure, tagName, workingDirectory)
		}
		if len(subcommandArguments) == 0 || containsArgument(subcommandArguments, gitListFlagConstant) {
			return formatter.render(gitTagListTemplates, stage, result, failure, workingDirectory)
		}
		return emptyStringConstant
	case gitMergeSubcommandNameConstant:
		mergedReference := formatter.ensureValue(formatter.extractFirstNonFlagArgument(subcommandArguments))
		return formatter.render(gitMergeTemplates, stage, result, failure, mergedReference, workingDirectory)
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) describeGitPush(arguments []string, result ExecutionResult, failure error, stage messageStage, workingDirectory string) string {
	positionalArguments := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		if strings.HasPrefix(argument, gitFlagPrefixConstant) {
			continue
		}
		positionalArguments = append(positionalArguments, argument)
	}
	remoteName := fallbackUnknownValueLabelConstant
	references := []string{}
	if len(positionalArguments) > 0 {
		remoteName = positionalArguments[0]
		references = positionalArguments[1:]
	}
	referenceLabel := formatter.ensureValue(strings.Join(references, ", "))

	if containsArgument(arguments, gitDeleteFlagConstant) {
		return formatter.render(gitPushDeletionTemplates, stage, result, failure, referenceLabel, remoteName, workingDirectory)
	}
	return formatter.render(gitPushTemplates, stage, result, failure, referenceLabel, remoteName, workingDirectory)
}

func (formatter CommandMessageFormatter) render(templates gitMessageTemplates, stage messageStage, result ExecutionResult, failure error, values ...any) string {
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(templates.start, values...)
	case messageStageSuccess:
		return fmt.Sprintf(templates.success, values...)
	case messageStageFailure:
		return fmt.Sprintf(templates.failure, values...) + fmt.Sprintf(failureDetailsTemplateConstant, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(templates.executionFailure, append(values, formatter.describeFailure(failure))...)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := command.CommandLine() + formatter.formatWorkingDirectorySuffix(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	if len(strings.TrimSpace(value)) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return value
}

func (formatter CommandMessageFormatter) extractFirstNonFlagArgument(arguments []string) string {
	for _, argument := range arguments {
		if strings.HasPrefix(argument, gitFlagPrefixConstant) {
			continue
		}
		return argument
	}
	return emptyStringConstant
}

// argumentAfterFlagValue returns the positional argument following "<flag> <value>".
func (formatter CommandMessageFormatter) argumentAfterFlagValue(arguments []string, flag string) string {
	for argumentIndex, argument := range arguments {
		if argument == flag && argumentIndex+2 < len(arguments) {
			return arguments[argumentIndex+2]
		}
	}
	return emptyStringConstant
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if argument == value {
			return true
		}
	}
	return false
}

func findFlagValue(arguments []string, flag string) string {
	for argumentIndex, argument := range arguments {
		if argument == flag && argumentIndex+1 < len(arguments) {
			return arguments[argumentIndex+1]
		}
	}
	return emptyStringConstant
}
