package workflow

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes reported by the CLI for each error kind.
const (
	ExitCodeSuccess           = 0
	ExitCodeGenericFailure    = 1
	ExitCodeNoRepository      = 2
	ExitCodeMissingName       = 3
	ExitCodeMissingMessage    = 4
	ExitCodeInvalidBranchName = 5
	ExitCodeWrongSourceBranch = 6
	ExitCodeProtectedBranch   = 7
	ExitCodeInvalidBranchType = 8
	ExitCodeWrongBranch       = 9
	ExitCodeDisallowedTarget  = 10
	ExitCodeRemoteURLParse    = 11
)

const (
	listSeparatorConstant        = "', '"
	alternativeSeparatorConstant = "' or '"
)

// ExitCoder is implemented by errors that map to a dedicated process exit code.
type ExitCoder interface {
	ExitCode() int
}

// Hinter is implemented by errors that carry a one-line remediation hint.
type Hinter interface {
	Hint() string
}

// ExitCode resolves the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	var exitCoder ExitCoder
	if errors.As(err, &exitCoder) {
		return exitCoder.ExitCode()
	}
	return ExitCodeGenericFailure
}

// HintFor returns the remediation hint carried by err, or an empty string.
func HintFor(err error) string {
	var hinter Hinter
	if errors.As(err, &hinter) {
		return hinter.Hint()
	}
	return ""
}

// NoRepositoryError reports that no repository exists from StartDirectory up to the filesystem root.
type NoRepositoryError struct {
	StartDirectory string
}

func (repositoryError NoRepositoryError) Error() string {
	return fmt.Sprintf("no git repository found in %s or any parent directory", repositoryError.StartDirectory)
}

func (NoRepositoryError) ExitCode() int { return ExitCodeNoRepository }

func (NoRepositoryError) Hint() string {
	return "Run 'git init' to create a repository, or change into an existing one."
}

// MissingNameError reports that a verb was invoked without the branch or tag name it needs.
type MissingNameError struct {
	Subject string
}

func (nameError MissingNameError) Error() string {
	return fmt.Sprintf("a %s name is required", nameError.Subject)
}

func (MissingNameError) ExitCode() int { return ExitCodeMissingName }

func (nameError MissingNameError) Hint() string {
	return fmt.Sprintf("Provide the %s name as an argument.", nameError.Subject)
}

// MissingMessageError reports that a commit or tag message was empty.
type MissingMessageError struct {
	Subject string
}

func (messageError MissingMessageError) Error() string {
	return fmt.Sprintf("a %s message is required", messageError.Subject)
}

func (MissingMessageError) ExitCode() int { return ExitCodeMissingMessage }

func (messageError MissingMessageError) Hint() string {
	return fmt.Sprintf("Provide the %s message.", messageError.Subject)
}

// InvalidBranchNameError reports a current branch that lacks the <type>/<name> shape.
type InvalidBranchNameError struct {
	BranchName string
}

func (nameError InvalidBranchNameError) Error() string {
	if len(nameError.BranchName) == 0 {
		return "the repository is not on a branch (detached HEAD)"
	}
	return fmt.Sprintf("branch '%s' does not follow the <type>/<name> convention", nameError.BranchName)
}

func (InvalidBranchNameError) ExitCode() int { return ExitCodeInvalidBranchName }

func (InvalidBranchNameError) Hint() string {
	return "Checkout a branch named like 'feature/<name>' and try again."
}

// WrongSourceBranchError reports a branch creation attempted from a branch other than the rule's source.
type WrongSourceBranchError struct {
	BranchType      BranchType
	CurrentBranch   string
	RequiredSources []string
}

func (sourceError WrongSourceBranchError) Error() string {
	return fmt.Sprintf(
		"%s branches must be created from '%s', but the current branch is '%s'",
		sourceError.BranchType,
		strings.Join(sourceError.RequiredSources, alternativeSeparatorConstant),
		sourceError.CurrentBranch,
	)
}

func (WrongSourceBranchError) ExitCode() int { return ExitCodeWrongSourceBranch }

func (sourceError WrongSourceBranchError) Hint() string {
	requiredSource := ""
	if len(sourceError.RequiredSources) > 0 {
		requiredSource = sourceError.RequiredSources[0]
	}
	return fmt.Sprintf("Stash or commit your local changes then checkout the '%s' branch.", requiredSource)
}

// ProtectedBranchError reports a mutating operation aimed at a protected branch.
type ProtectedBranchError struct {
	BranchName string
	Operation  string
}

func (protectedError ProtectedBranchError) Error() string {
	return fmt.Sprintf("cannot %s on protected branch '%s'", protectedError.Operation, protectedError.BranchName)
}

func (ProtectedBranchError) ExitCode() int { return ExitCodeProtectedBranch }

func (ProtectedBranchError) Hint() string {
	return "Create a feature, bug, refactor, release or hotfix branch for this change."
}

// InvalidBranchTypeError reports a branch whose type does not permit the requested operation.
type InvalidBranchTypeError struct {
	BranchName string
	BranchType BranchType
	Operation  string
	Suggestion string
}

func (typeError InvalidBranchTypeError) Error() string {
	if len(typeError.BranchType) == 0 {
		return fmt.Sprintf("cannot %s from branch '%s'", typeError.Operation, typeError.BranchName)
	}
	return fmt.Sprintf("cannot %s from branch '%s' of type '%s'", typeError.Operation, typeError.BranchName, typeError.BranchType)
}

func (InvalidBranchTypeError) ExitCode() int { return ExitCodeInvalidBranchType }

func (typeError InvalidBranchTypeError) Hint() string {
	if len(typeError.Suggestion) > 0 {
		return typeError.Suggestion
	}
	return fmt.Sprintf("Supported branch types are '%s'.", strings.Join(BranchTypeNames(), listSeparatorConstant))
}

// WrongBranchError reports an operation that may only run from one specific branch.
type WrongBranchError struct {
	CurrentBranch  string
	RequiredBranch string
	Operation      string
}

func (branchError WrongBranchError) Error() string {
	return fmt.Sprintf("%s must run from '%s', but the current branch is '%s'", branchError.Operation, branchError.RequiredBranch, branchError.CurrentBranch)
}

func (WrongBranchError) ExitCode() int { return ExitCodeWrongBranch }

func (branchError WrongBranchError) Hint() string {
	return fmt.Sprintf("Checkout the '%s' branch and try again.", branchError.RequiredBranch)
}

// DisallowedTargetError reports a pull request target outside the rule's targets.
type DisallowedTargetError struct {
	BranchType     BranchType
	Target         string
	AllowedTargets []string
}

func (targetError DisallowedTargetError) Error() string {
	return fmt.Sprintf("%s branches cannot be merged into '%s'", targetError.BranchType, targetError.Target)
}

func (DisallowedTargetError) ExitCode() int { return ExitCodeDisallowedTarget }

func (targetError DisallowedTargetError) Hint() string {
	return fmt.Sprintf("Allowed targets are '%s'.", strings.Join(targetError.AllowedTargets, listSeparatorConstant))
}

// RemoteLocationError reports a remote that is missing or cannot be turned into a hosting location.
type RemoteLocationError struct {
	RemoteName string
	Cause      error
}

func (locationError RemoteLocationError) Error() string {
	if locationError.Cause == nil {
		return fmt.Sprintf("remote '%s' is not configured", locationError.RemoteName)
	}
	return fmt.Sprintf("remote '%s' cannot be parsed: %v", locationError.RemoteName, locationError.Cause)
}

func (locationError RemoteLocationError) Unwrap() error { return locationError.Cause }

func (RemoteLocationError) ExitCode() int { return ExitCodeRemoteURLParse }

func (locationError RemoteLocationError) Hint() string {
	return fmt.Sprintf("Point '%s' at an SSH or HTTPS remote, e.g. git remote add %s git@github.com:owner/repo.git", locationError.RemoteName, locationError.RemoteName)
}
