package gitrepo

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const (
	workingDirectoryRequiredMessageConstant = "working directory must be provided"
	repositoryOpenErrorTemplateConstant     = "unable to open repository at %s: %w"
	headReadErrorTemplateConstant           = "unable to read HEAD: %w"
	branchListErrorTemplateConstant         = "unable to list local branches: %w"
	remoteReadErrorTemplateConstant         = "unable to read remote %s: %w"
	worktreeReadErrorTemplateConstant       = "unable to resolve worktree: %w"
)

// ErrRepositoryNotFound indicates no repository metadata exists between the start directory and the filesystem root.
var ErrRepositoryNotFound = errors.New("no git repository found")

// ErrWorkingDirectoryRequired indicates Inspect was called without a start directory.
var ErrWorkingDirectoryRequired = errors.New(workingDirectoryRequiredMessageConstant)

// Snapshot is the read-only repository state a workflow verb needs.
type Snapshot struct {
	RootPath      string
	CurrentBranch string
	Detached      bool
	LocalBranches []string
	RemoteName    string
	RemoteURL     string
}

// HasLocalBranch reports whether a local branch with the exact name exists.
func (snapshot Snapshot) HasLocalBranch(branchName string) bool {
	for _, localBranch := range snapshot.LocalBranches {
		if localBranch == branchName {
			return true
		}
	}
	return false
}

// Inspector reads repository state with go-git without spawning git processes.
type Inspector struct{}

// NewInspector constructs an Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect discovers the repository enclosing workingDirectory and captures its current state.
// A missing or unreadable remote leaves RemoteURL empty.
func (inspector *Inspector) Inspect(workingDirectory string, remoteName string) (Snapshot, error) {
	trimmedWorkingDirectory := strings.TrimSpace(workingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return Snapshot{}, ErrWorkingDirectoryRequired
	}

	repository, openError := gogit.PlainOpenWithOptions(trimmedWorkingDirectory, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if openError != nil {
		if errors.Is(openError, gogit.ErrRepositoryNotExists) {
			return Snapshot{}, ErrRepositoryNotFound
		}
		return Snapshot{}, fmt.Errorf(repositoryOpenErrorTemplateConstant, trimmedWorkingDirectory, openError)
	}

	rootPath, rootError := resolveRootPath(repository, trimmedWorkingDirectory)
	if rootError != nil {
		return Snapshot{}, rootError
	}

	snapshot := Snapshot{RootPath: rootPath, RemoteName: remoteName}

	headReference, headError := repository.Reference(plumbing.HEAD, false)
	if headError != nil {
		return Snapshot{}, fmt.Errorf(headReadErrorTemplateConstant, headError)
	}
	if headReference.Type() == plumbing.SymbolicReference && headReference.Target().IsBranch() {
		snapshot.CurrentBranch = headReference.Target().Short()
	} else {
		snapshot.Detached = true
	}

	branchIterator, branchesError := repository.Branches()
	if branchesError != nil {
		return Snapshot{}, fmt.Errorf(branchListErrorTemplateConstant, branchesError)
	}
	iterationError := branchIterator.ForEach(func(reference *plumbing.Reference) error {
		snapshot.LocalBranches = append(snapshot.LocalBranches, reference.Name().Short())
		return nil
	})
	if iterationError != nil {
		return Snapshot{}, fmt.Errorf(branchListErrorTemplateConstant, iterationError)
	}
	sort.Strings(snapshot.LocalBranches)

	if len(strings.TrimSpace(remoteName)) > 0 {
		remote, remoteError := repository.Remote(remoteName)
		switch {
		case errors.Is(remoteError, gogit.ErrRemoteNotFound):
		case remoteError != nil:
			return Snapshot{}, fmt.Errorf(remoteReadErrorTemplateConstant, remoteName, remoteError)
		case len(remote.Config().URLs) > 0:
			snapshot.RemoteURL = remote.Config().URLs[0]
		}
	}

	return snapshot, nil
}

func resolveRootPath(repository *gogit.Repository, fallback string) (string, error) {
	worktree, worktreeError := repository.Worktree()
	if errors.Is(worktreeError, gogit.ErrIsBareRepository) {
		return filepath.Clean(fallback), nil
	}
	if worktreeError != nil {
		return "", fmt.Errorf(worktreeReadErrorTemplateConstant, worktreeError)
	}
	return worktree.Filesystem.Root(), nil
}
