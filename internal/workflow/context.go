package workflow

import (
	"errors"
	"fmt"

	"github.com/temirov/git-workflow/internal/gitrepo"
)

const repositoryInspectionErrorTemplateConstant = "unable to inspect repository: %w"

// RepositoryInspector captures repository state for a working directory.
type RepositoryInspector interface {
	Inspect(workingDirectory string, remoteName string) (gitrepo.Snapshot, error)
}

// RepositoryContext is the per-invocation view of the repository every verb validates against.
type RepositoryContext struct {
	RootPath           string
	CurrentBranch      string
	Detached           bool
	LocalBranches      []string
	RemoteName         string
	RemoteURL          string
	DevelopmentBranch  string
	ProductionBranch   string
	ProductionBranches []string
}

// LoadRepositoryContext inspects workingDirectory once and resolves branch roles from settings.
func LoadRepositoryContext(inspector RepositoryInspector, workingDirectory string, settings Settings) (RepositoryContext, error) {
	sanitizedSettings := settings.Sanitize()
	snapshot, inspectError := inspector.Inspect(workingDirectory, sanitizedSettings.RemoteName)
	if inspectError != nil {
		if errors.Is(inspectError, gitrepo.ErrRepositoryNotFound) {
			return RepositoryContext{}, NoRepositoryError{StartDirectory: workingDirectory}
		}
		return RepositoryContext{}, fmt.Errorf(repositoryInspectionErrorTemplateConstant, inspectError)
	}
	return NewRepositoryContext(snapshot, sanitizedSettings), nil
}

// NewRepositoryContext builds a context from a snapshot. The production branch is the
// current branch when it is a production alias, otherwise the first alias that exists
// locally, otherwise the first configured alias.
func NewRepositoryContext(snapshot gitrepo.Snapshot, settings Settings) RepositoryContext {
	sanitizedSettings := settings.Sanitize()

	productionBranch := sanitizedSettings.ProductionBranches[0]
	if containsString(sanitizedSettings.ProductionBranches, snapshot.CurrentBranch) {
		productionBranch = snapshot.CurrentBranch
	} else {
		for _, candidate := range sanitizedSettings.ProductionBranches {
			if snapshot.HasLocalBranch(candidate) {
				productionBranch = candidate
				break
			}
		}
	}

	return RepositoryContext{
		RootPath:           snapshot.RootPath,
		CurrentBranch:      snapshot.CurrentBranch,
		Detached:           snapshot.Detached,
		LocalBranches:      append([]string{}, snapshot.LocalBranches...),
		RemoteName:         sanitizedSettings.RemoteName,
		RemoteURL:          snapshot.RemoteURL,
		DevelopmentBranch:  sanitizedSettings.DevelopmentBranch,
		ProductionBranch:   productionBranch,
		ProductionBranches: append([]string{}, sanitizedSettings.ProductionBranches...),
	}
}

// IsProductionBranch reports whether branchName is one of the production aliases.
func (repositoryContext RepositoryContext) IsProductionBranch(branchName string) bool {
	return containsString(repositoryContext.ProductionBranches, branchName)
}

// IsProtectedBranch reports whether branchName is a long-lived branch.
func (repositoryContext RepositoryContext) IsProtectedBranch(branchName string) bool {
	return branchName == repositoryContext.DevelopmentBranch || repositoryContext.IsProductionBranch(branchName)
}

// HasLocalBranch reports whether branchName exists locally.
func (repositoryContext RepositoryContext) HasLocalBranch(branchName string) bool {
	return containsString(repositoryContext.LocalBranches, branchName)
}

// ResolveRole returns the concrete branch name of role.
func (repositoryContext RepositoryContext) ResolveRole(role BranchRole) string {
	if role == BranchRoleProduction {
		return repositoryContext.ProductionBranch
	}
	return repositoryContext.DevelopmentBranch
}

// ResolveRoles maps roles to concrete branch names.
func (repositoryContext RepositoryContext) ResolveRoles(roles []BranchRole) []string {
	resolved := make([]string, 0, len(roles))
	for _, role := range roles {
		resolved = append(resolved, repositoryContext.ResolveRole(role))
	}
	return resolved
}

// acceptedSources expands the production role to every alias, since a hotfix may start from any of them.
func (repositoryContext RepositoryContext) acceptedSources(roles []BranchRole) []string {
	accepted := make([]string, 0, len(roles))
	for _, role := range roles {
		if role == BranchRoleProduction {
			accepted = append(accepted, repositoryContext.ProductionBranches...)
			continue
		}
		accepted = append(accepted, repositoryContext.ResolveRole(role))
	}
	return accepted
}

// CurrentBranchType parses the type of the checked out branch.
func (repositoryContext RepositoryContext) CurrentBranchType() (BranchType, error) {
	if repositoryContext.Detached || len(repositoryContext.CurrentBranch) == 0 {
		return "", InvalidBranchNameError{}
	}
	return ParseBranchType(repositoryContext.CurrentBranch)
}

// Location parses the configured remote into its hosting components.
func (repositoryContext RepositoryContext) Location() (gitrepo.RemoteURL, error) {
	if len(repositoryContext.RemoteURL) == 0 {
		return gitrepo.RemoteURL{}, RemoteLocationError{RemoteName: repositoryContext.RemoteName}
	}
	location, parseError := gitrepo.ParseRemoteURL(repositoryContext.RemoteURL)
	if parseError != nil {
		return gitrepo.RemoteURL{}, RemoteLocationError{RemoteName: repositoryContext.RemoteName, Cause: parseError}
	}
	return location, nil
}
