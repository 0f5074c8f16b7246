package gitrepo

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	sshProtocolPrefixConstant           = "ssh://"
	sshUserDelimiterConstant            = "@"
	sshPathDelimiterConstant            = ":"
	httpsProtocolPrefixConstant         = "https://"
	pathSeparatorConstant               = "/"
	gitSuffixConstant                   = ".git"
	remoteURLParseErrorTemplateConstant = "%q: %s"
	invalidRemoteURLMessageConstant     = "invalid remote url"
	requiredValueMessageConstant        = "value is required"
	missingOwnerMessageConstant         = "remote url is missing the repository owner"
	compareURLTemplateConstant          = "https://%s/%s/%s/compare/%s...%s"
	compareExpandQueryKeyConstant       = "expand"
	compareExpandQueryValueConstant     = "1"
	compareTitleQueryKeyConstant        = "title"
)

// RemoteProtocol enumerates supported git remote protocols.
type RemoteProtocol string

// Supported remote protocols.
const (
	RemoteProtocolSSH   RemoteProtocol = RemoteProtocol("ssh")
	RemoteProtocolHTTPS RemoteProtocol = RemoteProtocol("https")
)

// RemoteURL is the parsed location of a hosted repository.
type RemoteURL struct {
	Protocol   RemoteProtocol
	Host       string
	Owner      string
	Repository string
}

// RemoteURLParseError indicates a remote string could not be parsed.
type RemoteURLParseError struct {
	Input   string
	Message string
}

// Error describes the parse failure.
func (parseError RemoteURLParseError) Error() string {
	return fmt.Sprintf(remoteURLParseErrorTemplateConstant, parseError.Input, parseError.Message)
}

// ParseRemoteURL converts git@host:owner/repo.git, host:owner/repo.git, ssh://git@host/owner/repo.git and
// https://host/owner/repo.git remotes into their components.
func ParseRemoteURL(remote string) (RemoteURL, error) {
	trimmedRemote := strings.TrimSpace(remote)
	if len(trimmedRemote) == 0 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: requiredValueMessageConstant}
	}

	switch {
	case strings.HasPrefix(trimmedRemote, sshProtocolPrefixConstant):
		return parseSSHRemote(remote, strings.TrimPrefix(trimmedRemote, sshProtocolPrefixConstant), pathSeparatorConstant)
	case strings.HasPrefix(trimmedRemote, httpsProtocolPrefixConstant):
		return parseHTTPSRemote(remote, strings.TrimPrefix(trimmedRemote, httpsProtocolPrefixConstant))
	case strings.Contains(trimmedRemote, sshUserDelimiterConstant), isScpStyleWithoutUser(trimmedRemote):
		return parseSSHRemote(remote, trimmedRemote, sshPathDelimiterConstant)
	default:
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}
}

// isScpStyleWithoutUser matches host:owner/repo.git and ssh config aliases such as gh:owner/repo.git.
func isScpStyleWithoutUser(remote string) bool {
	delimiterIndex := strings.Index(remote, sshPathDelimiterConstant)
	if delimiterIndex <= 0 {
		return false
	}
	separatorIndex := strings.Index(remote, pathSeparatorConstant)
	return separatorIndex < 0 || delimiterIndex < separatorIndex
}

func parseSSHRemote(original string, remote string, hostDelimiter string) (RemoteURL, error) {
	_, hostAndPath, userFound := strings.Cut(remote, sshUserDelimiterConstant)
	if !userFound {
		hostAndPath = remote
	}

	host, path, pathFound := strings.Cut(hostAndPath, hostDelimiter)
	if !pathFound || len(host) == 0 {
		return RemoteURL{}, RemoteURLParseError{Input: original, Message: invalidRemoteURLMessageConstant}
	}
	// ssh://git@host:22/owner/repo.git carries a port before the path.
	if hostDelimiter == pathSeparatorConstant {
		host, _, _ = strings.Cut(host, sshPathDelimiterConstant)
	}

	owner, repository, parseError := splitOwnerAndRepository(original, path)
	if parseError != nil {
		return RemoteURL{}, parseError
	}
	return RemoteURL{Protocol: RemoteProtocolSSH, Host: host, Owner: owner, Repository: repository}, nil
}

func parseHTTPSRemote(original string, remote string) (RemoteURL, error) {
	host, path, pathFound := strings.Cut(remote, pathSeparatorConstant)
	if !pathFound || len(host) == 0 {
		return RemoteURL{}, RemoteURLParseError{Input: original, Message: invalidRemoteURLMessageConstant}
	}
	if _, hostWithoutCredentials, credentialsFound := strings.Cut(host, sshUserDelimiterConstant); credentialsFound {
		host = hostWithoutCredentials
	}

	owner, repository, parseError := splitOwnerAndRepository(original, path)
	if parseError != nil {
		return RemoteURL{}, parseError
	}
	return RemoteURL{Protocol: RemoteProtocolHTTPS, Host: host, Owner: owner, Repository: repository}, nil
}

// splitOwnerAndRepository treats everything up to the last separator as the owner,
// which keeps nested GitLab groups intact.
func splitOwnerAndRepository(original string, path string) (string, string, error) {
	trimmedPath := strings.Trim(strings.TrimSuffix(strings.TrimSpace(path), pathSeparatorConstant), pathSeparatorConstant)
	separatorIndex := strings.LastIndex(trimmedPath, pathSeparatorConstant)
	if separatorIndex <= 0 {
		return "", "", RemoteURLParseError{Input: original, Message: missingOwnerMessageConstant}
	}

	repository := strings.TrimSuffix(trimmedPath[separatorIndex+1:], gitSuffixConstant)
	if len(repository) == 0 {
		return "", "", RemoteURLParseError{Input: original, Message: invalidRemoteURLMessageConstant}
	}
	return trimmedPath[:separatorIndex], repository, nil
}

// CompareURL builds the hosting service page that proposes merging sourceBranch into targetBranch.
// A non-empty title is passed through as the pre-filled pull request title.
func (remote RemoteURL) CompareURL(targetBranch string, sourceBranch string, title string) string {
	query := url.Values{}
	query.Set(compareExpandQueryKeyConstant, compareExpandQueryValueConstant)
	if len(strings.TrimSpace(title)) > 0 {
		query.Set(compareTitleQueryKeyConstant, title)
	}

	return fmt.Sprintf(
		compareURLTemplateConstant,
		remote.Host,
		remote.Owner,
		remote.Repository,
		escapeBranchPath(targetBranch),
		escapeBranchPath(sourceBranch),
	) + "?" + query.Encode()
}

func escapeBranchPath(branchName string) string {
	segments := strings.Split(branchName, pathSeparatorConstant)
	for segmentIndex, segment := range segments {
		segments[segmentIndex] = url.PathEscape(segment)
	}
	return strings.Join(segments, pathSeparatorConstant)
}
