// Package gitrepo answers read-only questions about the repository a command
// runs in.
//
// Inspector discovers the enclosing repository with go-git and captures a
// Snapshot of HEAD, local branches and the configured remote. ParseRemoteURL
// turns the remote into host, owner and repository components, and
// RemoteURL.CompareURL builds the pull request compare page for two branches.
package gitrepo
