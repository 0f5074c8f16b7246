// Package workflow holds the branching conventions enforced by every verb.
//
// It defines the branch types and the rule table naming each type's source and
// pull request targets, slug construction for new branch names, the
// RepositoryContext resolved once per invocation, the precondition checks
// built on it, and the typed errors with exit codes and remediation hints.
package workflow
