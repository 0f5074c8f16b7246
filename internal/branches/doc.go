// Package branches implements the branch verbs of git-workflow: typed branch
// creation, listing and checkout, the release merge step and branch deletion.
//
// Service validates every request against a workflow.RepositoryContext before
// running git through the injected executor; CommandBuilder exposes the verbs
// as Cobra commands.
package branches
