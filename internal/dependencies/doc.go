// Package dependencies resolves the default collaborators of the workflow commands
// when a command builder was not given one explicitly.
package dependencies
