package shared

import (
	"context"
	"time"

	"github.com/temirov/git-workflow/internal/execshell"
)

// GitExecutor runs git commands.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// URLOpener hands a URL to the operator, usually by opening the default browser.
type URLOpener interface {
	Open(executionContext context.Context, address string) error
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
