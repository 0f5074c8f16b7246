//go:build darwin

package browser

import "github.com/temirov/git-workflow/internal/execshell"

// launcherCommand opens address in the default browser on macOS.
func launcherCommand(address string) execshell.ShellCommand {
	return execshell.ShellCommand{Name: execshell.CommandName("open"), Details: execshell.CommandDetails{Arguments: []string{address}}}
}
