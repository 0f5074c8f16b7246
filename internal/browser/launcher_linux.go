//go:build linux

package browser

import "github.com/temirov/git-workflow/internal/execshell"

// launcherCommand opens address with the desktop's registered handler.
func launcherCommand(address string) execshell.ShellCommand {
	return execshell.ShellCommand{Name: execshell.CommandName("xdg-open"), Details: execshell.CommandDetails{Arguments: []string{address}}}
}
