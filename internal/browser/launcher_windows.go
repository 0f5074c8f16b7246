//go:build windows

package browser

import "github.com/temirov/git-workflow/internal/execshell"

// launcherCommand opens address in the default browser on Windows. The empty
// argument is the window title consumed by start.
func launcherCommand(address string) execshell.ShellCommand {
	return execshell.ShellCommand{Name: execshell.CommandName("cmd"), Details: execshell.CommandDetails{Arguments: []string{"/c", "start", "", address}}}
}
