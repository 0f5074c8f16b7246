//go:build !linux && !darwin && !windows

package browser

import "github.com/temirov/git-workflow/internal/execshell"

func launcherCommand(address string) execshell.ShellCommand {
	return execshell.ShellCommand{Name: execshell.CommandName("xdg-open"), Details: execshell.CommandDetails{Arguments: []string{address}}}
}
