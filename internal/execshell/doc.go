// Package execshell runs external tools on behalf of the workflow verbs.
//
// ShellExecutor wraps a CommandRunner with zap logging and notifies
// CommandEventObserver implementations around every invocation, which is how
// the CLI echoes each git command before it runs. OSCommandRunner is the
// os/exec backed runner used outside of tests.
package execshell
