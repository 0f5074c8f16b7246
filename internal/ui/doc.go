// Package ui renders everything the operator sees on the console: the echo of each
// git command before it runs, error messages with their remediation hints, the
// workflow rules table and the highlighted branch list.
//
// Styling goes through a lipgloss renderer bound to the destination writer, so
// colors are dropped automatically when output is redirected.
package ui
