package ui

import "strings"

const currentBranchMarkerConstant = "* "

// HighlightCurrentBranch styles the line git marks with an asterisk in `git branch` output.
func HighlightCurrentBranch(styles Styles, branchListing string) string {
	lines := strings.Split(strings.TrimRight(branchListing, "\n"), "\n")
	for lineIndex, line := range lines {
		if strings.HasPrefix(line, currentBranchMarkerConstant) {
			lines[lineIndex] = styles.Current.Render(line)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
