package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/temirov/git-workflow/internal/workflow"
)

const (
	rulesTypeHeaderConstant    = "Type"
	rulesSourceHeaderConstant  = "Created from"
	rulesTargetsHeaderConstant = "Merges into"
	rulesBranchHeaderConstant  = "Branch"
	aliasSeparatorConstant     = " | "
	targetSeparatorConstant    = ", "
	branchPatternSuffix        = "/<name>"
)

// RenderRules renders the workflow table with role placeholders replaced by configured branch names.
// Every production alias is shown since any of them may exist in a repository.
func RenderRules(styles Styles, rules []workflow.Rule, settings workflow.Settings) string {
	sanitizedSettings := settings.Sanitize()
	describeRole := func(role workflow.BranchRole) string {
		if role == workflow.BranchRoleProduction {
			return strings.Join(sanitizedSettings.ProductionBranches, aliasSeparatorConstant)
		}
		return sanitizedSettings.DevelopmentBranch
	}

	rows := make([][]string, 0, len(rules))
	for _, rule := range rules {
		sources := make([]string, 0, len(rule.Sources))
		for _, source := range rule.Sources {
			sources = append(sources, describeRole(source))
		}
		targets := make([]string, 0, len(rule.Targets))
		for _, target := range rule.Targets {
			targets = append(targets, describeRole(target))
		}
		rows = append(rows, []string{
			string(rule.Type),
			string(rule.Type) + branchPatternSuffix,
			strings.Join(sources, targetSeparatorConstant),
			strings.Join(targets, targetSeparatorConstant),
		})
	}

	rulesTable := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		Headers(rulesTypeHeaderConstant, rulesBranchHeaderConstant, rulesSourceHeaderConstant, rulesTargetsHeaderConstant).
		Rows(rows...).
		StyleFunc(func(row, column int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		})

	return rulesTable.Render() + "\n"
}
