package workflow

import "strings"

const branchTypeSeparatorConstant = "/"

// BranchType is the prefix of a branch name that encodes its role.
type BranchType string

// Supported branch types.
const (
	BranchTypeFeature  BranchType = "feature"
	BranchTypeBug      BranchType = "bug"
	BranchTypeRefactor BranchType = "refactor"
	BranchTypeRelease  BranchType = "release"
	BranchTypeHotfix   BranchType = "hotfix"
)

// BranchRole names a long-lived branch whose concrete name comes from Settings.
type BranchRole string

// Long-lived branch roles.
const (
	BranchRoleDevelopment BranchRole = "development"
	BranchRoleProduction  BranchRole = "production"
)

// Rule states where a branch type may be created from and merged into.
type Rule struct {
	Type    BranchType
	Sources []BranchRole
	Targets []BranchRole
}

// The first target of every rule is the default pull request target.
var workflowRules = []Rule{
	{Type: BranchTypeFeature, Sources: []BranchRole{BranchRoleDevelopment}, Targets: []BranchRole{BranchRoleDevelopment}},
	{Type: BranchTypeBug, Sources: []BranchRole{BranchRoleDevelopment}, Targets: []BranchRole{BranchRoleDevelopment}},
	{Type: BranchTypeRefactor, Sources: []BranchRole{BranchRoleDevelopment}, Targets: []BranchRole{BranchRoleDevelopment}},
	{Type: BranchTypeRelease, Sources: []BranchRole{BranchRoleDevelopment}, Targets: []BranchRole{BranchRoleProduction, BranchRoleDevelopment}},
	{Type: BranchTypeHotfix, Sources: []BranchRole{BranchRoleProduction}, Targets: []BranchRole{BranchRoleProduction, BranchRoleDevelopment}},
}

// Rules returns the workflow table in display order.
func Rules() []Rule {
	duplicated := make([]Rule, len(workflowRules))
	copy(duplicated, workflowRules)
	return duplicated
}

// RuleFor looks up the rule of a branch type.
func RuleFor(branchType BranchType) (Rule, bool) {
	for _, rule := range workflowRules {
		if rule.Type == branchType {
			return rule, true
		}
	}
	return Rule{}, false
}

// BranchTypeNames lists the supported branch type prefixes.
func BranchTypeNames() []string {
	names := make([]string, 0, len(workflowRules))
	for _, rule := range workflowRules {
		names = append(names, string(rule.Type))
	}
	return names
}

// ParseBranchType splits a branch name on its first separator. The returned type
// is not checked against the rule table.
func ParseBranchType(branchName string) (BranchType, error) {
	prefix, remainder, separatorFound := strings.Cut(branchName, branchTypeSeparatorConstant)
	if !separatorFound || len(prefix) == 0 || len(remainder) == 0 {
		return "", InvalidBranchNameError{BranchName: branchName}
	}
	return BranchType(prefix), nil
}

// BranchName joins a type and slug into <type>/<slug>.
func BranchName(branchType BranchType, slug string) string {
	return string(branchType) + branchTypeSeparatorConstant + slug
}
