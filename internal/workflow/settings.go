package workflow

import "strings"

const (
	defaultRemoteNameConstant        = "origin"
	defaultDevelopmentBranchConstant = "development"
	defaultMasterBranchConstant      = "master"
	defaultMainBranchConstant        = "main"
)

// Settings carries the configurable branch names and remote used by every verb.
type Settings struct {
	RemoteName         string   `mapstructure:"remote" yaml:"remote"`
	DevelopmentBranch  string   `mapstructure:"development_branch" yaml:"development_branch"`
	ProductionBranches []string `mapstructure:"production_branches" yaml:"production_branches"`
	OpenBrowser        bool     `mapstructure:"open_browser" yaml:"open_browser"`
}

// DefaultSettings returns the conventional origin/development/master-or-main layout.
func DefaultSettings() Settings {
	return Settings{
		RemoteName:         defaultRemoteNameConstant,
		DevelopmentBranch:  defaultDevelopmentBranchConstant,
		ProductionBranches: []string{defaultMasterBranchConstant, defaultMainBranchConstant},
		OpenBrowser:        true,
	}
}

// DefaultConfigurationValues exposes the default settings as flattened configuration keys under prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultSettings()
	keyPrefix := strings.TrimSpace(prefix)
	if len(keyPrefix) > 0 {
		keyPrefix += "."
	}
	return map[string]any{
		keyPrefix + "remote":              defaults.RemoteName,
		keyPrefix + "development_branch":  defaults.DevelopmentBranch,
		keyPrefix + "production_branches": defaults.ProductionBranches,
		keyPrefix + "open_browser":        defaults.OpenBrowser,
	}
}

// Sanitize trims values and substitutes defaults for anything left empty.
func (settings Settings) Sanitize() Settings {
	defaults := DefaultSettings()
	sanitized := settings

	sanitized.RemoteName = strings.TrimSpace(settings.RemoteName)
	if len(sanitized.RemoteName) == 0 {
		sanitized.RemoteName = defaults.RemoteName
	}

	sanitized.DevelopmentBranch = strings.TrimSpace(settings.DevelopmentBranch)
	if len(sanitized.DevelopmentBranch) == 0 {
		sanitized.DevelopmentBranch = defaults.DevelopmentBranch
	}

	sanitized.ProductionBranches = make([]string, 0, len(settings.ProductionBranches))
	for _, productionBranch := range settings.ProductionBranches {
		trimmedBranch := strings.TrimSpace(productionBranch)
		if len(trimmedBranch) == 0 || containsString(sanitized.ProductionBranches, trimmedBranch) {
			continue
		}
		sanitized.ProductionBranches = append(sanitized.ProductionBranches, trimmedBranch)
	}
	if len(sanitized.ProductionBranches) == 0 {
		sanitized.ProductionBranches = defaults.ProductionBranches
	}

	return sanitized
}

func containsString(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}
