package cli

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

const embeddedConfigurationParseErrorTemplateConstant = "unable to parse embedded configuration: %w"

//go:embed default_config.yaml
var embeddedDefaultConfigurationContent []byte

// EmbeddedDefaultConfiguration returns a copy of the embedded default configuration and its type identifier.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	duplicatedContent := make([]byte, len(embeddedDefaultConfigurationContent))
	copy(duplicatedContent, embeddedDefaultConfigurationContent)
	return duplicatedContent, configurationTypeConstant
}

// DefaultApplicationConfiguration decodes the embedded defaults.
func DefaultApplicationConfiguration() (ApplicationConfiguration, error) {
	var configuration ApplicationConfiguration
	if decodeError := yaml.Unmarshal(embeddedDefaultConfigurationContent, &configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf(embeddedConfigurationParseErrorTemplateConstant, decodeError)
	}
	return configuration, nil
}
