package cli

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/temirov/git-workflow/internal/utils"
	"github.com/temirov/git-workflow/internal/workflow"
)

func TestDefaultApplicationConfigurationMatchesBuiltInDefaults(t *testing.T) {
	configuration, decodeError := DefaultApplicationConfiguration()
	require.NoError(t, decodeError)

	require.Equal(t, workflow.DefaultSettings(), configuration.Workflow)
	require.Equal(t, string(utils.LogLevelWarn), configuration.Common.LogLevel)
	require.Equal(t, string(utils.LogFormatConsole), configuration.Common.LogFormat)
	require.Empty(t, configuration.Common.LogFile)
}

func TestConfigurationSearchPathsIncludeUserDirectory(t *testing.T) {
	configurationHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configurationHome)

	searchPaths := configurationSearchPaths()
	require.Equal(t, defaultConfigurationSearchPathConstant, searchPaths[0])
	require.Contains(t, searchPaths, filepath.Join(configurationHome, userConfigurationDirectoryNameConstant))
}

func TestPersistentFlagChangedInspectsRootFlags(t *testing.T) {
	application := NewApplication()
	rootCommand := application.rootCommand

	var rulesCommand *cobra.Command
	for _, command := range rootCommand.Commands() {
		if command.Name() == rulesUseConstant {
			rulesCommand = command
		}
	}
	require.NotNil(t, rulesCommand)

	require.False(t, application.persistentFlagChanged(rulesCommand, logLevelFlagNameConstant))
	require.NoError(t, rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, "debug"))
	require.True(t, application.persistentFlagChanged(rulesCommand, logLevelFlagNameConstant))
	require.False(t, application.persistentFlagChanged(nil, logLevelFlagNameConstant))
}

func TestInitializeConfigurationAttachesLoadedConfiguration(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	application := NewApplication()
	rootCommand := application.rootCommand

	require.NoError(t, application.initializeConfiguration(rootCommand))

	_, available := application.commandContextAccessor.LoadedConfiguration(rootCommand.Context())
	require.True(t, available)
	require.NotNil(t, application.logger)
	require.Equal(t, "origin", application.configuration.Workflow.RemoteName)
}
