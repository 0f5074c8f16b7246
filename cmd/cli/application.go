package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/temirov/git-workflow/internal/branches"
	"github.com/temirov/git-workflow/internal/publish"
	"github.com/temirov/git-workflow/internal/tags"
	"github.com/temirov/git-workflow/internal/ui"
	"github.com/temirov/git-workflow/internal/utils"
	"github.com/temirov/git-workflow/internal/workflow"
)

const (
	applicationNameConstant                  = "git-workflow"
	applicationShortDescriptionConstant      = "Branch, commit, pull request and tag helpers for a feature/release/hotfix git workflow"
	applicationLongDescriptionConstant       = "git-workflow wraps git with branch naming and merge-direction rules. Every mutating git command is echoed before it runs. Run 'git-workflow rules' to see which branch types are created from and merged into which branches."
	versionTemplateConstant                  = "{{.Name}} version {{.Version}}\n"
	configFileFlagNameConstant               = "config"
	configFileFlagUsageConstant              = "Optional path to a configuration file (YAML)."
	logLevelFlagNameConstant                 = "log-level"
	logLevelFlagUsageConstant                = "Override the configured log level (debug, info, warn or error)."
	logFormatFlagNameConstant                = "log-format"
	logFormatFlagUsageConstant               = "Override the configured log format (structured or console)."
	commonConfigurationKeyConstant           = "common"
	commonLogLevelConfigKeyConstant          = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant         = commonConfigurationKeyConstant + ".log_format"
	commonLogFileConfigKeyConstant           = commonConfigurationKeyConstant + ".log_file"
	workflowConfigurationKeyConstant         = "workflow"
	environmentPrefixConstant                = "GITWORKFLOW"
	configurationNameConstant                = "config"
	configurationTypeConstant                = "yaml"
	configurationInitializedMessageConstant  = "configuration initialized"
	configurationLogLevelFieldConstant       = "log_level"
	configurationLogFormatFieldConstant      = "log_format"
	configurationFileFieldConstant           = "config_file"
	configurationLoadErrorTemplateConstant   = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant      = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant          = "unable to flush logger: %w"
	configurationRenderErrorTemplateConstant = "unable to render configuration: %w"
	rootCommandDebugMessageConstant          = "git-workflow invoked"
	logFieldCommandNameConstant              = "command_name"
	logFieldArgumentsConstant                = "arguments"
	defaultConfigurationSearchPathConstant   = "."
	userConfigurationDirectoryNameConstant   = "git-workflow"
	rulesUseConstant                         = "rules"
	rulesShortConstant                       = "Print the branch workflow rules"
	configUseConstant                        = "config"
	configShortConstant                      = "Print the effective configuration as YAML"
	configFileCommentTemplateConstant        = "# %s\n"
	defaultVersionConstant                   = "dev"
)

// Version is reported by --version and may be replaced at link time with -ldflags "-X".
var Version = defaultVersionConstant

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common   ApplicationCommonConfiguration `mapstructure:"common" yaml:"common"`
	Workflow workflow.Settings              `mapstructure:"workflow" yaml:"workflow"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
	LogFile   string `mapstructure:"log_file" yaml:"log_file"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	configuration          ApplicationConfiguration
	configurationMetadata  utils.LoadedConfiguration
	configurationFilePath  string
	logLevelFlagValue      string
	logFormatFlagValue     string
	commandContextAccessor utils.CommandContextAccessor
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		configurationSearchPaths(),
	)
	embeddedConfiguration, embeddedConfigurationType := EmbeddedDefaultConfiguration()
	configurationLoader.SetEmbeddedConfiguration(embeddedConfiguration, embeddedConfigurationType)

	application := &Application{
		configurationLoader:    configurationLoader,
		loggerFactory:          utils.NewLoggerFactory(),
		logger:                 zap.NewNop(),
		configuration:          ApplicationConfiguration{Workflow: workflow.DefaultSettings()},
		commandContextAccessor: utils.NewCommandContextAccessor(),
	}
	if defaultConfiguration, defaultConfigurationError := DefaultApplicationConfiguration(); defaultConfigurationError == nil {
		application.configuration = defaultConfiguration
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.SetVersionTemplate(versionTemplateConstant)
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)

	loggerProvider := func() *zap.Logger {
		return application.logger
	}
	settingsProvider := func() workflow.Settings {
		return application.configuration.Workflow
	}

	branchesBuilder := branches.CommandBuilder{
		LoggerProvider:        loggerProvider,
		ConfigurationProvider: settingsProvider,
	}
	branchCommands, branchesBuildError := branchesBuilder.Build()
	if branchesBuildError == nil {
		cobraCommand.AddCommand(branchCommands...)
	}

	publishBuilder := publish.CommandBuilder{
		LoggerProvider:        loggerProvider,
		ConfigurationProvider: settingsProvider,
	}
	publishCommands, publishBuildError := publishBuilder.Build()
	if publishBuildError == nil {
		cobraCommand.AddCommand(publishCommands...)
	}

	tagsBuilder := tags.CommandBuilder{
		LoggerProvider:        loggerProvider,
		ConfigurationProvider: settingsProvider,
	}
	tagCommands, tagsBuildError := tagsBuilder.Build()
	if tagsBuildError == nil {
		cobraCommand.AddCommand(tagCommands...)
	}

	cobraCommand.AddCommand(application.buildRulesCommand(), application.buildConfigCommand())

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	return application.ExecuteContext(context.Background())
}

// ExecuteContext runs the command hierarchy with the provided context.
func (application *Application) ExecuteContext(executionContext context.Context) error {
	executionError := application.rootCommand.ExecuteContext(executionContext)
	if syncError := application.flushLogger(); syncError != nil && executionError == nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// RootCommand exposes the assembled Cobra command.
func (application *Application) RootCommand() *cobra.Command {
	return application.rootCommand
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) buildRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   rulesUseConstant,
		Short: rulesShortConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			output := command.OutOrStdout()
			_, writeError := fmt.Fprintln(output, ui.RenderRules(ui.NewStyles(output), workflow.Rules(), application.configuration.Workflow))
			return writeError
		},
	}
}

func (application *Application) buildConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   configUseConstant,
		Short: configShortConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			effectiveConfiguration := application.configuration
			effectiveConfiguration.Workflow = effectiveConfiguration.Workflow.Sanitize()

			renderedConfiguration, marshalError := yaml.Marshal(effectiveConfiguration)
			if marshalError != nil {
				return fmt.Errorf(configurationRenderErrorTemplateConstant, marshalError)
			}

			output := command.OutOrStdout()
			if loadedConfiguration, available := application.commandContextAccessor.LoadedConfiguration(command.Context()); available && len(loadedConfiguration.ConfigFileUsed) > 0 {
				fmt.Fprintf(output, configFileCommentTemplateConstant, loadedConfiguration.ConfigFileUsed)
			}
			_, writeError := output.Write(renderedConfiguration)
			return writeError
		},
	}
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelWarn),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatConsole),
		commonLogFileConfigKeyConstant:   "",
	}
	for configurationKey, configurationValue := range workflow.DefaultConfigurationValues(workflowConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}

	var configuration ApplicationConfiguration
	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configuration = configuration
	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
		application.configuration.Common.LogFile,
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	if command != nil {
		updatedContext := application.commandContextAccessor.WithLoadedConfiguration(command.Context(), application.configurationMetadata)
		command.SetContext(updatedContext)
	}

	return nil
}

func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	application.logger.Debug(
		rootCommandDebugMessageConstant,
		zap.String(logFieldCommandNameConstant, command.Name()),
		zap.Strings(logFieldArgumentsConstant, arguments),
	)
	return command.Help()
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	case errors.Is(syncError, syscall.ENOTTY):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}

// configurationSearchPaths lists the working directory first, then the per-user configuration directory.
func configurationSearchPaths() []string {
	searchPaths := []string{defaultConfigurationSearchPathConstant}
	if userConfigurationDirectory, directoryError := os.UserConfigDir(); directoryError == nil {
		searchPaths = append(searchPaths, filepath.Join(userConfigurationDirectory, userConfigurationDirectoryNameConstant))
	}
	return searchPaths
}
