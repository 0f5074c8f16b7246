// Package utils exposes the configuration and logging helpers shared by the CLI.
//
// ConfigurationLoader layers embedded defaults, config.yaml files and
// GITWORKFLOW_ environment variables through Viper. LoggerFactory builds zap
// loggers that write to stderr or to a rotating log file.
package utils
