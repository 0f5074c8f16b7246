// Package cli assembles the git-workflow command-line interface.
//
// It wires the Cobra root command to the branch, publish and tag command
// builders, loads configuration through Viper (embedded defaults, config.yaml
// files and GITWORKFLOW_ environment variables) and creates the zap logger
// every command shares.
package cli
