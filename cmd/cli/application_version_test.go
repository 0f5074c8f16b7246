package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/git-workflow/cmd/cli"
)

func TestApplicationVersionFlagPrintsVersion(testInstance *testing.T) {
	originalVersion := cli.Version
	cli.Version = "v1.4.0"
	testInstance.Cleanup(func() {
		cli.Version = originalVersion
	})

	for _, flagName := range []string{"-v", "--version"} {
		testInstance.Run(flagName, func(testInstance *testing.T) {
			isolateConfiguration(testInstance)

			output, executionError := executeApplication(testInstance, flagName)
			require.NoError(testInstance, executionError)
			require.Equal(testInstance, "git-workflow version v1.4.0\n", output)
		})
	}
}
