package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	internalTestConfigurationFileNameConstant = "config.yaml"
	internalTestConfigurationContentConstant  = "common:\n  log_level: warn\n  log_format: structured\nworkspace:\n  target: /srv/workspace\n  repositories:\n    - https://github.com/temirov/alpha.git\n  update: true\n"
)

func writeTestConfigurationFile(testInstance *testing.T) string {
	testInstance.Helper()

	configurationPath := filepath.Join(testInstance.TempDir(), internalTestConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(internalTestConfigurationContentConstant), 0o600))
	return configurationPath
}

func TestInitializeConfigurationReadsConfigurationFile(testInstance *testing.T) {
	application, creationError := NewApplication()
	require.NoError(testInstance, creationError)
	application.configurationFilePath = writeTestConfigurationFile(testInstance)

	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, "warn", application.configuration.Common.LogLevel)
	require.Equal(testInstance, "structured", application.configuration.Common.LogFormat)
	require.Equal(testInstance, "/srv/workspace", application.configuration.Workspace.Target)
	require.Equal(testInstance, []string{"https://github.com/temirov/alpha.git"}, application.configuration.Workspace.Repositories)
	require.True(testInstance, application.configuration.Workspace.Update)
}

func TestInitializeConfigurationFlagOverridesConfigurationFile(testInstance *testing.T) {
	application, creationError := NewApplication()
	require.NoError(testInstance, creationError)
	application.configurationFilePath = writeTestConfigurationFile(testInstance)

	require.NoError(testInstance, application.rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, "debug"))
	require.NoError(testInstance, application.rootCommand.PersistentFlags().Set(logFormatFlagNameConstant, "console"))

	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, "debug", application.configuration.Common.LogLevel)
	require.Equal(testInstance, "console", application.configuration.Common.LogFormat)
}

func TestInitializeConfigurationEnvironmentOverridesEmbeddedDefaults(testInstance *testing.T) {
	testInstance.Setenv("WSBOOT_WORKSPACE_BRANCH", "release")
	testInstance.Setenv("WSBOOT_COMMON_LOG_LEVEL", "debug")

	application, creationError := NewApplication()
	require.NoError(testInstance, creationError)

	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, "release", application.configuration.Workspace.Branch)
	require.Equal(testInstance, "debug", application.configuration.Common.LogLevel)
}

func TestInitializeConfigurationRejectsUnknownLogLevel(testInstance *testing.T) {
	application, creationError := NewApplication()
	require.NoError(testInstance, creationError)

	require.NoError(testInstance, application.rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, "verbose"))

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.Error(testInstance, initializationError)
}

func TestHumanReadableLoggingEnabled(testInstance *testing.T) {
	testCases := []struct {
		name           string
		logFormatValue string
		expectedResult bool
	}{
		{name: "console_format", logFormatValue: "console", expectedResult: true},
		{name: "console_format_mixed_case", logFormatValue: "Console", expectedResult: true},
		{name: "structured_format", logFormatValue: "structured", expectedResult: false},
		{name: "empty_format", logFormatValue: "", expectedResult: false},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			application := &Application{}
			application.configuration.Common.LogFormat = testCase.logFormatValue

			require.Equal(testInstance, testCase.expectedResult, application.humanReadableLoggingEnabled())
		})
	}
}
