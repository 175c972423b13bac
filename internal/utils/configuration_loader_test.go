package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/wsboot/internal/utils"
)

const (
	testConfigurationNameConstant       = "config"
	testConfigurationTypeConstant       = "yaml"
	testEnvironmentPrefixConstant       = "WSBOOTTEST"
	testConfigurationFileNameConstant   = "config.yaml"
	testConfigurationContentConstant    = "workspace:\n  target: /tmp/workspace\n  update: true\n"
	testEmbeddedConfigurationConstant   = "workspace:\n  target: ~/workspace\n  branch: main\n"
	testDefaultTargetValueConstant      = "/default/workspace"
	testDefaultTargetConfigKeyConstant  = "workspace.target"
	testEnvironmentVariableNameConstant = "WSBOOTTEST_WORKSPACE_BRANCH"
	testEnvironmentBranchValueConstant  = "release"
)

type testWorkspaceConfiguration struct {
	Workspace struct {
		Target string `mapstructure:"target"`
		Branch string `mapstructure:"branch"`
		Update bool   `mapstructure:"update"`
	} `mapstructure:"workspace"`
}

func TestConfigurationLoaderAppliesDefaults(testInstance *testing.T) {
	loader := utils.NewConfigurationLoader(
		testConfigurationNameConstant,
		testConfigurationTypeConstant,
		testEnvironmentPrefixConstant,
		[]string{testInstance.TempDir()},
	)

	var configuration testWorkspaceConfiguration
	loadedConfiguration, loadError := loader.LoadConfiguration(
		"",
		map[string]any{testDefaultTargetConfigKeyConstant: testDefaultTargetValueConstant},
		&configuration,
	)

	require.NoError(testInstance, loadError)
	require.Empty(testInstance, loadedConfiguration.ConfigFileUsed)
	require.Equal(testInstance, testDefaultTargetValueConstant, configuration.Workspace.Target)
}

func TestConfigurationLoaderReadsConfigurationFile(testInstance *testing.T) {
	configurationDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(configurationDirectory, testConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(testConfigurationContentConstant), 0o600))

	loader := utils.NewConfigurationLoader(
		testConfigurationNameConstant,
		testConfigurationTypeConstant,
		testEnvironmentPrefixConstant,
		[]string{configurationDirectory},
	)

	var configuration testWorkspaceConfiguration
	loadedConfiguration, loadError := loader.LoadConfiguration(configurationFilePath, nil, &configuration)

	require.NoError(testInstance, loadError)
	require.Equal(testInstance, configurationFilePath, loadedConfiguration.ConfigFileUsed)
	require.Equal(testInstance, "/tmp/workspace", configuration.Workspace.Target)
	require.True(testInstance, configuration.Workspace.Update)
}

func TestConfigurationLoaderMergesEmbeddedConfiguration(testInstance *testing.T) {
	loader := utils.NewConfigurationLoader(
		testConfigurationNameConstant,
		testConfigurationTypeConstant,
		testEnvironmentPrefixConstant,
		[]string{testInstance.TempDir()},
	)
	loader.SetEmbeddedConfiguration([]byte(testEmbeddedConfigurationConstant))

	var configuration testWorkspaceConfiguration
	_, loadError := loader.LoadConfiguration("", nil, &configuration)

	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "~/workspace", configuration.Workspace.Target)
	require.Equal(testInstance, "main", configuration.Workspace.Branch)
}

func TestConfigurationLoaderEnvironmentOverridesEmbeddedValues(testInstance *testing.T) {
	testInstance.Setenv(testEnvironmentVariableNameConstant, testEnvironmentBranchValueConstant)

	loader := utils.NewConfigurationLoader(
		testConfigurationNameConstant,
		testConfigurationTypeConstant,
		testEnvironmentPrefixConstant,
		[]string{testInstance.TempDir()},
	)
	loader.SetEmbeddedConfiguration([]byte(testEmbeddedConfigurationConstant))

	var configuration testWorkspaceConfiguration
	_, loadError := loader.LoadConfiguration("", map[string]any{"workspace.branch": ""}, &configuration)

	require.NoError(testInstance, loadError)
	require.Equal(testInstance, testEnvironmentBranchValueConstant, configuration.Workspace.Branch)
}
