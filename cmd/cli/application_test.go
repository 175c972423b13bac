package cli_test

import (
	"bytes"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/temirov/wsboot/cmd/cli"
)

const (
	embeddedDefaultLogLevelConstant   = "info"
	embeddedDefaultLogFormatConstant  = "console"
	embeddedDefaultTargetConstant     = "~/workspace"
	embeddedConfigurationTypeConstant = "yaml"
	helpFlagArgumentConstant          = "--help"
)

func decodeEmbeddedConfiguration(testInstance *testing.T) cli.ApplicationConfiguration {
	testInstance.Helper()

	configurationContent := cli.EmbeddedDefaultConfiguration()
	require.NotEmpty(testInstance, configurationContent)

	viperInstance := viper.New()
	viperInstance.SetConfigType(embeddedConfigurationTypeConstant)
	require.NoError(testInstance, viperInstance.ReadConfig(bytes.NewReader(configurationContent)))

	var configuration cli.ApplicationConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &configuration})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(viperInstance.AllSettings()))

	return configuration
}

func TestEmbeddedDefaultConfigurationProvidesUsableDefaults(testInstance *testing.T) {
	configuration := decodeEmbeddedConfiguration(testInstance)

	require.Equal(testInstance, embeddedDefaultLogLevelConstant, configuration.Common.LogLevel)
	require.Equal(testInstance, embeddedDefaultLogFormatConstant, configuration.Common.LogFormat)

	sanitizedWorkspace := configuration.Workspace.Sanitize()
	require.Equal(testInstance, embeddedDefaultTargetConstant, sanitizedWorkspace.Target)
	require.Empty(testInstance, sanitizedWorkspace.Repositories)
	require.False(testInstance, sanitizedWorkspace.Update)
	require.Empty(testInstance, sanitizedWorkspace.Branch)
}

func TestApplicationHelpRequestSucceeds(testInstance *testing.T) {
	application, creationError := cli.NewApplication()
	require.NoError(testInstance, creationError)

	outputBuffer := &bytes.Buffer{}
	rootCommand := application.RootCommand()
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(&bytes.Buffer{})
	rootCommand.SetArgs([]string{helpFlagArgumentConstant})

	require.NoError(testInstance, application.Execute())
	require.Contains(testInstance, outputBuffer.String(), "--update")
	require.Contains(testInstance, outputBuffer.String(), "--branch")
	require.Contains(testInstance, outputBuffer.String(), "--config")
}
