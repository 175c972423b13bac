package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configurationKeyPathSeparatorConstant      = "."
	environmentVariableSeparatorConstant       = "_"
	configurationReadErrorTemplateConstant     = "configuration could not be read: %w"
	configurationDecodeErrorTemplateConstant   = "configuration could not be decoded: %w"
	embeddedDefaultsMergeErrorTemplateConstant = "embedded configuration defaults could not be merged: %w"
)

// ConfigurationLoader resolves the effective configuration from four layers,
// weakest first: explicit defaults, embedded defaults, a configuration file,
// and prefixed environment variables.
type ConfigurationLoader struct {
	configurationFileName     string
	configurationFileType     string
	environmentVariablePrefix string
	configurationSearchPaths  []string
	environmentKeyReplacer    *strings.Replacer
	embeddedDefaults          []byte
}

// LoadedConfiguration reports where the effective configuration came from.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// NewConfigurationLoader creates a loader that searches the provided paths for
// a configuration file and maps dotted keys to prefixed environment variables.
func NewConfigurationLoader(configurationFileName string, configurationFileType string, environmentVariablePrefix string, configurationSearchPaths []string) *ConfigurationLoader {
	duplicatedSearchPaths := make([]string, len(configurationSearchPaths))
	copy(duplicatedSearchPaths, configurationSearchPaths)

	return &ConfigurationLoader{
		configurationFileName:     configurationFileName,
		configurationFileType:     configurationFileType,
		environmentVariablePrefix: environmentVariablePrefix,
		configurationSearchPaths:  duplicatedSearchPaths,
		environmentKeyReplacer:    strings.NewReplacer(configurationKeyPathSeparatorConstant, environmentVariableSeparatorConstant),
	}
}

// SetEmbeddedConfiguration installs configuration data shipped inside the
// binary. The data must use the loader's configuration file type and is merged
// beneath any configuration file the user provides.
func (loader *ConfigurationLoader) SetEmbeddedConfiguration(configurationData []byte) {
	if loader == nil {
		return
	}

	if len(configurationData) == 0 {
		loader.embeddedDefaults = nil
		return
	}

	duplicatedData := make([]byte, len(configurationData))
	copy(duplicatedData, configurationData)
	loader.embeddedDefaults = duplicatedData
}

// LoadConfiguration resolves every configuration layer into targetConfiguration.
// A missing configuration file is not an error; the remaining layers still apply.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	viperInstance, preparationError := loader.prepareViperInstance(defaultValues)
	if preparationError != nil {
		return LoadedConfiguration{}, preparationError
	}

	if len(configurationFilePath) > 0 {
		viperInstance.SetConfigFile(configurationFilePath)
	}

	if readError := viperInstance.MergeInConfig(); readError != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(readError, &configFileNotFoundError) {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
		}
	}

	if decodeError := viperInstance.Unmarshal(targetConfiguration); decodeError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationDecodeErrorTemplateConstant, decodeError)
	}

	return LoadedConfiguration{ConfigFileUsed: viperInstance.ConfigFileUsed()}, nil
}

func (loader *ConfigurationLoader) prepareViperInstance(defaultValues map[string]any) (*viper.Viper, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.configurationFileName)
	viperInstance.SetConfigType(loader.configurationFileType)

	if len(loader.embeddedDefaults) > 0 {
		if mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.embeddedDefaults)); mergeError != nil {
			return nil, fmt.Errorf(embeddedDefaultsMergeErrorTemplateConstant, mergeError)
		}
	}

	for _, searchPath := range loader.configurationSearchPaths {
		viperInstance.AddConfigPath(searchPath)
	}

	viperInstance.SetEnvPrefix(loader.environmentVariablePrefix)
	if loader.environmentKeyReplacer != nil {
		viperInstance.SetEnvKeyReplacer(loader.environmentKeyReplacer)
	}
	viperInstance.AutomaticEnv()

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	return viperInstance, nil
}
