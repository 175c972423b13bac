package utils

import "context"

// commandContextValueKey scopes context values written by the CLI layer so
// they cannot collide with keys from other packages.
type commandContextValueKey string

const configurationFileContextValueKeyConstant = commandContextValueKey("wsboot.configuration_file")

// CommandContextAccessor reads and writes run metadata carried on a command's
// execution context. The CLI layer records the resolved configuration file
// here; the bootstrap command reads it back for logging.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath records the configuration file the run resolved.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFileContextValueKeyConstant, configurationFilePath)
}

// ConfigurationFilePath reports the recorded configuration file, when one was resolved.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, configurationFilePathRecorded := executionContext.Value(configurationFileContextValueKeyConstant).(string)
	return configurationFilePath, configurationFilePathRecorded
}
