package workspace

import "strings"

const (
	defaultTargetDirectoryConstant     = "~/workspace"
	targetConfigurationKeySuffix       = ".target"
	repositoriesConfigurationKeySuffix = ".repositories"
	updateConfigurationKeySuffix       = ".update"
	branchConfigurationKeySuffix       = ".branch"
)

// CommandConfiguration captures the configurable inputs of the bootstrap command.
type CommandConfiguration struct {
	Target       string   `mapstructure:"target"`
	Repositories []string `mapstructure:"repositories"`
	Update       bool     `mapstructure:"update"`
	Branch       string   `mapstructure:"branch"`
}

// DefaultCommandConfiguration returns baseline configuration values for workspace bootstrapping.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Target:       defaultTargetDirectoryConstant,
		Repositories: nil,
		Update:       false,
		Branch:       "",
	}
}

// DefaultConfigurationValues exposes the baseline values keyed for configuration loading.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + targetConfigurationKeySuffix:       defaults.Target,
		configurationKeyPrefix + repositoriesConfigurationKeySuffix: defaults.Repositories,
		configurationKeyPrefix + updateConfigurationKeySuffix:       defaults.Update,
		configurationKeyPrefix + branchConfigurationKeySuffix:       defaults.Branch,
	}
}

// Sanitize trims configured values and removes empty repository entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Target = strings.TrimSpace(configuration.Target)
	sanitized.Branch = strings.TrimSpace(configuration.Branch)
	sanitized.Repositories = sanitizeRepositoryReferences(configuration.Repositories)
	return sanitized
}

func sanitizeRepositoryReferences(repositoryReferences []string) []string {
	sanitizedReferences := make([]string, 0, len(repositoryReferences))
	for _, repositoryReference := range repositoryReferences {
		trimmedReference := strings.TrimSpace(repositoryReference)
		if len(trimmedReference) == 0 {
			continue
		}
		sanitizedReferences = append(sanitizedReferences, trimmedReference)
	}
	if len(sanitizedReferences) == 0 {
		return nil
	}
	return sanitizedReferences
}
