package workspace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/wsboot/internal/workspace"
)

const testConfigurationKeyPrefixConstant = "workspace"

func TestDefaultCommandConfiguration(testInstance *testing.T) {
	defaults := workspace.DefaultCommandConfiguration()

	require.Equal(testInstance, "~/workspace", defaults.Target)
	require.Empty(testInstance, defaults.Repositories)
	require.False(testInstance, defaults.Update)
	require.Empty(testInstance, defaults.Branch)
}

func TestDefaultConfigurationValuesKeyedByPrefix(testInstance *testing.T) {
	defaultValues := workspace.DefaultConfigurationValues(testConfigurationKeyPrefixConstant)

	require.Contains(testInstance, defaultValues, "workspace.target")
	require.Contains(testInstance, defaultValues, "workspace.repositories")
	require.Contains(testInstance, defaultValues, "workspace.update")
	require.Contains(testInstance, defaultValues, "workspace.branch")
	require.Equal(testInstance, "~/workspace", defaultValues["workspace.target"])
}

func TestCommandConfigurationSanitize(testInstance *testing.T) {
	testCases := []struct {
		name                 string
		configuration        workspace.CommandConfiguration
		expectedTarget       string
		expectedBranch       string
		expectedRepositories []string
	}{
		{
			name: "trims_whitespace",
			configuration: workspace.CommandConfiguration{
				Target:       "  /srv/workspace  ",
				Branch:       " main ",
				Repositories: []string{" https://github.com/temirov/alpha.git "},
			},
			expectedTarget:       "/srv/workspace",
			expectedBranch:       "main",
			expectedRepositories: []string{"https://github.com/temirov/alpha.git"},
		},
		{
			name: "drops_blank_repository_entries",
			configuration: workspace.CommandConfiguration{
				Target:       "/srv/workspace",
				Repositories: []string{"", "   ", "https://github.com/temirov/beta.git"},
			},
			expectedTarget:       "/srv/workspace",
			expectedRepositories: []string{"https://github.com/temirov/beta.git"},
		},
		{
			name: "empty_repository_list_stays_nil",
			configuration: workspace.CommandConfiguration{
				Target:       "/srv/workspace",
				Repositories: []string{"", "  "},
			},
			expectedTarget:       "/srv/workspace",
			expectedRepositories: nil,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			sanitized := testCase.configuration.Sanitize()

			require.Equal(testInstance, testCase.expectedTarget, sanitized.Target)
			require.Equal(testInstance, testCase.expectedBranch, sanitized.Branch)
			require.Equal(testInstance, testCase.expectedRepositories, sanitized.Repositories)
		})
	}
}
