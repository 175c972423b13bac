package execshell_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/wsboot/internal/execshell"
)

func TestExecutableInspectorVerifyExecutableAvailable(testInstance *testing.T) {
	lookupFailure := errors.New("executable file not found in $PATH")

	testCases := []struct {
		name           string
		lookupFunction execshell.ExecutableLookupFunction
		expectError    bool
	}{
		{
			name: "executable_present",
			lookupFunction: func(executableName string) (string, error) {
				return "/usr/bin/" + executableName, nil
			},
			expectError: false,
		},
		{
			name: "executable_missing",
			lookupFunction: func(executableName string) (string, error) {
				return "", lookupFailure
			},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			inspector := execshell.NewExecutableInspectorWithLookup(testCase.lookupFunction)
			verificationError := inspector.VerifyExecutableAvailable(execshell.CommandGit)

			if !testCase.expectError {
				require.NoError(testInstance, verificationError)
				return
			}

			require.Error(testInstance, verificationError)
			notFoundError := execshell.ExecutableNotFoundError{}
			require.ErrorAs(testInstance, verificationError, &notFoundError)
			require.Equal(testInstance, execshell.CommandGit, notFoundError.Executable)
			require.ErrorIs(testInstance, verificationError, lookupFailure)
		})
	}
}
