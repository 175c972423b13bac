package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/wsboot/internal/execshell"
	"github.com/temirov/wsboot/internal/ui"
)

func TestConsoleCommandEventLoggerRendersLifecycle(testInstance *testing.T) {
	command := execshell.ShellCommand{
		Name:    execshell.CommandGit,
		Details: execshell.CommandDetails{Arguments: []string{"pull", "--ff-only"}, WorkingDirectory: "/workspace/api"},
	}

	testCases := []struct {
		name            string
		emitEvent       func(eventLogger *ui.ConsoleCommandEventLogger)
		expectedLevel   zap.AtomicLevel
		expectedMessage string
	}{
		{
			name: "command_started",
			emitEvent: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandStarted(command)
			},
			expectedLevel:   zap.NewAtomicLevelAt(zap.InfoLevel),
			expectedMessage: "Pulling updates in /workspace/api",
		},
		{
			name: "command_completed_success",
			emitEvent: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(command, execshell.ExecutionResult{ExitCode: 0})
			},
			expectedLevel:   zap.NewAtomicLevelAt(zap.InfoLevel),
			expectedMessage: "Pulled updates in /workspace/api",
		},
		{
			name: "command_completed_failure",
			emitEvent: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(command, execshell.ExecutionResult{ExitCode: 1})
			},
			expectedLevel:   zap.NewAtomicLevelAt(zap.WarnLevel),
			expectedMessage: "Failed to pull updates in /workspace/api (exit code 1)",
		},
		{
			name: "command_execution_failed",
			emitEvent: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandExecutionFailed(command, errors.New("binary vanished"))
			},
			expectedLevel:   zap.NewAtomicLevelAt(zap.ErrorLevel),
			expectedMessage: "Unable to pull updates in /workspace/api: binary vanished",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observedLogs := observer.New(zap.DebugLevel)
			eventLogger := ui.NewConsoleCommandEventLogger(zap.New(observerCore))

			testCase.emitEvent(eventLogger)

			entries := observedLogs.All()
			require.Len(testInstance, entries, 1)
			require.Equal(testInstance, testCase.expectedLevel.Level(), entries[0].Level)
			require.Equal(testInstance, testCase.expectedMessage, entries[0].Message)
		})
	}
}
