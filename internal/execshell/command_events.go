package execshell

// CommandEventObserver receives lifecycle notifications for the git
// invocations the executor issues (clone, fetch, checkout, pull, rev-parse).
// Implementations render progress for the user; the executor's structured
// logging happens independently of the registered observer.
type CommandEventObserver interface {
	// CommandStarted fires immediately before the command runs.
	CommandStarted(command ShellCommand)
	// CommandCompleted fires after the command ran, whatever its exit code.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed fires when the command could not run at all.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// discardingCommandEventObserver keeps the executor's observer non-nil when no
// renderer is registered.
type discardingCommandEventObserver struct{}

func (discardingCommandEventObserver) CommandStarted(ShellCommand) {}

func (discardingCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (discardingCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}
