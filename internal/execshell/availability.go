package execshell

import (
	"fmt"
	"os/exec"
)

const (
	executableNotFoundTemplateConstant = "required executable %q was not found on PATH: %v"
)

// ExecutableLookupFunction resolves an executable name to its path on the search path.
type ExecutableLookupFunction func(executableName string) (string, error)

// ExecutableNotFoundError indicates a required external tool is not installed.
type ExecutableNotFoundError struct {
	Executable CommandName
	Cause      error
}

// Error describes the missing executable.
func (failure ExecutableNotFoundError) Error() string {
	return fmt.Sprintf(executableNotFoundTemplateConstant, string(failure.Executable), failure.Cause)
}

// Unwrap exposes the underlying lookup error.
func (failure ExecutableNotFoundError) Unwrap() error {
	return failure.Cause
}

// ExecutableInspector verifies external tools are available before any work begins.
type ExecutableInspector struct {
	lookupFunction ExecutableLookupFunction
}

// NewExecutableInspector constructs an inspector backed by exec.LookPath.
func NewExecutableInspector() *ExecutableInspector {
	return NewExecutableInspectorWithLookup(exec.LookPath)
}

// NewExecutableInspectorWithLookup constructs an inspector with a custom lookup function.
func NewExecutableInspectorWithLookup(lookupFunction ExecutableLookupFunction) *ExecutableInspector {
	if lookupFunction == nil {
		lookupFunction = exec.LookPath
	}
	return &ExecutableInspector{lookupFunction: lookupFunction}
}

// VerifyExecutableAvailable confirms the named executable resolves on the search path.
func (inspector *ExecutableInspector) VerifyExecutableAvailable(commandName CommandName) error {
	if _, lookupError := inspector.lookupFunction(string(commandName)); lookupError != nil {
		return ExecutableNotFoundError{Executable: commandName, Cause: lookupError}
	}
	return nil
}
