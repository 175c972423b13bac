package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/wsboot/internal/execshell"
)

const (
	revParseSubcommandConstant          = "rev-parse"
	insideWorkTreeFlagConstant          = "--is-inside-work-tree"
	abbreviatedReferenceFlagConstant    = "--abbrev-ref"
	headReferenceConstant               = "HEAD"
	workTreeAffirmativeOutputConstant   = "true"
	gitExecutorMissingMessageConstant   = "git executor not configured"
	terminalPromptVariableNameConstant  = "GIT_TERMINAL_PROMPT"
	terminalPromptDisabledValueConstant = "0"
)

// GitExecutor runs git with specific invocation details.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ErrGitExecutorNotConfigured indicates the manager was constructed without an executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// RepositoryManager answers questions about local working copies by invoking git.
type RepositoryManager struct {
	gitExecutor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager around the provided executor.
func NewRepositoryManager(gitExecutor GitExecutor) (*RepositoryManager, error) {
	if gitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &RepositoryManager{gitExecutor: gitExecutor}, nil
}

// IsWorkingCopy reports whether repositoryPath sits inside a git work tree.
// A non-zero git exit status means the directory is not a working copy and is
// not treated as an error.
func (manager *RepositoryManager) IsWorkingCopy(executionContext context.Context, repositoryPath string) (bool, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:            []string{revParseSubcommandConstant, insideWorkTreeFlagConstant},
		WorkingDirectory:     repositoryPath,
		EnvironmentVariables: nonInteractiveEnvironment(),
	}

	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		var commandFailure execshell.CommandFailedError
		if errors.As(executionError, &commandFailure) {
			return false, nil
		}
		return false, executionError
	}

	trimmedOutput := strings.TrimSpace(executionResult.StandardOutput)
	return trimmedOutput == workTreeAffirmativeOutputConstant, nil
}

// CurrentBranch resolves the branch name checked out at repositoryPath.
// Detached heads report the literal HEAD reference.
func (manager *RepositoryManager) CurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:            []string{revParseSubcommandConstant, abbreviatedReferenceFlagConstant, headReferenceConstant},
		WorkingDirectory:     repositoryPath,
		EnvironmentVariables: nonInteractiveEnvironment(),
	}

	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return "", executionError
	}

	return strings.TrimSpace(executionResult.StandardOutput), nil
}

func nonInteractiveEnvironment() map[string]string {
	return map[string]string{terminalPromptVariableNameConstant: terminalPromptDisabledValueConstant}
}
