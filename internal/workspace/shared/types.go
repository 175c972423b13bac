package shared

import (
	"context"
	"io/fs"

	"github.com/temirov/wsboot/internal/execshell"
)

// GitExecutor exposes the subset of shell execution used by workspace services.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager exposes working copy inspection operations.
type RepositoryManager interface {
	IsWorkingCopy(executionContext context.Context, repositoryPath string) (bool, error)
	CurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
}

// FileSystem exposes filesystem operations required by workspace services.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	MkdirAll(path string, permissions fs.FileMode) error
}

// RepositoryStatus enumerates the terminal states of a bootstrapped repository.
type RepositoryStatus string

// Terminal repository states.
const (
	StatusCloned        RepositoryStatus = "cloned"
	StatusUpdated       RepositoryStatus = "updated"
	StatusCheckedOut    RepositoryStatus = "checked_out"
	StatusSkipped       RepositoryStatus = "skipped"
	StatusNotRepository RepositoryStatus = "not_repository"
)

// RepositoryOutcome captures the terminal state of one configured repository.
type RepositoryOutcome struct {
	Reference  string
	ShortName  string
	Path       string
	Status     RepositoryStatus
	BranchName string
}

// RepositoryStatusReporter renders repository outcomes for the operator.
type RepositoryStatusReporter interface {
	ReportOutcome(outcome RepositoryOutcome)
}
