// Package dependencies resolves default collaborator implementations for the
// workspace bootstrapper command.
package dependencies

import (
	"io"

	"go.uber.org/zap"

	"github.com/temirov/wsboot/internal/execshell"
	"github.com/temirov/wsboot/internal/gitrepo"
	"github.com/temirov/wsboot/internal/ui"
	"github.com/temirov/wsboot/internal/utils"
	"github.com/temirov/wsboot/internal/workspace/filesystem"
	"github.com/temirov/wsboot/internal/workspace/shared"
)

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing shared.FileSystem) shared.FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed
// default. Console lifecycle rendering is attached when human readable logging
// is active.
func ResolveGitExecutor(existing shared.GitExecutor, logger *zap.Logger, humanReadableLogging bool) (shared.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner)
	if creationError != nil {
		return nil, creationError
	}
	if humanReadableLogging {
		shellExecutor.RegisterEventObserver(ui.NewConsoleCommandEventLogger(logger))
	}
	return shellExecutor, nil
}

// ResolveRepositoryManager returns the provided repository manager or constructs one from the executor.
func ResolveRepositoryManager(existing shared.RepositoryManager, gitExecutor shared.GitExecutor) (shared.RepositoryManager, error) {
	if existing != nil {
		return existing, nil
	}
	return gitrepo.NewRepositoryManager(gitExecutor)
}

// ResolveReporter returns the provided reporter or a writer-backed default that
// flushes after every outcome line.
func ResolveReporter(existing shared.RepositoryStatusReporter, outputWriter io.Writer) shared.RepositoryStatusReporter {
	if existing != nil {
		return existing
	}
	if outputWriter == nil {
		return shared.NoopReporter{}
	}
	return shared.NewWriterReporter(utils.NewFlushingWriter(outputWriter))
}
