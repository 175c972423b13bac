package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/wsboot/internal/execshell"
	"github.com/temirov/wsboot/internal/gitrepo"
	"github.com/temirov/wsboot/internal/workspace/shared"
)

const (
	targetDirectoryRequiredMessageConstant      = "target directory must be provided"
	repositoriesRequiredMessageConstant         = "at least one repository reference must be configured"
	branchNameRequiredMessageConstant           = "branch selection requires a non-empty branch name"
	gitExecutorMissingMessageConstant           = "git executor not configured"
	repositoryManagerMissingMessageConstant     = "repository manager not configured"
	fileSystemMissingMessageConstant            = "file system not configured"
	targetPreparationErrorTemplateConstant      = "unable to prepare target directory %s: %w"
	destinationInspectionErrorTemplateConstant  = "unable to inspect destination %s: %w"
	stepErrorTemplateConstant                   = "%s failed for %s: %v"
	gitCloneSubcommandConstant                  = "clone"
	gitCloneBranchFlagConstant                  = "--branch"
	gitFetchSubcommandConstant                  = "fetch"
	gitFetchAllFlagConstant                     = "--all"
	gitFetchPruneFlagConstant                   = "--prune"
	gitCheckoutSubcommandConstant               = "checkout"
	gitPullSubcommandConstant                   = "pull"
	gitPullFastForwardFlagConstant              = "--ff-only"
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
	targetDirectoryPermissionsConstant          = fs.FileMode(0o755)
	notRepositoryWarningMessageConstant         = "destination exists but is not a git repository"
	logFieldRepositoryConstant                  = "repository"
	logFieldDestinationConstant                 = "destination"
)

// BootstrapStep names a stage of the per-repository state machine.
type BootstrapStep string

// Per-repository bootstrap stages.
const (
	BootstrapStepInspect  BootstrapStep = "inspect"
	BootstrapStepClone    BootstrapStep = "clone"
	BootstrapStepFetch    BootstrapStep = "fetch"
	BootstrapStepCheckout BootstrapStep = "checkout"
	BootstrapStepPull     BootstrapStep = "pull"
)

// ErrTargetDirectoryRequired indicates the target directory option was empty.
var ErrTargetDirectoryRequired = errors.New(targetDirectoryRequiredMessageConstant)

// ErrNoRepositoriesConfigured indicates the repository list was empty.
var ErrNoRepositoriesConfigured = errors.New(repositoriesRequiredMessageConstant)

// ErrBranchNameRequired indicates branch selection was requested with an empty branch name.
var ErrBranchNameRequired = errors.New(branchNameRequiredMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// ErrFileSystemNotConfigured indicates the file system dependency was missing.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// StepError reports the repository and bootstrap stage behind a failed git invocation.
type StepError struct {
	Repository string
	Step       BootstrapStep
	Cause      error
}

// Error describes the failed stage.
func (stepError StepError) Error() string {
	return fmt.Sprintf(stepErrorTemplateConstant, stepError.Step, stepError.Repository, stepError.Cause)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As inspection.
func (stepError StepError) Unwrap() error {
	return stepError.Cause
}

// Dependencies enumerates external collaborators required for bootstrap operations.
type Dependencies struct {
	GitExecutor       shared.GitExecutor
	RepositoryManager shared.RepositoryManager
	FileSystem        shared.FileSystem
	Reporter          shared.RepositoryStatusReporter
	Logger            *zap.Logger
}

// Options configures a workspace bootstrap run.
type Options struct {
	TargetDirectory string
	Repositories    []string
	Update          bool
	BranchName      string
}

// BootstrapResult captures the observable outcomes of a bootstrap run.
type BootstrapResult struct {
	TargetDirectory string
	Outcomes        []shared.RepositoryOutcome
}

// Service coordinates workspace bootstrapping through git.
type Service struct {
	executor          shared.GitExecutor
	repositoryManager shared.RepositoryManager
	fileSystem        shared.FileSystem
	reporter          shared.RepositoryStatusReporter
	logger            *zap.Logger
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}

	reporter := dependencies.Reporter
	if reporter == nil {
		reporter = shared.NoopReporter{}
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		executor:          dependencies.GitExecutor,
		repositoryManager: dependencies.RepositoryManager,
		fileSystem:        dependencies.FileSystem,
		reporter:          reporter,
		logger:            logger,
	}, nil
}

// Bootstrap processes every configured repository strictly in order, stopping
// at the first failed git invocation. Outcomes collected before a failure are
// included in the returned result.
func (service *Service) Bootstrap(executionContext context.Context, options Options) (BootstrapResult, error) {
	trimmedTargetDirectory := strings.TrimSpace(options.TargetDirectory)
	if len(trimmedTargetDirectory) == 0 {
		return BootstrapResult{}, ErrTargetDirectoryRequired
	}

	repositoryReferences := sanitizeRepositoryReferences(options.Repositories)
	if len(repositoryReferences) == 0 {
		return BootstrapResult{}, ErrNoRepositoriesConfigured
	}

	if preparationError := service.fileSystem.MkdirAll(trimmedTargetDirectory, targetDirectoryPermissionsConstant); preparationError != nil {
		return BootstrapResult{}, fmt.Errorf(targetPreparationErrorTemplateConstant, trimmedTargetDirectory, preparationError)
	}

	bootstrapResult := BootstrapResult{TargetDirectory: trimmedTargetDirectory}
	for _, repositoryReference := range repositoryReferences {
		repositoryOutcome, bootstrapError := service.bootstrapRepository(executionContext, trimmedTargetDirectory, repositoryReference, options)
		if bootstrapError != nil {
			return bootstrapResult, bootstrapError
		}
		bootstrapResult.Outcomes = append(bootstrapResult.Outcomes, repositoryOutcome)
		service.reporter.ReportOutcome(repositoryOutcome)
	}

	return bootstrapResult, nil
}

func (service *Service) bootstrapRepository(executionContext context.Context, targetDirectory string, repositoryReference string, options Options) (shared.RepositoryOutcome, error) {
	shortName, derivationError := gitrepo.DeriveShortName(repositoryReference)
	if derivationError != nil {
		return shared.RepositoryOutcome{}, derivationError
	}

	destinationPath := filepath.Join(targetDirectory, shortName)
	repositoryOutcome := shared.RepositoryOutcome{
		Reference: repositoryReference,
		ShortName: shortName,
		Path:      destinationPath,
	}

	_, statError := service.fileSystem.Stat(destinationPath)
	if statError != nil {
		if !errors.Is(statError, fs.ErrNotExist) {
			return shared.RepositoryOutcome{}, fmt.Errorf(destinationInspectionErrorTemplateConstant, destinationPath, statError)
		}
		if cloneError := service.cloneRepository(executionContext, targetDirectory, repositoryReference, shortName, options.BranchName); cloneError != nil {
			return shared.RepositoryOutcome{}, cloneError
		}
		repositoryOutcome.Status = shared.StatusCloned
		repositoryOutcome.BranchName = options.BranchName
		return repositoryOutcome, nil
	}

	insideWorkTree, inspectionError := service.repositoryManager.IsWorkingCopy(executionContext, destinationPath)
	if inspectionError != nil {
		return shared.RepositoryOutcome{}, StepError{Repository: repositoryReference, Step: BootstrapStepInspect, Cause: inspectionError}
	}
	if !insideWorkTree {
		service.logger.Warn(
			notRepositoryWarningMessageConstant,
			zap.String(logFieldRepositoryConstant, repositoryReference),
			zap.String(logFieldDestinationConstant, destinationPath),
		)
		repositoryOutcome.Status = shared.StatusNotRepository
		return repositoryOutcome, nil
	}

	if options.Update {
		if updateError := service.updateRepository(executionContext, repositoryReference, destinationPath); updateError != nil {
			return shared.RepositoryOutcome{}, updateError
		}
	}

	if len(options.BranchName) > 0 {
		if checkoutError := service.refreshBranch(executionContext, repositoryReference, destinationPath, options.BranchName); checkoutError != nil {
			return shared.RepositoryOutcome{}, checkoutError
		}
		repositoryOutcome.Status = shared.StatusCheckedOut
		repositoryOutcome.BranchName = options.BranchName
		return repositoryOutcome, nil
	}

	if options.Update {
		repositoryOutcome.Status = shared.StatusUpdated
		repositoryOutcome.BranchName = service.describeCurrentBranch(executionContext, destinationPath)
		return repositoryOutcome, nil
	}

	repositoryOutcome.Status = shared.StatusSkipped
	return repositoryOutcome, nil
}

func (service *Service) cloneRepository(executionContext context.Context, targetDirectory string, repositoryReference string, shortName string, branchName string) error {
	cloneArguments := []string{gitCloneSubcommandConstant}
	if len(branchName) > 0 {
		cloneArguments = append(cloneArguments, gitCloneBranchFlagConstant, branchName)
	}
	cloneArguments = append(cloneArguments, repositoryReference, shortName)

	if cloneError := service.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        cloneArguments,
		WorkingDirectory: targetDirectory,
	}); cloneError != nil {
		return StepError{Repository: repositoryReference, Step: BootstrapStepClone, Cause: cloneError}
	}
	return nil
}

func (service *Service) updateRepository(executionContext context.Context, repositoryReference string, destinationPath string) error {
	if fetchError := service.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitFetchSubcommandConstant, gitFetchAllFlagConstant, gitFetchPruneFlagConstant},
		WorkingDirectory: destinationPath,
	}); fetchError != nil {
		return StepError{Repository: repositoryReference, Step: BootstrapStepFetch, Cause: fetchError}
	}

	if pullError := service.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitPullSubcommandConstant, gitPullFastForwardFlagConstant},
		WorkingDirectory: destinationPath,
	}); pullError != nil {
		return StepError{Repository: repositoryReference, Step: BootstrapStepPull, Cause: pullError}
	}
	return nil
}

func (service *Service) refreshBranch(executionContext context.Context, repositoryReference string, destinationPath string, branchName string) error {
	if fetchError := service.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitFetchSubcommandConstant},
		WorkingDirectory: destinationPath,
	}); fetchError != nil {
		return StepError{Repository: repositoryReference, Step: BootstrapStepFetch, Cause: fetchError}
	}

	if checkoutError := service.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCheckoutSubcommandConstant, branchName},
		WorkingDirectory: destinationPath,
	}); checkoutError != nil {
		return StepError{Repository: repositoryReference, Step: BootstrapStepCheckout, Cause: checkoutError}
	}

	if pullError := service.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitPullSubcommandConstant, gitPullFastForwardFlagConstant},
		WorkingDirectory: destinationPath,
	}); pullError != nil {
		return StepError{Repository: repositoryReference, Step: BootstrapStepPull, Cause: pullError}
	}
	return nil
}

// describeCurrentBranch resolves the checked out branch for reporting only.
// Lookup failures leave the outcome without a branch name.
func (service *Service) describeCurrentBranch(executionContext context.Context, destinationPath string) string {
	branchName, lookupError := service.repositoryManager.CurrentBranch(executionContext, destinationPath)
	if lookupError != nil {
		return ""
	}
	return branchName
}

func (service *Service) executeGit(executionContext context.Context, details execshell.CommandDetails) error {
	if details.EnvironmentVariables == nil {
		details.EnvironmentVariables = map[string]string{}
	}
	details.EnvironmentVariables[gitTerminalPromptEnvironmentNameConstant] = gitTerminalPromptEnvironmentDisableConstant
	_, executionError := service.executor.ExecuteGit(executionContext, details)
	return executionError
}
