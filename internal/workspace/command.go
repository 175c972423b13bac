package workspace

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/wsboot/internal/execshell"
	"github.com/temirov/wsboot/internal/utils"
	pathutils "github.com/temirov/wsboot/internal/utils/path"
	"github.com/temirov/wsboot/internal/workspace/dependencies"
	"github.com/temirov/wsboot/internal/workspace/shared"
)

const (
	commandUseConstant              = "wsboot"
	commandShortDescriptionConstant = "Clone or refresh a configured set of repositories"
	commandLongDescriptionConstant  = "wsboot prepares a workspace directory by cloning every configured repository that is absent, optionally fast-forwarding repositories that are present, and optionally checking out a named branch."
	updateFlagNameConstant          = "update"
	updateFlagShorthandConstant     = "u"
	updateFlagDescriptionConstant   = "Fetch and fast-forward repositories that already exist"
	branchFlagNameConstant          = "branch"
	branchFlagShorthandConstant     = "b"
	branchFlagDescriptionConstant   = "Check out and fast-forward the named branch in every repository"
	targetFlagNameConstant          = "target"
	targetFlagDescriptionConstant   = "Directory that holds the workspace repositories"

	configurationFileInUseMessageConstant = "using configuration file"
	logFieldConfigurationFileConstant     = "configuration_file"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ExecutableAvailabilityVerifier confirms external tools resolve on the search path.
type ExecutableAvailabilityVerifier interface {
	VerifyExecutableAvailable(commandName execshell.CommandName) error
}

// TargetPathResolver converts user supplied target paths into absolute directories.
type TargetPathResolver interface {
	Resolve(candidatePath string) (string, error)
}

// CommandBuilder assembles the workspace bootstrap command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	RepositoryManager            shared.RepositoryManager
	FileSystem                   shared.FileSystem
	Reporter                     shared.RepositoryStatusReporter
	ExecutableVerifier           ExecutableAvailabilityVerifier
	TargetResolver               TargetPathResolver
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the bootstrap command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	command.Flags().BoolP(updateFlagNameConstant, updateFlagShorthandConstant, false, updateFlagDescriptionConstant)
	command.Flags().StringP(branchFlagNameConstant, branchFlagShorthandConstant, "", branchFlagDescriptionConstant)
	command.Flags().String(targetFlagNameConstant, "", targetFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	configuration := builder.resolveConfiguration()

	updateRequested := configuration.Update
	if command.Flags().Changed(updateFlagNameConstant) {
		flagValue, flagError := command.Flags().GetBool(updateFlagNameConstant)
		if flagError != nil {
			return flagError
		}
		updateRequested = flagValue
	}

	branchName := configuration.Branch
	if command.Flags().Changed(branchFlagNameConstant) {
		flagValue, flagError := command.Flags().GetString(branchFlagNameConstant)
		if flagError != nil {
			return flagError
		}
		branchName = strings.TrimSpace(flagValue)
		if len(branchName) == 0 {
			return ErrBranchNameRequired
		}
	}

	targetDirectory := configuration.Target
	if command.Flags().Changed(targetFlagNameConstant) {
		flagValue, flagError := command.Flags().GetString(targetFlagNameConstant)
		if flagError != nil {
			return flagError
		}
		targetDirectory = strings.TrimSpace(flagValue)
	}
	if len(targetDirectory) == 0 {
		return ErrTargetDirectoryRequired
	}
	if len(configuration.Repositories) == 0 {
		return ErrNoRepositoriesConfigured
	}

	if verificationError := builder.resolveExecutableVerifier().VerifyExecutableAvailable(execshell.CommandGit); verificationError != nil {
		return verificationError
	}

	resolvedTargetDirectory, resolutionError := builder.resolveTargetResolver().Resolve(targetDirectory)
	if resolutionError != nil {
		return resolutionError
	}

	logger := builder.resolveLogger()
	if configurationFilePath, configurationFileRecorded := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context()); configurationFileRecorded && len(configurationFilePath) > 0 {
		logger.Debug(configurationFileInUseMessageConstant, zap.String(logFieldConfigurationFileConstant, configurationFilePath))
	}

	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, humanReadableLogging)
	if executorError != nil {
		return executorError
	}
	repositoryManager, managerError := dependencies.ResolveRepositoryManager(builder.RepositoryManager, gitExecutor)
	if managerError != nil {
		return managerError
	}

	service, serviceCreationError := NewService(Dependencies{
		GitExecutor:       gitExecutor,
		RepositoryManager: repositoryManager,
		FileSystem:        dependencies.ResolveFileSystem(builder.FileSystem),
		Reporter:          dependencies.ResolveReporter(builder.Reporter, command.OutOrStdout()),
		Logger:            logger,
	})
	if serviceCreationError != nil {
		return serviceCreationError
	}

	_, bootstrapError := service.Bootstrap(command.Context(), Options{
		TargetDirectory: resolvedTargetDirectory,
		Repositories:    configuration.Repositories,
		Update:          updateRequested,
		BranchName:      branchName,
	})
	return bootstrapError
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveExecutableVerifier() ExecutableAvailabilityVerifier {
	if builder.ExecutableVerifier != nil {
		return builder.ExecutableVerifier
	}
	return execshell.NewExecutableInspector()
}

func (builder *CommandBuilder) resolveTargetResolver() TargetPathResolver {
	if builder.TargetResolver != nil {
		return builder.TargetResolver
	}
	return pathutils.NewTargetResolver()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
