package pathutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant                     = "~"
	tildeForwardSlashPrefixConstant         = "~/"
	absolutePathResolutionTemplateConstant  = "unable to resolve absolute path for %s: %w"
	homeDirectoryResolutionTemplateConstant = "unable to resolve home directory for %s: %w"
)

var tildeWithPathSeparatorPrefix = tildeSymbolConstant + string(os.PathSeparator)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// TargetResolver converts user supplied target paths into absolute directories,
// expanding leading tilde shortcuts against the user's home directory.
type TargetResolver struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewTargetResolver constructs a TargetResolver using the operating system lookup.
func NewTargetResolver() *TargetResolver {
	return NewTargetResolverWithProvider(os.UserHomeDir)
}

// NewTargetResolverWithProvider constructs a TargetResolver with a custom home directory provider.
func NewTargetResolverWithProvider(provider HomeDirectoryProvider) *TargetResolver {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &TargetResolver{homeDirectoryProvider: provider}
}

// Resolve expands tilde prefixes and returns the absolute form of candidatePath.
func (resolver *TargetResolver) Resolve(candidatePath string) (string, error) {
	expandedPath, expansionError := resolver.expandHomeShortcut(candidatePath)
	if expansionError != nil {
		return "", expansionError
	}

	absolutePath, absoluteError := filepath.Abs(expandedPath)
	if absoluteError != nil {
		return "", fmt.Errorf(absolutePathResolutionTemplateConstant, candidatePath, absoluteError)
	}

	return absolutePath, nil
}

func (resolver *TargetResolver) expandHomeShortcut(candidatePath string) (string, error) {
	if !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath, nil
	}

	resolvedHomeDirectory, homeDirectoryError := resolver.resolveHomeDirectory()
	if homeDirectoryError != nil {
		return "", fmt.Errorf(homeDirectoryResolutionTemplateConstant, candidatePath, homeDirectoryError)
	}

	if candidatePath == tildeSymbolConstant {
		return resolvedHomeDirectory, nil
	}

	if strings.HasPrefix(candidatePath, tildeForwardSlashPrefixConstant) {
		relativePath := strings.TrimPrefix(candidatePath, tildeForwardSlashPrefixConstant)
		return filepath.Join(resolvedHomeDirectory, relativePath), nil
	}

	if tildeWithPathSeparatorPrefix != tildeForwardSlashPrefixConstant && strings.HasPrefix(candidatePath, tildeWithPathSeparatorPrefix) {
		relativePath := strings.TrimPrefix(candidatePath, tildeWithPathSeparatorPrefix)
		return filepath.Join(resolvedHomeDirectory, relativePath), nil
	}

	return candidatePath, nil
}

func (resolver *TargetResolver) resolveHomeDirectory() (string, error) {
	resolver.initializationGuard.Do(func() {
		resolver.homeDirectory, resolver.homeDirectoryError = resolver.homeDirectoryProvider()
	})
	return resolver.homeDirectory, resolver.homeDirectoryError
}
