package gitrepo

import (
	"fmt"
	"strings"
)

const (
	sshProtocolPrefixConstant              = "ssh://"
	httpsProtocolPrefixConstant            = "https://"
	httpProtocolPrefixConstant             = "http://"
	gitProtocolPrefixConstant              = "git://"
	fileProtocolPrefixConstant             = "file://"
	gitUserPrefixConstant                  = "git@"
	sshUserDelimiterConstant               = "@"
	sshPathDelimiterConstant               = ":"
	pathSeparatorConstant                  = "/"
	gitSuffixConstant                      = ".git"
	remoteReferenceErrorTemplateConstant   = "%s: %s"
	emptyRemoteReferenceMessageConstant    = "remote reference is empty"
	unresolvableReferenceMessageConstant   = "unable to derive repository name"
	trailingSeparatorTrimCutsetConstant    = "/"
	windowsPathSeparatorReplacementOldPart = "\\"
)

// RemoteReferenceError indicates a remote reference could not be interpreted.
type RemoteReferenceError struct {
	Reference string
	Message   string
}

// Error describes the interpretation failure.
func (referenceError RemoteReferenceError) Error() string {
	return fmt.Sprintf(remoteReferenceErrorTemplateConstant, referenceError.Reference, referenceError.Message)
}

// DeriveShortName resolves the directory name a clone of the referenced
// repository would occupy. The name is the final path segment of the
// reference with any .git suffix removed. SSH, HTTPS, git, file, and plain
// filesystem references are supported.
func DeriveShortName(remoteReference string) (string, error) {
	trimmedReference := strings.TrimSpace(remoteReference)
	if len(trimmedReference) == 0 {
		return "", RemoteReferenceError{Reference: remoteReference, Message: emptyRemoteReferenceMessageConstant}
	}

	referencePath := stripProtocolPrefix(trimmedReference)
	referencePath = strings.ReplaceAll(referencePath, windowsPathSeparatorReplacementOldPart, pathSeparatorConstant)
	referencePath = strings.TrimRight(referencePath, trailingSeparatorTrimCutsetConstant)

	segmentStartIndex := strings.LastIndex(referencePath, pathSeparatorConstant)
	finalSegment := referencePath
	if segmentStartIndex >= 0 {
		finalSegment = referencePath[segmentStartIndex+1:]
	}

	// scp style references without a path separator keep host:name intact.
	colonIndex := strings.LastIndex(finalSegment, sshPathDelimiterConstant)
	if colonIndex >= 0 {
		finalSegment = finalSegment[colonIndex+1:]
	}

	shortName := strings.TrimSuffix(finalSegment, gitSuffixConstant)
	if len(shortName) == 0 {
		return "", RemoteReferenceError{Reference: remoteReference, Message: unresolvableReferenceMessageConstant}
	}

	return shortName, nil
}

func stripProtocolPrefix(reference string) string {
	protocolPrefixes := []string{
		sshProtocolPrefixConstant,
		httpsProtocolPrefixConstant,
		httpProtocolPrefixConstant,
		gitProtocolPrefixConstant,
		fileProtocolPrefixConstant,
	}
	for _, protocolPrefix := range protocolPrefixes {
		if strings.HasPrefix(reference, protocolPrefix) {
			return strings.TrimPrefix(reference, protocolPrefix)
		}
	}

	if strings.HasPrefix(reference, gitUserPrefixConstant) {
		userDelimiterIndex := strings.Index(reference, sshUserDelimiterConstant)
		return reference[userDelimiterIndex+1:]
	}

	return reference
}
