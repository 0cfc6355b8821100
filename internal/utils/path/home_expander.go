// Package pathutils normalizes user-supplied filesystem paths.
package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant             = "~"
	tildeForwardSlashPrefixConstant = "~/"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander converts user home shortcuts in configured source and resource paths to absolute paths.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{homeDirectoryProvider: provider}
}

// Expand resolves a leading "~" or "~/" to the user's home directory.
// Paths naming another user ("~someone") are returned unchanged.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath
	}

	relativePath, hasHomePrefix := trimHomePrefix(candidatePath)
	if !hasHomePrefix {
		return candidatePath
	}

	homeDirectory := expander.resolveHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}

	if len(relativePath) == 0 {
		return homeDirectory
	}
	return filepath.Join(homeDirectory, relativePath)
}

// ExpandAll applies Expand to every path and returns a new slice.
func (expander *HomeExpander) ExpandAll(candidatePaths ...string) []string {
	expandedPaths := make([]string, len(candidatePaths))
	for pathIndex, candidatePath := range candidatePaths {
		expandedPaths[pathIndex] = expander.Expand(candidatePath)
	}
	return expandedPaths
}

func trimHomePrefix(candidatePath string) (string, bool) {
	if candidatePath == tildeSymbolConstant {
		return "", true
	}
	if strings.HasPrefix(candidatePath, tildeForwardSlashPrefixConstant) {
		return strings.TrimPrefix(candidatePath, tildeForwardSlashPrefixConstant), true
	}
	platformPrefix := tildeSymbolConstant + string(os.PathSeparator)
	if strings.HasPrefix(candidatePath, platformPrefix) {
		return strings.TrimPrefix(candidatePath, platformPrefix), true
	}
	return "", false
}

func (expander *HomeExpander) resolveHomeDirectory() string {
	expander.initializationGuard.Do(func() {
		expander.homeDirectory, expander.homeDirectoryError = expander.homeDirectoryProvider()
	})
	if expander.homeDirectoryError != nil {
		return ""
	}
	return expander.homeDirectory
}
