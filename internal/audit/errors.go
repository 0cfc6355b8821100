package audit

import "fmt"

const (
	sourceReadErrorTemplateConstant    = "unable to read source file %s: %v"
	directoryListErrorTemplateConstant = "unable to list resources directory %s: %v"
)

// SourceReadError reports that the source file could not be opened or read.
type SourceReadError struct {
	Path  string
	Cause error
}

func (sourceReadError SourceReadError) Error() string {
	return fmt.Sprintf(sourceReadErrorTemplateConstant, sourceReadError.Path, sourceReadError.Cause)
}

// Unwrap exposes the underlying filesystem error.
func (sourceReadError SourceReadError) Unwrap() error {
	return sourceReadError.Cause
}

// DirectoryListError reports that the resources directory is missing or cannot be listed.
type DirectoryListError struct {
	Path  string
	Cause error
}

func (directoryListError DirectoryListError) Error() string {
	return fmt.Sprintf(directoryListErrorTemplateConstant, directoryListError.Path, directoryListError.Cause)
}

// Unwrap exposes the underlying filesystem error.
func (directoryListError DirectoryListError) Unwrap() error {
	return directoryListError.Cause
}
