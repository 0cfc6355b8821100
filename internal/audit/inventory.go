package audit

import (
	"io"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	readAllDirectoryEntriesConstant = -1
)

// readSourceText loads the full source file, releasing the handle before returning.
func readSourceText(fileSystem FileSystem, sourceFilePath string) (sourceText string, readError error) {
	sourceFile, openError := fileSystem.Open(sourceFilePath)
	if openError != nil {
		return "", SourceReadError{Path: sourceFilePath, Cause: openError}
	}
	defer func() {
		if closeError := sourceFile.Close(); closeError != nil && readError == nil {
			readError = SourceReadError{Path: sourceFilePath, Cause: closeError}
		}
	}()

	sourceBytes, readAllError := io.ReadAll(sourceFile)
	if readAllError != nil {
		return "", SourceReadError{Path: sourceFilePath, Cause: readAllError}
	}

	return string(sourceBytes), nil
}

// listAssetFiles returns the names of direct entries of resourcesDirectory ending with AssetSuffix.
// Subdirectories are not descended into.
func listAssetFiles(fileSystem FileSystem, resourcesDirectory string) (assetFiles mapset.Set[string], listError error) {
	directory, openError := fileSystem.Open(resourcesDirectory)
	if openError != nil {
		return nil, DirectoryListError{Path: resourcesDirectory, Cause: openError}
	}
	defer func() {
		if closeError := directory.Close(); closeError != nil && listError == nil {
			listError = DirectoryListError{Path: resourcesDirectory, Cause: closeError}
		}
	}()

	entryNames, readDirectoryError := directory.Readdirnames(readAllDirectoryEntriesConstant)
	if readDirectoryError != nil {
		return nil, DirectoryListError{Path: resourcesDirectory, Cause: readDirectoryError}
	}

	assetFiles = mapset.NewThreadUnsafeSet[string]()
	for _, entryName := range entryNames {
		if strings.HasSuffix(entryName, AssetSuffix) {
			assetFiles.Add(entryName)
		}
	}

	return assetFiles, nil
}
