package audit

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted audit configuration.
type ConfigurationProvider func() CommandConfiguration

// FileSystem exposes the read-only filesystem access required by the audit.
type FileSystem interface {
	Open(name string) (afero.File, error)
}

func resolveFileSystem(fileSystem FileSystem) FileSystem {
	if fileSystem == nil {
		return afero.NewOsFs()
	}
	return fileSystem
}

func resolveLogger(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
