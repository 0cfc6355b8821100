package cli

import (
	"errors"
	"fmt"
	"syscall"

	"go.uber.org/zap"
)

const (
	loggerSyncErrorTemplateConstant = "unable to flush logger: %w"
)

// joinLoggerSyncError flushes logger and appends any meaningful sync failure to executionError.
// Terminals report ENOTSUP or EINVAL when syncing stderr; those are ignored.
func joinLoggerSyncError(executionError error, logger *zap.Logger) error {
	if logger == nil {
		return executionError
	}

	syncError := logger.Sync()
	if syncError == nil || errors.Is(syncError, syscall.ENOTSUP) || errors.Is(syncError, syscall.EINVAL) {
		return executionError
	}
	return errors.Join(executionError, fmt.Errorf(loggerSyncErrorTemplateConstant, syncError))
}
