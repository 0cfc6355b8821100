package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/assetcheck/internal/utils"
)

func TestCommandContextAccessorConfigurationMetadata(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	_, availableBeforeAttach := accessor.ConfigurationMetadata(context.Background())
	require.False(testInstance, availableBeforeAttach)

	_, availableOnNilContext := accessor.ConfigurationMetadata(nil) //nolint:staticcheck
	require.False(testInstance, availableOnNilContext)

	attachedMetadata := utils.LoadedConfiguration{ConfigFileUsed: "/tmp/config.yaml", EmbeddedDefaultsApplied: true}
	updatedContext := accessor.WithConfigurationMetadata(context.Background(), attachedMetadata)
	resolvedMetadata, availableAfterAttach := accessor.ConfigurationMetadata(updatedContext)
	require.True(testInstance, availableAfterAttach)
	require.Equal(testInstance, attachedMetadata, resolvedMetadata)
}
