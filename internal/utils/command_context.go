package utils

import "context"

type configurationMetadataContextKey struct{}

// CommandContextAccessor stores and retrieves the resolved configuration metadata on command contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationMetadata returns a child context carrying loadedConfiguration.
func (CommandContextAccessor) WithConfigurationMetadata(parentContext context.Context, loadedConfiguration LoadedConfiguration) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationMetadataContextKey{}, loadedConfiguration)
}

// ConfigurationMetadata reports the metadata attached by WithConfigurationMetadata.
func (CommandContextAccessor) ConfigurationMetadata(executionContext context.Context) (LoadedConfiguration, bool) {
	if executionContext == nil {
		return LoadedConfiguration{}, false
	}
	loadedConfiguration, available := executionContext.Value(configurationMetadataContextKey{}).(LoadedConfiguration)
	return loadedConfiguration, available
}
