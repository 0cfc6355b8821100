package audit

import "strings"

const (
	// DefaultSourceFilePath is the helper file that holds painterResource calls in the tracked project.
	DefaultSourceFilePath = "src/main/kotlin/core/helpers/GeneralHelper.kt"
	// DefaultResourcesDirectoryPath is the directory holding the project's image assets.
	DefaultResourcesDirectoryPath = "src/main/resources/"

	sourceFileConfigurationKeyConstant         = "source_file"
	resourcesDirectoryConfigurationKeyConstant = "resources_directory"
	outputFormatConfigurationKeyConstant       = "output_format"
	configurationKeySeparatorConstant          = "."
)

// CommandConfiguration captures persistent settings for the audit command.
type CommandConfiguration struct {
	SourceFile         string `mapstructure:"source_file"`
	ResourcesDirectory string `mapstructure:"resources_directory"`
	OutputFormat       string `mapstructure:"output_format"`
}

// DefaultCommandConfiguration returns baseline configuration values for the audit command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		SourceFile:         DefaultSourceFilePath,
		ResourcesDirectory: DefaultResourcesDirectoryPath,
		OutputFormat:       string(OutputFormatText),
	}
}

// DefaultConfigurationValues returns the Viper defaults for the audit command rooted at configurationPrefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		qualifyConfigurationKey(configurationPrefix, sourceFileConfigurationKeyConstant):         defaults.SourceFile,
		qualifyConfigurationKey(configurationPrefix, resourcesDirectoryConfigurationKeyConstant): defaults.ResourcesDirectory,
		qualifyConfigurationKey(configurationPrefix, outputFormatConfigurationKeyConstant):       defaults.OutputFormat,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := CommandConfiguration{
		SourceFile:         strings.TrimSpace(configuration.SourceFile),
		ResourcesDirectory: strings.TrimSpace(configuration.ResourcesDirectory),
		OutputFormat:       strings.ToLower(strings.TrimSpace(configuration.OutputFormat)),
	}

	if len(sanitized.SourceFile) == 0 {
		sanitized.SourceFile = defaults.SourceFile
	}
	if len(sanitized.ResourcesDirectory) == 0 {
		sanitized.ResourcesDirectory = defaults.ResourcesDirectory
	}
	if len(sanitized.OutputFormat) == 0 {
		sanitized.OutputFormat = defaults.OutputFormat
	}

	return sanitized
}

func qualifyConfigurationKey(configurationPrefix string, configurationKey string) string {
	trimmedPrefix := strings.Trim(strings.TrimSpace(configurationPrefix), configurationKeySeparatorConstant)
	if len(trimmedPrefix) == 0 {
		return configurationKey
	}
	return trimmedPrefix + configurationKeySeparatorConstant + configurationKey
}
