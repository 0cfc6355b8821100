package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/assetcheck/internal/audit"
	"github.com/temirov/assetcheck/internal/utils"
)

const (
	environmentPrefixConstant               = "ASSETCHECK"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	workingDirectorySearchPathConstant      = "."
	commonLogLevelConfigKeyConstant         = "common.log_level"
	commonLogFormatConfigKeyConstant        = "common.log_format"
	auditConfigurationKeyConstant           = "tools.audit"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	configurationInitializedMessageConstant = "configuration initialized"
	logFieldLogLevelConstant                = "log_level"
	logFieldLogFormatConstant               = "log_format"
	logFieldConfigurationFileConstant       = "config_file"
)

// ApplicationConfiguration mirrors the layout of config.yaml.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	Tools  ApplicationToolsConfiguration  `mapstructure:"tools"`
}

// ApplicationCommonConfiguration stores logging settings shared by every command.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// ApplicationToolsConfiguration holds per-command settings.
type ApplicationToolsConfiguration struct {
	Audit audit.CommandConfiguration `mapstructure:"audit"`
}

func newConfigurationLoader() *utils.ConfigurationLoader {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		[]string{workingDirectorySearchPathConstant},
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())
	return configurationLoader
}

func defaultConfigurationValues() map[string]any {
	defaultValues := audit.DefaultConfigurationValues(auditConfigurationKeyConstant)
	defaultValues[commonLogLevelConfigKeyConstant] = string(utils.LogLevelInfo)
	defaultValues[commonLogFormatConfigKeyConstant] = string(utils.LogFormatStructured)
	return defaultValues
}

// initializeConfiguration loads configuration, applies logging flag overrides, and builds the logger.
func (application *Application) initializeConfiguration(command *cobra.Command) error {
	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(
		application.flagValues.configurationFilePath,
		defaultConfigurationValues(),
		&application.configuration,
	)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	if persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.flagValues.logLevel
	}
	if persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.flagValues.logFormat
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}
	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(logFieldLogLevelConstant, application.configuration.Common.LogLevel),
		zap.String(logFieldLogFormatConstant, application.configuration.Common.LogFormat),
		zap.String(logFieldConfigurationFileConstant, loadedConfiguration.ConfigFileUsed),
	)

	if command != nil {
		command.SetContext(application.commandContextAccessor.WithConfigurationMetadata(command.Context(), loadedConfiguration))
	}

	return nil
}

func persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}
	if command.Flags().Changed(flagName) || command.InheritedFlags().Changed(flagName) {
		return true
	}
	rootCommand := command.Root()
	return rootCommand != nil && rootCommand.PersistentFlags().Changed(flagName)
}
