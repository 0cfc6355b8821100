package audit

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/assetcheck/internal/utils"
	"github.com/temirov/assetcheck/internal/utils/flags"
	pathutils "github.com/temirov/assetcheck/internal/utils/path"
)

const (
	commandNameConstant               = "audit"
	commandShortDescription           = "Report painterResource images that are missing or unused"
	commandLongDescription            = "audit scans the source file for painterResource(\"<name>.png\") calls, lists the .png files directly inside the resources directory, and prints the referenced-but-missing and present-but-unreferenced file sets."
	flagSourceName                    = "source"
	flagSourceShorthand               = "s"
	flagSourceDescription             = "Source file to scan for painterResource references"
	flagResourcesName                 = "resources"
	flagResourcesShorthand            = "r"
	flagResourcesDescription          = "Resources directory holding the image files (not traversed recursively)"
	flagFormatName                    = "format"
	flagFormatShorthand               = "f"
	flagFormatDescription             = "Report format"
	commandStartedMessageConstant     = "asset audit started"
	logFieldConfigurationFileConstant = "config_file"
	logFieldEmbeddedDefaultsConstant  = "embedded_defaults"
)

// CommandBuilder assembles the audit cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	FileSystem            FileSystem
	HomeExpander          *pathutils.HomeExpander
}

// Build constructs the cobra command for the asset audit.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescription,
		Long:  commandLongDescription,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	formatChoices := flags.ChoiceValues(SupportedOutputFormats()...)

	command.Flags().StringP(flagSourceName, flagSourceShorthand, "", flagSourceDescription)
	command.Flags().StringP(flagResourcesName, flagResourcesShorthand, "", flagResourcesDescription)
	command.Flags().StringP(flagFormatName, flagFormatShorthand, "", flags.FormatChoiceUsage(string(OutputFormatText), formatChoices, flagFormatDescription))

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options := builder.parseOptions(command)

	logger := builder.resolveLogger()
	configurationMetadata, _ := utils.NewCommandContextAccessor().ConfigurationMetadata(command.Context())
	logger.Debug(
		commandStartedMessageConstant,
		zap.String(logFieldSourceFileConstant, options.SourceFile),
		zap.String(logFieldResourcesDirectoryConstant, options.ResourcesDirectory),
		zap.String(logFieldOutputFormatConstant, string(options.OutputFormat)),
		zap.String(logFieldConfigurationFileConstant, configurationMetadata.ConfigFileUsed),
		zap.Bool(logFieldEmbeddedDefaultsConstant, configurationMetadata.EmbeddedDefaultsApplied),
	)

	service := NewService(builder.FileSystem, logger, command.OutOrStdout())
	return service.Run(command.Context(), options)
}

// parseOptions layers flag values over the configured values; unset values fall back to defaults.
func (builder *CommandBuilder) parseOptions(command *cobra.Command) CommandOptions {
	configuration := builder.resolveConfiguration()

	flagSet := command.Flags()
	overrideFromFlag(flagSet, flagSourceName, &configuration.SourceFile)
	overrideFromFlag(flagSet, flagResourcesName, &configuration.ResourcesDirectory)
	overrideFromFlag(flagSet, flagFormatName, &configuration.OutputFormat)

	configuration = configuration.sanitize()

	homeExpander := builder.HomeExpander
	if homeExpander == nil {
		homeExpander = pathutils.NewHomeExpander()
	}

	expandedPaths := homeExpander.ExpandAll(configuration.SourceFile, configuration.ResourcesDirectory)
	return CommandOptions{
		SourceFile:         expandedPaths[0],
		ResourcesDirectory: expandedPaths[1],
		OutputFormat:       OutputFormat(configuration.OutputFormat),
	}
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	return resolveLogger(builder.LoggerProvider())
}

// overrideFromFlag replaces target only when the user set the flag explicitly.
func overrideFromFlag(flagSet *pflag.FlagSet, flagName string, target *string) {
	if flagSet == nil || !flagSet.Changed(flagName) {
		return
	}
	if flagValue, lookupError := flagSet.GetString(flagName); lookupError == nil {
		*target = flagValue
	}
}
