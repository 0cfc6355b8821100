package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/assetcheck/internal/audit"
	"github.com/temirov/assetcheck/internal/utils"
	"github.com/temirov/assetcheck/internal/utils/flags"
)

const (
	applicationNameConstant             = "assetcheck"
	applicationShortDescriptionConstant = "Audit image assets referenced from source against the resources directory"
	applicationLongDescriptionConstant  = "assetcheck cross-references painterResource image references in a source file with the .png files in a resources directory and reports missing and unused images."
	configFileFlagNameConstant          = "config"
	configFileFlagDescriptionConstant   = "Configuration file (YAML or JSON) overriding the embedded defaults."
	logLevelFlagNameConstant            = "log-level"
	logLevelFlagDescriptionConstant     = "Diagnostic log level written to standard error."
	logFormatFlagNameConstant           = "log-format"
	logFormatFlagDescriptionConstant    = "Diagnostic log encoding."
	rootCommandDebugMessageConstant     = "no subcommand requested; printing help"
	logFieldArgumentsConstant           = "arguments"
)

// Application owns the root Cobra command together with the configuration and logger it initializes.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	configuration          ApplicationConfiguration
	commandContextAccessor utils.CommandContextAccessor
	flagValues             persistentFlagValues
}

type persistentFlagValues struct {
	configurationFilePath string
	logLevel              string
	logFormat             string
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	application := &Application{
		configurationLoader:    newConfigurationLoader(),
		loggerFactory:          utils.NewLoggerFactory(),
		logger:                 zap.NewNop(),
		commandContextAccessor: utils.NewCommandContextAccessor(),
	}

	application.rootCommand = application.newRootCommand()
	application.registerAuditCommand()

	return application
}

func (application *Application) newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			application.logger.Debug(rootCommandDebugMessageConstant, zap.Strings(logFieldArgumentsConstant, arguments))
			return command.Help()
		},
	}
	rootCommand.SetContext(context.Background())

	persistentFlags := rootCommand.PersistentFlags()
	persistentFlags.StringVar(&application.flagValues.configurationFilePath, configFileFlagNameConstant, "", configFileFlagDescriptionConstant)
	persistentFlags.StringVar(&application.flagValues.logLevel, logLevelFlagNameConstant, "", flags.FormatChoiceUsage(
		string(utils.LogLevelInfo),
		flags.ChoiceValues(utils.SupportedLogLevels()...),
		logLevelFlagDescriptionConstant,
	))
	persistentFlags.StringVar(&application.flagValues.logFormat, logFormatFlagNameConstant, "", flags.FormatChoiceUsage(
		string(utils.LogFormatStructured),
		flags.ChoiceValues(utils.SupportedLogFormats()...),
		logFormatFlagDescriptionConstant,
	))

	return rootCommand
}

func (application *Application) registerAuditCommand() {
	auditBuilder := audit.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		ConfigurationProvider: func() audit.CommandConfiguration {
			return application.configuration.Tools.Audit
		},
	}

	auditCommand, auditBuildError := auditBuilder.Build()
	if auditBuildError != nil {
		return
	}
	application.rootCommand.AddCommand(auditCommand)
}

// Command exposes the root Cobra command for embedding and tests.
func (application *Application) Command() *cobra.Command {
	return application.rootCommand
}

// Execute runs the command hierarchy and flushes the diagnostic logger afterwards.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	return joinLoggerSyncError(executionError, application.logger)
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}
