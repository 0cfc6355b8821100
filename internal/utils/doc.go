// Package utils exposes the ambient plumbing shared by assetcheck commands.
//
// ConfigurationLoader layers embedded defaults, an optional configuration file,
// and environment variables through Viper. LoggerFactory builds zap loggers for
// the configured level and encoding. CommandContextAccessor hands the resolved
// configuration metadata from the root command to subcommands.
package utils
