// Package cli constructs the assetcheck command-line interface, wiring the
// Cobra command hierarchy, the Viper-backed configuration loader, and zap
// structured logging around the audit command.
package cli
