package cli

import _ "embed"

// embeddedDefaultConfiguration seeds every run before config files and environment variables are applied.
//
//go:embed default_config.yaml
var embeddedDefaultConfiguration []byte

// EmbeddedDefaultConfiguration returns a copy of the embedded default configuration and its type identifier.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return append([]byte(nil), embeddedDefaultConfiguration...), configurationTypeConstant
}
