package cli_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/assetcheck/cmd/cli"
	"github.com/temirov/assetcheck/internal/audit"
)

const (
	testLogLevelFlagConstant               = "--log-level"
	testLogLevelErrorConstant              = "error"
	testConfigFlagConstant                 = "--config"
	testAuditCommandNameConstant           = "audit"
	testSourceFlagConstant                 = "--source"
	testResourcesFlagConstant              = "--resources"
	testFormatFlagConstant                 = "--format"
	testSourceFileNameConstant             = "GeneralHelper.kt"
	testResourcesDirectoryNameConstant     = "resources"
	testConfigurationFileNameConstant      = "config.yaml"
	testSourceEnvironmentNameConstant      = "ASSETCHECK_TOOLS_AUDIT_SOURCE_FILE"
	testResourcesEnvironmentNameConstant   = "ASSETCHECK_TOOLS_AUDIT_RESOURCES_DIRECTORY"
	testConfigurationTemplateConstant      = "common:\n  log_level: error\ntools:\n  audit:\n    source_file: %s\n    resources_directory: %s\n    output_format: yaml\n"
	testSourceContentConstant              = "painterResource(\"icon.png\")\npainterResource(\"icon.png\")\npainterResource(\"logo.png\")\n"
	testExpectedTextReportConstant         = "Missing files: {logo.png}\nExtra files: {}\n"
	testApplicationSubtestTemplateConstant = "%d_%s"
)

type applicationFixture struct {
	sourceFilePath     string
	resourcesDirectory string
}

func writeApplicationFixture(testInstance *testing.T) applicationFixture {
	testInstance.Helper()

	rootDirectory := testInstance.TempDir()
	sourceFilePath := filepath.Join(rootDirectory, testSourceFileNameConstant)
	require.NoError(testInstance, os.WriteFile(sourceFilePath, []byte(testSourceContentConstant), 0o600))

	resourcesDirectory := filepath.Join(rootDirectory, testResourcesDirectoryNameConstant)
	require.NoError(testInstance, os.MkdirAll(resourcesDirectory, 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(resourcesDirectory, "icon.png"), []byte("png"), 0o600))

	return applicationFixture{sourceFilePath: sourceFilePath, resourcesDirectory: resourcesDirectory}
}

func executeApplication(testInstance *testing.T, arguments ...string) (string, error) {
	testInstance.Helper()

	application := cli.NewApplication()
	rootCommand := application.Command()
	rootCommand.SetArgs(arguments)

	outputBuffer := &strings.Builder{}
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(outputBuffer)

	executionError := application.Execute()
	return outputBuffer.String(), executionError
}

func TestApplicationAuditCommand(testInstance *testing.T) {
	fixture := writeApplicationFixture(testInstance)

	testCases := []struct {
		name           string
		prepare        func(testInstance *testing.T) []string
		expectedOutput string
	}{
		{
			name: "flags",
			prepare: func(testInstance *testing.T) []string {
				return []string{testLogLevelFlagConstant, testLogLevelErrorConstant, testAuditCommandNameConstant, testSourceFlagConstant, fixture.sourceFilePath, testResourcesFlagConstant, fixture.resourcesDirectory}
			},
			expectedOutput: testExpectedTextReportConstant,
		},
		{
			name: "environment",
			prepare: func(testInstance *testing.T) []string {
				testInstance.Setenv(testSourceEnvironmentNameConstant, fixture.sourceFilePath)
				testInstance.Setenv(testResourcesEnvironmentNameConstant, fixture.resourcesDirectory)
				return []string{testLogLevelFlagConstant, testLogLevelErrorConstant, testAuditCommandNameConstant}
			},
			expectedOutput: testExpectedTextReportConstant,
		},
		{
			name: "configuration_file",
			prepare: func(testInstance *testing.T) []string {
				configurationPath := filepath.Join(testInstance.TempDir(), testConfigurationFileNameConstant)
				configurationContent := fmt.Sprintf(testConfigurationTemplateConstant, fixture.sourceFilePath, fixture.resourcesDirectory)
				require.NoError(testInstance, os.WriteFile(configurationPath, []byte(configurationContent), 0o600))
				return []string{testConfigFlagConstant, configurationPath, testAuditCommandNameConstant}
			},
			expectedOutput: fmt.Sprintf("source_file: %s\nresources_directory: %s\nmissing:\n  - logo.png\nextra: []\n", fixture.sourceFilePath, fixture.resourcesDirectory),
		},
		{
			name: "flag_overrides_configuration_file",
			prepare: func(testInstance *testing.T) []string {
				configurationPath := filepath.Join(testInstance.TempDir(), testConfigurationFileNameConstant)
				configurationContent := fmt.Sprintf(testConfigurationTemplateConstant, fixture.sourceFilePath, fixture.resourcesDirectory)
				require.NoError(testInstance, os.WriteFile(configurationPath, []byte(configurationContent), 0o600))
				return []string{testConfigFlagConstant, configurationPath, testAuditCommandNameConstant, testFormatFlagConstant, string(audit.OutputFormatText)}
			},
			expectedOutput: testExpectedTextReportConstant,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testApplicationSubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			arguments := testCase.prepare(testInstance)

			output, executionError := executeApplication(testInstance, arguments...)
			require.NoError(testInstance, executionError)
			if strings.HasPrefix(testCase.expectedOutput, "Missing files:") {
				require.Equal(testInstance, testCase.expectedOutput, output)
				return
			}
			require.YAMLEq(testInstance, testCase.expectedOutput, output)
		})
	}
}

func TestApplicationFailures(testInstance *testing.T) {
	fixture := writeApplicationFixture(testInstance)
	missingSourcePath := filepath.Join(testInstance.TempDir(), "Absent.kt")

	testCases := []struct {
		name          string
		arguments     []string
		expectedError string
	}{
		{
			name:          "missing_source_file",
			arguments:     []string{testLogLevelFlagConstant, testLogLevelErrorConstant, testAuditCommandNameConstant, testSourceFlagConstant, missingSourcePath, testResourcesFlagConstant, fixture.resourcesDirectory},
			expectedError: "unable to read source file " + missingSourcePath,
		},
		{
			name:          "unsupported_log_level",
			arguments:     []string{testLogLevelFlagConstant, "verbose", testAuditCommandNameConstant},
			expectedError: "unable to create logger: unsupported log level: verbose",
		},
		{
			name:          "missing_configuration_file",
			arguments:     []string{testConfigFlagConstant, filepath.Join(testInstance.TempDir(), "absent.yaml"), testAuditCommandNameConstant},
			expectedError: "unable to load configuration",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testApplicationSubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			output, executionError := executeApplication(testInstance, testCase.arguments...)
			require.Error(testInstance, executionError)
			require.Contains(testInstance, executionError.Error(), testCase.expectedError)
			require.NotContains(testInstance, output, "Missing files:")
		})
	}
}

func TestApplicationRootCommandShowsHelp(testInstance *testing.T) {
	output, executionError := executeApplication(testInstance, testLogLevelFlagConstant, testLogLevelErrorConstant)
	require.NoError(testInstance, executionError)
	require.Contains(testInstance, output, testAuditCommandNameConstant)
	require.Contains(testInstance, output, "<debug|INFO|warn|error>")
}

func TestEmbeddedDefaultConfigurationMatchesAuditDefaults(testInstance *testing.T) {
	configurationContent, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, "yaml", configurationType)

	rawConfiguration := map[string]any{}
	require.NoError(testInstance, yaml.Unmarshal(configurationContent, &rawConfiguration))

	var applicationConfiguration cli.ApplicationConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "mapstructure", Result: &applicationConfiguration})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(rawConfiguration))

	require.Equal(testInstance, audit.DefaultCommandConfiguration(), applicationConfiguration.Tools.Audit)
	require.Equal(testInstance, "info", applicationConfiguration.Common.LogLevel)
	require.Equal(testInstance, "structured", applicationConfiguration.Common.LogFormat)
}
