package audit

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// OutputFormat enumerates supported report renderings.
type OutputFormat string

// Supported report renderings.
const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// SupportedOutputFormats lists every OutputFormat in presentation order.
func SupportedOutputFormats() []OutputFormat {
	return []OutputFormat{OutputFormatText, OutputFormatJSON, OutputFormatYAML}
}

// CommandOptions captures the inputs of a single audit run.
type CommandOptions struct {
	SourceFile         string       `validate:"required"`
	ResourcesDirectory string       `validate:"required"`
	OutputFormat       OutputFormat `validate:"required,oneof=text json yaml"`
}

// Report holds the outcome of an audit run.
type Report struct {
	SourceFile         string   `json:"source_file" yaml:"source_file"`
	ResourcesDirectory string   `json:"resources_directory" yaml:"resources_directory"`
	Missing            []string `json:"missing" yaml:"missing"`
	Extra              []string `json:"extra" yaml:"extra"`
}

// Clean reports whether every reference has a file and every file has a reference.
func (report Report) Clean() bool {
	return len(report.Missing) == 0 && len(report.Extra) == 0
}

func newReport(options CommandOptions, references mapset.Set[string], assetFiles mapset.Set[string]) Report {
	return Report{
		SourceFile:         options.SourceFile,
		ResourcesDirectory: options.ResourcesDirectory,
		Missing:            sortedMembers(references.Difference(assetFiles)),
		Extra:              sortedMembers(assetFiles.Difference(references)),
	}
}

func sortedMembers(set mapset.Set[string]) []string {
	members := set.ToSlice()
	sort.Strings(members)
	return members
}
