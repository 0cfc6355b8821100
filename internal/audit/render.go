package audit

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	missingFilesLabelConstant         = "Missing files:"
	extraFilesLabelConstant           = "Extra files:"
	textLineTemplateConstant          = "%s {%s}\n"
	setMemberSeparatorConstant        = ", "
	jsonIndentPrefixConstant          = ""
	jsonIndentConstant                = "  "
	yamlIndentWidthConstant           = 2
	unsupportedFormatTemplateConstant = "unsupported output format: %s"
	renderReportErrorTemplateConstant = "unable to render %s report: %w"
	writeReportErrorTemplateConstant  = "unable to write report: %w"
)

// RenderReport writes report to outputWriter in the requested format.
func RenderReport(outputWriter io.Writer, report Report, format OutputFormat) error {
	var renderedReport []byte
	var renderError error

	switch format {
	case OutputFormatText, "":
		renderedReport = renderText(report)
	case OutputFormatJSON:
		renderedReport, renderError = renderJSON(report)
	case OutputFormatYAML:
		renderedReport, renderError = renderYAML(report)
	default:
		return fmt.Errorf(unsupportedFormatTemplateConstant, format)
	}
	if renderError != nil {
		return fmt.Errorf(renderReportErrorTemplateConstant, format, renderError)
	}

	if _, writeError := outputWriter.Write(renderedReport); writeError != nil {
		return fmt.Errorf(writeReportErrorTemplateConstant, writeError)
	}
	return nil
}

func renderText(report Report) []byte {
	builder := &strings.Builder{}
	fmt.Fprintf(builder, textLineTemplateConstant, missingFilesLabelConstant, strings.Join(report.Missing, setMemberSeparatorConstant))
	fmt.Fprintf(builder, textLineTemplateConstant, extraFilesLabelConstant, strings.Join(report.Extra, setMemberSeparatorConstant))
	return []byte(builder.String())
}

func renderJSON(report Report) ([]byte, error) {
	encoded, encodeError := json.MarshalIndent(normalizeReport(report), jsonIndentPrefixConstant, jsonIndentConstant)
	if encodeError != nil {
		return nil, encodeError
	}
	return append(encoded, '\n'), nil
}

func renderYAML(report Report) ([]byte, error) {
	builder := &strings.Builder{}
	encoder := yaml.NewEncoder(builder)
	encoder.SetIndent(yamlIndentWidthConstant)
	if encodeError := encoder.Encode(normalizeReport(report)); encodeError != nil {
		return nil, encodeError
	}
	if closeError := encoder.Close(); closeError != nil {
		return nil, closeError
	}
	return []byte(builder.String()), nil
}

// normalizeReport replaces nil slices so empty sets encode as [] instead of null.
func normalizeReport(report Report) Report {
	normalized := report
	if normalized.Missing == nil {
		normalized.Missing = []string{}
	}
	if normalized.Extra == nil {
		normalized.Extra = []string{}
	}
	return normalized
}
