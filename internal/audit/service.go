package audit

import (
	"context"
	"io"

	"go.uber.org/zap"
)

const (
	readingSourceMessageConstant       = "reading source file"
	listingResourcesMessageConstant    = "listing resources directory"
	auditCompletedMessageConstant      = "asset audit completed"
	renderingReportMessageConstant     = "rendering report"
	logFieldSourceFileConstant         = "source_file"
	logFieldResourcesDirectoryConstant = "resources_directory"
	logFieldReferenceCountConstant     = "reference_count"
	logFieldAssetFileCountConstant     = "asset_file_count"
	logFieldMissingCountConstant       = "missing_count"
	logFieldExtraCountConstant         = "extra_count"
	logFieldOutputFormatConstant       = "output_format"
)

// Service reads a source file and a resources directory and reports reference drift between them.
type Service struct {
	fileSystem   FileSystem
	logger       *zap.Logger
	outputWriter io.Writer
}

// NewService constructs a Service using the provided dependencies.
// A nil fileSystem reads the operating system filesystem. Nil loggers and writers discard.
func NewService(fileSystem FileSystem, logger *zap.Logger, outputWriter io.Writer) *Service {
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	return &Service{
		fileSystem:   resolveFileSystem(fileSystem),
		logger:       resolveLogger(logger),
		outputWriter: outputWriter,
	}
}

// Audit computes the Missing and Extra sets without writing any output.
func (service *Service) Audit(executionContext context.Context, options CommandOptions) (Report, error) {
	if executionContext == nil {
		executionContext = context.Background()
	}

	service.logger.Debug(readingSourceMessageConstant, zap.String(logFieldSourceFileConstant, options.SourceFile))
	sourceText, readError := readSourceText(service.fileSystem, options.SourceFile)
	if readError != nil {
		return Report{}, readError
	}
	references := ExtractReferences(sourceText)

	if contextError := executionContext.Err(); contextError != nil {
		return Report{}, contextError
	}

	service.logger.Debug(listingResourcesMessageConstant, zap.String(logFieldResourcesDirectoryConstant, options.ResourcesDirectory))
	assetFiles, listError := listAssetFiles(service.fileSystem, options.ResourcesDirectory)
	if listError != nil {
		return Report{}, listError
	}

	report := newReport(options, references, assetFiles)

	service.logger.Info(
		auditCompletedMessageConstant,
		zap.String(logFieldSourceFileConstant, options.SourceFile),
		zap.String(logFieldResourcesDirectoryConstant, options.ResourcesDirectory),
		zap.Int(logFieldReferenceCountConstant, references.Cardinality()),
		zap.Int(logFieldAssetFileCountConstant, assetFiles.Cardinality()),
		zap.Int(logFieldMissingCountConstant, len(report.Missing)),
		zap.Int(logFieldExtraCountConstant, len(report.Extra)),
	)

	return report, nil
}

// Run validates options, audits, and renders the report. Nothing is written when any step before rendering fails.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	if validationError := options.Validate(); validationError != nil {
		return validationError
	}

	report, auditError := service.Audit(executionContext, options)
	if auditError != nil {
		return auditError
	}

	service.logger.Debug(renderingReportMessageConstant, zap.String(logFieldOutputFormatConstant, string(options.OutputFormat)))

	return RenderReport(service.outputWriter, report, options.OutputFormat)
}
