package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
)

// LogLevel names a diagnostic verbosity accepted by --log-level.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat names a diagnostic encoding accepted by --log-format.
type LogFormat string

const (
	LogFormatStructured LogFormat = "structured"
	LogFormatConsole    LogFormat = "console"
)

var zapLevelsByLogLevel = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

// SupportedLogLevels lists log levels from most to least verbose.
func SupportedLogLevels() []LogLevel {
	return []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
}

// SupportedLogFormats lists the accepted log encodings.
func SupportedLogFormats() []LogFormat {
	return []LogFormat{LogFormatStructured, LogFormatConsole}
}

// ParseLogLevel normalizes a user supplied level, ignoring case and surrounding whitespace.
func ParseLogLevel(rawLogLevel string) (LogLevel, error) {
	candidateLogLevel := LogLevel(strings.ToLower(strings.TrimSpace(rawLogLevel)))
	if _, supported := zapLevelsByLogLevel[candidateLogLevel]; !supported {
		return "", fmt.Errorf(unsupportedLogLevelTemplateConstant, rawLogLevel)
	}
	return candidateLogLevel, nil
}

// ParseLogFormat normalizes a user supplied encoding, ignoring case and surrounding whitespace.
func ParseLogFormat(rawLogFormat string) (LogFormat, error) {
	candidateLogFormat := LogFormat(strings.ToLower(strings.TrimSpace(rawLogFormat)))
	switch candidateLogFormat {
	case LogFormatStructured, LogFormatConsole:
		return candidateLogFormat, nil
	default:
		return "", fmt.Errorf(unsupportedLogFormatTemplateConstant, rawLogFormat)
	}
}

// LoggerFactory builds zap loggers that write to a single diagnostic sink.
type LoggerFactory struct {
	sink zapcore.WriteSyncer
}

// NewLoggerFactory returns a factory writing to standard error so that reports on standard output stay clean.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{sink: zapcore.Lock(os.Stderr)}
}

// NewLoggerFactoryWithSink returns a factory writing to sink.
func NewLoggerFactoryWithSink(sink io.Writer) *LoggerFactory {
	if sink == nil {
		sink = io.Discard
	}
	return &LoggerFactory{sink: zapcore.AddSync(sink)}
}

// CreateLogger produces a logger for the requested level and format.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	logLevel, levelError := ParseLogLevel(string(requestedLogLevel))
	if levelError != nil {
		return nil, levelError
	}
	logFormat, formatError := ParseLogFormat(string(requestedLogFormat))
	if formatError != nil {
		return nil, formatError
	}

	encoderConfiguration := zap.NewProductionEncoderConfig()
	var encoder zapcore.Encoder
	if logFormat == LogFormatConsole {
		encoderConfiguration.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfiguration.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfiguration)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfiguration)
	}

	sink := factory.sink
	if sink == nil {
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(zapLevelsByLogLevel[logLevel]))
	return zap.New(core, zap.ErrorOutput(sink)), nil
}
