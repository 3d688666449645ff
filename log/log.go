package log

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	charmlog "charm.land/log/v2"
)

// Format represents the log output format.
type Format string

const (
	// FormatText outputs human-readable styled logs.
	FormatText Format = "text"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// New creates a logger writing to w with the given level and format.
func New(w io.Writer, level charmlog.Level, format Format) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       formatter(format),
		ReportTimestamp: true,
	})
}

// NewFromStrings creates a logger writing to w, parsing the level and format
// strings.
func NewFromStrings(w io.Writer, level, format string) (*charmlog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	logFmt, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return New(w, lvl, logFmt), nil
}

func formatter(f Format) charmlog.Formatter {
	switch f {
	case FormatJSON:
		return charmlog.JSONFormatter
	case FormatLogfmt:
		return charmlog.LogfmtFormatter
	case FormatText:
		return charmlog.TextFormatter
	}

	return charmlog.TextFormatter
}

// ParseLevel parses a log level string into a [charm.land/log/v2] level.
func ParseLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return charmlog.ErrorLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "info":
		return charmlog.InfoLevel, nil
	case "debug":
		return charmlog.DebugLevel, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

// ParseFormat parses a log format string into a [Format].
func ParseFormat(format string) (Format, error) {
	logFmt := Format(strings.ToLower(format))
	if slices.Contains(AllFormats(), logFmt) {
		return logFmt, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

// AllFormats returns every recognized [Format].
func AllFormats() []Format {
	return []Format{FormatText, FormatLogfmt, FormatJSON}
}

// AllLevelStrings returns every recognized level string, for flag help and
// completions.
func AllLevelStrings() []string {
	return []string{"debug", "info", "warn", "error"}
}

// AllFormatStrings returns every recognized format string, for flag help and
// completions.
func AllFormatStrings() []string {
	formats := AllFormats()
	ss := make([]string, len(formats))

	for i, f := range formats {
		ss[i] = string(f)
	}

	return ss
}
