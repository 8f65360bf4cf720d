package config

import (
	"log/slog"

	"github.com/stakater/developer-handbook/internal/foundation/normalization"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevels = normalization.NewNormalizer("log level", map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
}, LogLevelInfo)

// SlogLevel converts the level to its slog equivalent.
func (l LogLevel) SlogLevel() slog.Level {
	switch logLevels.Normalize(string(l)) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

var logFormats = normalization.NewNormalizer("log format", map[string]LogFormat{
	"text": LogFormatText,
	"json": LogFormatJSON,
}, LogFormatText)

// OutputFormat selects how the generator configuration is written.
type OutputFormat string

const (
	// OutputJS writes a CommonJS module (module.exports = {...}).
	OutputJS   OutputFormat = "js"
	OutputJSON OutputFormat = "json"
)

var outputFormats = normalization.NewNormalizer("output format", map[string]OutputFormat{
	"js":         OutputJS,
	"javascript": OutputJS,
	"json":       OutputJSON,
}, OutputJS)

// ParseOutputFormat validates a user-supplied output format.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return outputFormats.Parse(raw)
}

// OrphanMode controls reporting of content pages missing from the sidebar.
type OrphanMode string

const (
	OrphansIgnore OrphanMode = "ignore"
	OrphansWarn   OrphanMode = "warn"
)

var orphanModes = normalization.NewNormalizer("orphan mode", map[string]OrphanMode{
	"ignore": OrphansIgnore,
	"off":    OrphansIgnore,
	"warn":   OrphansWarn,
}, OrphansWarn)
