// Package logging configures the process-wide slog logger for the uitree CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Format selects the log handler
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config describes how the CLI logs
type Config struct {
	Level  string
	Format Format
	// Output is "stdout", "stderr", "file:///path" or a plain file path
	Output string
}

// levelSpec is the parsed form of a level name
type levelSpec struct {
	level     slog.Level
	caller    bool
	timestamp bool
}

func parseLevel(logLevel string) levelSpec {
	switch strings.ToLower(logLevel) {
	case "trace":
		return levelSpec{level: slog.LevelDebug, caller: true, timestamp: true}
	case "debug":
		return levelSpec{level: slog.LevelDebug, timestamp: true}
	case "warn", "warning":
		return levelSpec{level: slog.LevelWarn}
	case "error":
		return levelSpec{level: slog.LevelError}
	default:
		return levelSpec{level: slog.LevelInfo}
	}
}

// SetupHandlerText configures a charmbracelet text handler with the provided writer and log level
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	spec := parseLevel(logLevel)
	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: spec.timestamp,
		ReportCaller:    spec.caller,
		Level:           log.Level(spec.level),
	})
}

// SetupHandlerJSON configures a JSON slog handler with the provided writer and log level
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	spec := parseLevel(logLevel)
	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     spec.level,
		AddSource: spec.caller,
	})
}

// Setup builds a logger from cfg and installs it as the slog default. The
// returned close function releases a file output, if any.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	out, err := OpenOutput(cfg.Output)
	if err != nil {
		return nil, nil, err
	}

	var handler slog.Handler
	switch cfg.Format {
	case FormatText, "":
		handler = SetupHandlerText(cfg.Level, out)
	case FormatJSON:
		handler = SetupHandlerJSON(cfg.Level, out)
	default:
		_ = out.Close()
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, cfg.Format)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, out.Close, nil
}

// SetupLogger configures the default logger on stderr with the provided log level
func SetupLogger(logLevel string) {
	handler := SetupHandlerText(logLevel, nil)
	slog.SetDefault(slog.New(handler))
}
