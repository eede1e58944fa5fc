package log

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger, tagging every record with the component that emitted it.
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
}

// DefaultConfig logs informational messages and above to stderr, leaving stdout to the session.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Component: "budget-tracker",
		Output:    os.Stderr,
	}
}

// New creates a new logger with the given configuration
func New(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: config.Level,
	})

	return &Logger{
		Logger: slog.New(handler).With("component", config.Component),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(Config{Output: io.Discard})
}

// WithComponent returns a new logger tagging records with the given subcomponent.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With("subcomponent", component),
	}
}
