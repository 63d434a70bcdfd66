// Package logging provides the CLI logger: colored single-line console
// output, with an optional JSON copy of every record appended to a file.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"

	logFileMode = 0644
)

// CLIHandler is a custom slog.Handler for CLI output.
type CLIHandler struct {
	writer io.Writer
	level  slog.Level
	prefix string
}

func NewCLIHandler(w io.Writer, level slog.Level) *CLIHandler {
	return &CLIHandler{
		writer: w,
		level:  level,
	}
}

func (h *CLIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *CLIHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	if h.prefix != "" {
		msg = "[" + h.prefix + "] " + msg
	}

	if r.NumAttrs() > 0 {
		var attrs []string
		r.Attrs(func(a slog.Attr) bool {
			attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
			return true
		})
		if len(attrs) > 0 {
			msg = msg + ": " + strings.Join(attrs, " ")
		}
	}

	switch {
	case r.Level >= slog.LevelError:
		msg = colorRed + msg + colorReset
	case r.Level >= slog.LevelWarn:
		msg = colorYellow + msg + colorReset
	default:
		msg = colorGreen + msg + colorReset
	}

	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *CLIHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *CLIHandler) WithGroup(name string) slog.Handler {
	return &CLIHandler{
		writer: h.writer,
		level:  h.level,
		prefix: name,
	}
}

func NewCLILogger(level string) *slog.Logger {
	return slog.New(NewCLIHandler(os.Stderr, ParseLogLevel(level)))
}

func SetDefaultCLILogger(level string) {
	slog.SetDefault(NewCLILogger(level))
}

// Setup installs the default logger: colored console output on stderr
// and, when logFile is set, a JSON copy of every record appended to that
// file. The returned close function releases the file.
func Setup(level, logFile string) (func() error, error) {
	lev := ParseLogLevel(level)
	console := NewCLIHandler(os.Stderr, lev)

	if logFile == "" {
		slog.SetDefault(slog.New(console))
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %s: %w", logFile, err)
	}

	fileHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lev})
	slog.SetDefault(slog.New(slogmulti.Fanout(console, fileHandler)))
	return f.Close, nil
}

// ParseLogLevel converts a string log level to slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
