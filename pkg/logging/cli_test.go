package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCLILogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			logger := NewCLILogger(level)
			require.NotNil(t, logger)
			logger.Info("test message")
		})
	}
}

func TestCLIHandler_InfoMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo))

	logger.Info("test info message")

	output := buf.String()
	assert.Contains(t, output, "test info message")
	assert.Contains(t, output, colorGreen)
	assert.NotContains(t, output, colorRed)
}

func TestCLIHandler_WarnMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo))

	logger.Warn("skipping record")

	output := buf.String()
	assert.Contains(t, output, "skipping record")
	assert.Contains(t, output, colorYellow)
	assert.NotContains(t, output, colorRed)
}

func TestCLIHandler_ErrorMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo))

	logger.Error("test error message")

	output := buf.String()
	assert.Contains(t, output, "test error message")
	assert.Contains(t, output, colorRed)
	assert.Contains(t, output, colorReset)
}

func TestCLIHandler_LevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		logFunc      func(*slog.Logger)
		shouldLog    bool
	}{
		{"info handler logs info", slog.LevelInfo, func(l *slog.Logger) { l.Info("test") }, true},
		{"info handler filters debug", slog.LevelInfo, func(l *slog.Logger) { l.Debug("test") }, false},
		{"debug handler logs debug", slog.LevelDebug, func(l *slog.Logger) { l.Debug("test") }, true},
		{"error handler logs error", slog.LevelError, func(l *slog.Logger) { l.Error("test") }, true},
		{"error handler filters warn", slog.LevelError, func(l *slog.Logger) { l.Warn("test") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewCLIHandler(&buf, tt.handlerLevel))

			tt.logFunc(logger)

			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestCLIHandler_IncludesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo))

	logger.Info("scored", "molecule", "mol1", "score", 1.5)

	output := buf.String()
	assert.Contains(t, output, "scored")
	assert.Contains(t, output, "molecule=mol1")
	assert.Contains(t, output, "score=1.5")
}

func TestCLIHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf, slog.LevelInfo)

	assert.Equal(t, handler, handler.WithAttrs([]slog.Attr{slog.String("key", "value")}))
	assert.Equal(t, handler, handler.WithAttrs(nil))
}

func TestCLIHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf, slog.LevelInfo)

	grouped := handler.WithGroup("aggregate")
	require.NotEqual(t, handler, grouped)

	slog.New(grouped).Info("test message")

	output := buf.String()
	assert.Contains(t, output, "[aggregate]")
	assert.Contains(t, output, "test message")
}

func TestCLIHandler_WithGroup_Empty(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf, slog.LevelInfo)

	slog.New(handler.WithGroup("")).Info("no prefix")

	output := buf.String()
	assert.NotContains(t, output, "] no prefix")
	assert.Contains(t, output, "no prefix")
}

func TestSetDefaultCLILogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	SetDefaultCLILogger("debug")
	require.NotNil(t, slog.Default())
	slog.Info("test message from default CLI logger")
}

func TestSetup_NoFile(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	closer, err := Setup("info", "")
	require.NoError(t, err)
	require.NotNil(t, closer)
	assert.NoError(t, closer())
}

func TestSetup_FileCopy(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	path := filepath.Join(t.TempDir(), "run.log")
	closer, err := Setup("debug", path)
	require.NoError(t, err)

	slog.Info("screening started", "dataset", "mols.smi")
	require.NoError(t, closer())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"screening started"`)
	assert.Contains(t, string(content), `"dataset":"mols.smi"`)
}

func TestSetup_BadPath(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	_, err := Setup("info", filepath.Join(t.TempDir(), "missing", "run.log"))
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"  debug  ", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.input))
		})
	}
}
