package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zap.DebugLevel},
		{"WARN", zap.WarnLevel},
		{"error", zap.ErrorLevel},
		{"info", zap.InfoLevel},
		{"", zap.InfoLevel},
		{"verbose", zap.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.level))
		})
	}
}

func TestNew_WritesRotatedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "api.log")

	logger, err := New(Config{Level: "info", File: file, MaxSize: 1, MaxBackups: 1, MaxAge: 1})
	require.NoError(t, err)

	logger.Info("appointment data", zap.String("branch", "Kondapur"))
	logger.Debug("hidden")
	require.NoError(t, logger.Close())

	contents, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `"msg":"appointment data"`)
	assert.Contains(t, string(contents), `"branch":"Kondapur"`)
	assert.NotContains(t, string(contents), "hidden")
}

func TestNew_StdoutOnly(t *testing.T) {
	logger, err := New(Config{Level: "debug", Development: true})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
	assert.NoError(t, logger.Close())
}
