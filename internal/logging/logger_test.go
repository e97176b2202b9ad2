package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/RebelliousSmile/email-to-markdown/internal/config"
)

func configWith(level, format string) *config.Config {
	v := config.NewEmptyViper()
	v.Set("logging.level", level)
	v.Set("logging.format", format)
	return config.NewFromViper(v)
}

func TestInitLoggerLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		enabled  zapcore.Level
		disabled zapcore.Level
	}{
		{"debug", "debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"info", "info", zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", "warn", zapcore.WarnLevel, zapcore.InfoLevel},
		{"error", "error", zapcore.ErrorLevel, zapcore.WarnLevel},
		{"unknown falls back to info", "trace", zapcore.InfoLevel, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := InitLogger(configWith(tt.level, "json"))
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.disabled))
		})
	}
}

func TestInitLoggerConsoleFormat(t *testing.T) {
	logger, err := InitLogger(configWith("info", "console"))
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestInitConsoleLogger(t *testing.T) {
	logger, err := InitConsoleLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))

	logger, err = InitConsoleLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
