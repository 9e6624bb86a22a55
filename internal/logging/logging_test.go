package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pborges/aoc2022/internal/config"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     config.LoggingConfig
		verbose bool
		want    zapcore.Level
	}{
		{"default", config.LoggingConfig{}, false, zapcore.InfoLevel},
		{"warn", config.LoggingConfig{Level: "warn"}, false, zapcore.WarnLevel},
		{"development", config.LoggingConfig{Level: "error", Development: true}, false, zapcore.ErrorLevel},
		{"verbose wins", config.LoggingConfig{Level: "error"}, true, zapcore.DebugLevel},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := New(tc.cfg, tc.verbose)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tc.want))
			if tc.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tc.want-1))
			}
		})
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud"}, false)
	assert.Error(t, err)
}
