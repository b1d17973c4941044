package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ssargent/wondercard/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Logging
		want zapcore.Level
	}{
		{"console debug", config.Logging{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"json warn", config.Logging{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{"unknown level", config.Logging{Level: "chatty"}, zapcore.InfoLevel},
		{"empty", config.Logging{}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}
