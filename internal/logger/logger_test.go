package logger

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "valid production environment",
			config: &LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Env:            "prod",
				Level:          "info",
				TimeField:      "timestamp",
				TimeFormat:     "unix",
				Fields:         map[string]interface{}{"key": "value"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "invalid configuration - wrong env",
			config: &LoggerConfig{
				ServiceName: "bad-service",
				Env:         "wrong-env", // not allowed by validator
				Level:       "debug",
			},
			expectError: true,
		},
		{
			name: "invalid log level",
			config: &LoggerConfig{
				ServiceName: "test-service",
				Env:         "prod",
				Level:       "invalid-level",
			},
			expectError: true,
		},
		{
			name: "invalid time format",
			config: &LoggerConfig{
				Env:        "prod",
				TimeFormat: "iso",
			},
			expectError: true,
		},
		{
			name: "valid staging environment",
			config: &LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "2.0.0",
				Env:            "staging",
				Level:          "warn",
				Stacktrace:     true,
			},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name: "valid development environment without debug",
			config: &LoggerConfig{
				Env:   "dev",
				Level: "info",
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "production defaults",
			config: &LoggerConfig{
				Level: "error",
			},
			wantLevel: zerolog.ErrorLevel,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l, err := New(test.config)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantLevel, zerolog.GlobalLevel())
			assert.Equal(t, test.wantLevel, l.GetLevel())
		})
	}
}

func TestNew_DefaultsFilled(t *testing.T) {
	cfg := &LoggerConfig{}
	_, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stdout", cfg.OutputTarget)
	assert.Equal(t, "cricket-records-service", cfg.ServiceName)
	assert.Equal(t, "rfc3339nano", cfg.TimeFormat)
	assert.True(t, cfg.Stacktrace)
	assert.NotNil(t, cfg.Fields)
}

func TestNew_DebugLogFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := New(&LoggerConfig{
		ServiceName: "integration-test",
		Env:         "dev",
		Level:       "debug",
	})
	require.NoError(t, err)

	_, statErr := os.Stat(DebugLogPath)
	assert.NoError(t, statErr)
}
