package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"Warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"verbose", zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestGetLogFormat(t *testing.T) {
	t.Setenv("LOGGING_FORMAT", "json")
	assert.Equal(t, FormatJSON, getLogFormat(FormatConsole))

	t.Setenv("LOGGING_FORMAT", "fancy")
	assert.Equal(t, FormatConsole, getLogFormat(FormatConsole))
}

func TestNew_RespectsLevel(t *testing.T) {
	l := New("error", FormatJSON)

	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestFor_NamesComponent(t *testing.T) {
	s := For(ComponentLinter)
	assert.NotNil(t, s)
	assert.Same(t, GetLogger(), GetLogger())
}
