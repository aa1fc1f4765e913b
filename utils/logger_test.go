package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerFromContext(t *testing.T) {
	fallback := zap.NewNop()
	scoped := zap.NewExample()

	assert.Same(t, fallback, LoggerFromContext(context.Background(), fallback))
	assert.Same(t, scoped, LoggerFromContext(WithLogger(context.Background(), scoped), fallback))
	assert.NotNil(t, LoggerFromContext(context.Background(), nil))
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := NewLogger("debug", format)
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.DebugLevel))
	}

	l, err := NewLogger("warn", "json")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
}
