package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	dev, err := New("development", "")
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zap.DebugLevel))

	prod, err := New("production", "")
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zap.DebugLevel))
	assert.True(t, prod.Core().Enabled(zap.InfoLevel))

	quiet, err := New("production", "warn")
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zap.InfoLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("production", "chatty")
	assert.Error(t, err)
}
