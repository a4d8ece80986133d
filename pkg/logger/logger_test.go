package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew_ProductionLevel(t *testing.T) {
	log := New("production")
	defer log.Sync()

	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_DevelopmentLevel(t *testing.T) {
	log := New("development")
	defer log.Sync()

	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
