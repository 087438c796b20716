package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "score", Value: 0.85}, Float64("score", 0.85))
	assert.Equal(t, Field{Key: "ok", Value: true}, Bool("ok", true))
	assert.Equal(t, Field{Key: "d", Value: time.Second}, Duration("d", time.Second))
	assert.Equal(t, Field{Key: "error", Value: "<nil>"}, Err(nil))
	assert.Equal(t, Field{Key: "error", Value: "boom"}, Err(errors.New("boom")))
}

func TestZapLogger_EmitsFields(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	log := NewLoggerFromCore(core)

	log.Info("classified", String("intent", "RTI_REQUEST"), Float64("confidence", 0.92))

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "classified", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "RTI_REQUEST", ctx["intent"])
	assert.Equal(t, 0.92, ctx["confidence"])
}

func TestZapLogger_WithAndNamed(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	log := NewLoggerFromCore(core).Named("inference").With(String("request_id", "r1"))

	log.Warn("stage degraded")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "inference", entries[0].LoggerName)
	assert.Equal(t, "r1", entries[0].ContextMap()["request_id"])
}

func TestNewLogger_Defaults(t *testing.T) {
	log, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestSetDefault_IgnoresNil(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	SetDefault(nil)
	assert.Equal(t, prev, Default())

	nop := NewNopLogger()
	SetDefault(nop)
	assert.Equal(t, nop, Default())
}
