package testutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/internal/testutil"
)

func TestMockLogger(t *testing.T) {
	logger := testutil.NewMockLogger()

	logger.Info("test info", logging.String("key", "value"))

	messages := logger.Messages()
	assert.Len(t, messages, 1)
	assert.Equal(t, "info", messages[0].Level)
	assert.Equal(t, "test info", messages[0].Message)
	assert.Equal(t, "value", logger.FieldValue("test info", "key"))

	logger.Clear()
	assert.Len(t, logger.Messages(), 0)

	logger.Error("test error")
	assert.True(t, logger.HasMessage("error", "test error"))
	assert.False(t, logger.HasMessage("info", "test info"))
}

func TestMockLoggerNamedSharesBuffer(t *testing.T) {
	logger := testutil.NewMockLogger()
	child := logger.Named("http").Named("infer")

	child.Warn("degraded")

	assert.True(t, logger.HasMessage("warn", "degraded"))
	messages := logger.Messages()
	assert.Equal(t, "http.infer", messages[0].Name)
}
