package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	original := log
	log = zap.New(core)
	t.Cleanup(func() { log = original })

	ctx := WithFields(context.Background(), zap.String("request_id", "req-1"))
	ctx = WithFields(ctx, zap.String("wallet_address", "0xabc"))

	InfoCtx(ctx, "run submitted")
	ErrorCtx(ctx, errors.New("boom"))
	Warn("plain")

	entries := logs.All()
	require.Len(t, entries, 3)

	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "0xabc", fields["wallet_address"])

	assert.Equal(t, "boom", entries[1].Message)
	assert.Equal(t, "req-1", entries[1].ContextMap()["request_id"])

	assert.Empty(t, entries[2].ContextMap())
}

func TestInitialize(t *testing.T) {
	original := log
	t.Cleanup(func() { log = original })

	require.NoError(t, Initialize(Config{Debug: true, Service: "api"}))
	assert.NotNil(t, Default())
	Flush(0)
}
