package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTickID(ctx))

	ctx = WithTickID(ctx, "tick-1")
	assert.Equal(t, "tick-1", GetTickID(ctx))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("tick_id", "tick-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
