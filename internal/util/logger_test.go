package util

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContext(t *testing.T) {
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, scoped, LoggerFromContext(WithLogger(context.Background(), scoped)))
	assert.Same(t, GetLogger(), LoggerFromContext(context.Background()))
}
