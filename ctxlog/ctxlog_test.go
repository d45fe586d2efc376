package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	require.Same(t, slog.Default(), FromContext(context.Background()))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "json", "debug")
	require.NoError(t, err)
	logger.Debug("solve", "nodes", 3)
	require.Contains(t, buf.String(), `"nodes":3`)

	buf.Reset()
	logger, err = New(&buf, "text", "warn")
	require.NoError(t, err)
	logger.Info("hidden")
	require.Empty(t, buf.String())

	_, err = New(&buf, "xml", "info")
	require.Error(t, err)
	_, err = New(&buf, "text", "loud")
	require.Error(t, err)
}
