package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartokGyorgy07/webkert-insurance/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenStore_RedisBackendWithoutURL(t *testing.T) {
	cfg := config.Server{StoreBackend: "redis"}

	store, cleanup, err := openStore(context.Background(), cfg, discardLogger())
	require.Error(t, err)
	assert.Nil(t, store)
	assert.Nil(t, cleanup)
}

func TestOpenStore_DefaultsToMemory(t *testing.T) {
	cfg := config.Server{StoreBackend: "memory"}

	store, cleanup, err := openStore(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	require.NotNil(t, store)
	cleanup()
}
