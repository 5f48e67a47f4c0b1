package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSlogManager_Handle_Success tests that records fan out to all handlers.
func TestSlogManager_Handle_Success(t *testing.T) {
	t.Parallel()

	var bufA, bufB bytes.Buffer

	manager := NewSlogManager()
	manager.AddHandler("a", slog.NewTextHandler(&bufA, nil))
	manager.AddHandler("b", slog.NewTextHandler(&bufB, nil))

	logger := slog.New(manager)
	logger.Info("scan started")

	assert.Contains(t, bufA.String(), "scan started")
	assert.Contains(t, bufB.String(), "scan started")
}

// TestSlogManager_Enabled_NoHandlers tests that a manager without handlers
// reports itself as disabled.
func TestSlogManager_Enabled_NoHandlers(t *testing.T) {
	t.Parallel()

	manager := NewSlogManager()

	assert.False(t, manager.Enabled(t.Context(), slog.LevelError))
}

// TestSlogManager_SwapHandler_Success tests that swapping handlers redirects
// subsequent records without affecting already written ones.
func TestSlogManager_SwapHandler_Success(t *testing.T) {
	t.Parallel()

	var bufOld, bufNew bytes.Buffer

	manager := NewSlogManager()
	manager.AddHandler("terminal", slog.NewTextHandler(&bufOld, nil))

	logger := slog.New(manager)
	logger.Info("before swap")

	manager.SwapHandler("terminal", "ui", slog.NewTextHandler(&bufNew, nil))
	logger.Info("after swap")

	require.Contains(t, bufOld.String(), "before swap")
	assert.NotContains(t, bufOld.String(), "after swap")
	assert.Contains(t, bufNew.String(), "after swap")
	assert.NotContains(t, bufNew.String(), "before swap")
}

// TestSlogManager_WithAttrs_LateHandler tests that handlers added after
// WithAttrs still carry the accumulated attributes.
func TestSlogManager_WithAttrs_LateHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	manager := NewSlogManager()

	withAttrs, ok := manager.WithAttrs([]slog.Attr{slog.String("scan", "tree")}).(*SlogManager)
	require.True(t, ok)

	withAttrs.AddHandler("late", slog.NewTextHandler(&buf, nil))
	slog.New(withAttrs).Info("probing")

	assert.Contains(t, buf.String(), "scan=tree")
	assert.Contains(t, buf.String(), "probing")
}
