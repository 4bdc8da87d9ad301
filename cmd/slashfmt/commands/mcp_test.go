package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubMCPServer(t *testing.T, fn func(context.Context) error) {
	t.Helper()
	old := runMCPServer
	t.Cleanup(func() { runMCPServer = old })
	runMCPServer = fn
}

func TestHandleMCP(t *testing.T) {
	t.Run("runs server", func(t *testing.T) {
		called := false
		stubMCPServer(t, func(ctx context.Context) error {
			called = true
			assert.NotNil(t, ctx)
			return nil
		})
		assert.NoError(t, HandleMCP(nil))
		assert.True(t, called)
	})

	t.Run("cancellation is not an error", func(t *testing.T) {
		stubMCPServer(t, func(context.Context) error { return context.Canceled })
		assert.NoError(t, HandleMCP(nil))
	})

	t.Run("server error is wrapped", func(t *testing.T) {
		want := errors.New("transport closed")
		stubMCPServer(t, func(context.Context) error { return want })
		err := HandleMCP(nil)
		assert.ErrorIs(t, err, want)
		assert.Contains(t, err.Error(), "mcp server")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		stubMCPServer(t, func(context.Context) error {
			t.Fatal("server should not start")
			return nil
		})
		assert.Error(t, HandleMCP([]string{"extra"}))
	})
}
