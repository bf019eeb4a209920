package server

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	manager := New(fiber.New(), nil, ":0")

	require.NotNil(t, manager.logger, "nil logger is replaced")
	assert.Equal(t, defaultShutdownTimeout, manager.shutdownTimeout)
}

func TestWithShutdownTimeout(t *testing.T) {
	t.Parallel()

	manager := New(fiber.New(), nil, ":0").WithShutdownTimeout(time.Second)

	assert.Equal(t, time.Second, manager.shutdownTimeout)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	manager := New(app, nil, "127.0.0.1:0").WithShutdownTimeout(time.Second)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- manager.Run(ctx)
	}()

	// Give the listener a moment to come up before asking it to stop.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
