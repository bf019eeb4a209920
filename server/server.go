// Package server runs the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// defaultShutdownTimeout bounds how long in-flight requests may take to drain.
const defaultShutdownTimeout = 30 * time.Second

// Manager handles the lifecycle of the fiber application: start, wait for a
// shutdown signal, drain, and stop.
type Manager struct {
	app             *fiber.App
	logger          *zap.Logger
	address         string
	shutdownTimeout time.Duration
}

// New creates a Manager. A nil logger is replaced with a no-op one so the
// lifecycle is nil-safe.
func New(app *fiber.App, logger *zap.Logger, address string) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Manager{
		app:             app,
		logger:          logger,
		address:         address,
		shutdownTimeout: defaultShutdownTimeout,
	}
}

// WithShutdownTimeout overrides the drain timeout.
func (m *Manager) WithShutdownTimeout(timeout time.Duration) *Manager {
	m.shutdownTimeout = timeout

	return m
}

// Run starts the listener and blocks until the context is canceled or a
// SIGINT/SIGTERM arrives, then shuts the server down gracefully.
func (m *Manager) Run(ctx context.Context) error {
	errs := make(chan error, 1)

	go func() {
		m.logger.Info("http server starting", zap.String("address", m.address))

		if err := m.app.Listen(m.address); err != nil {
			errs <- fmt.Errorf("http server: %w", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case err := <-errs:
		return err
	case sig := <-signals:
		m.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case <-ctx.Done():
		m.logger.Info("shutdown requested", zap.Error(ctx.Err()))
	}

	if err := m.app.ShutdownWithTimeout(m.shutdownTimeout); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	m.logger.Info("http server stopped")

	return nil
}
