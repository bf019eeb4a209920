package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ledgerline/instruction-engine/settlement"
)

// Config carries the app-level settings the transport needs.
type Config struct {
	ServiceName string
	Version     string
}

// NewApp assembles the fiber application: middleware chain, routes, and the
// payment-instruction handler.
func NewApp(cfg Config, evaluator *settlement.Evaluator, logger *zap.Logger, tracer trace.Tracer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.ServiceName,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(WithRequestID())
	app.Use(WithLogging(logger))

	app.Get("/health", Health)
	app.Get("/version", Version(cfg.Version))

	handler := NewHandler(evaluator, logger, tracer)
	app.Post("/v1/payment-instructions", handler.EvaluateInstruction)

	return app
}
