package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ledgerline/instruction-engine/settlement"
)

// Handler serves the payment-instruction endpoints.
type Handler struct {
	evaluator *settlement.Evaluator
	logger    *zap.Logger
	tracer    trace.Tracer
}

// NewHandler creates a Handler. A nil logger is replaced with a no-op one.
func NewHandler(evaluator *settlement.Evaluator, logger *zap.Logger, tracer trace.Tracer) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{evaluator: evaluator, logger: logger, tracer: tracer}
}

// EvaluateInstruction handles POST /v1/payment-instructions.
func (h *Handler) EvaluateInstruction(c *fiber.Ctx) error {
	_, span := h.tracer.Start(c.UserContext(), "api.evaluate_instruction")
	defer span.End()

	var req EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		span.SetAttributes(attribute.String("request.error", "body_parse"))

		return BadRequest(c, ValidationErrorResponse{
			Error:   true,
			Message: ErrBodyParseFailed.Error(),
		})
	}

	violations, err := ValidateRequest(&req)
	if err != nil {
		h.logger.Error("request validation could not run", zap.Error(err))

		return fiber.ErrInternalServerError
	}

	if len(violations) > 0 {
		span.SetAttributes(attribute.Int("request.violations", len(violations)))

		return BadRequest(c, ValidationErrorResponse{
			Error:   true,
			Message: "request validation failed",
			Body:    fiber.Map{"violations": violations},
		})
	}

	accounts := make([]settlement.Account, len(req.Accounts))
	for i, input := range req.Accounts {
		accounts[i] = settlement.Account{
			ID:       input.ID,
			Balance:  input.Balance,
			Currency: input.Currency,
		}
	}

	outcome, err := h.evaluator.EvaluateInstruction(accounts, req.Instruction)
	if err != nil {
		h.logger.Error("instruction evaluation failed", zap.Error(err))

		return fiber.ErrInternalServerError
	}

	span.SetAttributes(
		attribute.String("outcome.status", string(outcome.Status)),
		attribute.String("outcome.status_code", outcome.StatusCode),
	)

	h.logger.Info("instruction evaluated",
		zap.String("status", string(outcome.Status)),
		zap.String("status_code", outcome.StatusCode),
		zap.Int("accounts", len(req.Accounts)),
	)

	return RespondOutcome(c, outcome)
}

// Health handles GET /health.
func Health(c *fiber.Ctx) error {
	return OK(c, fiber.Map{"status": "healthy"})
}

// Version handles GET /version.
func Version(version string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return OK(c, fiber.Map{
			"version":     version,
			"requestDate": time.Now().UTC(),
		})
	}
}
