package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ledgerline/instruction-engine/settlement"
)

// OutcomeResponse is the envelope wrapping an evaluated Outcome.
type OutcomeResponse struct {
	Status  settlement.Status  `json:"status"`
	Message string             `json:"message"`
	Data    settlement.Outcome `json:"data"`
}

// ValidationErrorResponse is the envelope for structural request failures,
// echoing the offending body back to the caller.
type ValidationErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Body    any    `json:"body,omitempty"`
}

// OK sends an HTTP 200 OK response with a custom body.
func OK(c *fiber.Ctx, s any) error {
	return c.Status(fiber.StatusOK).JSON(s)
}

// BadRequest sends an HTTP 400 Bad Request response with a custom body.
func BadRequest(c *fiber.Ctx, s any) error {
	return c.Status(fiber.StatusBadRequest).JSON(s)
}

// RespondOutcome maps an Outcome onto the wire envelope: failed outcomes are
// 400s, pending and successful outcomes are 200s.
func RespondOutcome(c *fiber.Ctx, outcome settlement.Outcome) error {
	response := OutcomeResponse{
		Status:  outcome.Status,
		Message: outcomeMessage(outcome.Status),
		Data:    outcome,
	}

	if outcome.Status == settlement.StatusFailed {
		return BadRequest(c, response)
	}

	return OK(c, response)
}

func outcomeMessage(status settlement.Status) string {
	switch status {
	case settlement.StatusSuccessful:
		return "Transaction executed successfully"
	case settlement.StatusPending:
		return "Transaction scheduled"
	default:
		return "Transaction failed"
	}
}
