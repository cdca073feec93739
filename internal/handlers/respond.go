package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/fieldserve/technician-marketplace/internal/workflow"
)

// respondWorkflowError maps engine error kinds onto HTTP codes.
// Anything that is not a workflow error is a storage failure.
func respondWorkflowError(c *fiber.Ctx, err error) error {
	var wErr *workflow.Error
	if errors.As(err, &wErr) {
		status := 500
		switch wErr.Kind {
		case workflow.KindNotFound:
			status = 404
		case workflow.KindConflict:
			status = 409
		case workflow.KindInvalidState, workflow.KindValidation:
			status = 400
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": wErr.Message,
		})
	}

	log.Println("storage error:", err)
	return c.Status(500).JSON(fiber.Map{
		"success": false,
		"message": "Internal server error",
	})
}
