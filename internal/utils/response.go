package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the error body shape the public site consumes.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendJSON writes the payload as-is with a 200 status.
func SendJSON(c *fiber.Ctx, payload interface{}) error {
	return SendJSONWithStatus(c, fiber.StatusOK, payload)
}

// SendJSONWithStatus writes the payload as-is using the provided HTTP status code.
func SendJSONWithStatus(c *fiber.Ctx, status int, payload interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(payload)
}

// SendError writes an error body with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}
