package utils

import "github.com/gofiber/fiber/v2"

// Envelope is the single response shape every endpoint returns.
type Envelope struct {
	OK      bool        `json:"ok"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Success sends a success envelope.
func Success(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(Envelope{
		OK:      true,
		Data:    data,
		Message: message,
	})
}

// Error sends a failure envelope.
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(Envelope{
		OK:      false,
		Message: message,
	})
}
