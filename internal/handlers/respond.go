package handlers

import (
	"errors"

	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Error bodies are the bare message encoded as a JSON string, e.g.
// "name should not be empty", never an object.

func (h *ProductHandler) validationFailed(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		h.log.Error().Err(err).Msg("Error validating request")
		return operationFailed(c, err)
	}
	return c.Status(fiber.StatusBadRequest).JSON(verr.Error())
}

func operationFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(err.Error())
}

// ErrorHandler renders errors that escape a handler, such as fiber's own
// 404 and 405 errors or recovered panics, with the same bare-string body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(err.Error())
}
