package handlers

import (
	"errors"
	"fmt"
	"log"

	"potato/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError writes err as {"code", "message"} with the status of its
// application error, or 500 for anything else.
func respondError(c *fiber.Ctx, err error) error {
	appErr := apperrors.From(err)
	if appErr.Code == apperrors.InternalServerError {
		log.Printf("Unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(appErr.Status).JSON(fiber.Map{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// respondValidationError reports every failed field of a validator error.
func respondValidationError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return respondError(c, apperrors.ErrInvalidRequest.Wrap(err))
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    apperrors.InvalidRequest,
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
