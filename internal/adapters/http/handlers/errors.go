package handlers

import (
	"errors"
	"fmt"
	"log"

	"vetclinic-api/internal/core/domain"
	"vetclinic-api/internal/pkg/response"
	"vetclinic-api/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

const unexpectedError = "An unexpected error occurred."

// handleServiceError maps domain error kinds to HTTP status codes
func handleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, domain.Message(err, "Resource not found"))
	case errors.Is(err, domain.ErrInvalidOperation):
		return response.BadRequest(c, domain.Message(err, "Invalid operation"))
	case errors.Is(err, domain.ErrUnauthorized):
		return response.Unauthorized(c, domain.Message(err, "Unauthorized"))
	default:
		log.Printf("❌ %s %s failed [trace %s]: %v", c.Method(), c.Path(), response.TraceID(c), err)
		return response.InternalServerError(c, unexpectedError)
	}
}

// parseID reads a positive numeric route parameter
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("Invalid %s", name)
	}
	return uint(id), nil
}

// bind parses the JSON body into out and validates it
func bind(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errors.New("Invalid request body")
	}
	return validator.Struct(out)
}
