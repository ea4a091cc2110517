package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  []any  `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes a {message} failure body. Validator errors are
// expanded into an errors array; 5xx responses never carry internals.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Status:  "error",
		Message: message,
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			res.Errors = append(res.Errors, fiber.Map{
				"field": fieldErr.Field(),
				"rule":  fieldErr.Tag(),
			})
		}
	} else if err != nil && status < fiber.StatusInternalServerError {
		res.Errors = append(res.Errors, err.Error())
	}

	return c.Status(status).JSON(res)
}
