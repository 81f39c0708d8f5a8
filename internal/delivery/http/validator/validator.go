// Package validator wires go-playground/validator into Echo.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps go-playground/validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

// Validate validates the given struct and converts failures into an
// echo.HTTPError so the error handler renders them as 400s.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
