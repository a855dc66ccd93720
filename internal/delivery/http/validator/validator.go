// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps a validator instance for Echo.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the Echo request validator.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct against its validate tags.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
