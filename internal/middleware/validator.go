package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Hshshshsh454/Highway-delight/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator plugs go-playground/validator into echo's c.Validate.
type Validator struct {
	validate *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	if v == nil {
		v = validator.New()
	}
	return &Validator{validate: v}
}

func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return echo.NewHTTPError(http.StatusBadRequest, dto.ErrorResponse{
			Message: fmt.Sprintf("invalid %s", fe.Field()),
			Field:   fe.Field(),
		})
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
