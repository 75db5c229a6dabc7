package http

import (
	"github.com/go-playground/validator/v10"

	"github.com/grantreports/core/internal/application/services"
	"github.com/grantreports/core/internal/domain/entities"
)

// CustomValidator adapts validator/v10 to echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the request validator with the domain tags registered:
// "ggis" for GGIS reference numbers and "questiontype" for question types.
func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("ggis", func(fl validator.FieldLevel) bool {
		return services.ValidateGgisNumber(fl.Field().String())
	})
	_ = v.RegisterValidation("questiontype", func(fl validator.FieldLevel) bool {
		return entities.QuestionType(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validator: v}
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
