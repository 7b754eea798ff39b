package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shelterworks/shelter-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Schema violations are
// returned as a single *domain.ValidationError listing every failed field,
// so the request is rejected whole before any handler logic runs.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			violations := make([]domain.FieldViolation, 0, len(ve))
			for _, fe := range ve {
				violations = append(violations, fieldViolation(fe))
			}
			return domain.NewValidationError(violations...)
		}
		return err
	}
	return nil
}

// fieldViolation converts a single ValidationError into the taxonomy's
// {field, message, rule} shape.
func fieldViolation(fe validator.FieldError) domain.FieldViolation {
	field := strings.ToLower(fe.Field())
	return domain.FieldViolation{
		Field:   field,
		Message: fieldMessage(field, fe),
		Rule:    fe.Tag(),
	}
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
