package validator

import (
	"fmt"
	"strings"

	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo's Validator interface.
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate runs struct validation and converts failures into a validation
// error carrying one human-readable detail per offending field.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			violations := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				violations = append(violations, fieldName(fe)+" "+fieldMessage(fe))
			}
			return domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, "; "))
		}
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "contains":
		return fmt.Sprintf("must contain %q", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
