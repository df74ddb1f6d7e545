package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries field level failures from request binding so the
// error middleware can render them as a 400 with details.
type ValidationError struct {
	errs validator.ValidationErrors
}

func (v *ValidationError) Error() string {
	return v.errs.Error()
}

func (v *ValidationError) ToErrorDetails() []ErrorDetail {
	details := make([]ErrorDetail, 0, len(v.errs))
	for _, fieldErr := range v.errs {
		details = append(details, ErrorDetail{
			Field:   strings.ToLower(fieldErr.Field()),
			Message: fmt.Sprintf("failed on the '%s' rule", fieldErr.Tag()),
		})
	}
	return details
}

// ValidateStruct checks validate tags on a request DTO and wraps failures
// in a ValidationError.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		return &ValidationError{errs: verrs}
	}
	return err
}
