package validation

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator so handlers share one instance.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FormatErrors flattens validation failures into a field → message map
// suitable for a JSON error payload.
func (v *Validator) FormatErrors(err error) map[string]string {
	out := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out[field] = field + " is required"
		case "datetime":
			out[field] = field + " must match format " + e.Param()
		case "oneof":
			out[field] = field + " must be one of " + e.Param()
		case "gt":
			out[field] = field + " must be greater than " + e.Param()
		case "gte":
			out[field] = field + " must be greater than or equal to " + e.Param()
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}
