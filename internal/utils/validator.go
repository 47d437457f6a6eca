// internal/utils/validator.go
package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var phonePattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone", validatePhone)
	validate.RegisterValidation("variant_attr", validateVariantAttr)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validatePhone accepts local or international numbers; spaces and dashes are ignored.
func validatePhone(fl validator.FieldLevel) bool {
	phone := strings.NewReplacer(" ", "", "-", "").Replace(fl.Field().String())
	return phonePattern.MatchString(phone)
}

// validateVariantAttr accepts an attribute name or a comma separated value list. ':' is reserved
// by variant keys and at least one non-blank entry is required.
func validateVariantAttr(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if strings.Contains(value, ":") {
		return false
	}
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) != "" {
			return true
		}
	}
	return false
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt", "gte":
		return e.Field() + " must be greater than " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "phone":
		return "Phone number must have 9 to 15 digits"
	case "variant_attr":
		return e.Field() + " must not be blank or contain ':'"
	default:
		return e.Field() + " is invalid"
	}
}
