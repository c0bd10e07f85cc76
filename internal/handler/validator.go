package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RPSLS_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator builds the shared validator. Later calls are no-ops.
func InitValidator() {
	validateOnce.Do(func() { validate = newValidator() })
}

func newValidator() *Validator {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("gesture", validateGesture)
	_ = v.RegisterValidation("result", validateResult)

	return &Validator{validate: v}
}

// GetValidator returns the shared validator, building it on first use
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "gesture":
			errs[field] = "Must be one of: rock, paper, scissors, lizard, spock"
		case "result":
			errs[field] = "Must be one of: win, lose, tie"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateGesture accepts gesture names, case-insensitive
func validateGesture(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if name == "" {
		return true
	}
	_, err := domain.ParseGesture(name)
	return err == nil
}

// validateResult accepts win, lose and tie, case-insensitive
func validateResult(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := domain.ParsePerspective(strings.ToLower(value))
	return err == nil
}
