package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	MinCalendarYear = 1
	MaxCalendarYear = 9999
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("calendar_year", validateCalendarYear)
	_ = v.RegisterValidation("calendar_month", validateCalendarMonth)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct and returns field name -> message for every failing field
func (v *Validator) Struct(s interface{}) (map[string]string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors[fe.Field()] = FormatFieldError(fe)
	}
	return fieldErrors, nil
}

// validateCalendarYear accepts the years representable as four-digit Gregorian years
func validateCalendarYear(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		year := fl.Field().Int()
		return year >= MinCalendarYear && year <= MaxCalendarYear
	default:
		return false
	}
}

func validateCalendarMonth(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		month := fl.Field().Int()
		return month >= 1 && month <= 12
	default:
		return false
	}
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "numeric":
		return "must be a valid number"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "calendar_year":
		return fmt.Sprintf("must be a year between %d and %d, got %v", MinCalendarYear, MaxCalendarYear, fe.Value())
	case "calendar_month":
		return fmt.Sprintf("must be a month between 1 and 12, got %v", fe.Value())
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
