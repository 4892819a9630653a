package utils

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("integer", isWholeNumber)

	return v
}

// maxSafeInteger is the largest integer a JSON number carries exactly.
const maxSafeInteger = 1<<53 - 1

// isWholeNumber accepts integer kinds and floats with no fractional part.
func isWholeNumber(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return f == math.Trunc(f) && math.Abs(f) <= maxSafeInteger
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// FieldError is one field-attributed validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidateStruct runs the struct's validate tags and returns the failures
// in field declaration order. A nil result means the struct is valid.
func ValidateStruct(data any) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var errors []FieldError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors = append(errors, FieldError{
				Field:   err.Field(),
				Code:    err.Tag(),
				Message: getErrorMessage(err),
			})
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "Required"
	case "min":
		switch err.Kind() {
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("Must contain at least %s element(s)", err.Param())
		case reflect.String:
			return fmt.Sprintf("Must contain at least %s character(s)", err.Param())
		}
		return fmt.Sprintf("Number must be greater than or equal to %s", err.Param())
	case "max":
		switch err.Kind() {
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("Must contain at most %s element(s)", err.Param())
		case reflect.String:
			return fmt.Sprintf("Must contain at most %s character(s)", err.Param())
		}
		return fmt.Sprintf("Number must be less than or equal to %s", err.Param())
	case "gt":
		return fmt.Sprintf("Number must be greater than %s", err.Param())
	case "integer":
		return "Expected integer, received float"
	case "url":
		return "Must be a valid URL"
	case "oneof":
		options := strings.Fields(err.Param())
		return fmt.Sprintf("Invalid enum value. Expected '%s'", strings.Join(options, "' | '"))
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors into a single string
func FormatValidationErrors(errors []FieldError) string {
	msgs := make([]string, 0, len(errors))
	for _, e := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(msgs, "; ")
}
