package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrorMessage converts a gin binding error into user-facing,
// per-field messages joined with "; ". Non-validator errors (malformed
// JSON and friends) collapse into a generic message.
func BindingErrorMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "the request body is malformed"
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldErrorMessage(fieldError))
	}
	return strings.Join(messages, "; ")
}

// fieldErrorMessage returns a user-friendly message for one field error.
func fieldErrorMessage(fe validator.FieldError) string {
	field := jsonFieldName(fe)
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, lowerFirst(param))
	case "nefield":
		return fmt.Sprintf("%s must be different from %s", field, lowerFirst(param))
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}

// jsonFieldName prefers the struct field's json name over its Go name.
// Gin's validator is not configured with a tag-name func, so fe.Field()
// reports the exported Go name; requests use camelCase json keys.
func jsonFieldName(fe validator.FieldError) string {
	return lowerFirst(fe.Field())
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
