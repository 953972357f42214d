package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const validationMessage = "Data input tidak valid."

func formatFieldName(s string) string {
	// 1. Ganti underscore dengan spasi (scan_date -> scan date)
	s = strings.ReplaceAll(s, "_", " ")

	// 2. Ubah jadi Title Case (scan date -> Scan Date)
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, e.Param())
	case "numeric":
		return fmt.Sprintf("%s must be numeric", name)
	case "datetime":
		return fmt.Sprintf("%s must match format %s", name, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

// FieldErrors flattens validator errors into {json_field: [messages]}.
func FieldErrors(err error) map[string][]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = append(out[e.Field()], fieldMessage(e))
	}
	return out
}

// MapValidationError turns a binding error into a VALIDATION_ERROR with
// per-field details. Binding errors that are not validator errors (bad JSON,
// wrong types) still yield VALIDATION_ERROR, with the raw message as details.
func MapValidationError(err error) error {
	if fields := FieldErrors(err); fields != nil {
		return New(CodeValidation, validationMessage, http.StatusBadRequest).WithDetails(fields)
	}

	return New(CodeValidation, validationMessage, http.StatusBadRequest).WithDetails(err.Error())
}

// FieldError builds a VALIDATION_ERROR for a single field checked outside the validator.
func FieldError(field, message string) *AppError {
	return New(CodeValidation, validationMessage, http.StatusBadRequest).
		WithDetails(map[string][]string{field: {message}})
}
