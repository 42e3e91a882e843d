// Package response holds the envelope every handler renders: a status,
// a message on error and a per-field message map on validation failure.
package response

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status  string              `json:"status"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{Status: StatusOK}
}

func Error(msg string) Response {
	return Response{
		Status:  StatusError,
		Message: msg,
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	fields := make(map[string][]string, len(errs))

	for _, err := range errs {
		field := snakeCase(err.Field())

		var msg string
		switch err.Tag() {
		case "required":
			msg = fmt.Sprintf("field %s is a required field", field)
		case "email":
			msg = fmt.Sprintf("field %s is not a valid email", field)
		case "gtfield":
			msg = fmt.Sprintf("field %s must be after field %s", field, snakeCase(err.Param()))
		case "min":
			msg = fmt.Sprintf("field %s must be at least %s", field, err.Param())
		case "max":
			msg = fmt.Sprintf("field %s must be at most %s", field, err.Param())
		default:
			msg = fmt.Sprintf("field %s is not valid", field)
		}

		fields[field] = append(fields[field], msg)
	}

	return Response{
		Status:  StatusError,
		Message: "validation failed",
		Errors:  fields,
	}
}

func snakeCase(s string) string {
	var b strings.Builder

	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}
