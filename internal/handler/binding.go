package handler

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/LucasLevingston/AneisDePoder/internal/errs"

	"github.com/go-playground/validator/v10"
)

// bindingError converts a gin binding failure into the 400 "Invalid input"
// shape with a field -> messages map. Malformed JSON that never reaches the
// validator yields the same message with no field map.
func bindingError(err error) *errs.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.Validation(nil)
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		name := jsonFieldName(fe.Field())
		fields[name] = append(fields[name], fieldMessage(fe))
	}
	return errs.Validation(fields)
}

// jsonFieldName lowercases the first rune so struct field names line up with
// their json tags (Name -> name, ForgedBy -> forgedBy).
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "max":
		return fmt.Sprintf("Must be less than %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "uuid":
		return "Must be a valid UUID"
	case "url":
		return "Must be a valid URL"
	case "email":
		return "Must be a valid email"
	default:
		return "Invalid value"
	}
}
