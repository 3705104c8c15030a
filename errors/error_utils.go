package errors

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// ValidationError describes table properties that failed validation, one translated message per field.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, " ")
}

// TranslateValidatorError takes an error from the go-playground validator (internally just a map of errors) and
// converts it into a ValidationError holding user friendly messages in field order.
func TranslateValidatorError(err error, trans ut.Translator) error {
	switch err.(type) {
	case validator.ValidationErrors:
		fieldErrors := err.(validator.ValidationErrors)
		vals := make([]string, 0, len(fieldErrors))

		for _, fe := range fieldErrors {
			vals = append(vals, fe.Translate(trans))
		}

		return &ValidationError{Fields: vals}
	default:
		return err
	}
}
