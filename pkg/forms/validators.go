package forms

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// dateValidator ensures the value is a real calendar date in the format
// YYYY-MM-DD or the empty string. Parsing with the reference layout rejects
// impossible dates like 2026-02-31. The empty string is allowed because
// optional date fields submit as empty; combine with `required` when the
// date must be present.
func dateValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
