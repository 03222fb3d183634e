package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	date     = "date"
	mx       = "max"
	mn       = "min"
	oneof    = "oneof"
	required = "required"
)

func formatValidationError(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case date:
		return fmt.Sprintf("%q should be in the format of YYYY-MM-DD", field)
	case mx:
		resource := "character"
		if err.Param() != "1" {
			resource += "s"
		}
		return fmt.Sprintf("%q length must be less than or equal to %s %s", field, err.Param(), resource)
	case mn:
		resource := "character"
		if err.Param() != "1" {
			resource += "s"
		}
		return fmt.Sprintf("%q length must be greater than or equal to %s %s", field, err.Param(), resource)
	case oneof:
		valids := []string{}
		for _, p := range strings.Fields(err.Param()) {
			valids = append(valids, fmt.Sprintf("%q", p))
		}
		return fmt.Sprintf("%q must be one of the following: %s", field, strings.Join(valids, ", "))
	case required:
		return fmt.Sprintf("%q is required", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
