// Package forms decodes and validates form-encoded payloads. Unlike an API
// binder that fails fast, Validate collects a message for every failing field
// so the whole list can be rendered back above the form.
package forms

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/DozzyMontalo/locallibrary/pkg/errcodes"
	"github.com/creasty/defaults"
	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Decoder binds form payloads to a struct, uses mold to clean up the values,
// and validator to check them.
type Decoder struct {
	form     *schema.Decoder
	conform  *mold.Transformer
	validate *validator.Validate
}

// NewDecoder initializes a Decoder with the field modifiers and validation
// functions registered.
func NewDecoder() *Decoder {
	form := schema.NewDecoder()
	form.SetAliasTag("form")
	form.IgnoreUnknownKeys(true)

	conform := modifiers.New()

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("date", dateValidator)

	return &Decoder{form, conform, validate}
}

// Decode populates dst from the request's form body (query string for GET
// requests), then applies mod tags and defaults. Validation is separate so
// callers can re-render the submitted values alongside the error messages.
func (d *Decoder) Decode(c echo.Context, dst interface{}) error {
	var err error
	if c.Request().Method == http.MethodGet {
		err = d.form.Decode(dst, c.QueryParams())
	} else {
		params, perr := c.FormParams()
		if perr != nil {
			return errcodes.MalformedPayload()
		}
		err = d.form.Decode(dst, params)
	}
	if err != nil {
		return errcodes.MalformedPayload()
	}

	if err := d.conform.Struct(c.Request().Context(), dst); err != nil {
		return errors.WithStack(err)
	}
	if err := defaults.Set(dst); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Validate checks every field of dst and returns one message per failing
// field, in struct declaration order. A field's `errormsg` tag overrides the
// generated message. A nil result means the payload is valid.
func (d *Decoder) Validate(dst interface{}) []string {
	err := d.validate.Struct(dst)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid input."}
	}

	typ := reflect.TypeOf(dst)
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	msgs := make([]string, 0, len(verrs))
	for _, ferr := range verrs {
		if fld, found := typ.FieldByName(ferr.StructField()); found {
			if msg := fld.Tag.Get("errormsg"); msg != "" {
				msgs = append(msgs, msg)
				continue
			}
		}
		msgs = append(msgs, formatValidationError(ferr))
	}
	return msgs
}

// ParseDate parses an optional YYYY-MM-DD form value. The empty string maps
// to nil so the schema layer can apply its own default.
func ParseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
