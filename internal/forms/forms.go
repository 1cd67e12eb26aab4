// Package forms validates the storefront's customer-facing forms and maps
// failures to the messages shown next to each field.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to the message shown for it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

var messages = map[string]string{
	"name.required":    "Name is required",
	"name.max":         "Name must be less than 100 characters",
	"email.required":   "Invalid email address",
	"email.email":      "Invalid email address",
	"email.max":        "Email must be less than 255 characters",
	"phone.min":        "Phone number must be at least 10 digits",
	"phone.max":        "Phone number must be less than 15 digits",
	"address.required": "Address is required",
	"address.max":      "Address must be less than 500 characters",
	"instructions.max": "Instructions must be less than 1000 characters",
	"message.required": "Message is required",
	"message.max":      "Message must be less than 1000 characters",
	"password.min":     "Password must be at least 6 characters",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate.Struct: %w", err)
	}

	formType := reflect.TypeOf(form)

	fieldErrors := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		tag := lastFailingTag(formType, fe)
		msg, ok := messages[fe.Field()+"."+tag]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		fieldErrors[fe.Field()] = msg
	}
	return fieldErrors
}

// lastFailingTag runs every rule of the field, not just up to the first
// failure, and returns the last one that fails. A field breaking several
// rules reports the message of the later rule.
func lastFailingTag(formType reflect.Type, fe validator.FieldError) string {
	sf, ok := formType.FieldByName(fe.StructField())
	if !ok {
		return fe.Tag()
	}

	last := fe.Tag()
	for _, tag := range strings.Split(sf.Tag.Get("validate"), ",") {
		if tag == "" {
			continue
		}
		if err := validate.Var(fe.Value(), tag); err != nil {
			last, _, _ = strings.Cut(tag, "=")
		}
	}
	return last
}
