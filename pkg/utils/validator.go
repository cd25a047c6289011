package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"artliving/internal/data/entity"

	"github.com/go-playground/validator/v10"
)

// Messages maps a JSON field name to per-rule error messages.
type Messages map[string]map[string]string

var phonePattern = regexp.MustCompile(`^0\d{1,2}-?\d{7}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names, the names the forms use.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return jsonName(fld)
	})

	v.RegisterValidation("il_phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("product_category", func(fl validator.FieldLevel) bool {
		return entity.IsCategory(fl.Field().String())
	})

	return v
}

// ValidateStruct runs every rule of the schema and returns field -> message.
func ValidateStruct(data any, messages Messages) map[string]string {
	return collect(validate.Struct(data), messages)
}

// ValidateField runs the rules of a single field, the on-blur check.
// Unknown fields validate clean.
func ValidateField(data any, field string, messages Messages) map[string]string {
	name, ok := structFieldName(data, field)
	if !ok {
		return nil
	}
	return collect(validate.StructPartial(data, name), messages)
}

func collect(err error, messages Messages) map[string]string {
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			if _, seen := errors[err.Field()]; seen {
				continue
			}
			errors[err.Field()] = messageFor(err, messages)
		}
	}

	return errors
}

func messageFor(err validator.FieldError, messages Messages) string {
	if rules, ok := messages[err.Field()]; ok {
		if msg, ok := rules[err.Tag()]; ok {
			return msg
		}
	}
	return getErrorMessage(err)
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", err.Param())
	case "eqfield":
		return fmt.Sprintf("Must match %s", err.Param())
	case "url":
		return "Invalid URL"
	case "il_phone":
		return "Invalid phone number"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var msgs []string
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// structFieldName maps a JSON field name to the Go field name StructPartial expects.
func structFieldName(data any, field string) (string, bool) {
	t := reflect.TypeOf(data)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", false
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if jsonName(f) == field {
			return f.Name, true
		}
	}
	return "", false
}
