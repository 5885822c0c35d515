package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	_ = validate.RegisterValidation("latitude", validateLatitude)
	_ = validate.RegisterValidation("longitude", validateLongitude)
}

// jsonFieldName makes violations report wire names instead of Go names.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

func validateLatitude(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90 && lat <= 90
}

func validateLongitude(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180 && lng <= 180
}

// Validate checks s against its struct tags and reports every violated
// field in a single *ValidationError. Checking is exhaustive: all
// fields are inspected before the error is built.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return err
	}
	ve := &ValidationError{Violations: make([]FieldViolation, 0, len(ferrs))}
	for _, fe := range ferrs {
		ve.Violations = append(ve.Violations, FieldViolation{
			Field:   fe.Field(),
			Kind:    kindForTag(fe.Tag()),
			Message: messageFor(fe),
		})
	}
	return ve
}

func kindForTag(tag string) ViolationKind {
	switch tag {
	case "latitude", "longitude", "gte", "lte", "gt", "lt", "min", "max":
		return OutOfRange
	case "oneof":
		return InvalidEnum
	case "required", "required_without", "required_with":
		return MissingRequired
	default:
		return WrongType
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "latitude":
		return fmt.Sprintf("latitude %v is outside [-90, 90]", fe.Value())
	case "longitude":
		return fmt.Sprintf("longitude %v is outside [-180, 180]", fe.Value())
	case "oneof":
		return fmt.Sprintf("%v is not one of: %s", fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "required":
		return "required field is missing"
	case "required_without":
		return fmt.Sprintf("required when %s is not set", camelToSnake(fe.Param()))
	case "gte":
		return fmt.Sprintf("%v is below the minimum %s", fe.Value(), fe.Param())
	case "lte":
		return fmt.Sprintf("%v is above the maximum %s", fe.Value(), fe.Param())
	case "lt":
		return fmt.Sprintf("%v must be below %s", fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

// camelToSnake turns a referenced struct field name (for example
// CategoryName) into its wire form for error messages.
func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
