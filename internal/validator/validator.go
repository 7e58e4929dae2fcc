// Package validator wires custom validation rules into gin's binding engine
// and translates binding failures into field-level error lists.
package validator

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"travely/pkg/response"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// hhmmRegex matches 24-hour clock times like "09:00" or "23:59".
var hhmmRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// userTypes is the fixed enumeration of account types.
var userTypes = map[string]struct{}{
	"traveler":         {},
	"hotel-owner":      {},
	"vehicle-owner":    {},
	"restaurant-owner": {},
	"tour-guide":       {},
	"event-organizer":  {},
}

// validateHHMM validates that a string is a 24-hour HH:MM time.
func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmRegex.MatchString(fl.Field().String())
}

// validateUserType validates that a string is a known account type.
func validateUserType(fl validator.FieldLevel) bool {
	_, ok := userTypes[fl.Field().String()]
	return ok
}

// validateFloatMin validates that a string parses as a number not below the
// tag parameter. Numeric form values arrive as strings; validating them here
// keeps a non-numeric value in the field error list instead of failing the
// whole bind.
func validateFloatMin(fl validator.FieldLevel) bool {
	v, err := strconv.ParseFloat(fl.Field().String(), 64)
	if err != nil {
		return false
	}
	min, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil {
		return false
	}
	return v >= min
}

// validateIntMin validates that a string parses as an integer not below the
// tag parameter.
func validateIntMin(fl validator.FieldLevel) bool {
	v, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return false
	}
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return v >= min
}

// validateIntMax validates that an integer string does not exceed the tag
// parameter. Unparseable values pass here so the parse failure is reported
// once, by intmin.
func validateIntMax(fl validator.FieldLevel) bool {
	v, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return true
	}
	max, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return v <= max
}

// RegisterCustomValidators registers all custom validators with gin's
// validator and makes reported field names match the wire names.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("hhmm", validateHHMM)
	_ = v.RegisterValidation("usertype", validateUserType)
	_ = v.RegisterValidation("floatmin", validateFloatMin)
	_ = v.RegisterValidation("intmin", validateIntMin)
	_ = v.RegisterValidation("intmax", validateIntMax)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := tagName(fld.Tag.Get("form")); name != "" {
			return name
		}
		if name := tagName(fld.Tag.Get("json")); name != "" {
			return name
		}
		return fld.Name
	})
}

// tagName extracts the wire name from a struct tag value.
func tagName(tag string) string {
	name := strings.SplitN(tag, ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Translate converts a binding error into the ordered list of field-level
// failures. Every failing rule is reported, not just the first.
func Translate(err error) []response.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Type-mapping failures (e.g. a non-numeric value in a numeric
		// field) arrive as plain errors without field context.
		return []response.FieldError{{Field: "", Message: "invalid request payload"}}
	}

	out := make([]response.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, response.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

// message renders a human-readable message for a failed rule.
func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("%s must be a positive integer and cannot exceed %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be a non-negative number.", field)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters.", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits.", field)
	case "datetime":
		return fmt.Sprintf("%s must be a valid date.", field)
	case "hhmm":
		return fmt.Sprintf("%s must be a time in HH:MM format.", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, fe.Param())
	case "usertype":
		return fmt.Sprintf("%s must be a valid account type.", field)
	case "floatmin":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must be a non-negative number.", field)
		}
		return fmt.Sprintf("%s must be a number of at least %s.", field, fe.Param())
	case "intmin":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must be a non-negative integer.", field)
		}
		return fmt.Sprintf("%s must be a positive integer.", field)
	case "intmax":
		return fmt.Sprintf("%s must be a positive integer and cannot exceed %s.", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}

// SanitizeText trims surrounding whitespace and escapes HTML metacharacters
// so stored free text cannot carry markup back into a web view.
func SanitizeText(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
