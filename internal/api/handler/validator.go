package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single violation as rendered to clients.
type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// ValidationErrors holds every violation of a request, in struct field order.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field labels come from the json tag, falling back to the form tag.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. It collects all violations
// and returns them as ValidationErrors.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	if formatted := FormatValidationErrors(err); formatted != nil {
		return formatted
	}
	return err
}

// FormatValidationErrors converts a validator failure into ValidationErrors
// of the same length and order. Already formatted errors are returned as is;
// any other error yields nil.
func FormatValidationErrors(err error) ValidationErrors {
	var formatted ValidationErrors
	if errors.As(err, &formatted) {
		return formatted
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(ValidationErrors, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{Message: fieldMessage(fe), Field: fe.Field()})
	}
	return out
}

// fieldMessage converts a single violation into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	label := `"` + fe.Field() + `"`
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " must be a valid email"
	case "json":
		return label + " must be valid JSON"
	case "mongodb":
		return label + " must be a valid id"
	case "url":
		return label + " must be a valid uri"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s items", label, fe.Param())
		}
		return fmt.Sprintf("%s length must be at least %s characters long", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s length must be less than or equal to %s characters long", label, fe.Param())
	default:
		return fmt.Sprintf("%s failed on the %s rule", label, fe.Tag())
	}
}
