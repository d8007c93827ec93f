// Package validation decodes request bodies into typed request shapes and
// checks them against their `validate` struct tags.
//
// Rule violations are reported as human readable messages such as
// "name should not be empty" or "price must not be less than 1", in the
// order the fields are declared.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error is returned when a request body fails validation. Messages is never
// empty.
type Error struct {
	Messages []string
}

// Error returns the first message.
func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return e.Messages[0]
}

// Validator wraps a validator.Validate configured to report fields by their
// JSON names.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// required treats a non-nil pointer as set, so optional strings that
	// must not be "" use notempty instead.
	if err := v.RegisterValidation("notempty", notEmpty); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

func notEmpty(fl validator.FieldLevel) bool {
	return fl.Field().String() != ""
}

// Validate decodes raw into a T and validates it. On success the decoded
// input is returned and the error is nil; otherwise the input is nil and the
// error is an *Error. An empty body is treated as an empty JSON object.
func Validate[T any](v *Validator, raw []byte) (*T, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	input := new(T)
	if err := json.Unmarshal(raw, input); err != nil {
		return nil, &Error{Messages: []string{decodeMessage(err)}}
	}

	if err := v.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validate %T: %w", input, err)
		}
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, fieldMessage(fe))
		}
		return nil, &Error{Messages: messages}
	}

	return input, nil
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required", "notempty":
		return fmt.Sprintf("%s should not be empty", field)
	case "min", "gte":
		if isString {
			return fmt.Sprintf("%s must be longer than or equal to %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("%s must be shorter than or equal to %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		switch typeErr.Type.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return fmt.Sprintf("%s must be an integer number", field)
		case reflect.Float32, reflect.Float64:
			return fmt.Sprintf("%s must be a number conforming to the specified constraints", field)
		case reflect.String:
			return fmt.Sprintf("%s must be a string", field)
		}
		return fmt.Sprintf("%s is invalid", field)
	}
	return "request body must be a valid JSON object"
}
