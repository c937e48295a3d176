package schema

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate = validator.New()

// Validate checks the `validate` tags of a struct value.
func Validate(value any) error {
	return validationError(entityName(value), validate.Struct(value))
}

// ValidateList checks every element of a list and requires at least one.
func ValidateList[T any](entity string, values []T) error {
	return ValidateValue(entity, values, "min=1,dive")
}

// ValidateValue checks a single value against a validator tag.
func ValidateValue(entity string, value any, tag string) error {
	return validationError(entity, validate.Var(value, tag))
}

func validationError(entity string, err error) error {
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return &ValidationError{Entity: entity, Err: err}
	}

	fields := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		name := fieldError.Namespace()
		if name == "" {
			name = entity
		}
		fields = append(fields, fmt.Sprintf("%s (%s)", name, fieldError.Tag()))
	}

	return &ValidationError{Entity: entity, Fields: fields}
}

func entityName(value any) string {
	typ := reflect.TypeOf(value)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil {
		return "value"
	}
	return typ.Name()
}
