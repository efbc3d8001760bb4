package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator checks `validate` struct tags with go-playground/validator.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &StructValidator{validate: v}
}

// Validate checks obj, a struct or a pointer to one. When fields are given
// only those Go field names are checked.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	structType, err := structTypeOf(obj)
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		return translate(v.validate.StructCtx(ctx, obj))
	}

	for _, field := range fields {
		if _, ok := structType.FieldByName(field); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return translate(v.validate.StructPartialCtx(ctx, obj, fields...))
}

func structTypeOf(obj any) (reflect.Type, error) {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, ErrUnsupportedType
		}
		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	return value.Type(), nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		problems := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			problems = append(problems, describe(fieldErr))
		}
		return fmt.Errorf("%w: %s", ErrInvalidData, strings.Join(problems, "; "))
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, invalidErr.Error())
	}

	return fmt.Errorf("%w: %s", ErrInvalidData, err.Error())
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " must be a valid email"
	case "gte":
		return fieldErr.Field() + " must be greater than or equal to " + fieldErr.Param()
	case "lte":
		return fieldErr.Field() + " must be less than or equal to " + fieldErr.Param()
	default:
		return fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag())
	}
}

// jsonFieldName reports fields by their JSON names so messages match the
// request body.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}
