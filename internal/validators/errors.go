package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values that are not structs or
	// pointers to structs.
	ErrUnsupportedType = errors.New("unsupported type for validation")
	// ErrUnknownField is returned when a requested field does not exist on
	// the validated struct.
	ErrUnknownField = errors.New("unknown field for validation")
	// ErrInvalidData wraps every failed validation rule.
	ErrInvalidData = errors.New("invalid data")
)
