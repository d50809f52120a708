package common

import "fmt"

// ValidationErrType ...
type ValidationErrType uint32

const (
	// OutOfRange means a value fell outside the bounds of its control
	OutOfRange ValidationErrType = iota
	// NotFinite means a value was NaN or infinite
	NotFinite
	// Unknown means a label did not match any enumerated option
	Unknown
)

// ValidationErr is returned when an input does not satisfy the constraints
// of the control or calculator that consumes it.
type ValidationErr struct {
	field   string
	errType ValidationErrType
	value   string
}

// NewValidationErr ...
func NewValidationErr(field string, errType ValidationErrType, value interface{}) ValidationErr {
	return ValidationErr{
		field:   field,
		errType: errType,
		value:   fmt.Sprintf("%v", value),
	}
}

// Field returns the name of the offending input.
func (e ValidationErr) Field() string {
	return e.field
}

// Error ...
func (e ValidationErr) Error() string {
	m := ""
	switch e.errType {
	case OutOfRange:
		m = "Out Of Range"
	case NotFinite:
		m = "Not Finite"
	case Unknown:
		m = "Unknown"
	}

	return fmt.Sprintf("%s, %s, %s", e.field, e.value, m)
}

// IsValidation checks that an error is of type ValidationErr and that its
// code matches the provided ValidationErr code.
func IsValidation(err error, t ValidationErrType) bool {
	validationErr, ok := err.(ValidationErr)
	return ok && validationErr.errType == t
}
