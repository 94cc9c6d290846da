package types

import (
	"errors"
	"fmt"
)

// Adapter and session errors.
var (
	ErrEntityNotFound        = errors.New("entity not found")
	ErrNotPropertyOrQuantity = errors.New("entity is not a property or quantity")
	ErrPropertyExists        = errors.New("property already exists in set")
	ErrPSetExists            = errors.New("property set already exists on object")
	ErrNoValue               = errors.New("no value present")
	ErrNoFilePath            = errors.New("no file path to save to")
	ErrSessionClosed         = errors.New("session is closed")
)

// Set definition validation errors.
var (
	ErrSetNameEmpty       = errors.New("set name must not be empty")
	ErrDuplicateProperty  = errors.New("duplicate property name in set")
	ErrMissingUnitType    = errors.New("quantity property has no unit type")
	ErrNonNumericQuantity = errors.New("quantity value type is not numeric")
)

// InvalidValueError reports a raw value that could not be coerced or an
// explicit type, unit, or prefix argument that could not be resolved. It
// always carries the offending raw value and the target it was resolved
// against.
type InvalidValueError struct {
	Raw    any
	Target string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("value %v cannot be used as %s", e.Raw, e.Target)
}

func newInvalidValue(raw any, target string) error {
	return &InvalidValueError{Raw: raw, Target: target}
}
