package record

import "errors"

var (
	// ErrFieldNotFound reports a referenced field that does not exist in the
	// table's schema.
	ErrFieldNotFound = errors.New("flatdb: field not found")

	// ErrCannotConvertElement reports a value that cannot be parsed as its
	// declared or requested type.
	ErrCannotConvertElement = errors.New("flatdb: cannot convert element")

	// ErrInvalidShape reports a candidate row whose value count does not
	// match the schema's field count.
	ErrInvalidShape = errors.New("flatdb: invalid row shape")

	// ErrWrongType reports a candidate value that does not match the
	// declared type of the field it targets.
	ErrWrongType = errors.New("flatdb: wrong type for field")
)
