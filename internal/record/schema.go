package record

import (
	"fmt"

	"github.com/spf13/cast"
)

// TypeTag identifies the declared type of a field. Tags persist in the
// database file as their string form.
type TypeTag string

const (
	TypeInt    TypeTag = "int"
	TypeFloat  TypeTag = "float"
	TypeString TypeTag = "string"
	TypeBool   TypeTag = "bool"
)

// Known reports whether t is one of the declared type tags.
func (t TypeTag) Known() bool {
	switch t {
	case TypeInt, TypeFloat, TypeString, TypeBool:
		return true
	}
	return false
}

// Numeric reports whether values of t participate in numeric folds.
func (t TypeTag) Numeric() bool {
	return t == TypeInt || t == TypeFloat
}

// Placeholder returns the zero value of t in its canonical text form. It is
// used to backfill existing rows when a field is added without a default.
func (t TypeTag) Placeholder() string {
	switch t {
	case TypeInt:
		return "0"
	case TypeFloat:
		return "0.0"
	case TypeBool:
		return "false"
	default:
		return ""
	}
}

// Field is one column of a schema: a name and a declared type.
type Field struct {
	Name string  `json:"name"`
	Type TypeTag `json:"type"`
}

// Row is a positional list of cell values, one per schema field. All cells
// are stored as strings; the schema decides how they parse.
type Row []string

// Schema is the ordered list of fields defining a table's columns. Field
// names and types are fixed at creation and change only through explicit
// add/remove-field operations.
type Schema []Field

// FieldIndex returns the position of the named field, or -1 if absent.
func (s Schema) FieldIndex(name string) int {
	for i, f := range s {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// FieldType returns the declared type of the named field.
func (s Schema) FieldType(name string) (TypeTag, error) {
	i := s.FieldIndex(name)
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	return s[i].Type, nil
}

// Names returns the field names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Validate attempts to parse value as the given type.
func Validate(value string, t TypeTag) error {
	var err error
	switch t {
	case TypeInt:
		_, err = cast.ToInt64E(value)
	case TypeFloat:
		_, err = cast.ToFloat64E(value)
	case TypeBool:
		_, err = cast.ToBoolE(value)
	case TypeString:
		return nil
	default:
		return fmt.Errorf("%w: unknown type %q", ErrCannotConvertElement, string(t))
	}
	if err != nil {
		return fmt.Errorf("%w: %q as %s", ErrCannotConvertElement, value, t)
	}
	return nil
}

// CheckValue verifies that value conforms to the declared type of f.
func CheckValue(value string, f Field) error {
	if Validate(value, f.Type) != nil {
		return fmt.Errorf("%w: %q is not a valid %s", ErrWrongType, value, f.Type)
	}
	return nil
}

// CheckShape verifies that values forms a well-shaped row for s: one value
// per field, each parseable as its column's declared type. The first
// non-conforming value wins.
func (s Schema) CheckShape(values Row) error {
	if len(values) != len(s) {
		return fmt.Errorf("%w: got %d values, schema has %d fields", ErrInvalidShape, len(values), len(s))
	}
	for i, v := range values {
		if err := CheckValue(v, s[i]); err != nil {
			return err
		}
	}
	return nil
}
