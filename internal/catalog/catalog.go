package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tuannm99/flatdb/internal/table"
)

// ErrDatabaseNotFound reports a referenced table name with no match in the
// file.
var ErrDatabaseNotFound = errors.New("flatdb: database not found")

// File is the persisted document: an ordered list of tables. Order is
// insertion order. Names are not required to be unique; every name-addressed
// operation acts on the first match in document order.
type File []*table.Table

// Find returns the first table with the given name.
func (f File) Find(name string) (*table.Table, error) {
	for _, t := range f {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrDatabaseNotFound, name)
}

// Delete removes the first table with the given name.
func (f File) Delete(name string) (File, error) {
	for i, t := range f {
		if t.Name == name {
			return slices.Delete(f, i, i+1), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrDatabaseNotFound, name)
}

// Clear empties the rows of the first table with the given name, keeping its
// schema. An absent name leaves the file unchanged; it is not an error.
func (f File) Clear(name string) File {
	for _, t := range f {
		if t.Name == name {
			t.Rows = t.Rows[:0]
			break
		}
	}
	return f
}

// Names returns the table names in document order.
func (f File) Names() []string {
	names := make([]string, len(f))
	for i, t := range f {
		names[i] = t.Name
	}
	return names
}

// ClearAll returns an empty file.
func (f File) ClearAll() File {
	return File{}
}
