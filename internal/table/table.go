package table

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/spf13/cast"

	"github.com/tuannm99/flatdb/internal/record"
)

var (
	// ErrInvalidRow reports a row index outside the table's current bounds.
	ErrInvalidRow = errors.New("flatdb: invalid row index")

	// ErrCannotCompute reports an aggregate over a non-numeric field, or
	// over an empty input where the aggregate is undefined.
	ErrCannotCompute = errors.New("flatdb: cannot compute aggregate")
)

// Table is one named table in a database file: a schema plus its rows.
// Rows are addressed by a 1-based index; index 0 is conceptually the schema
// itself and never a valid row index.
type Table struct {
	Name   string        `json:"name"`
	Schema record.Schema `json:"fields"`
	Rows   []record.Row  `json:"rows"`
}

// New creates an empty table with the given schema.
func New(name string, fields []record.Field) *Table {
	return &Table{
		Name:   name,
		Schema: fields,
		Rows:   []record.Row{},
	}
}

// FieldNames returns the field names in schema order.
func (t *Table) FieldNames() []string {
	return t.Schema.Names()
}

// FieldTypes returns the field type tags in schema order.
func (t *Table) FieldTypes() []string {
	types := make([]string, len(t.Schema))
	for i, f := range t.Schema {
		types[i] = string(f.Type)
	}
	return types
}

// AddRow appends values as a new row after checking its shape against the
// schema. On failure the table is left untouched.
func (t *Table) AddRow(values record.Row) error {
	if err := t.Schema.CheckShape(values); err != nil {
		return err
	}
	t.Rows = append(t.Rows, values)
	return nil
}

// FindRows returns the 1-based indices, in ascending order, of every row
// whose cell in the named field equals value. No match is not an error.
func (t *Table) FindRows(field, value string) ([]int, error) {
	col := t.Schema.FieldIndex(field)
	if col < 0 {
		return nil, fmt.Errorf("%w: %q", record.ErrFieldNotFound, field)
	}
	var indices []int
	for i, row := range t.Rows {
		if row[col] == value {
			indices = append(indices, i+1)
		}
	}
	return indices, nil
}

// UpdateValue replaces a single cell, re-validated against the column type.
func (t *Table) UpdateValue(field string, rowIndex int, value string) error {
	col := t.Schema.FieldIndex(field)
	if col < 0 {
		return fmt.Errorf("%w: %q", record.ErrFieldNotFound, field)
	}
	if rowIndex < 1 || rowIndex > len(t.Rows) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidRow, rowIndex, len(t.Rows))
	}
	if err := record.CheckValue(value, t.Schema[col]); err != nil {
		return err
	}
	t.Rows[rowIndex-1][col] = value
	return nil
}

// UpdateAll replaces the named field's cell in every row.
func (t *Table) UpdateAll(field, value string) error {
	col := t.Schema.FieldIndex(field)
	if col < 0 {
		return fmt.Errorf("%w: %q", record.ErrFieldNotFound, field)
	}
	if err := record.CheckValue(value, t.Schema[col]); err != nil {
		return err
	}
	for _, row := range t.Rows {
		row[col] = value
	}
	return nil
}

// DeleteRows removes the rows at the given 1-based indices. Remaining rows
// are renumbered contiguously. Out-of-range indices are ignored.
func (t *Table) DeleteRows(indices []int) {
	// Delete from the highest index down so pending removals keep their
	// positions.
	sorted := slices.Clone(indices)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	prev := 0
	for _, i := range sorted {
		if i < 1 || i > len(t.Rows) || i == prev {
			continue
		}
		t.Rows = slices.Delete(t.Rows, i-1, i)
		prev = i
	}
}

// SortRows stably sorts all rows by the named field. Numeric columns compare
// numerically, all others lexicographically as text.
func (t *Table) SortRows(field string) error {
	col := t.Schema.FieldIndex(field)
	if col < 0 {
		return fmt.Errorf("%w: %q", record.ErrFieldNotFound, field)
	}
	if t.Schema[col].Type.Numeric() {
		sort.SliceStable(t.Rows, func(i, j int) bool {
			a := cast.ToFloat64(t.Rows[i][col])
			b := cast.ToFloat64(t.Rows[j][col])
			return a < b
		})
	} else {
		sort.SliceStable(t.Rows, func(i, j int) bool {
			return t.Rows[i][col] < t.Rows[j][col]
		})
	}
	return nil
}

// AddField appends a field to the schema and backfills every existing row.
// An empty def backfills the type's placeholder; otherwise def is validated
// against the new field's type first.
func (t *Table) AddField(f record.Field, def string) error {
	if def == "" {
		def = f.Type.Placeholder()
	} else if err := record.CheckValue(def, f); err != nil {
		return err
	}
	t.Schema = append(t.Schema, f)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], def)
	}
	return nil
}

// RemoveField drops the named field from the schema and its column from
// every row, preserving the relative order of the remaining columns.
func (t *Table) RemoveField(name string) error {
	col := t.Schema.FieldIndex(name)
	if col < 0 {
		return fmt.Errorf("%w: %q", record.ErrFieldNotFound, name)
	}
	t.Schema = slices.Delete(t.Schema, col, col+1)
	for i := range t.Rows {
		t.Rows[i] = slices.Delete(t.Rows[i], col, col+1)
	}
	return nil
}
