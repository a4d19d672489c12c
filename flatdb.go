// Package flatdb is a minimal flat-file database engine: named tables with
// fixed typed schemas, persisted together as a single JSON document. Every
// operation is one load, mutate, save cycle against that file; nothing is
// cached between calls.
package flatdb

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tuannm99/flatdb/internal/document"
	"github.com/tuannm99/flatdb/internal/record"
	"github.com/tuannm99/flatdb/internal/table"
)

// Init creates an empty database file at path if none exists yet.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("flatdb: stat %s: %w", path, err)
	}
	return document.Save(path, nil)
}

// CreateTable appends a new empty table with the given schema. The existing
// document must parse, but its tables are spliced through as serialized text
// rather than re-encoded. Names are not checked for uniqueness; lookups on a
// duplicated name resolve to the first match.
func CreateTable(path, name string, fields []record.Field) error {
	for _, f := range fields {
		if !f.Type.Known() {
			return fmt.Errorf("%w: unknown type %q", record.ErrCannotConvertElement, string(f.Type))
		}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("flatdb: load %s: %w", path, err)
	}
	if _, err := document.Parse(raw); err != nil {
		return err
	}
	out, err := document.AppendTable(raw, table.New(name, fields))
	if err != nil {
		return err
	}
	slog.Debug("create table", "path", path, "table", name)
	return document.Write(path, out)
}

// DeleteTable removes the first table with the given name.
func DeleteTable(path, name string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	doc, err = doc.Delete(name)
	if err != nil {
		return err
	}
	slog.Debug("delete table", "path", path, "table", name)
	return document.Save(path, doc)
}

// ClearTable empties the rows of the first table with the given name,
// keeping its schema. An absent name leaves the file unchanged.
func ClearTable(path, name string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	slog.Debug("clear table", "path", path, "table", name)
	return document.Save(path, doc.Clear(name))
}

// ClearAllTables drops every table from the file.
func ClearAllTables(path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	slog.Debug("clear all tables", "path", path)
	return document.Save(path, doc.ClearAll())
}

// TableNames returns all table names in document order, newline-joined.
func TableNames(path string) (string, error) {
	doc, err := document.Load(path)
	if err != nil {
		return "", err
	}
	return strings.Join(doc.Names(), "\n"), nil
}

// FieldNames returns a table's field names in schema order.
func FieldNames(path, name string) ([]string, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	tbl, err := doc.Find(name)
	if err != nil {
		return nil, err
	}
	return tbl.FieldNames(), nil
}

// FieldTypes returns a table's field type tags in schema order.
func FieldTypes(path, name string) ([]string, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	tbl, err := doc.Find(name)
	if err != nil {
		return nil, err
	}
	return tbl.FieldTypes(), nil
}

// ListRows returns a table's rows formatted for display, one string per row
// with cells joined by " | ", in stored order.
func ListRows(path, name string) ([]string, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	tbl, err := doc.Find(name)
	if err != nil {
		return nil, err
	}
	rows := make([]string, len(tbl.Rows))
	for i, row := range tbl.Rows {
		rows[i] = strings.Join(row, " | ")
	}
	return rows, nil
}

// AddField appends a field to a table's schema and backfills every existing
// row: with def when non-empty, otherwise with the type's placeholder.
func AddField(path, name string, field record.Field, def string) error {
	if !field.Type.Known() {
		return fmt.Errorf("%w: unknown type %q", record.ErrCannotConvertElement, string(field.Type))
	}
	return mutate("add field", path, name, func(tbl *table.Table) error {
		return tbl.AddField(field, def)
	})
}

// RemoveField drops a field from a table's schema and every row.
func RemoveField(path, name, field string) error {
	return mutate("remove field", path, name, func(tbl *table.Table) error {
		return tbl.RemoveField(field)
	})
}

// FindRows returns the 1-based indices of every row whose cell in the named
// field equals value, ascending. No match yields an empty result.
func FindRows(path, name, field, value string) ([]int, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	tbl, err := doc.Find(name)
	if err != nil {
		return nil, err
	}
	return tbl.FindRows(field, value)
}

// UpdateValue replaces a single cell, re-validated against the column type.
func UpdateValue(path, name, field string, rowIndex int, value string) error {
	return mutate("update value", path, name, func(tbl *table.Table) error {
		return tbl.UpdateValue(field, rowIndex, value)
	})
}

// UpdateAll replaces the named field's cell in every row of a table.
func UpdateAll(path, name, field, value string) error {
	return mutate("update all", path, name, func(tbl *table.Table) error {
		return tbl.UpdateAll(field, value)
	})
}

// DeleteRows removes the rows at the given 1-based indices; out-of-range
// indices are ignored. Remaining rows are renumbered contiguously.
func DeleteRows(path, name string, indices []int) error {
	return mutate("delete rows", path, name, func(tbl *table.Table) error {
		tbl.DeleteRows(indices)
		return nil
	})
}

// AddRow appends a row after checking its shape and value types against the
// schema. Nothing is persisted when the check fails.
func AddRow(path, name string, values []string) error {
	return mutate("add row", path, name, func(tbl *table.Table) error {
		return tbl.AddRow(values)
	})
}

// SortRows stably sorts a table's rows by the named field.
func SortRows(path, name, field string) error {
	return mutate("sort rows", path, name, func(tbl *table.Table) error {
		return tbl.SortRows(field)
	})
}

// Sum renders the fold of a numeric field over all rows.
func Sum(path, name, field string) (string, error) {
	doc, err := document.Load(path)
	if err != nil {
		return "", err
	}
	tbl, err := doc.Find(name)
	if err != nil {
		return "", err
	}
	return tbl.Sum(field)
}

// Mean renders the average of a numeric field over all rows.
func Mean(path, name, field string) (string, error) {
	doc, err := document.Load(path)
	if err != nil {
		return "", err
	}
	tbl, err := doc.Find(name)
	if err != nil {
		return "", err
	}
	return tbl.Mean(field)
}

// mutate runs one load-locate-mutate-save cycle against the first table with
// the given name. When fn fails the file is not rewritten.
func mutate(op, path, name string, fn func(*table.Table) error) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	tbl, err := doc.Find(name)
	if err != nil {
		return err
	}
	if err := fn(tbl); err != nil {
		return err
	}
	slog.Debug(op, "path", path, "table", name)
	return document.Save(path, doc)
}
