package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/flatdb/internal/record"
	"github.com/tuannm99/flatdb/internal/table"
)

func newTestFile(t *testing.T) File {
	t.Helper()

	users := table.New("users", []record.Field{{Name: "id", Type: record.TypeInt}})
	require.NoError(t, users.AddRow(record.Row{"1"}))
	require.NoError(t, users.AddRow(record.Row{"2"}))

	logs := table.New("logs", []record.Field{{Name: "msg", Type: record.TypeString}})
	require.NoError(t, logs.AddRow(record.Row{"hello"}))

	return File{users, logs}
}

func TestFind_FirstMatch(t *testing.T) {
	doc := newTestFile(t)

	tbl, err := doc.Find("users")
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)

	_, err = doc.Find("missing")
	require.ErrorIs(t, err, ErrDatabaseNotFound)

	// duplicate names resolve to the first in document order
	dup := table.New("users", []record.Field{{Name: "other", Type: record.TypeString}})
	doc = append(doc, dup)
	tbl, err = doc.Find("users")
	require.NoError(t, err)
	require.Equal(t, []string{"id"}, tbl.Schema.Names())
}

func TestDelete(t *testing.T) {
	doc := newTestFile(t)

	doc, err := doc.Delete("users")
	require.NoError(t, err)
	require.Equal(t, []string{"logs"}, doc.Names())

	_, err = doc.Delete("users")
	require.ErrorIs(t, err, ErrDatabaseNotFound)
}

func TestDelete_FirstMatchOnly(t *testing.T) {
	doc := newTestFile(t)
	doc = append(doc, table.New("users", nil))

	doc, err := doc.Delete("users")
	require.NoError(t, err)
	require.Equal(t, []string{"logs", "users"}, doc.Names())
}

func TestClear(t *testing.T) {
	doc := newTestFile(t)

	doc = doc.Clear("users")
	tbl, err := doc.Find("users")
	require.NoError(t, err)
	require.Empty(t, tbl.Rows)
	require.Equal(t, []string{"id"}, tbl.Schema.Names(), "clear keeps the schema")

	// absent name: unchanged, not an error
	before := doc.Names()
	doc = doc.Clear("missing")
	require.Equal(t, before, doc.Names())
}

func TestNamesAndClearAll(t *testing.T) {
	doc := newTestFile(t)
	require.Equal(t, []string{"users", "logs"}, doc.Names())

	doc = doc.ClearAll()
	require.Empty(t, doc)
	require.NotNil(t, doc)
}
