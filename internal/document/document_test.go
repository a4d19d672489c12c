package document

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/flatdb/internal/catalog"
	"github.com/tuannm99/flatdb/internal/record"
	"github.com/tuannm99/flatdb/internal/table"
)

func tempFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "db.json")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := tempFile(t)

	users := table.New("users", []record.Field{
		{Name: "id", Type: record.TypeInt},
		{Name: "name", Type: record.TypeString},
	})
	require.NoError(t, users.AddRow(record.Row{"1", "alice"}))

	require.NoError(t, Save(path, catalog.File{users}))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"users"}, doc.Names())
	tbl, err := doc.Find("users")
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name"}, tbl.Schema.Names())
	require.Equal(t, []record.Row{{"1", "alice"}}, tbl.Rows)
}

func TestSave_NilIsEmptyDocument(t *testing.T) {
	path := tempFile(t)

	require.NoError(t, Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestLoad_Failures(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	path := tempFile(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestSplice(t *testing.T) {
	body, err := Splice([]byte("[]"))
	require.NoError(t, err)
	require.Empty(t, body, "empty interior gets no separator")

	body, err = Splice([]byte(`[{"name":"a"}]`))
	require.NoError(t, err)
	require.Equal(t, `{"name":"a"},`, string(body))

	// surrounding whitespace must not be mistaken for a delimiter
	body, err = Splice([]byte("[]\n"))
	require.NoError(t, err)
	require.Empty(t, body)
	body, err = Splice([]byte("  [{\"name\":\"a\"}]\n"))
	require.NoError(t, err)
	require.Equal(t, `{"name":"a"},`, string(body))

	_, err = Splice([]byte("["))
	require.ErrorIs(t, err, ErrTruncatedDocument)
	_, err = Splice(nil)
	require.ErrorIs(t, err, ErrTruncatedDocument)
	_, err = Splice([]byte("  \n"))
	require.ErrorIs(t, err, ErrTruncatedDocument)
	_, err = Splice([]byte(`{"name":"a"}`))
	require.ErrorIs(t, err, ErrTruncatedDocument)
}

// AppendTable must be byte-identical to the structural path: parse, append,
// re-encode.
func TestAppendTable_MatchesStructuralAppend(t *testing.T) {
	existing := table.New("users", []record.Field{{Name: "id", Type: record.TypeInt}})
	require.NoError(t, existing.AddRow(record.Row{"1"}))

	for name, tc := range map[string]struct {
		doc    catalog.File
		suffix string
	}{
		"empty":               {doc: catalog.File{}},
		"nonempty":            {doc: catalog.File{existing}},
		"trailing whitespace": {doc: catalog.File{existing}, suffix: "\n"},
	} {
		t.Run(name, func(t *testing.T) {
			doc := tc.doc
			serialized, err := json.Marshal(doc)
			require.NoError(t, err)
			serialized = append(serialized, tc.suffix...)

			added := table.New("events", []record.Field{
				{Name: "at", Type: record.TypeString},
				{Name: "code", Type: record.TypeInt},
			})

			spliced, err := AppendTable(serialized, added)
			require.NoError(t, err)

			structural, err := json.Marshal(append(doc, added))
			require.NoError(t, err)
			require.Equal(t, string(structural), string(spliced))

			// and the result still parses
			parsed, err := Parse(spliced)
			require.NoError(t, err)
			tbl, err := parsed.Find("events")
			require.NoError(t, err)
			require.Empty(t, tbl.Rows)
		})
	}
}
