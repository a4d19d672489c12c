package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tuannm99/flatdb/internal/table"
)

// ErrTruncatedDocument reports a serialized document that does not carry its
// outer delimiter pair.
var ErrTruncatedDocument = errors.New("flatdb: truncated document")

// Splice strips the outermost delimiter pair from a serialized database file
// and, when the interior is non-empty, appends a separator, so the serialized
// form of a new table can be concatenated directly before where the closing
// delimiter was. Surrounding whitespace is dropped; the delimiters must
// actually be there, otherwise splicing would corrupt a document the parser
// accepts.
func Splice(serialized []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(serialized)
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return nil, fmt.Errorf("%w: no outer delimiter pair in %d bytes", ErrTruncatedDocument, len(serialized))
	}
	body := bytes.Clone(trimmed[1 : len(trimmed)-1])
	if len(bytes.TrimSpace(body)) > 0 {
		body = append(body, ',')
	}
	return body, nil
}

// AppendTable splices the serialized form of tbl into an already serialized
// document without re-encoding the existing tables. The output is
// byte-identical to parsing the document, appending tbl and re-encoding.
func AppendTable(serialized []byte, tbl *table.Table) ([]byte, error) {
	body, err := Splice(serialized)
	if err != nil {
		return nil, err
	}
	enc, err := json.Marshal(tbl)
	if err != nil {
		return nil, fmt.Errorf("flatdb: encode table: %w", err)
	}
	out := make([]byte, 0, len(body)+len(enc)+2)
	out = append(out, '[')
	out = append(out, body...)
	out = append(out, enc...)
	out = append(out, ']')
	return out, nil
}
