package document

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tuannm99/flatdb/internal/catalog"
)

// Load reads and parses the whole database file. A missing or unparseable
// file is an unrecoverable precondition failure; nothing retries it.
func Load(path string) (catalog.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flatdb: load %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a serialized database file.
func Parse(data []byte) (catalog.File, error) {
	var doc catalog.File
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("flatdb: parse document: %w", err)
	}
	return doc, nil
}

// Save serializes doc and overwrites the file in full. Not atomic: a failure
// mid-write can leave a truncated file.
func Save(path string, doc catalog.File) error {
	if doc == nil {
		doc = catalog.File{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("flatdb: encode document: %w", err)
	}
	return Write(path, data)
}

// Write overwrites the file with already-serialized document bytes.
func Write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("flatdb: write %s: %w", path, err)
	}
	return nil
}
