package flatdb

import (
	"github.com/tuannm99/flatdb/internal/catalog"
	"github.com/tuannm99/flatdb/internal/record"
	"github.com/tuannm99/flatdb/internal/table"
)

// Facade aliases so callers only import the top-level package.
type (
	TypeTag = record.TypeTag
	Field   = record.Field
	Row     = record.Row
	Schema  = record.Schema
	Table   = table.Table
	File    = catalog.File
)

const (
	TypeInt    = record.TypeInt
	TypeFloat  = record.TypeFloat
	TypeString = record.TypeString
	TypeBool   = record.TypeBool
)
