package flatdb

import (
	"github.com/tuannm99/flatdb/internal/catalog"
	"github.com/tuannm99/flatdb/internal/config"
	"github.com/tuannm99/flatdb/internal/record"
	"github.com/tuannm99/flatdb/internal/table"
)

// The error kinds raised by the engine, re-exported for callers. All are
// sentinel values matchable with errors.Is; operation errors wrap them with
// the offending field, value or type names.
var (
	ErrValNotFound          = config.ErrValNotFound
	ErrFieldNotFound        = record.ErrFieldNotFound
	ErrDatabaseNotFound     = catalog.ErrDatabaseNotFound
	ErrInvalidRow           = table.ErrInvalidRow
	ErrCannotConvertElement = record.ErrCannotConvertElement
	ErrCannotCompute        = table.ErrCannotCompute
	ErrInvalidShape         = record.ErrInvalidShape
	ErrWrongType            = record.ErrWrongType
)
