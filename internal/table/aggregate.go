package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/tuannm99/flatdb/internal/record"
)

// Sum folds the named numeric field over all rows and renders the total in
// the column's canonical formatting. A sum over zero rows is "0".
func (t *Table) Sum(field string) (string, error) {
	col, typ, err := t.numericField(field)
	if err != nil {
		return "", err
	}
	if typ == record.TypeInt {
		var total int64
		for _, row := range t.Rows {
			n, err := cast.ToInt64E(row[col])
			if err != nil {
				return "", fmt.Errorf("%w: %q as %s", record.ErrCannotConvertElement, row[col], typ)
			}
			total += n
		}
		return strconv.FormatInt(total, 10), nil
	}
	var total float64
	for _, row := range t.Rows {
		n, err := cast.ToFloat64E(row[col])
		if err != nil {
			return "", fmt.Errorf("%w: %q as %s", record.ErrCannotConvertElement, row[col], typ)
		}
		total += n
	}
	return formatFloat(total), nil
}

// Mean is the sum divided by the row count. Unlike Sum it is undefined over
// zero rows. Integer columns use integer division, so a non-exact mean
// truncates toward zero: the mean of [1, 2] is "1".
func (t *Table) Mean(field string) (string, error) {
	col, typ, err := t.numericField(field)
	if err != nil {
		return "", err
	}
	if len(t.Rows) == 0 {
		return "", fmt.Errorf("%w: mean of %q over zero rows", ErrCannotCompute, field)
	}
	if typ == record.TypeInt {
		var total int64
		for _, row := range t.Rows {
			n, err := cast.ToInt64E(row[col])
			if err != nil {
				return "", fmt.Errorf("%w: %q as %s", record.ErrCannotConvertElement, row[col], typ)
			}
			total += n
		}
		return strconv.FormatInt(total/int64(len(t.Rows)), 10), nil
	}
	var total float64
	for _, row := range t.Rows {
		n, err := cast.ToFloat64E(row[col])
		if err != nil {
			return "", fmt.Errorf("%w: %q as %s", record.ErrCannotConvertElement, row[col], typ)
		}
		total += n
	}
	return formatFloat(total / float64(len(t.Rows))), nil
}

func (t *Table) numericField(field string) (int, record.TypeTag, error) {
	col := t.Schema.FieldIndex(field)
	if col < 0 {
		return 0, "", fmt.Errorf("%w: %q", record.ErrFieldNotFound, field)
	}
	typ := t.Schema[col].Type
	if !typ.Numeric() {
		return 0, "", fmt.Errorf("%w: field %q has type %s", ErrCannotCompute, field, typ)
	}
	return col, typ, nil
}

// formatFloat renders a float field result; real results always carry a
// decimal point.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
