package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/flatdb/internal/record"
)

func TestSumAndMean_Int(t *testing.T) {
	tbl := New("t", []record.Field{{Name: "n", Type: record.TypeInt}})
	for _, v := range []string{"1", "2", "3"} {
		require.NoError(t, tbl.AddRow(record.Row{v}))
	}

	sum, err := tbl.Sum("n")
	require.NoError(t, err)
	require.Equal(t, "6", sum)

	mean, err := tbl.Mean("n")
	require.NoError(t, err)
	require.Equal(t, "2", mean)
}

func TestMean_IntTruncatesTowardZero(t *testing.T) {
	tbl := New("t", []record.Field{{Name: "n", Type: record.TypeInt}})
	for _, v := range []string{"1", "2"} {
		require.NoError(t, tbl.AddRow(record.Row{v}))
	}

	mean, err := tbl.Mean("n")
	require.NoError(t, err)
	require.Equal(t, "1", mean)

	neg := New("t", []record.Field{{Name: "n", Type: record.TypeInt}})
	for _, v := range []string{"-1", "-2"} {
		require.NoError(t, neg.AddRow(record.Row{v}))
	}

	mean, err = neg.Mean("n")
	require.NoError(t, err)
	require.Equal(t, "-1", mean)
}

func TestSumAndMean_Float(t *testing.T) {
	tbl := New("t", []record.Field{{Name: "x", Type: record.TypeFloat}})
	for _, v := range []string{"1.5", "2.5", "2.0"} {
		require.NoError(t, tbl.AddRow(record.Row{v}))
	}

	sum, err := tbl.Sum("x")
	require.NoError(t, err)
	require.Equal(t, "6.0", sum, "float results carry a decimal point")

	mean, err := tbl.Mean("x")
	require.NoError(t, err)
	require.Equal(t, "2.0", mean)
}

func TestAggregate_Errors(t *testing.T) {
	tbl := New("t", []record.Field{
		{Name: "n", Type: record.TypeInt},
		{Name: "name", Type: record.TypeString},
	})

	_, err := tbl.Sum("missing")
	require.ErrorIs(t, err, record.ErrFieldNotFound)
	_, err = tbl.Mean("missing")
	require.ErrorIs(t, err, record.ErrFieldNotFound)

	_, err = tbl.Sum("name")
	require.ErrorIs(t, err, ErrCannotCompute)
	_, err = tbl.Mean("name")
	require.ErrorIs(t, err, ErrCannotCompute)

	// sum over zero rows is a valid "0"; mean is undefined
	sum, err := tbl.Sum("n")
	require.NoError(t, err)
	require.Equal(t, "0", sum)
	_, err = tbl.Mean("n")
	require.ErrorIs(t, err, ErrCannotCompute)
}
