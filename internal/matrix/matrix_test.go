package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, rows, cols []string, data []float64) *Matrix {
	t.Helper()
	m, err := New(rows, cols, data)
	require.NoError(t, err)
	return m
}

func TestNew_ShapeMismatch(t *testing.T) {
	_, err := New([]string{"A", "B"}, []string{"s1"}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestNew_DuplicateIdentifiers(t *testing.T) {
	_, err := New([]string{"A", "A"}, []string{"s1"}, []float64{1, 2})
	require.ErrorIs(t, err, ErrAlignment)

	_, err = New([]string{"A"}, []string{"s1", "s1"}, []float64{1, 2})
	require.ErrorIs(t, err, ErrAlignment)
}

func TestRowColumnLookup(t *testing.T) {
	m := mustNew(t, []string{"A", "B"}, []string{"s1", "s2", "s3"}, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	row, err := m.Row("B")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Column("s2")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, col)

	v, err := m.At("A", "s3")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = m.Row("Z")
	require.ErrorIs(t, err, ErrAlignment)
	_, err = m.Column("s9")
	require.ErrorIs(t, err, ErrAlignment)
}

func TestSubsetColumns(t *testing.T) {
	m := mustNew(t, []string{"A", "B"}, []string{"s1", "s2", "s3"}, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	sub, err := m.SubsetColumns([]string{"s3", "s1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"s3", "s1"}, sub.ColumnNames())
	row, err := sub.Row("A")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1}, row)

	_, err = m.SubsetColumns([]string{"s1", "missing"})
	require.ErrorIs(t, err, ErrAlignment)
}

func TestSubsetRows(t *testing.T) {
	m := mustNew(t, []string{"A", "B", "C"}, []string{"s1", "s2"}, []float64{
		1, 2,
		3, 4,
		5, 6,
	})

	sub, err := m.SubsetRows([]string{"C", "A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, sub.RowNames())
	row, err := sub.Row("C")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6}, row)

	_, err = m.SubsetRows([]string{"D"})
	require.ErrorIs(t, err, ErrAlignment)
}

func TestEmpty(t *testing.T) {
	m := Empty()
	assert.True(t, m.IsEmpty())
	r, c := m.Dims()
	assert.Zero(t, r)
	assert.Zero(t, c)
}
