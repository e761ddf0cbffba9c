// Package matrix provides labeled dense matrices for protein-activity
// and expression data. Rows are keyed by protein identifier, columns by
// sample identifier; lookups are by identifier, never by position.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable labeled wrapper around a dense numeric store.
// Row and column identifiers are unique; their order is preserved from
// construction but carries no meaning.
type Matrix struct {
	rowNames []string
	colNames []string
	rowIndex map[string]int
	colIndex map[string]int
	data     *mat.Dense
}

// New builds a Matrix from row-major data. len(data) must equal
// len(rowNames)*len(colNames) and identifiers must be unique.
func New(rowNames, colNames []string, data []float64) (*Matrix, error) {
	if len(data) != len(rowNames)*len(colNames) {
		return nil, fmt.Errorf("%w: %d values for %dx%d matrix", ErrShapeMismatch, len(data), len(rowNames), len(colNames))
	}
	return FromDense(rowNames, colNames, mat.NewDense(len(rowNames), len(colNames), data))
}

// FromDense wraps an existing dense store. The store is not copied;
// the caller must not mutate it afterwards.
func FromDense(rowNames, colNames []string, data *mat.Dense) (*Matrix, error) {
	r, c := data.Dims()
	if r != len(rowNames) || c != len(colNames) {
		return nil, fmt.Errorf("%w: %dx%d store for %d row and %d column names", ErrShapeMismatch, r, c, len(rowNames), len(colNames))
	}
	rowIndex, err := buildIndex("row", rowNames)
	if err != nil {
		return nil, err
	}
	colIndex, err := buildIndex("column", colNames)
	if err != nil {
		return nil, err
	}
	return &Matrix{
		rowNames: append([]string(nil), rowNames...),
		colNames: append([]string(nil), colNames...),
		rowIndex: rowIndex,
		colIndex: colIndex,
		data:     data,
	}, nil
}

func buildIndex(kind string, names []string) (map[string]int, error) {
	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate %s identifier %q", ErrAlignment, kind, name)
		}
		index[name] = i
	}
	return index, nil
}

// Empty returns the zero-size matrix. It carries no store; Dims
// reports (0, 0) and every lookup fails alignment.
func Empty() *Matrix { return &Matrix{} }

// IsEmpty reports whether the matrix has no store.
func (m *Matrix) IsEmpty() bool { return m.data == nil }

// Dims returns (rows, columns).
func (m *Matrix) Dims() (int, int) {
	if m.data == nil {
		return 0, 0
	}
	return m.data.Dims()
}

// RowNames returns a copy of the row identifiers in storage order.
func (m *Matrix) RowNames() []string { return append([]string(nil), m.rowNames...) }

// ColumnNames returns a copy of the column identifiers in storage order.
func (m *Matrix) ColumnNames() []string { return append([]string(nil), m.colNames...) }

// HasRow reports whether the row identifier exists.
func (m *Matrix) HasRow(name string) bool {
	_, ok := m.rowIndex[name]
	return ok
}

// Row returns a copy of the named row's values in column order.
func (m *Matrix) Row(name string) ([]float64, error) {
	i, ok := m.rowIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown row %q", ErrAlignment, name)
	}
	return mat.Row(nil, i, m.data), nil
}

// Column returns a copy of the named column's values in row order.
func (m *Matrix) Column(name string) ([]float64, error) {
	j, ok := m.colIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown column %q", ErrAlignment, name)
	}
	return mat.Col(nil, j, m.data), nil
}

// At returns the value addressed by row and column identifiers.
func (m *Matrix) At(row, col string) (float64, error) {
	i, ok := m.rowIndex[row]
	if !ok {
		return 0, fmt.Errorf("%w: unknown row %q", ErrAlignment, row)
	}
	j, ok := m.colIndex[col]
	if !ok {
		return 0, fmt.Errorf("%w: unknown column %q", ErrAlignment, col)
	}
	return m.data.At(i, j), nil
}

// Dense exposes the underlying store for read-only numeric kernels.
func (m *Matrix) Dense() *mat.Dense { return m.data }

// SubsetColumns projects the matrix onto the named columns, in the
// order given. Unknown identifiers are an alignment error.
func (m *Matrix) SubsetColumns(names []string) (*Matrix, error) {
	rows := len(m.rowNames)
	out := mat.NewDense(rows, len(names), nil)
	for j, name := range names {
		src, ok := m.colIndex[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown column %q", ErrAlignment, name)
		}
		for i := 0; i < rows; i++ {
			out.Set(i, j, m.data.At(i, src))
		}
	}
	return FromDense(m.rowNames, names, out)
}

// SubsetRows projects the matrix onto the named rows, in the order
// given. Unknown identifiers are an alignment error.
func (m *Matrix) SubsetRows(names []string) (*Matrix, error) {
	cols := len(m.colNames)
	out := mat.NewDense(len(names), cols, nil)
	for i, name := range names {
		src, ok := m.rowIndex[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown row %q", ErrAlignment, name)
		}
		for j := 0; j < cols; j++ {
			out.Set(i, j, m.data.At(src, j))
		}
	}
	return FromDense(names, m.colNames, out)
}
