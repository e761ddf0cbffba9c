package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Merge combines two matrices over the same column layout. Every row of
// priority is kept as-is; rows that exist only in secondary are
// appended below, in secondary's order. On a row identifier conflict
// priority always wins. Both inputs must carry the identical column
// name sequence or the merge fails with a shape mismatch.
func Merge(priority, secondary *Matrix) (*Matrix, error) {
	if err := sameColumns(priority, secondary); err != nil {
		return nil, err
	}

	extra := make([]string, 0, len(secondary.rowNames))
	for _, name := range secondary.rowNames {
		if !priority.HasRow(name) {
			extra = append(extra, name)
		}
	}

	pr, cols := priority.Dims()
	out := mat.NewDense(pr+len(extra), cols, nil)
	names := make([]string, 0, pr+len(extra))
	for i, name := range priority.rowNames {
		out.SetRow(i, mat.Row(nil, i, priority.data))
		names = append(names, name)
	}
	for k, name := range extra {
		out.SetRow(pr+k, mat.Row(nil, secondary.rowIndex[name], secondary.data))
		names = append(names, name)
	}
	return FromDense(names, priority.colNames, out)
}

// HStack concatenates the columns of a and b over an identical row name
// sequence, a's columns first. Column identifiers must stay unique
// across the pair.
func HStack(a, b *Matrix) (*Matrix, error) {
	if len(a.rowNames) != len(b.rowNames) {
		return nil, fmt.Errorf("%w: row counts %d vs %d", ErrShapeMismatch, len(a.rowNames), len(b.rowNames))
	}
	for i, name := range a.rowNames {
		if b.rowNames[i] != name {
			return nil, fmt.Errorf("%w: row %d is %q vs %q", ErrShapeMismatch, i, name, b.rowNames[i])
		}
	}

	rows := len(a.rowNames)
	ac, bc := len(a.colNames), len(b.colNames)
	out := mat.NewDense(rows, ac+bc, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < ac; j++ {
			out.Set(i, j, a.data.At(i, j))
		}
		for j := 0; j < bc; j++ {
			out.Set(i, ac+j, b.data.At(i, j))
		}
	}
	names := append(a.ColumnNames(), b.colNames...)
	return FromDense(a.rowNames, names, out)
}

func sameColumns(a, b *Matrix) error {
	if len(a.colNames) != len(b.colNames) {
		return fmt.Errorf("%w: column counts %d vs %d", ErrShapeMismatch, len(a.colNames), len(b.colNames))
	}
	for j, name := range a.colNames {
		if b.colNames[j] != name {
			return fmt.Errorf("%w: column %d is %q vs %q", ErrShapeMismatch, j, name, b.colNames[j])
		}
	}
	return nil
}
