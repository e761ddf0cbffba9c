// Package similarity compares the sample columns of two activity
// matrices through a pluggable column-similarity primitive.
package similarity

import (
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/pisces-labs/masterreg/internal/matrix"
)

// ColumnSimilarityFunc computes a square pairwise similarity matrix
// over the columns of its input, labeled by those columns on both
// axes. This is the external activity-engine primitive; CosineColumns
// is the built-in default.
type ColumnSimilarityFunc func(*matrix.Matrix) (*matrix.Matrix, error)

// CosineColumns computes pairwise cosine similarity between all
// columns. A zero-norm column yields similarity 0 rather than NaN.
func CosineColumns(m *matrix.Matrix) (*matrix.Matrix, error) {
	cols := m.ColumnNames()
	n := len(cols)
	data := m.Dense()

	vecs := make([][]float64, n)
	for j := range vecs {
		vecs[j] = mat.Col(nil, j, data)
	}

	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := cosine(vecs[i], vecs[j])
			out.Set(i, j, s)
			out.Set(j, i, s)
		}
	}
	return matrix.FromDense(cols, cols, out)
}

func cosine(a, b []float64) float64 {
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0.0
	}
	s := floats.Dot(a, b) / (normA * normB)
	if math.IsNaN(s) {
		return 0.0
	}
	return s
}

// Compare restricts both matrices to their shared protein rows, stacks
// a's columns before b's and runs the similarity primitive over the
// combined columns, then slices out the cross block: result rows are
// b's samples, result columns are a's samples. A nil fn uses
// CosineColumns. An empty row intersection returns the empty matrix,
// not an error.
func Compare(a, b *matrix.Matrix, fn ColumnSimilarityFunc) (*matrix.Matrix, error) {
	if fn == nil {
		fn = CosineColumns
	}

	shared := sharedRows(a, b)
	if len(shared) == 0 {
		log.Debug().Msg("no shared proteins between matrices, similarity is empty")
		return matrix.Empty(), nil
	}

	ra, err := a.SubsetRows(shared)
	if err != nil {
		return nil, err
	}
	rb, err := b.SubsetRows(shared)
	if err != nil {
		return nil, err
	}
	combined, err := matrix.HStack(ra, rb)
	if err != nil {
		return nil, err
	}

	sim, err := fn(combined)
	if err != nil {
		return nil, err
	}

	cross, err := sim.SubsetRows(b.ColumnNames())
	if err != nil {
		return nil, err
	}
	return cross.SubsetColumns(a.ColumnNames())
}

// sharedRows returns a's row identifiers that b also carries, in a's
// order.
func sharedRows(a, b *matrix.Matrix) []string {
	var shared []string
	for _, name := range a.RowNames() {
		if b.HasRow(name) {
			shared = append(shared, name)
		}
	}
	return shared
}
