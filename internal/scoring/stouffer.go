package scoring

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/pisces-labs/masterreg/internal/matrix"
)

// Stouffer integrates each protein row into a single weighted Z score:
// sum(x_i * w_i) / sqrt(sum(w_i^2)) across all samples. A nil weight
// map defaults to uniform weight 1.0, reducing to sum(row)/sqrt(n).
// The result is sorted descending.
func Stouffer(m *matrix.Matrix, w Weights) (RankedList, error) {
	cols := m.ColumnNames()
	if w == nil {
		w = UniformWeights(cols)
	}

	wv := make([]float64, len(cols))
	for j, sample := range cols {
		weight, ok := w[sample]
		if !ok {
			return nil, fmt.Errorf("%w: no weight for sample %q", matrix.ErrAlignment, sample)
		}
		wv[j] = weight
	}

	denom := math.Sqrt(floats.Dot(wv, wv))
	rows, _ := m.Dims()
	data := m.Dense()
	scores := make([]float64, rows)
	for i := range rows {
		scores[i] = floats.Dot(mat.Row(nil, i, data), wv) / denom
	}
	return NewRankedList(m.RowNames(), scores), nil
}

// StoufferByCluster partitions the matrix columns by cluster label and
// applies Stouffer integration to each cluster's sub-matrix with the
// matching weight subset. Every column must carry a label.
func StoufferByCluster(m *matrix.Matrix, clustering Clustering, w Weights) (map[string]RankedList, error) {
	groups, ok := clustering.Groups(m.ColumnNames())
	if !ok {
		return nil, fmt.Errorf("%w: clustering does not cover all matrix columns", matrix.ErrAlignment)
	}

	out := make(map[string]RankedList, len(groups))
	for label, samples := range groups {
		sub, err := m.SubsetColumns(samples)
		if err != nil {
			return nil, err
		}
		list, err := Stouffer(sub, w.Subset(samples))
		if err != nil {
			return nil, fmt.Errorf("cluster %q: %w", label, err)
		}
		out[label] = list
	}
	return out, nil
}
