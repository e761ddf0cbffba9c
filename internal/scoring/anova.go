package scoring

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pisces-labs/masterreg/internal/matrix"
)

// ErrDegenerateGrouping reports a grouping that cannot support the
// requested statistic: fewer than two distinct clusters, or no cluster
// with at least two observations.
var ErrDegenerateGrouping = errors.New("scoring: degenerate grouping")

// OneWayANOVA runs a one-way analysis of variance per protein row,
// grouping samples by cluster label. It returns the raw omnibus
// p-value per protein, unsorted; lower means stronger group
// separation.
func OneWayANOVA(m *matrix.Matrix, clustering Clustering) (map[string]float64, error) {
	cols := m.ColumnNames()
	groups, ok := clustering.Groups(cols)
	if !ok {
		return nil, fmt.Errorf("%w: clustering does not cover all matrix columns", matrix.ErrAlignment)
	}
	if err := checkGrouping(groups); err != nil {
		return nil, err
	}

	// Column index per group, computed once for all rows.
	colIdx := make(map[string]int, len(cols))
	for j, name := range cols {
		colIdx[name] = j
	}
	groupCols := make([][]int, 0, len(groups))
	for _, samples := range groups {
		idx := make([]int, len(samples))
		for k, s := range samples {
			idx[k] = colIdx[s]
		}
		groupCols = append(groupCols, idx)
	}

	data := m.Dense()
	rows, n := m.Dims()
	out := make(map[string]float64, rows)
	for i, protein := range m.RowNames() {
		out[protein] = anovaRow(mat.Row(nil, i, data), groupCols, n)
	}
	return out, nil
}

func checkGrouping(groups map[string][]string) error {
	if len(groups) < 2 {
		return fmt.Errorf("%w: %d distinct cluster(s), need at least 2", ErrDegenerateGrouping, len(groups))
	}
	for _, samples := range groups {
		if len(samples) >= 2 {
			return nil
		}
	}
	return fmt.Errorf("%w: no cluster has 2 or more samples", ErrDegenerateGrouping)
}

// anovaRow computes the omnibus F-test p-value for one protein row.
func anovaRow(row []float64, groupCols [][]int, n int) float64 {
	var grand float64
	for _, v := range row {
		grand += v
	}
	grand /= float64(n)

	var ssb, ssw float64
	for _, idx := range groupCols {
		var mean float64
		for _, j := range idx {
			mean += row[j]
		}
		mean /= float64(len(idx))
		ssb += float64(len(idx)) * (mean - grand) * (mean - grand)
		for _, j := range idx {
			d := row[j] - mean
			ssw += d * d
		}
	}

	dfb := float64(len(groupCols) - 1)
	dfw := float64(n - len(groupCols))
	if ssw == 0 {
		if ssb == 0 {
			return 1 // constant row, no separation signal
		}
		return 0 // perfect separation
	}
	f := (ssb / dfb) / (ssw / dfw)
	return distuv.F{D1: dfb, D2: dfw}.Survival(f)
}
