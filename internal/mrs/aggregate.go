package mrs

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/pisces-labs/masterreg/internal/matrix"
	"github.com/pisces-labs/masterreg/internal/scoring"
)

// DefaultCellTopK is the per-cell panel size used by CellTopK.
const DefaultCellTopK = 25

// Unwrap flattens a collection into one de-duplicated protein panel,
// sorted lexicographically. A positive top truncates each ranked list
// to its top entries before flattening; top <= 0 keeps the full lists.
// Flattening is idempotent: unwrapping a flat collection returns its
// protein set unchanged.
func Unwrap(c *Collection, top int) []string {
	seen := make(map[string]struct{})
	collect(c, top, seen)

	panel := make([]string, 0, len(seen))
	for p := range seen {
		panel = append(panel, p)
	}
	sort.Strings(panel)
	return panel
}

func collect(c *Collection, top int, seen map[string]struct{}) {
	if c == nil {
		return
	}
	list := c.List
	if top > 0 {
		list = list.Top(top)
	}
	for _, rs := range list {
		seen[rs.Protein] = struct{}{}
	}
	for _, sub := range c.Clusters {
		collect(sub, top, seen)
	}
}

// CellTopK ranks proteins per sample column by raw value, keeps the
// top k per column and flattens across columns into one de-duplicated
// panel, sorted lexicographically. k <= 0 uses DefaultCellTopK.
func CellTopK(m *matrix.Matrix, k int) []string {
	if k <= 0 {
		k = DefaultCellTopK
	}

	proteins := m.RowNames()
	data := m.Dense()
	_, cols := m.Dims()
	seen := make(map[string]struct{})
	for j := 0; j < cols; j++ {
		ranked := scoring.NewRankedList(proteins, mat.Col(nil, j, data))
		for _, rs := range ranked.Top(k) {
			seen[rs.Protein] = struct{}{}
		}
	}

	panel := make([]string, 0, len(seen))
	for p := range seen {
		panel = append(panel, p)
	}
	sort.Strings(panel)
	return panel
}
