package mrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pisces-labs/masterreg/internal/scoring"
)

func rankedList(pairs ...any) scoring.RankedList {
	var list scoring.RankedList
	for i := 0; i < len(pairs); i += 2 {
		list = append(list, scoring.RankedScore{Protein: pairs[i].(string), Score: pairs[i+1].(float64)})
	}
	return list
}

func TestUnwrap_Deduplicates(t *testing.T) {
	c := Clustered(map[string]scoring.RankedList{
		"c1": rankedList("A", 3.0, "B", 2.0),
		"c2": rankedList("B", 5.0, "C", 1.0),
	})

	panel := Unwrap(c, 0)
	assert.Equal(t, []string{"A", "B", "C"}, panel)
}

func TestUnwrap_TopTruncatesPerCluster(t *testing.T) {
	c := Clustered(map[string]scoring.RankedList{
		"c1": rankedList("A", 3.0, "B", 2.0),
		"c2": rankedList("B", 5.0, "C", 1.0),
	})

	panel := Unwrap(c, 1)
	assert.Equal(t, []string{"A", "B"}, panel)
}

func TestUnwrap_Idempotent(t *testing.T) {
	c := Clustered(map[string]scoring.RankedList{
		"c1": rankedList("A", 3.0, "B", 2.0),
		"c2": rankedList("B", 5.0, "C", 1.0),
	})

	once := Unwrap(c, 0)

	flat := &Collection{List: rankedList("A", 0.0, "B", 0.0, "C", 0.0)}
	twice := Unwrap(flat, 0)
	assert.Equal(t, once, twice)
}

func TestUnwrap_Nested(t *testing.T) {
	nested := &Collection{
		Clusters: map[string]*Collection{
			"outer": {
				Clusters: map[string]*Collection{
					"inner1": Flat(rankedList("X", 1.0)),
					"inner2": Flat(rankedList("Y", 2.0)),
				},
			},
			"flat": Flat(rankedList("X", 9.0)),
		},
	}
	assert.Equal(t, []string{"X", "Y"}, Unwrap(nested, 0))
}

func TestCellTopK(t *testing.T) {
	m := activityMatrix(t,
		[]string{"A", "B", "C"},
		[]string{"s1", "s2"},
		[]float64{
			9, 1,
			1, 9,
			5, 5,
		})

	panel := CellTopK(m, 1)
	assert.Equal(t, []string{"A", "B"}, panel)

	panel = CellTopK(m, 2)
	assert.Equal(t, []string{"A", "B", "C"}, panel)

	// k beyond the protein count returns everything once.
	panel = CellTopK(m, 50)
	require.Len(t, panel, 3)
}
