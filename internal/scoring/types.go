// Package scoring contains the statistical scorers used to rank
// proteins by differential activity: Stouffer integration, one-way
// ANOVA and the bootstrapped t-test.
package scoring

import "sort"

// RankedScore pairs a protein identifier with its scalar score.
type RankedScore struct {
	Protein string  `json:"protein"`
	Score   float64 `json:"score"`
}

// RankedList is a score list sorted descending. Ties keep the input
// order, so rankings are deterministic for a fixed matrix.
type RankedList []RankedScore

// NewRankedList pairs proteins with scores and sorts descending with a
// stable sort. The two slices must be index-aligned.
func NewRankedList(proteins []string, scores []float64) RankedList {
	list := make(RankedList, len(proteins))
	for i, p := range proteins {
		list[i] = RankedScore{Protein: p, Score: scores[i]}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
	return list
}

// Proteins returns the identifiers in rank order.
func (l RankedList) Proteins() []string {
	names := make([]string, len(l))
	for i, rs := range l {
		names[i] = rs.Protein
	}
	return names
}

// Top returns the first n entries, or the whole list when n exceeds
// its length.
func (l RankedList) Top(n int) RankedList {
	if n > len(l) {
		n = len(l)
	}
	return append(RankedList(nil), l[:n]...)
}

// Bottom returns the last n entries, or the whole list when n exceeds
// its length.
func (l RankedList) Bottom(n int) RankedList {
	if n > len(l) {
		n = len(l)
	}
	return append(RankedList(nil), l[len(l)-n:]...)
}

// Clustering maps sample identifiers to cluster labels. It must cover
// at least the columns of any matrix it partitions.
type Clustering map[string]string

// Groups partitions the given sample identifiers by cluster label,
// preserving sample order within each group. The second return is
// false when a sample has no label.
func (c Clustering) Groups(samples []string) (map[string][]string, bool) {
	groups := make(map[string][]string)
	for _, s := range samples {
		label, ok := c[s]
		if !ok {
			return nil, false
		}
		groups[label] = append(groups[label], s)
	}
	return groups, true
}
