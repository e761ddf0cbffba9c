// Package mrs selects and aggregates master regulators: proteins whose
// activity most strongly separates a group of samples from the rest.
package mrs

import "github.com/pisces-labs/masterreg/internal/scoring"

// Collection holds master-regulator rankings. It is either flat (List
// set) or keyed by cluster label (Clusters set), recursively, so
// nested groupings produce a tree of rankings.
type Collection struct {
	List     scoring.RankedList     `json:"list,omitempty"`
	Clusters map[string]*Collection `json:"clusters,omitempty"`
}

// Flat wraps a single ranked list.
func Flat(list scoring.RankedList) *Collection {
	return &Collection{List: list}
}

// Clustered wraps one ranked list per cluster label.
func Clustered(lists map[string]scoring.RankedList) *Collection {
	clusters := make(map[string]*Collection, len(lists))
	for label, list := range lists {
		clusters[label] = Flat(list)
	}
	return &Collection{Clusters: clusters}
}

// IsClustered reports whether the collection is keyed by cluster.
func (c *Collection) IsClustered() bool { return c.Clusters != nil }
