package mrs

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/pisces-labs/masterreg/internal/matrix"
	"github.com/pisces-labs/masterreg/internal/scoring"
)

// Method names a scoring strategy understood by Select.
type Method string

const (
	// MethodStouffer ranks proteins by weighted Z-score integration.
	MethodStouffer Method = "stouffer"
	// MethodANOVA ranks proteins by one-way ANOVA omnibus significance.
	MethodANOVA Method = "anova"
)

// ErrInvalidMethod reports a method outside the recognized set. Select
// never proceeds on an unknown method.
var ErrInvalidMethod = errors.New("mrs: invalid method")

// DefaultNumMRs is the number of master regulators kept per ranking.
const DefaultNumMRs = 50

type selectConfig struct {
	numMRs     int
	bottom     bool
	weights    scoring.Weights
	clustering scoring.Clustering
}

// SelectOption adjusts master-regulator selection.
type SelectOption func(*selectConfig)

// WithNumMRs sets how many top regulators each ranking keeps.
func WithNumMRs(n int) SelectOption {
	return func(c *selectConfig) {
		c.numMRs = n
	}
}

// WithBottom also reports the bottom-ranked regulators, so each list
// carries both up- and down-active proteins.
func WithBottom() SelectOption {
	return func(c *selectConfig) {
		c.bottom = true
	}
}

// WithWeights supplies per-sample weights for Stouffer integration.
func WithWeights(w scoring.Weights) SelectOption {
	return func(c *selectConfig) {
		c.weights = w
	}
}

// WithClustering partitions samples by cluster label before selection.
func WithClustering(cl scoring.Clustering) SelectOption {
	return func(c *selectConfig) {
		c.clustering = cl
	}
}

// Select ranks the matrix's proteins with the chosen method and keeps
// the top regulators per ranking. Without a clustering the whole
// matrix is scored once; with a clustering the Stouffer method recurses
// into one selection per cluster, while ANOVA treats the clustering as
// the grouping of a single whole-matrix omnibus test.
func Select(m *matrix.Matrix, method Method, opts ...SelectOption) (*Collection, error) {
	cfg := selectConfig{numMRs: DefaultNumMRs}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.numMRs < 1 {
		return nil, fmt.Errorf("mrs: numMRs must be positive, got %d", cfg.numMRs)
	}

	switch method {
	case MethodStouffer, MethodANOVA:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	return selectWith(m, method, cfg)
}

func selectWith(m *matrix.Matrix, method Method, cfg selectConfig) (*Collection, error) {
	if cfg.clustering != nil && method == MethodStouffer {
		groups, ok := cfg.clustering.Groups(m.ColumnNames())
		if !ok {
			return nil, fmt.Errorf("%w: clustering does not cover all matrix columns", matrix.ErrAlignment)
		}
		clusters := make(map[string]*Collection, len(groups))
		for label, samples := range groups {
			sub, err := m.SubsetColumns(samples)
			if err != nil {
				return nil, err
			}
			subCfg := cfg
			subCfg.clustering = nil
			subCfg.weights = cfg.weights.Subset(samples)
			c, err := selectWith(sub, method, subCfg)
			if err != nil {
				return nil, fmt.Errorf("cluster %q: %w", label, err)
			}
			clusters[label] = c
		}
		log.Debug().Int("clusters", len(clusters)).Msgf("selected master regulators for %d cluster(s)", len(clusters))
		return &Collection{Clusters: clusters}, nil
	}

	var list scoring.RankedList
	switch method {
	case MethodStouffer:
		var err error
		list, err = scoring.Stouffer(m, cfg.weights)
		if err != nil {
			return nil, err
		}
	case MethodANOVA:
		if cfg.clustering == nil {
			return nil, fmt.Errorf("%w: anova selection needs a clustering", scoring.ErrDegenerateGrouping)
		}
		pvals, err := scoring.OneWayANOVA(m, cfg.clustering)
		if err != nil {
			return nil, err
		}
		list = anovaRanked(m, pvals)
	}
	return Flat(truncate(list, cfg)), nil
}

// anovaRanked turns raw p-values into a descending significance
// ranking (-log10 p), keeping matrix row order for ties.
func anovaRanked(m *matrix.Matrix, pvals map[string]float64) scoring.RankedList {
	proteins := m.RowNames()
	scores := make([]float64, len(proteins))
	for i, p := range proteins {
		scores[i] = -math.Log10(pvals[p])
	}
	return scoring.NewRankedList(proteins, scores)
}

// truncate keeps the top numMRs entries, or the top and bottom numMRs
// when two-tailed reporting is on. Never reads past the end of the
// list.
func truncate(list scoring.RankedList, cfg selectConfig) scoring.RankedList {
	if !cfg.bottom {
		return list.Top(cfg.numMRs)
	}
	return append(list.Top(cfg.numMRs), list.Bottom(cfg.numMRs)...)
}
