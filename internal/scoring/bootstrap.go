package scoring

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/pisces-labs/masterreg/internal/matrix"
)

// DefaultBootstrapNum is the number of resampling iterations per
// protein and class.
const DefaultBootstrapNum = 100

type bootstrapConfig struct {
	iterations int
	seed       uint64
	balanced   bool
	workers    int
}

// BootstrapOption adjusts the bootstrap t-test scorer.
type BootstrapOption func(*bootstrapConfig)

// WithIterations sets the number of bootstrap resamples per protein.
// One iteration still resamples; use TTestSignedLogP directly for the
// single-shot primitive.
func WithIterations(n int) BootstrapOption {
	return func(c *bootstrapConfig) {
		c.iterations = n
	}
}

// WithSeed fixes the random seed. Results are bitwise-reproducible for
// a given seed regardless of worker scheduling.
func WithSeed(seed uint64) BootstrapOption {
	return func(c *bootstrapConfig) {
		c.seed = seed
	}
}

// WithOwnSizeResample resamples the reference group at its own size
// instead of the test group's size. The balanced default mirrors the
// reference behavior of drawing both resamples at the test group's
// size.
func WithOwnSizeResample() BootstrapOption {
	return func(c *bootstrapConfig) {
		c.balanced = false
	}
}

// WithWorkers bounds the number of concurrent protein workers.
func WithWorkers(n int) BootstrapOption {
	return func(c *bootstrapConfig) {
		c.workers = n
	}
}

// BootstrapTTest scores every protein one-vs-rest for each distinct
// cluster label: per iteration it resamples the test and reference
// columns with replacement, runs a two-sided Welch t-test on the
// resamples and averages the signed log p-values. The result maps each
// class label to a descending RankedList; a strongly positive score
// means the protein is more active inside the class than outside it.
func BootstrapTTest(ctx context.Context, m *matrix.Matrix, labels Clustering, opts ...BootstrapOption) (map[string]RankedList, error) {
	cfg := bootstrapConfig{
		iterations: DefaultBootstrapNum,
		seed:       1,
		balanced:   true,
		workers:    runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.iterations < 1 || cfg.workers < 1 {
		return nil, fmt.Errorf("scoring: bootstrap needs at least 1 iteration and 1 worker")
	}

	cols := m.ColumnNames()
	groups, ok := labels.Groups(cols)
	if !ok {
		return nil, fmt.Errorf("%w: clustering does not cover all matrix columns", matrix.ErrAlignment)
	}
	if len(groups) < 2 {
		return nil, fmt.Errorf("%w: one-vs-rest needs at least 2 classes, got %d", ErrDegenerateGrouping, len(groups))
	}

	classes := make([]string, 0, len(groups))
	for label := range groups {
		classes = append(classes, label)
	}
	sort.Strings(classes)

	rows, _ := m.Dims()
	proteins := m.RowNames()
	out := make(map[string]RankedList, len(classes))
	for classIdx, label := range classes {
		rest := make([]string, 0, len(cols)-len(groups[label]))
		for _, s := range cols {
			if labels[s] != label {
				rest = append(rest, s)
			}
		}

		testM, err := m.SubsetColumns(groups[label])
		if err != nil {
			return nil, err
		}
		refM, err := m.SubsetColumns(rest)
		if err != nil {
			return nil, err
		}

		log.Debug().Str("class", label).Int("testSamples", len(groups[label])).
			Int("refSamples", len(rest)).Int("iterations", cfg.iterations).
			Msgf("bootstrapping class %s", label)

		scores := make([]float64, rows)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.workers)
		for i := range rows {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				// One PCG stream per (class, protein) pair keeps the
				// draw sequence independent of scheduling order.
				rng := rand.New(rand.NewPCG(cfg.seed, uint64(classIdx)<<32|uint64(i)))
				x := mat.Row(nil, i, testM.Dense())
				y := mat.Row(nil, i, refM.Dense())
				scores[i] = bootstrapRow(rng, x, y, cfg)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		out[label] = NewRankedList(proteins, scores)
	}
	return out, nil
}

func bootstrapRow(rng *rand.Rand, x, y []float64, cfg bootstrapConfig) float64 {
	refSize := len(x)
	if !cfg.balanced {
		refSize = len(y)
	}
	xs := make([]float64, len(x))
	ys := make([]float64, refSize)

	var total float64
	for range cfg.iterations {
		resampleInto(rng, x, xs)
		resampleInto(rng, y, ys)
		total += TTestSignedLogP(xs, ys)
	}
	return total / float64(cfg.iterations)
}

func resampleInto(rng *rand.Rand, src, dst []float64) {
	for i := range dst {
		dst[i] = src[rng.IntN(len(src))]
	}
}
