// Package regulon models the network-inference collaborator boundary:
// regulator-to-target interactomes, the fixed pruning rule and the
// serialized artifact naming the downstream pipeline expects.
package regulon

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/pisces-labs/masterreg/internal/matrix"
)

// MaxRegulonTargets is the fixed, non-adaptive pruning cap: each
// regulator keeps at most this many targets.
const MaxRegulonTargets = 50

// Target is one regulated gene with its signed regulation mode and
// interaction confidence.
type Target struct {
	Gene       string  `json:"gene"`
	Mode       float64 `json:"mode"`
	Likelihood float64 `json:"likelihood"`
}

// Interactome maps each regulator protein to its target set.
type Interactome map[string][]Target

// Edge is one row of a three-column regulator/target/mutual-information
// edge list.
type Edge struct {
	Regulator string
	Target    string
	MI        float64
}

// Prune keeps the max highest-likelihood targets per regulator and
// drops regulators left without any target. Ties keep input order.
func (in Interactome) Prune(max int) Interactome {
	out := make(Interactome, len(in))
	for regulator, targets := range in {
		if len(targets) == 0 {
			continue
		}
		kept := append([]Target(nil), targets...)
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].Likelihood > kept[j].Likelihood })
		if len(kept) > max {
			kept = kept[:max]
		}
		out[regulator] = kept
	}
	return out
}

// Processor is the opaque network-inference service: it turns an edge
// list plus an expression matrix into unpruned and pruned interactomes.
type Processor interface {
	Process(ctx context.Context, edges []Edge, expr *matrix.Matrix) (unpruned, pruned Interactome, err error)
}

// ArtifactStore persists a serialized interactome at a path. The store
// owns the encoding; this package only dictates the paths.
type ArtifactStore interface {
	Save(ctx context.Context, path string, in Interactome) error
}

// ArtifactPaths returns the artifact locations for a run: exact
// concatenation of outDir and outName with no separator inserted, so
// callers control their own trailing slashes and prefixes.
func ArtifactPaths(outDir, outName string) (unpruned, pruned string) {
	prefix := outDir + outName
	return prefix + "unPruned.rds", prefix + "pruned.rds"
}

// SaveArtifacts runs the processor over the edge list and persists
// both the unpruned and pruned interactomes through the store.
func SaveArtifacts(ctx context.Context, proc Processor, store ArtifactStore, edges []Edge, expr *matrix.Matrix, outDir, outName string) error {
	unpruned, pruned, err := proc.Process(ctx, edges, expr)
	if err != nil {
		return fmt.Errorf("process network: %w", err)
	}

	unprunedPath, prunedPath := ArtifactPaths(outDir, outName)
	if err := store.Save(ctx, unprunedPath, unpruned); err != nil {
		return fmt.Errorf("save unpruned interactome: %w", err)
	}
	if err := store.Save(ctx, prunedPath, pruned); err != nil {
		return fmt.Errorf("save pruned interactome: %w", err)
	}
	log.Info().Str("unpruned", unprunedPath).Str("pruned", prunedPath).
		Msgf("saved %d unpruned and %d pruned regulon(s)", len(unpruned), len(pruned))
	return nil
}
