package scoring

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pisces-labs/masterreg/internal/matrix"
)

func bootstrapFixture(t *testing.T) (*matrix.Matrix, Clustering) {
	t.Helper()
	// HI is strongly up in class a, LO strongly up in class b, MID is
	// flat noise.
	m := activityMatrix(t,
		[]string{"HI", "LO", "MID"},
		[]string{"a1", "a2", "a3", "a4", "b1", "b2", "b3", "b4"},
		[]float64{
			10, 11, 12, 13, 1, 2, 3, 4,
			1, 2, 3, 4, 10, 11, 12, 13,
			5, 5.5, 4.5, 5, 5.2, 4.8, 5.1, 4.9,
		})
	labels := Clustering{
		"a1": "a", "a2": "a", "a3": "a", "a4": "a",
		"b1": "b", "b2": "b", "b3": "b", "b4": "b",
	}
	return m, labels
}

func TestBootstrapTTest_Direction(t *testing.T) {
	m, labels := bootstrapFixture(t)

	lists, err := BootstrapTTest(context.Background(), m, labels,
		WithIterations(50), WithSeed(7))
	require.NoError(t, err)
	require.Len(t, lists, 2)

	classA := lists["a"]
	require.Len(t, classA, 3)
	assert.Equal(t, "HI", classA[0].Protein, "HI must rank first for its own class")
	assert.Greater(t, classA[0].Score, 0.0)
	assert.Equal(t, "LO", classA[2].Protein)
	assert.Less(t, classA[2].Score, 0.0)

	classB := lists["b"]
	assert.Equal(t, "LO", classB[0].Protein)
	assert.Greater(t, classB[0].Score, 0.0)
}

func TestBootstrapTTest_DeterministicForSeed(t *testing.T) {
	m, labels := bootstrapFixture(t)

	first, err := BootstrapTTest(context.Background(), m, labels,
		WithIterations(25), WithSeed(99), WithWorkers(4))
	require.NoError(t, err)
	second, err := BootstrapTTest(context.Background(), m, labels,
		WithIterations(25), WithSeed(99), WithWorkers(1))
	require.NoError(t, err)

	assert.Equal(t, first, second, "results must not depend on worker scheduling")

	other, err := BootstrapTTest(context.Background(), m, labels,
		WithIterations(25), WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestBootstrapTTest_OwnSizeResample(t *testing.T) {
	// Unequal class sizes, so the reference resample size actually
	// differs between the two modes.
	m := activityMatrix(t,
		[]string{"HI", "MID"},
		[]string{"a1", "a2", "a3", "b1", "b2", "b3", "b4", "b5"},
		[]float64{
			10, 11, 12, 1, 2, 3, 4, 5,
			5, 5.5, 4.5, 5.2, 4.8, 5.1, 4.9, 5,
		})
	labels := Clustering{
		"a1": "a", "a2": "a", "a3": "a",
		"b1": "b", "b2": "b", "b3": "b", "b4": "b", "b5": "b",
	}

	balanced, err := BootstrapTTest(context.Background(), m, labels,
		WithIterations(25), WithSeed(3))
	require.NoError(t, err)
	ownSize, err := BootstrapTTest(context.Background(), m, labels,
		WithIterations(25), WithSeed(3), WithOwnSizeResample())
	require.NoError(t, err)

	// Same direction either way for a clear separation, but different
	// draws, so the magnitudes differ.
	assert.Equal(t, "HI", balanced["a"][0].Protein)
	assert.Equal(t, "HI", ownSize["a"][0].Protein)
	assert.NotEqual(t, balanced, ownSize)
}

func TestBootstrapTTest_SingleClass(t *testing.T) {
	m := activityMatrix(t, []string{"A"}, []string{"s1", "s2"}, []float64{1, 2})
	_, err := BootstrapTTest(context.Background(), m, Clustering{"s1": "x", "s2": "x"})
	require.ErrorIs(t, err, ErrDegenerateGrouping)
}

func TestBootstrapTTest_UncoveredColumn(t *testing.T) {
	m := activityMatrix(t, []string{"A"}, []string{"s1", "s2"}, []float64{1, 2})
	_, err := BootstrapTTest(context.Background(), m, Clustering{"s1": "x"})
	require.ErrorIs(t, err, matrix.ErrAlignment)
}

func TestBootstrapTTest_Cancellation(t *testing.T) {
	m, labels := bootstrapFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BootstrapTTest(ctx, m, labels, WithIterations(25))
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkBootstrapTTest(b *testing.B) {
	proteins := 50
	samples := 40
	rows := make([]string, proteins)
	for i := range rows {
		rows[i] = fmt.Sprintf("P%d", i)
	}
	cols := make([]string, samples)
	labels := make(Clustering, samples)
	for j := range cols {
		cols[j] = fmt.Sprintf("S%d", j)
		labels[cols[j]] = fmt.Sprintf("c%d", j%2)
	}
	data := make([]float64, proteins*samples)
	for i := range data {
		data[i] = rand.NormFloat64()
	}
	m, err := matrix.New(rows, cols, data)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		_, _ = BootstrapTTest(context.Background(), m, labels, WithIterations(20))
	}
}
