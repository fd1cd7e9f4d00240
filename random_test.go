package ndrand

import (
	"errors"
	"testing"

	set3 "github.com/TomTonic/Set3"
	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestRandMatchesReferenceStream(t *testing.T) {
	g, err := Rand([]int{4, 5}, 0, 1, NewPCG(testSeed))
	require.NoError(t, err)
	assert.Equal(t, referenceDraws(testSeed, 20), g.Materialize())
}

func TestRandBounds(t *testing.T) {
	g, err := Rand([]int{1000}, -2.5, 7.5, NewPCG(testSeed))
	require.NoError(t, err)
	for i, v := range g.Materialize() {
		if v < -2.5 || v >= 7.5 {
			t.Errorf("value %d out of [-2.5, 7.5): %v", i, v)
		}
	}
}

// Two arrays built in sequence on one engine must occupy disjoint slices
// of its stream: the first matches a fresh reference stream, the second
// matches a reference stream pre-advanced by the first array's size.
func TestSequentialArraysDrawDisjointSlices(t *testing.T) {
	eng := NewPCG(testSeed)
	g1, err := Rand([]int{2, 3}, 0, 1, eng)
	require.NoError(t, err)
	g2, err := Rand([]int{4}, 0, 1, eng)
	require.NoError(t, err)

	want := referenceDraws(testSeed, 10)
	v1 := g1.Materialize()
	v2 := g2.Materialize()
	assert.Equal(t, want[:6], v1, "first array must start at stream position 0")
	assert.Equal(t, want[6:], v2, "second array must start at stream position 6")

	// no value may appear twice across the two arrays
	seen := set3.EmptyWithCapacity[float64](16)
	for _, v := range v1 {
		seen.Add(v)
	}
	for _, v := range v2 {
		seen.Add(v)
	}
	assert.EqualValues(t, 10, seen.Size(), "overlapping draws between arrays")
}

func TestDefaultEngineReseedReproduces(t *testing.T) {
	Seed(testSeed)
	g1, err := Rand([]int{3, 3}, 0, 1)
	require.NoError(t, err)
	first := g1.Materialize()

	Seed(testSeed)
	g2, err := Rand([]int{3, 3}, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, first, g2.Materialize(), "same seed must reproduce the same array")

	// without a reseed the next array occupies a fresh stream slice
	g3, err := Rand([]int{3, 3}, 0, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first, g3.Materialize(), "arrays without reseed must differ")
}

func TestRandIntRangeAndDeterminism(t *testing.T) {
	g, err := RandInt([]int{100, 10}, -3, 12, NewPCG(testSeed))
	require.NoError(t, err)

	seen := set3.EmptyWithCapacity[int64](32)
	for i, v := range g.Materialize() {
		if v < -3 || v >= 12 {
			t.Errorf("value %d out of [-3, 12): %d", i, v)
		}
		seen.Add(v)
	}
	// 1000 draws over 15 buckets hit every bucket with overwhelming probability
	assert.EqualValues(t, 15, seen.Size(), "some values of [-3, 12) never drawn")

	h, err := RandInt([]int{100, 10}, -3, 12, NewPCG(testSeed))
	require.NoError(t, err)
	assert.Equal(t, g.Materialize(), h.Materialize(), "same seed must reproduce the same array")
}

func TestRandIntOrderIndependence(t *testing.T) {
	shape := []int{6, 6}
	g, err := RandInt(shape, 0, 1_000_000, NewPCG(testSeed))
	require.NoError(t, err)
	h, err := RandInt(shape, 0, 1_000_000, NewPCG(testSeed))
	require.NoError(t, err)

	want := g.Materialize()
	// read h backwards; every element must still match the row-major values
	for i := shape[0] - 1; i >= 0; i-- {
		for j := shape[1] - 1; j >= 0; j-- {
			if got := h.At(i, j); got != want[i*shape[1]+j] {
				t.Errorf("element [%d %d]: got %d, want %d", i, j, got, want[i*shape[1]+j])
			}
		}
	}
}

func TestRandNMatchesReferenceStream(t *testing.T) {
	g, err := RandN([]int{5, 5}, 1.5, 0.5, NewPCG(testSeed))
	require.NoError(t, err)

	ref := NewPCG(testSeed)
	dist := distuv.Normal{Mu: 1.5, Sigma: 0.5, Src: ref}
	want := make([]float64, 25)
	for i := range want {
		want[i] = dist.Rand()
	}
	assert.Equal(t, want, g.Materialize())
}

func TestRandNSampleStatistics(t *testing.T) {
	const mean, stddev = 3.0, 2.0
	g, err := RandN([]int{200_000}, mean, stddev, NewPCG(testSeed))
	require.NoError(t, err)
	sample := g.Materialize()

	m, err := stats.Mean(sample)
	require.NoError(t, err)
	s, err := stats.StandardDeviation(sample)
	require.NoError(t, err)

	assert.InDelta(t, mean, m, 0.05, "sample mean")
	assert.InDelta(t, stddev, s, 0.05, "sample standard deviation")
}

func TestEntryPointValidation(t *testing.T) {
	if _, err := Rand([]int{2, 0}, 0, 1); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Rand with zero extent: expected ErrInvalidShape, got %v", err)
	}
	if _, err := RandInt([]int{2}, 5, 5); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("RandInt with empty interval: expected ErrInvalidInterval, got %v", err)
	}
	if _, err := RandInt([]int{2}, 5, 3); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("RandInt with inverted interval: expected ErrInvalidInterval, got %v", err)
	}
	if _, err := RandN([]int{2}, 0, 0); !errors.Is(err, ErrInvalidStdDev) {
		t.Errorf("RandN with zero stddev: expected ErrInvalidStdDev, got %v", err)
	}
}

func TestExplicitEngineLeavesDefaultUntouched(t *testing.T) {
	Seed(testSeed)
	want, err := Rand([]int{2, 2}, 0, 1)
	require.NoError(t, err)
	wantVals := want.Materialize()

	Seed(testSeed)
	_, err = Rand([]int{8, 8}, 0, 1, NewPCG(0xFEED))
	require.NoError(t, err)
	got, err := Rand([]int{2, 2}, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, wantVals, got.Materialize(), "explicit-engine call advanced the default engine")
}

func BenchmarkMaterializeSequential(b *testing.B) {
	g, err := Rand([]int{100, 100}, 0, 1, NewPCG(testSeed))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for range b.N {
		_ = g.Materialize()
	}
}

func BenchmarkReverseOrderAccess(b *testing.B) {
	g, err := Rand([]int{32, 32}, 0, 1, NewPCG(testSeed))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for range b.N {
		for i := 31; i >= 0; i-- {
			for j := 31; j >= 0; j-- {
				_ = g.At(i, j)
			}
		}
	}
}
