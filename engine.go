package ndrand

import (
	"math/rand/v2"
	"sync"
)

// Engine is a deterministic, seedable source of raw pseudorandom values.
// It extends math/rand/v2's Source (the source type gonum's distuv
// samplers consume) with the operations the draw cache needs: cloning,
// so a generator can privatize the stream state it was handed, and full
// state serialization, so the stream can be rewound to an earlier point
// and replayed.
// An Engine is not thread-safe; each instance must be driven by a single
// goroutine at a time.
type Engine interface {
	rand.Source

	// Seed resets the engine to the deterministic state derived from seed.
	Seed(seed uint64)

	// Clone returns an independent engine with identical internal state.
	// Advancing the clone does not advance the original and vice versa.
	Clone() Engine

	// State serializes the engine's full internal state into an opaque buffer.
	State() ([]byte, error)

	// SetState restores the engine to a state previously obtained from State.
	// The buffer must originate from the same engine type.
	SetState(buf []byte) error
}

// pcgSeedStream is the second seed word fed to the underlying PCG when only
// one word is supplied. An arbitrary odd constant; it selects the PCG stream.
const pcgSeedStream uint64 = 0xda3e39cb94b95bdb

// PCG is the default Engine, backed by math/rand/v2's 128-bit PCG
// generator. Its state serializes to 16 bytes.
// This random number generator is deterministic in the sequence of numbers it generates.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
type PCG struct {
	src rand.PCG
}

// NewPCG returns a PCG engine seeded with seed.
func NewPCG(seed uint64) *PCG {
	p := &PCG{}
	p.Seed(seed)
	return p
}

// Uint64 returns the next raw value of the stream.
func (p *PCG) Uint64() uint64 {
	return p.src.Uint64()
}

// Seed resets the engine to the deterministic state derived from seed.
func (p *PCG) Seed(seed uint64) {
	p.src.Seed(seed, pcgSeedStream)
}

// Clone returns an independent copy of the engine with identical state.
func (p *PCG) Clone() Engine {
	c := p.src
	return &PCG{src: c}
}

// State serializes the engine's internal state (16 bytes).
func (p *PCG) State() ([]byte, error) {
	return p.src.MarshalBinary()
}

// SetState restores a state previously obtained from State.
func (p *PCG) SetState(buf []byte) error {
	return p.src.UnmarshalBinary(buf)
}

var (
	defaultEngineOnce sync.Once
	defaultEngine     *PCG
)

// DefaultEngine returns the process-wide shared engine, creating it on
// first use. Every ndrand entry point that is not given an explicit
// engine draws from (and advances) this instance, so arrays built on it
// in sequence consume disjoint slices of its stream. Reseed it with Seed.
// Access to the default engine is not synchronized; callers that build
// generators from multiple goroutines must pass explicit private engines.
func DefaultEngine() Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewPCG(0)
	})
	return defaultEngine
}

// Seed reseeds the process-wide default engine. Last writer wins; arrays
// constructed before the call keep the stream state they captured.
func Seed(seed uint64) {
	DefaultEngine().Seed(seed)
}
