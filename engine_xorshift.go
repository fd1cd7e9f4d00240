package ndrand

import (
	"encoding/binary"
	"fmt"
)

// xorShiftZeroSeed replaces a zero seed: the all-zero state is a fixed point
// of the xorshift step and would lock the generator at zero forever.
const xorShiftZeroSeed uint64 = 0x9E3779B97F4A7C15

// XorShift is a minimal Engine based on the xorshift* algorithm
// (see https://en.wikipedia.org/wiki/Xorshift#xorshift*).
// It has a period of 2^64-1 and an 8-byte serialized state, making it the
// cheapest engine to snapshot and clone.
// This random number generator is deterministic in the sequence of numbers it generates.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
type XorShift struct {
	state uint64
}

// NewXorShift returns an XorShift engine seeded with seed.
// A zero seed is remapped to a fixed nonzero constant.
func NewXorShift(seed uint64) *XorShift {
	x := &XorShift{}
	x.Seed(seed)
	return x
}

// Uint64 returns the next raw value of the stream.
// It has a deterministic (i.e. constant) runtime and a high probability to be inlined by the compiler.
func (x *XorShift) Uint64() uint64 {
	s := x.state
	s ^= s >> 12
	s ^= s << 25
	s ^= s >> 27
	x.state = s
	return s * 0x2545F4914F6CDD1D
}

// Seed resets the engine to the deterministic state derived from seed.
func (x *XorShift) Seed(seed uint64) {
	if seed == 0 {
		seed = xorShiftZeroSeed
	}
	x.state = seed
}

// Clone returns an independent copy of the engine with identical state.
func (x *XorShift) Clone() Engine {
	return &XorShift{state: x.state}
}

// State serializes the engine's internal state (8 bytes, little endian).
func (x *XorShift) State() ([]byte, error) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, x.state)
	return buf, nil
}

// SetState restores a state previously obtained from State.
func (x *XorShift) SetState(buf []byte) error {
	if len(buf) != 8 {
		return fmt.Errorf("ndrand: xorshift state must be 8 bytes, got %d", len(buf))
	}
	s := binary.LittleEndian.Uint64(buf)
	if s == 0 {
		return fmt.Errorf("ndrand: xorshift state must not be zero")
	}
	x.state = s
	return nil
}
