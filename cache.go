package ndrand

// drawCache serves one pseudorandom value per logical array position,
// regardless of the order positions are requested in. It maps a
// multi-dimensional index to its linear draw position via row-major
// strides and keeps a cursor over how many draws the engine has produced
// since the last rewind. Sequential access advances the engine by one
// draw per call; a backward jump restores the engine from the snapshot
// taken at construction and replays forward to the requested position,
// so re-reading any index yields the value a full row-major
// materialization would have produced there.
//
// The accessor looks like a pure function of the index from the outside
// but mutates engine, distribution and cursor state internally. A single
// cache must therefore only ever be driven by one goroutine.
type drawCache[T any] struct {
	strides []int
	eng     Engine
	dist    Distribution[T]
	// snapshot holds the engine state at construction time. Copies of the
	// cache share the same buffer; it is never mutated after construction.
	snapshot []byte
	// cursor is the linear position of the last draw produced since the
	// last rewind, -1 before the first draw.
	cursor int
}

// newDrawCache wraps eng and dist for the given shape. The cache takes
// ownership of both: after construction the caller must not advance eng
// directly, or replay would diverge from the snapshot.
func newDrawCache[T any](eng Engine, dist Distribution[T], shape []int) (*drawCache[T], error) {
	snapshot, err := eng.State()
	if err != nil {
		return nil, err
	}
	return &drawCache[T]{
		strides:  rowMajorStrides(shape),
		eng:      eng,
		dist:     dist,
		snapshot: snapshot,
		cursor:   -1,
	}, nil
}

// element returns the value at the given multi-dimensional index.
// Index components must be within the shape's extents; out-of-range
// indices are not checked. Repeated reads of the same index return the
// same value. Strictly sequential row-major access is O(1) per call;
// any jump costs one draw per skipped position, plus a snapshot restore
// when jumping backward.
func (c *drawCache[T]) element(idx []int) T {
	target := 0
	for k, i := range idx {
		target += i * c.strides[k]
	}
	c.cursor++
	if target == c.cursor {
		// the next sequential draw is requested, advance by one
		return c.dist.Rand()
	}
	if target < c.cursor {
		// an earlier position is requested: rewind the engine to its
		// construction-time state and replay from the start
		if err := c.eng.SetState(c.snapshot); err != nil {
			// the buffer came from this engine's own State call, so a
			// failed restore is a programming error, not a runtime condition
			panic(err)
		}
		c.dist.Reset()
		c.cursor = 0
	}
	for ; c.cursor < target; c.cursor++ {
		// discard draws until the cursor and the requested position match up
		c.dist.Rand()
	}
	return c.dist.Rand()
}
