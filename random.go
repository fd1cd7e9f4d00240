// Package ndrand provides lazily evaluated N-dimensional arrays of
// pseudorandom numbers. A generator built by Rand, RandInt or RandN
// behaves as if a dense array of the requested shape had been filled
// from the stream in row-major order, but elements are drawn on demand:
// each position consumes exactly one draw from the underlying stream no
// matter how often or in what order it is read, and re-reading a
// position returns the same value. Out-of-order access is served by
// rewinding the stream to a snapshot taken at construction and
// replaying it, so sequential row-major reads stay O(1) per element.
package ndrand

// pickEngine resolves the optional trailing engine argument of the
// public entry points.
func pickEngine(engine []Engine) Engine {
	if len(engine) > 0 && engine[0] != nil {
		return engine[0]
	}
	return DefaultEngine()
}

// newRandomGenerator binds a fresh draw cache to a Generator of the given
// shape. The cache operates on a private clone of eng taken now; eng
// itself is then advanced by one raw step per element, so the next
// generator built on the same engine occupies a disjoint slice of its
// stream. bind constructs the distribution over the cache's private
// engine.
func newRandomGenerator[T any](eng Engine, bind func(Engine) Distribution[T], shape []int) (*Generator[T], error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	own := eng.Clone()
	cache, err := newDrawCache(own, bind(own), shape)
	if err != nil {
		return nil, err
	}
	g, err := NewGenerator(cache.element, shape)
	if err != nil {
		return nil, err
	}
	// reserve this generator's slice of the shared stream
	for n := numElements(shape); n > 0; n-- {
		eng.Uint64()
	}
	return g, nil
}

// Rand returns a lazy array of the given shape containing uniformly
// distributed float64 values in [lower, upper).
//
// If no engine is given, the process-wide default engine is used and
// advanced by product(shape) raw steps as a side effect; successive
// calls therefore never reuse the same stream positions.
// Returns ErrInvalidShape if any extent is not positive.
func Rand(shape []int, lower, upper float64, engine ...Engine) (*Generator[float64], error) {
	eng := pickEngine(engine)
	return newRandomGenerator(eng, func(own Engine) Distribution[float64] {
		return newUniformReal(lower, upper, own)
	}, shape)
}

// RandInt returns a lazy array of the given shape containing uniformly
// distributed int64 values in [lower, upper), upper exclusive.
//
// If no engine is given, the process-wide default engine is used and
// advanced by product(shape) raw steps as a side effect.
// Returns ErrInvalidShape if any extent is not positive and
// ErrInvalidInterval if upper <= lower.
func RandInt(shape []int, lower, upper int64, engine ...Engine) (*Generator[int64], error) {
	if upper <= lower {
		return nil, ErrInvalidInterval
	}
	eng := pickEngine(engine)
	return newRandomGenerator(eng, func(own Engine) Distribution[int64] {
		return newUniformInt(lower, upper, own)
	}, shape)
}

// RandN returns a lazy array of the given shape containing values sampled
// from the normal (Gaussian) distribution with the given mean and
// standard deviation.
//
// If no engine is given, the process-wide default engine is used and
// advanced by product(shape) raw steps as a side effect.
// Returns ErrInvalidShape if any extent is not positive and
// ErrInvalidStdDev if stddev is not positive.
func RandN(shape []int, mean, stddev float64, engine ...Engine) (*Generator[float64], error) {
	if stddev <= 0 {
		return nil, ErrInvalidStdDev
	}
	eng := pickEngine(engine)
	return newRandomGenerator(eng, func(own Engine) Distribution[float64] {
		return newNormal(mean, stddev, own)
	}, shape)
}
