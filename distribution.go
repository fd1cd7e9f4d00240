package ndrand

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution converts raw engine output into values with a target
// statistical shape. Rand draws one value, consuming raw output from the
// engine the distribution was bound to at construction. Reset discards
// any entropy the transform has buffered internally; the draw cache calls
// it after rewinding the engine, because a buffering transform would
// otherwise replay stale state from before the rewind.
//
// The distributions shipped with this package are stateless between draws
// and implement Reset as a no-op.
type Distribution[T any] interface {
	Rand() T
	Reset()
}

// uniformReal samples float64 values uniformly from [lower, upper).
type uniformReal struct {
	dist distuv.Uniform
}

func newUniformReal(lower, upper float64, eng Engine) *uniformReal {
	return &uniformReal{dist: distuv.Uniform{Min: lower, Max: upper, Src: eng}}
}

func (u *uniformReal) Rand() float64 { return u.dist.Rand() }

func (u *uniformReal) Reset() {}

// normal samples float64 values from a Gaussian with the given mean and
// standard deviation, via gonum's ziggurat sampler. A single draw may
// consume more than one raw engine value.
type normal struct {
	dist distuv.Normal
}

func newNormal(mean, stddev float64, eng Engine) *normal {
	return &normal{dist: distuv.Normal{Mu: mean, Sigma: stddev, Src: eng}}
}

func (n *normal) Rand() float64 { return n.dist.Rand() }

func (n *normal) Reset() {}

// uniformInt samples int64 values uniformly from [lower, upper).
// Uint64N compensates for modulo bias by rejection, so a single draw may
// consume more than one raw engine value.
type uniformInt struct {
	lower int64
	span  uint64
	rnd   *rand.Rand
}

func newUniformInt(lower, upper int64, eng Engine) *uniformInt {
	return &uniformInt{lower: lower, span: uint64(upper - lower), rnd: rand.New(eng)}
}

func (u *uniformInt) Rand() int64 { return u.lower + int64(u.rnd.Uint64N(u.span)) }

func (u *uniformInt) Reset() {}
