package ndrand

import "slices"

// Generator is a lazily evaluated, shape-carrying array expression: an
// N-dimensional array whose elements are produced on demand by a
// per-element function instead of being stored. Elements may be read in
// any order and any number of times; whether repeated reads are cheap or
// even yield identical values is a property of the element function, not
// of the Generator (the random generators in this package guarantee
// identical values via their draw cache).
type Generator[T any] struct {
	f     func(idx []int) T
	shape []int
}

// NewGenerator returns a generator of the given shape whose element at
// index idx is f(idx). The element function is called with exactly
// len(shape) index components, each within the corresponding extent.
// Returns ErrInvalidShape if any extent is not positive. An empty shape
// denotes a scalar with a single element at the empty index.
func NewGenerator[T any](f func(idx []int) T, shape []int) (*Generator[T], error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	return &Generator[T]{f: f, shape: slices.Clone(shape)}, nil
}

// Shape returns a copy of the generator's shape.
func (g *Generator[T]) Shape() []int {
	return slices.Clone(g.shape)
}

// Rank returns the number of dimensions.
func (g *Generator[T]) Rank() int {
	return len(g.shape)
}

// Size returns the total number of elements.
func (g *Generator[T]) Size() int {
	return numElements(g.shape)
}

// At returns the element at the given index components.
// Components out of range invoke the element function with an invalid
// index; the result is undefined.
func (g *Generator[T]) At(idx ...int) T {
	return g.f(idx)
}

// Element returns the element at the given index slice. Equivalent to At.
func (g *Generator[T]) Element(idx []int) T {
	return g.f(idx)
}

// Materialize evaluates every element once, in row-major order, into a
// dense slice. For the random generators in this package this is the
// O(1)-per-element fast path.
func (g *Generator[T]) Materialize() []T {
	out := make([]T, g.Size())
	idx := make([]int, len(g.shape))
	for k := range out {
		out[k] = g.f(idx)
		increment(idx, g.shape)
	}
	return out
}

// increment advances idx to the next row-major position, wrapping each
// dimension at its extent.
func increment(idx, shape []int) {
	for k := len(idx) - 1; k >= 0; k-- {
		idx[k]++
		if idx[k] < shape[k] {
			return
		}
		idx[k] = 0
	}
}

// Map returns a generator of the same shape whose elements are op applied
// to g's elements. The wrapped generator may be read out of order or
// repeatedly, like any other.
func Map[T, U any](g *Generator[T], op func(T) U) *Generator[U] {
	return &Generator[U]{
		f:     func(idx []int) U { return op(g.f(idx)) },
		shape: g.shape,
	}
}
