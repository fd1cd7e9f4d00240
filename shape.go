package ndrand

import "fmt"

// validateShape rejects shapes with non-positive extents. A zero extent
// would corrupt the stride computation silently, so construction fails
// fast instead of misbehaving deep inside element access.
func validateShape(shape []int) error {
	for k, n := range shape {
		if n <= 0 {
			return fmt.Errorf("%w: extent %d at dimension %d", ErrInvalidShape, n, k)
		}
	}
	return nil
}

// rowMajorStrides computes strides for a row-major layout: the last
// dimension has stride 1 and each preceding stride is the product of the
// following dimension's stride and extent.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	size := 1
	for k := len(shape); k != 0; k-- {
		strides[k-1] = size
		size = strides[k-1] * shape[k-1]
	}
	return strides
}

// numElements returns the product of the extents. The empty shape
// denotes a scalar and has one element.
func numElements(shape []int) int {
	size := 1
	for _, n := range shape {
		size *= n
	}
	return size
}
