package ndarray

import "fmt"

// Order is the physical memory layout of an array.
type Order int

// Supported layouts.
const (
	// RowMajor stores the last axis contiguously (C order).
	RowMajor Order = iota
	// ColMajor stores the first axis contiguously (Fortran order).
	ColMajor
)

// String returns a human-readable layout name.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// Shape represents the per-dimension extents of an array.
type Shape []int

// NumElements returns the total number of elements: the product of all
// extents. A rank-0 shape holds a single scalar element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is non-negative. Zero extents are
// legal and produce empty arrays.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: negative extent %d at axis %d", ErrInvalidShape, dim, i)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides computes the element strides of a freshly laid out array of
// this shape under the given order.
//
// RowMajor: strides[i] = product of extents after axis i (last axis
// contiguous). ColMajor: strides[i] = product of extents before axis i
// (first axis contiguous). This is the only place the two layouts are
// told apart; every creation path must go through it.
func (s Shape) Strides(order Order) []int {
	strides := make([]int, len(s))
	if order == ColMajor {
		acc := 1
		for i := 0; i < len(s); i++ {
			strides[i] = acc
			acc *= s[i]
		}
		return strides
	}
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= s[i]
	}
	return strides
}
