// Package ndarray is the public API of the strided N-dimensional array
// runtime.
//
// The package re-exports the core container defined in internal/ndarray:
//   - Ndarray: a handle onto a strided buffer, owning or view
//   - Shape, Order, DataType: layout and element-kind metadata
//   - Slice: per-axis range/point selectors for view construction
//   - CopyData, Assembler: the generalized cross-layout copy engine
//
// Example:
//
//	a, err := ndarray.New(ndarray.Shape{3, 2}, ndarray.Int64, ndarray.RowMajor)
//	if err != nil { ... }
//	defer a.Release()
//	v, err := a.Slice(ndarray.At(1), ndarray.R(0, 2, 1))  // row 1 as a rank-1 view
//	defer v.ReleaseView()
package ndarray

import (
	"github.com/AjaySDwivedi1/pyccel/internal/ndarray"
	"go.uber.org/zap"
)

// Ndarray is a handle onto a strided N-dimensional array. Exactly one
// handle owns a buffer; views share it under independent metadata.
type Ndarray = ndarray.Ndarray

// Shape represents the per-dimension extents of an array.
type Shape = ndarray.Shape

// Order is the physical memory layout of an array.
type Order = ndarray.Order

// Layout constants.
const (
	RowMajor Order = ndarray.RowMajor
	ColMajor Order = ndarray.ColMajor
)

// DataType is the runtime tag for an array's element kind.
type DataType = ndarray.DataType

// Element kind constants.
const (
	Bool       DataType = ndarray.Bool
	Int8       DataType = ndarray.Int8
	Int16      DataType = ndarray.Int16
	Int32      DataType = ndarray.Int32
	Int64      DataType = ndarray.Int64
	Float32    DataType = ndarray.Float32
	Float64    DataType = ndarray.Float64
	Complex64  DataType = ndarray.Complex64
	Complex128 DataType = ndarray.Complex128
)

// Slice selects elements along one axis.
type Slice = ndarray.Slice

// Assembler materializes a destination array from smaller pieces,
// owning the running offset between appends.
type Assembler = ndarray.Assembler

// Errors reported by the runtime; match with errors.Is.
var (
	ErrInvalidShape    = ndarray.ErrInvalidShape
	ErrAllocation      = ndarray.ErrAllocation
	ErrUnsupportedKind = ndarray.ErrUnsupportedKind
	ErrKindMismatch    = ndarray.ErrKindMismatch
	ErrUseAfterRelease = ndarray.ErrUseAfterRelease
	ErrDanglingView    = ndarray.ErrDanglingView
)

// New creates an owning array of the given shape, element kind and
// physical order, with a zero-initialized buffer.
func New(shape Shape, dtype DataType, order Order) (*Ndarray, error) {
	return ndarray.New(shape, dtype, order)
}

// R constructs a range selector over [start, end) with the given step.
func R(start, end, step int) Slice {
	return ndarray.R(start, end, step)
}

// At constructs a point selector that indexes an axis and drops it from
// the resulting view.
func At(i int) Slice {
	return ndarray.At(i)
}

// CopyData copies elements from src into dest, reconciling differing
// shapes, ranks and physical orders. See internal/ndarray.CopyData.
func CopyData(dest, src *Ndarray) error {
	return ndarray.CopyData(dest, src)
}

// NewAssembler starts assembling into dest at logical position zero.
func NewAssembler(dest *Ndarray) (*Assembler, error) {
	return ndarray.NewAssembler(dest)
}

// StridesFromBytes converts an external array's byte-granularity strides
// to element-granularity strides.
func StridesFromBytes(byteStrides []int64, elemSize int) []int {
	return ndarray.StridesFromBytes(byteStrides, elemSize)
}

// ShapeFromInt64 converts an external fixed-width shape to a Shape.
func ShapeFromInt64(dims []int64) Shape {
	return ndarray.ShapeFromInt64(dims)
}

// SetLogger configures the runtime's logger. The default is a no-op
// logger; lifecycle events are logged at debug level and lifetime
// violations at warn level.
func SetLogger(l *zap.Logger) {
	ndarray.SetLogger(l)
}
