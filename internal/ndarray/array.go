package ndarray

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"
)

// buffer is the data block shared by an owning array and every view
// derived from it. Releasing the owner nils data, which makes a stale
// view detectable instead of silently reading freed storage.
type buffer struct {
	data []byte
}

// Ndarray is a handle onto a strided N-dimensional array.
//
// Exactly one handle owns a given buffer; all others are views that share
// the buffer but carry independently owned shape/stride metadata. The
// owner must outlive its views, and a released handle must not be used
// again — both obligations are checked and surface as ErrUseAfterRelease
// or ErrDanglingView.
type Ndarray struct {
	buf     *buffer
	off     int // element offset of this handle's window into buf
	shape   Shape
	strides []int // element strides, physical order baked in
	dtype   DataType
	order   Order
	length  int
	view    bool
}

// New creates an owning array of the given shape, element kind and
// physical order. The buffer is zero-initialized. Zero extents are legal
// and yield an empty array without touching the allocator failure path.
func New(shape Shape, dtype DataType, order Order) (*Ndarray, error) {
	if !dtype.Valid() {
		return nil, fmt.Errorf("%w: kind tag %d", ErrUnsupportedKind, int(dtype))
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	a := &Ndarray{dtype: dtype, order: order}
	if err := a.restripe(shape.Clone()); err != nil {
		return nil, err
	}
	Logger().Debug("array created",
		zap.Ints("shape", a.shape),
		zap.Stringer("dtype", dtype),
		zap.Stringer("order", order))
	return a, nil
}

// Init prepares a caller-managed handle in place: the handle's metadata
// lives wherever the caller put the Ndarray value, and shape is adopted
// without copying. Strides, length and the buffer are computed exactly as
// New computes them.
func (a *Ndarray) Init(shape Shape, dtype DataType, order Order) error {
	if !dtype.Valid() {
		return fmt.Errorf("%w: kind tag %d", ErrUnsupportedKind, int(dtype))
	}
	if err := shape.Validate(); err != nil {
		return err
	}
	a.dtype = dtype
	a.order = order
	a.view = false
	a.off = 0
	return a.restripe(shape)
}

// restripe populates length, strides and a fresh buffer for an owning
// handle whose shape is settled. Both creation paths funnel through here
// so the layout recurrence lives in one place (Shape.Strides).
func (a *Ndarray) restripe(shape Shape) error {
	length := shape.NumElements()
	size := length * a.dtype.Size()
	if length < 0 || size < 0 {
		return fmt.Errorf("%w: %v element count overflows", ErrAllocation, shape)
	}
	data, err := alloc(size)
	if err != nil {
		return err
	}
	a.buf = &buffer{data: data}
	a.shape = shape
	a.strides = shape.Strides(a.order)
	a.length = length
	return nil
}

// alloc obtains a zeroed buffer, converting an out-of-memory panic from
// the runtime into ErrAllocation.
func alloc(size int) (data []byte, err error) {
	defer func() {
		if recover() != nil {
			data, err = nil, fmt.Errorf("%w: %d bytes", ErrAllocation, size)
		}
	}()
	return make([]byte, size), nil
}

// live reports whether the handle may be operated on. A nil or released
// handle yields ErrUseAfterRelease; a view whose owner has been released
// yields ErrDanglingView.
func (a *Ndarray) live() error {
	if a == nil || a.shape == nil || a.buf == nil {
		return ErrUseAfterRelease
	}
	if a.buf.data == nil && a.length > 0 {
		if a.view {
			return ErrDanglingView
		}
		return ErrUseAfterRelease
	}
	return nil
}

// Rank returns the number of dimensions.
func (a *Ndarray) Rank() int { return len(a.shape) }

// Shape returns the per-dimension extents.
func (a *Ndarray) Shape() Shape { return a.shape }

// Strides returns the per-dimension element strides.
func (a *Ndarray) Strides() []int { return a.strides }

// DType returns the element kind.
func (a *Ndarray) DType() DataType { return a.dtype }

// Order returns the physical layout the array was created with.
func (a *Ndarray) Order() Order { return a.order }

// NumElements returns the total element count (product of the shape).
func (a *Ndarray) NumElements() int { return a.length }

// ByteSize returns the size of the element window in bytes.
func (a *Ndarray) ByteSize() int { return a.length * a.dtype.Size() }

// IsView reports whether this handle shares another handle's buffer.
func (a *Ndarray) IsView() bool { return a.view }

// Released reports whether the handle has been released (or was never
// initialized).
func (a *Ndarray) Released() bool { return a.shape == nil }

// Release frees an owning handle: the data buffer and the shape/stride
// metadata are dropped and every view over the buffer becomes dangling.
// Releasing an already-released handle is a no-op and returns false.
// Calling Release on a view is misuse; the shared buffer is left alone
// and only the view's metadata is dropped.
func (a *Ndarray) Release() bool {
	if a == nil || a.shape == nil {
		return false
	}
	if a.view {
		Logger().Warn("Release called on a view, dropping metadata only",
			zap.Ints("shape", a.shape))
		a.shape, a.strides = nil, nil
		return true
	}
	Logger().Debug("array released",
		zap.Ints("shape", a.shape),
		zap.Int("bytes", a.length*a.dtype.Size()))
	a.buf.data = nil
	a.shape, a.strides = nil, nil
	return true
}

// ReleaseView frees a view's metadata and never touches the shared
// buffer. Calling it on an owning or already-released handle is a no-op
// signaling misuse; it returns false.
func (a *Ndarray) ReleaseView() bool {
	if a == nil || a.shape == nil {
		return false
	}
	if !a.view {
		Logger().Warn("ReleaseView called on an owning array",
			zap.Ints("shape", a.shape))
		return false
	}
	a.shape, a.strides = nil, nil
	return true
}

// Fill sets every element of the handle's window to value, which must be
// the Go value matching the element kind (bool, int8, ... complex128).
// The all-zero-bits pattern takes a bulk clear path; anything else is a
// per-element broadcast of the value's encoding.
func (a *Ndarray) Fill(value any) error {
	if err := a.live(); err != nil {
		return err
	}
	pat, err := scalarBytes(a.dtype, value)
	if err != nil {
		return err
	}
	es := a.dtype.Size()
	data := a.buf.data[a.off*es:]
	if allZero(pat) {
		clear(data[:a.length*es])
		return nil
	}
	for i := 0; i < a.length; i++ {
		copy(data[i*es:(i+1)*es], pat)
	}
	return nil
}

// window returns the byte slice starting at this handle's element offset.
// It runs to the end of the shared buffer, not to length*size: a strided
// view addresses elements beyond its logical length.
func (a *Ndarray) window() []byte {
	return a.buf.data[a.off*a.dtype.Size():]
}

// elems reinterprets a handle's window as a typed slice, covering every
// element reachable through the handle's strides.
func elems[T any](a *Ndarray, want DataType) []T {
	if err := a.live(); err != nil {
		panic("ndarray: " + err.Error())
	}
	if a.dtype != want {
		panic(fmt.Sprintf("ndarray: element kind is %s, not %s", a.dtype, want))
	}
	data := a.window()
	n := len(data) / want.Size()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds derive from the buffer size
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}

// AsBool interprets the data as []bool.
// Panics if the element kind is not Bool or the handle is not live.
func (a *Ndarray) AsBool() []bool { return elems[bool](a, Bool) }

// AsInt8 interprets the data as []int8.
// Panics if the element kind is not Int8 or the handle is not live.
func (a *Ndarray) AsInt8() []int8 { return elems[int8](a, Int8) }

// AsInt16 interprets the data as []int16.
// Panics if the element kind is not Int16 or the handle is not live.
func (a *Ndarray) AsInt16() []int16 { return elems[int16](a, Int16) }

// AsInt32 interprets the data as []int32.
// Panics if the element kind is not Int32 or the handle is not live.
func (a *Ndarray) AsInt32() []int32 { return elems[int32](a, Int32) }

// AsInt64 interprets the data as []int64.
// Panics if the element kind is not Int64 or the handle is not live.
func (a *Ndarray) AsInt64() []int64 { return elems[int64](a, Int64) }

// AsFloat32 interprets the data as []float32.
// Panics if the element kind is not Float32 or the handle is not live.
func (a *Ndarray) AsFloat32() []float32 { return elems[float32](a, Float32) }

// AsFloat64 interprets the data as []float64.
// Panics if the element kind is not Float64 or the handle is not live.
func (a *Ndarray) AsFloat64() []float64 { return elems[float64](a, Float64) }

// AsComplex64 interprets the data as []complex64.
// Panics if the element kind is not Complex64 or the handle is not live.
func (a *Ndarray) AsComplex64() []complex64 { return elems[complex64](a, Complex64) }

// AsComplex128 interprets the data as []complex128.
// Panics if the element kind is not Complex128 or the handle is not live.
func (a *Ndarray) AsComplex128() []complex128 { return elems[complex128](a, Complex128) }
