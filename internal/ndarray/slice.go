package ndarray

import (
	"fmt"

	"go.uber.org/zap"
)

// Slice selects elements along one axis: the half-open range
// [Start, End) taken every Step elements. Step must be positive.
// Selectors built with At additionally drop the axis from the result.
type Slice struct {
	Start, End, Step int
	elide            bool
}

// R constructs a range selector over [start, end) with the given step.
func R(start, end, step int) Slice {
	return Slice{Start: start, End: end, Step: step}
}

// At constructs a point selector: it offsets the view to index i along
// the axis and drops the axis from the result, reducing apparent rank.
func At(i int) Slice {
	return Slice{Start: i, End: i + 1, Step: 1, elide: true}
}

func (s Slice) validate(axis int) error {
	if s.Step < 1 {
		return fmt.Errorf("%w: non-positive step %d at axis %d", ErrInvalidShape, s.Step, axis)
	}
	if s.Start < 0 || s.End < s.Start {
		return fmt.Errorf("%w: slice [%d,%d) at axis %d", ErrInvalidShape, s.Start, s.End, axis)
	}
	return nil
}

// extent returns the number of elements the selector keeps, rounding up:
// [0,5) with step 2 selects indices 0, 2, 4 and has extent 3.
func (s Slice) extent() int {
	return (s.End - s.Start + s.Step - 1) / s.Step
}

// Index computes the flat element offset Σ idx[k]*strides[k] of a single
// element. The result indexes the handle's As* windows directly and is
// identical under both orders: physical layout is already baked into the
// strides. One index per axis is required.
func (a *Ndarray) Index(idx ...int) (int, error) {
	if err := a.live(); err != nil {
		return 0, err
	}
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: %d indices for rank %d", ErrInvalidShape, len(idx), len(a.shape))
	}
	offset := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, fmt.Errorf("%w: index %d out of range [0,%d) at axis %d", ErrInvalidShape, i, a.shape[k], k)
		}
		offset += i * a.strides[k]
	}
	return offset, nil
}

// Slice constructs a view selecting a sub-array. One selector per axis is
// required. Range selectors keep their axis with extent rounded up and
// stride scaled by the step; point selectors (At) drop theirs, so a mix
// of the two realizes slicing and axis elision in a single operation.
// The result is always a view and never owns the buffer.
func (a *Ndarray) Slice(sel ...Slice) (*Ndarray, error) {
	if err := a.live(); err != nil {
		return nil, err
	}
	if len(sel) != len(a.shape) {
		return nil, fmt.Errorf("%w: %d selectors for rank %d", ErrInvalidShape, len(sel), len(a.shape))
	}
	off := a.off
	shape := make(Shape, 0, len(sel))
	strides := make([]int, 0, len(sel))
	for i, s := range sel {
		if err := s.validate(i); err != nil {
			return nil, err
		}
		off += s.Start * a.strides[i]
		if s.elide {
			continue
		}
		shape = append(shape, s.extent())
		strides = append(strides, a.strides[i]*s.Step)
	}
	v := &Ndarray{
		buf:     a.buf,
		off:     off,
		shape:   shape,
		strides: strides,
		dtype:   a.dtype,
		order:   a.order,
		length:  shape.NumElements(),
		view:    true,
	}
	Logger().Debug("slice view created",
		zap.Ints("shape", v.shape),
		zap.Int("offset", v.off))
	return v, nil
}
