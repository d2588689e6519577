package ndarray

import (
	"fmt"

	"go.uber.org/zap"
)

// wrapOffset maps a linear position to an element offset through the
// array's strides, decomposing p into a coordinate from the last axis
// inward. Coordinates wrap modulo the array's own extents, so a position
// past the array's length re-enters it; this is what lets a smaller
// source tile across a larger destination.
func wrapOffset(p int, shape Shape, strides []int) int {
	off := 0
	prod := 1
	for k := len(shape) - 1; k >= 0; k-- {
		off += (p / prod % shape[k]) * strides[k]
		prod *= shape[k]
	}
	return off
}

// CopyData copies elements from src into dest one at a time, reconciling
// differing shapes, ranks and physical orders.
//
// For every linear position p in [0, dest.NumElements()), p is decomposed
// into a coordinate separately against each array's own shape and mapped
// through that array's strides. Copying between two arrays of the same
// logical shape but different orders therefore preserves logical
// contents while redistributing physical storage, and a smaller src is
// tiled across dest along mismatched axes. The element kinds must match.
func CopyData(dest, src *Ndarray) error {
	if err := dest.live(); err != nil {
		return fmt.Errorf("copy destination: %w", err)
	}
	if err := src.live(); err != nil {
		return fmt.Errorf("copy source: %w", err)
	}
	if dest.dtype != src.dtype {
		return fmt.Errorf("%w: copy %s into %s", ErrKindMismatch, src.dtype, dest.dtype)
	}
	if dest.length == 0 {
		return nil
	}
	if src.length == 0 {
		return fmt.Errorf("%w: cannot tile an empty source", ErrInvalidShape)
	}
	es := dest.dtype.Size()
	db := dest.window()
	sb := src.window()
	for p := 0; p < dest.length; p++ {
		so := wrapOffset(p, src.shape, src.strides)
		do := wrapOffset(p, dest.shape, dest.strides)
		copy(db[do*es:(do+1)*es], sb[so*es:(so+1)*es])
	}
	return nil
}

// Assembler materializes a destination array from a sequence of smaller
// arrays. It owns the running element offset successive pieces land at,
// so callers no longer thread that state between copy calls themselves.
type Assembler struct {
	dest *Ndarray
	off  int
}

// NewAssembler starts assembling into dest at logical position zero.
func NewAssembler(dest *Ndarray) (*Assembler, error) {
	if err := dest.live(); err != nil {
		return nil, fmt.Errorf("assembly destination: %w", err)
	}
	return &Assembler{dest: dest}, nil
}

// Offset returns the number of elements appended so far.
func (as *Assembler) Offset() int { return as.off }

// Append copies src's elements into dest's logical positions
// [Offset(), Offset()+src.NumElements()) and advances the offset. The
// positions are logical, decomposed against dest's own shape, so an
// appended row lands at the same coordinates in a column-major
// destination as in a row-major one.
func (as *Assembler) Append(src *Ndarray) error {
	dest := as.dest
	if err := dest.live(); err != nil {
		return fmt.Errorf("assembly destination: %w", err)
	}
	if err := src.live(); err != nil {
		return fmt.Errorf("assembly source: %w", err)
	}
	if dest.dtype != src.dtype {
		return fmt.Errorf("%w: append %s into %s", ErrKindMismatch, src.dtype, dest.dtype)
	}
	if src.length == 0 {
		return nil
	}
	if as.off+src.length > dest.length {
		return fmt.Errorf("%w: appending %d elements at offset %d exceeds destination length %d",
			ErrInvalidShape, src.length, as.off, dest.length)
	}
	es := dest.dtype.Size()
	db := dest.window()
	sb := src.window()
	for p := 0; p < src.length; p++ {
		so := wrapOffset(p, src.shape, src.strides)
		do := wrapOffset(as.off+p, dest.shape, dest.strides)
		copy(db[do*es:(do+1)*es], sb[so*es:(so+1)*es])
	}
	as.off += src.length
	Logger().Debug("assembled block",
		zap.Int("elements", src.length),
		zap.Int("offset", as.off))
	return nil
}
