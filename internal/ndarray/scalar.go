package ndarray

import (
	"encoding/binary"
	"fmt"
	"math"
)

// scalarBytes encodes value into the native bit pattern of one element of
// kind dt. Fill and the copy engine are parameterized over this pattern
// and the element size instead of carrying one loop body per kind.
func scalarBytes(dt DataType, value any) ([]byte, error) {
	pat := make([]byte, dt.Size())
	switch dt {
	case Bool:
		v, ok := value.(bool)
		if !ok {
			return nil, scalarMismatch(dt, value)
		}
		if v {
			pat[0] = 1
		}
	case Int8:
		v, ok := value.(int8)
		if !ok {
			return nil, scalarMismatch(dt, value)
		}
		pat[0] = byte(v)
	case Int16:
		v, ok := value.(int16)
		if !ok {
			return nil, scalarMismatch(dt, value)
		}
		binary.NativeEndian.PutUint16(pat, uint16(v))
	case Int32:
		v, ok := value.(int32)
		if !ok {
			return nil, scalarMismatch(dt, value)
		}
		binary.NativeEndian.PutUint32(pat, uint32(v))
	case Int64:
		v, ok := value.(int64)
		if !ok {
			return nil, scalarMismatch(dt, value)
		}
		binary.NativeEndian.PutUint64(pat, uint64(v))
	case Float32:
		v, ok := value.(float32)
		if !ok {
			return nil, scalarMismatch(dt, value)
		}
		binary.NativeEndian.PutUint32(pat, math.Float32bits(v))
	case Float64:
		v, ok := value.(float64)
		if !ok {
			return nil, scalarMismatch(dt, value)
		}
		binary.NativeEndian.PutUint64(pat, math.Float64bits(v))
	case Complex64:
		v, ok := value.(complex64)
		if !ok {
			return nil, scalarMismatch(dt, value)
		}
		binary.NativeEndian.PutUint32(pat[0:], math.Float32bits(real(v)))
		binary.NativeEndian.PutUint32(pat[4:], math.Float32bits(imag(v)))
	case Complex128:
		v, ok := value.(complex128)
		if !ok {
			return nil, scalarMismatch(dt, value)
		}
		binary.NativeEndian.PutUint64(pat[0:], math.Float64bits(real(v)))
		binary.NativeEndian.PutUint64(pat[8:], math.Float64bits(imag(v)))
	default:
		return nil, fmt.Errorf("%w: kind tag %d", ErrUnsupportedKind, int(dt))
	}
	return pat, nil
}

func scalarMismatch(dt DataType, value any) error {
	return fmt.Errorf("%w: %s array filled with %T value", ErrKindMismatch, dt, value)
}

func allZero(p []byte) bool {
	for _, b := range p {
		if b != 0 {
			return false
		}
	}
	return true
}
