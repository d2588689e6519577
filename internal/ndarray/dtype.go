// Package ndarray implements the strided N-dimensional array runtime
// consumed by generated numeric code.
package ndarray

// DataType is the runtime tag for an array's element kind.
type DataType int

// Supported element kinds. The tag values form a stable enumeration and
// must not be reordered: generated code and interop wrappers persist them.
const (
	Bool DataType = iota
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Complex64
	Complex128
)

// Size returns the byte width of the data type.
// Panics on an unregistered kind; constructors reject those before any
// array can carry one (see New).
func (dt DataType) Size() int {
	switch dt {
	case Bool, Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("ndarray: unknown data type")
	}
}

// Valid reports whether dt is a registered element kind.
func (dt DataType) Valid() bool {
	return dt >= Bool && dt <= Complex128
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}
