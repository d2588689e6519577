package ndarray

// Interop helpers for native-interop wrappers handing arrays across the
// binary contract. Pure data conversion, no ownership transfer.

// StridesFromBytes converts an external array's byte-granularity strides
// to this runtime's element-granularity strides.
func StridesFromBytes(byteStrides []int64, elemSize int) []int {
	strides := make([]int, len(byteStrides))
	for i, s := range byteStrides {
		strides[i] = int(s) / elemSize
	}
	return strides
}

// ShapeFromInt64 converts an external fixed-width shape to this runtime's
// platform-width Shape.
func ShapeFromInt64(dims []int64) Shape {
	shape := make(Shape, len(dims))
	for i, d := range dims {
		shape[i] = int(d)
	}
	return shape
}
