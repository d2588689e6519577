package ndarray

import (
	"errors"
	"testing"
)

func TestDataTypeSizes(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Bool, 1},
		{Int8, 1},
		{Int16, 2},
		{Int32, 4},
		{Int64, 8},
		{Float32, 4},
		{Float64, 8},
		{Complex64, 8},
		{Complex128, 16},
	}
	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	if Complex128.String() != "complex128" || Bool.String() != "bool" {
		t.Error("unexpected DataType names")
	}
	if DataType(42).String() != "unknown" {
		t.Error("out-of-range tag should stringify as unknown")
	}
}

func TestUnknownKindRejected(t *testing.T) {
	_, err := New(Shape{2}, DataType(42), RowMajor)
	if !errors.Is(err, ErrUnsupportedKind) {
		t.Errorf("New with bad kind = %v, want ErrUnsupportedKind", err)
	}

	var a Ndarray
	if err := a.Init(Shape{2}, DataType(-1), RowMajor); !errors.Is(err, ErrUnsupportedKind) {
		t.Errorf("Init with bad kind = %v, want ErrUnsupportedKind", err)
	}
}

func TestUnknownKindSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Size on an unregistered kind should panic")
		}
	}()
	_ = DataType(42).Size()
}
