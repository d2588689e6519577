package ndarray

import (
	"errors"
	"testing"
)

func TestStridesRowMajor(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{7}, []int{1}},
		{Shape{3, 2}, []int{2, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}
	for _, tt := range tests {
		got := tt.shape.Strides(RowMajor)
		if len(got) != len(tt.want) {
			t.Fatalf("Strides(%v, row-major) = %v, want %v", tt.shape, got, tt.want)
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("Strides(%v, row-major) = %v, want %v", tt.shape, got, tt.want)
				break
			}
		}
	}
}

func TestStridesColMajor(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{7}, []int{1}},
		{Shape{3, 2}, []int{1, 3}},
		{Shape{2, 3, 4}, []int{1, 2, 6}},
	}
	for _, tt := range tests {
		got := tt.shape.Strides(ColMajor)
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("Strides(%v, column-major) = %v, want %v", tt.shape, got, tt.want)
				break
			}
		}
	}
}

func TestNumElements(t *testing.T) {
	if n := (Shape{}).NumElements(); n != 1 {
		t.Errorf("rank-0 NumElements = %d, want 1", n)
	}
	if n := (Shape{3, 2}).NumElements(); n != 6 {
		t.Errorf("NumElements = %d, want 6", n)
	}
	if n := (Shape{3, 0, 2}).NumElements(); n != 0 {
		t.Errorf("zero-extent NumElements = %d, want 0", n)
	}
}

func TestValidateNegativeExtent(t *testing.T) {
	err := (Shape{2, -3}).Validate()
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Validate({2,-3}) = %v, want ErrInvalidShape", err)
	}
	if err := (Shape{2, 0, 3}).Validate(); err != nil {
		t.Errorf("zero extents must be legal, got %v", err)
	}
}

func TestShapeEqualClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	if !s.Equal(c) {
		t.Error("clone should equal source")
	}
	c[0] = 9
	if s[0] != 2 {
		t.Error("clone must not share storage with source")
	}
	if s.Equal(Shape{2}) || s.Equal(Shape{2, 4}) {
		t.Error("Equal should reject differing shapes")
	}
}
