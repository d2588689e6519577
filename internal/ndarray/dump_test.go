package ndarray

import (
	"errors"
	"strings"
	"testing"
)

func TestDumpInt32(t *testing.T) {
	a, _ := New(Shape{2, 2}, Int32, RowMajor)
	data := a.AsInt32()
	for i := range data[:4] {
		data[i] = int32(i + 1)
	}

	got, err := a.DumpString()
	if err != nil {
		t.Fatalf("DumpString failed: %v", err)
	}
	if got != "[1][2][3][4]\n" {
		t.Errorf("DumpString = %q", got)
	}
}

func TestDumpFloat64(t *testing.T) {
	a, _ := New(Shape{2}, Float64, RowMajor)
	a.AsFloat64()[0] = 1.5

	got, err := a.DumpString()
	if err != nil {
		t.Fatal(err)
	}
	if got != "[1.500000][0.000000]\n" {
		t.Errorf("DumpString = %q", got)
	}
}

func TestDumpBoolAndComplex(t *testing.T) {
	b, _ := New(Shape{2}, Bool, RowMajor)
	b.AsBool()[1] = true
	got, err := b.DumpString()
	if err != nil {
		t.Fatal(err)
	}
	if got != "[false][true]\n" {
		t.Errorf("bool dump = %q", got)
	}

	c, _ := New(Shape{1}, Complex64, RowMajor)
	c.AsComplex64()[0] = 1 + 2i
	got, err = c.DumpString()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "1+2i") {
		t.Errorf("complex dump = %q", got)
	}
}

func TestDumpPhysicalOrder(t *testing.T) {
	// Column-major storage dumps in physical order, not logical rows.
	a, _ := New(Shape{3, 2}, Int64, ColMajor)
	logical := [][]int64{{1, 2}, {4, 5}, {7, 8}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			off, err := a.Index(i, j)
			if err != nil {
				t.Fatal(err)
			}
			a.AsInt64()[off] = logical[i][j]
		}
	}

	got, err := a.DumpString()
	if err != nil {
		t.Fatal(err)
	}
	if got != "[1][4][7][2][5][8]\n" {
		t.Errorf("column-major dump = %q", got)
	}
}

func TestDumpReleased(t *testing.T) {
	a, _ := New(Shape{2}, Int32, RowMajor)
	a.Release()
	if _, err := a.DumpString(); !errors.Is(err, ErrUseAfterRelease) {
		t.Errorf("dump after release = %v, want ErrUseAfterRelease", err)
	}
}
