package ndarray_test

import (
	"testing"

	"github.com/AjaySDwivedi1/pyccel/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAssembleAndTranspose walks the public API end to end: create,
// fill, assemble, slice, transpose, dump, release.
func TestAssembleAndTranspose(t *testing.T) {
	dest, err := ndarray.New(ndarray.Shape{3, 3}, ndarray.Int64, ndarray.ColMajor)
	require.NoError(t, err)
	defer dest.Release()

	asm, err := ndarray.NewAssembler(dest)
	require.NoError(t, err)
	for _, row := range [][]int64{{1, 2, 3}, {7, 8, 9}, {4, 5, 6}} {
		src, err := ndarray.New(ndarray.Shape{3}, ndarray.Int64, ndarray.RowMajor)
		require.NoError(t, err)
		copy(src.AsInt64(), row)
		require.NoError(t, asm.Append(src))
		src.Release()
	}

	off, err := dest.Index(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(9), dest.AsInt64()[off])

	tr, err := dest.Transpose()
	require.NoError(t, err)
	defer tr.ReleaseView()
	off, err = tr.Index(2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(9), tr.AsInt64()[off])

	mid, err := dest.Slice(ndarray.At(1), ndarray.R(0, 3, 1))
	require.NoError(t, err)
	defer mid.ReleaseView()
	got, err := mid.DumpString()
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestFacadeErrors(t *testing.T) {
	_, err := ndarray.New(ndarray.Shape{-1}, ndarray.Float64, ndarray.RowMajor)
	assert.ErrorIs(t, err, ndarray.ErrInvalidShape)

	a, err := ndarray.New(ndarray.Shape{2}, ndarray.Float64, ndarray.RowMajor)
	require.NoError(t, err)
	a.Release()
	assert.ErrorIs(t, a.Fill(1.0), ndarray.ErrUseAfterRelease)
}
