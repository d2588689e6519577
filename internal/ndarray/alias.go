package ndarray

// Alias returns a view over the same buffer with independently copied
// shape/stride metadata. Writes through the alias are visible through the
// source; releasing the alias never frees the buffer. The source must
// outlive the alias.
func (a *Ndarray) Alias() (*Ndarray, error) {
	if err := a.live(); err != nil {
		return nil, err
	}
	return &Ndarray{
		buf:     a.buf,
		off:     a.off,
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
		dtype:   a.dtype,
		order:   a.order,
		length:  a.length,
		view:    true,
	}, nil
}

// Transpose returns a view with a full axis reversal: shape and strides
// are copied in reverse order and no data moves. Logical indexing through
// the result walks the source buffer in reverse-axis order.
func (a *Ndarray) Transpose() (*Ndarray, error) {
	if err := a.live(); err != nil {
		return nil, err
	}
	rank := len(a.shape)
	shape := make(Shape, rank)
	strides := make([]int, rank)
	for i := 0; i < rank; i++ {
		shape[i] = a.shape[rank-1-i]
		strides[i] = a.strides[rank-1-i]
	}
	return &Ndarray{
		buf:     a.buf,
		off:     a.off,
		shape:   shape,
		strides: strides,
		dtype:   a.dtype,
		order:   a.order,
		length:  a.length,
		view:    true,
	}, nil
}
