package tensor

import "github.com/pkg/errors"

// SumAxis sums the tensor along axis and removes that axis from the result.
// Reducing a rank-1 tensor yields a scalar.
func (d *Dense) SumAxis(axis int) (*Dense, error) {
	rank := len(d.shape)
	if axis < 0 || axis >= rank {
		return nil, errors.Wrapf(ErrAxis, "axis %d out of range for rank-%d tensor", axis, rank)
	}

	outShape := make(Shape, 0, rank-1)
	outShape = append(outShape, d.shape[:axis]...)
	outShape = append(outShape, d.shape[axis+1:]...)

	// View the input as (outer, n, inner) around the reduced axis.
	n := d.shape[axis]
	inner := d.stride[axis]
	outer := len(d.data) / (n * inner)

	result := make([]float64, outShape.NumElements())
	column := make([]float64, n)
	for o := 0; o < outer; o++ {
		base := o * n * inner
		for in := 0; in < inner; in++ {
			for j := 0; j < n; j++ {
				column[j] = d.data[base+j*inner+in]
			}
			result[o*inner+in] = kahanSum(column)
		}
	}

	return wrap(outShape, result), nil
}

// SumTrailing sums over the last k axes, returning a tensor shaped like the
// leading rank-k axes. k == rank yields a scalar; k == 0 is a copy.
func (d *Dense) SumTrailing(k int) (*Dense, error) {
	rank := len(d.shape)
	if k < 0 || k > rank {
		return nil, errors.Wrapf(ErrAxis, "cannot sum the last %d axes of a rank-%d tensor", k, rank)
	}
	leading, trailing := d.shape.Split(k)
	block := trailing.NumElements()

	sums := make([]float64, leading.NumElements())
	for i := range sums {
		sums[i] = kahanSum(d.data[i*block : (i+1)*block])
	}
	return wrap(leading, sums), nil
}

// DivTrailing divides every slice over the last k axes by the matching entry
// of denom, which must be shaped like the leading rank-k axes.
// Division by zero follows IEEE-754; callers check denom first.
func (d *Dense) DivTrailing(k int, denom *Dense) (*Dense, error) {
	rank := len(d.shape)
	if k < 0 || k > rank {
		return nil, errors.Wrapf(ErrAxis, "cannot divide the last %d axes of a rank-%d tensor", k, rank)
	}
	leading, trailing := d.shape.Split(k)
	if !leading.Equal(denom.shape) {
		return nil, errors.Wrapf(ErrShape, "denominator shape %s, want %s", denom.shape, leading)
	}
	block := trailing.NumElements()

	data := make([]float64, len(d.data))
	for i, v := range d.data {
		data[i] = v / denom.data[i/block]
	}
	return wrap(d.shape.Clone(), data), nil
}
