// Package tensor provides the dense float64 tensors that back discrete factors.
//
// A Dense is an immutable N-dimensional array stored flat in row-major order.
// Every operation allocates its result, so a Dense may be shared freely
// between goroutines.
package tensor

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Dense is an immutable row-major float64 tensor.
type Dense struct {
	shape  Shape     // Tensor dimensions
	stride []int     // Memory strides (row-major)
	data   []float64 // Flat values, len == shape.NumElements()
}

// New creates a tensor with the given shape, copying data.
// len(data) must equal shape.NumElements().
func New(shape Shape, data []float64) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if want := shape.NumElements(); len(data) != want {
		return nil, errors.Wrapf(ErrShape, "shape %s needs %d values, got %d", shape, want, len(data))
	}
	owned := make([]float64, len(data))
	copy(owned, data)
	return wrap(shape.Clone(), owned), nil
}

// Zeros creates a zero-filled tensor with the given shape.
func Zeros(shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return wrap(shape.Clone(), make([]float64, shape.NumElements())), nil
}

// Scalar creates a rank-0 tensor holding v.
func Scalar(v float64) *Dense {
	return wrap(Shape{}, []float64{v})
}

// wrap takes ownership of data without copying. Callers guarantee the
// shape/data invariant.
func wrap(shape Shape, data []float64) *Dense {
	return &Dense{
		shape:  shape,
		stride: shape.ComputeStrides(),
		data:   data,
	}
}

// Shape returns a copy of the tensor's shape.
func (d *Dense) Shape() Shape {
	return d.shape.Clone()
}

// Strides returns a copy of the tensor's row-major strides.
func (d *Dense) Strides() []int {
	out := make([]int, len(d.stride))
	copy(out, d.stride)
	return out
}

// Rank returns the number of axes.
func (d *Dense) Rank() int {
	return len(d.shape)
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return len(d.data)
}

// Data returns a copy of the flat row-major values.
func (d *Dense) Data() []float64 {
	out := make([]float64, len(d.data))
	copy(out, d.data)
	return out
}

// At returns the value at coords.
func (d *Dense) At(coords ...int) (float64, error) {
	offset, err := d.shape.Offset(coords)
	if err != nil {
		return 0, err
	}
	return d.data[offset], nil
}

// Item returns the value of a rank-0 tensor.
func (d *Dense) Item() (float64, error) {
	if len(d.shape) != 0 {
		return 0, errors.Wrapf(ErrShape, "Item() on non-scalar shape %s", d.shape)
	}
	return d.data[0], nil
}

// Sum computes the total sum of all elements.
// Kahan summation keeps long marginalization chains stable.
func (d *Dense) Sum() float64 {
	return kahanSum(d.data)
}

// AllClose reports whether a and b have the same shape and
// |a-b| <= atol + rtol*|b| holds elementwise.
func AllClose(a, b *Dense, rtol, atol float64) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i, av := range a.data {
		bv := b.data[i]
		if math.IsNaN(av) || math.IsNaN(bv) {
			return false
		}
		if av == bv {
			continue
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false
		}
	}
	return true
}

// String returns a short description, e.g. "Dense(2, 3)".
func (d *Dense) String() string {
	return fmt.Sprintf("Dense%s", d.shape)
}

func kahanSum(values []float64) float64 {
	var sum, c float64
	for _, v := range values {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}
