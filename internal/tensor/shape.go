package tensor

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Shape represents the dimensions of a tensor.
// An empty Shape describes a scalar.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return errors.Wrapf(ErrShape, "invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Offset returns the flat row-major position of coords, or an error if the
// rank differs or any coordinate is outside its axis.
func (s Shape) Offset(coords []int) (int, error) {
	if len(coords) != len(s) {
		return 0, errors.Wrapf(ErrShape, "got %d coordinates for rank-%d shape %s", len(coords), len(s), s)
	}
	strides := s.ComputeStrides()
	offset := 0
	for axis, c := range coords {
		if c < 0 || c >= s[axis] {
			return 0, errors.Wrapf(ErrIndex, "coordinate %d on axis %d of shape %s", c, axis, s)
		}
		offset += c * strides[axis]
	}
	return offset, nil
}

// Split returns the leading and trailing parts of the shape, where trailing
// holds the last k dimensions.
func (s Shape) Split(k int) (leading, trailing Shape) {
	cut := len(s) - k
	return s[:cut].Clone(), s[cut:].Clone()
}

// Iter iterates over all indices of the shape in row-major order (the last
// axis varies fastest). A scalar yields a single empty index.
// The yielded slice is owned by the iterator: don't change or retain it.
func (s Shape) Iter() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		rank := len(s)
		if rank == 0 {
			_ = yield(make([]int, 0))
			return
		}
		for _, dim := range s {
			if dim <= 0 {
				return
			}
		}

		current := make([]int, rank)
		for {
			if !yield(current) {
				return
			}

			// Odometer increment with carry-over.
			axis := rank - 1
			for ; axis >= 0; axis-- {
				current[axis]++
				if current[axis] < s[axis] {
					break
				}
				current[axis] = 0
			}
			if axis < 0 {
				return
			}
		}
	}
}

// String formats the shape like a tuple, e.g. "(2, 3)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprint(dim)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
