package tensor

import (
	"github.com/born-ml/bayes/internal/parallel"
	"github.com/pkg/errors"
)

// MulMapped multiplies a and b elementwise after broadcasting both to out.
//
// Alignment is explicit rather than positional: axis i of a lines up with
// axis aAxes[i] of out, and likewise for b. Axes of out that an operand does
// not own are broadcast by repeating the operand along them (stride 0).
//
// Example (a over [A], b over [B], out over [A, B]):
//
//	MulMapped(Shape{2, 3}, a, []int{0}, b, []int{1}, cfg) // out[i,j] = a[i]*b[j]
func MulMapped(out Shape, a *Dense, aAxes []int, b *Dense, bAxes []int, cfg parallel.Config) (*Dense, error) {
	if err := out.Validate(); err != nil {
		return nil, err
	}
	aStrides, err := mappedStrides(a.shape, aAxes, out)
	if err != nil {
		return nil, errors.WithMessage(err, "left operand")
	}
	bStrides, err := mappedStrides(b.shape, bAxes, out)
	if err != nil {
		return nil, errors.WithMessage(err, "right operand")
	}

	outStrides := out.ComputeStrides()
	data := make([]float64, out.NumElements())
	parallel.For(len(data), func(i int) {
		data[i] = a.data[computeFlatIndex(i, outStrides, aStrides)] *
			b.data[computeFlatIndex(i, outStrides, bStrides)]
	}, cfg)

	return wrap(out.Clone(), data), nil
}

// Permute returns a tensor whose axis i is axis perm[i] of d.
func (d *Dense) Permute(perm []int) (*Dense, error) {
	rank := len(d.shape)
	if len(perm) != rank {
		return nil, errors.Wrapf(ErrAxis, "permutation %v for rank-%d tensor", perm, rank)
	}
	outShape := make(Shape, rank)
	srcStrides := make([]int, rank)
	seen := make([]bool, rank)
	for i, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return nil, errors.Wrapf(ErrAxis, "%v is not a permutation of %d axes", perm, rank)
		}
		seen[p] = true
		outShape[i] = d.shape[p]
		srcStrides[i] = d.stride[p]
	}

	outStrides := outShape.ComputeStrides()
	data := make([]float64, len(d.data))
	for i := range data {
		data[i] = d.data[computeFlatIndex(i, outStrides, srcStrides)]
	}
	return wrap(outShape, data), nil
}

// mappedStrides computes strides for reading a tensor of shape in while
// iterating over out. axes[i] names the out axis that in's axis i maps to;
// unmapped out axes get stride 0 (broadcast).
func mappedStrides(in Shape, axes []int, out Shape) ([]int, error) {
	if len(axes) != len(in) {
		return nil, errors.Wrapf(ErrAxis, "%d axis mappings for rank-%d shape %s", len(axes), len(in), in)
	}
	origStrides := in.ComputeStrides()
	strides := make([]int, len(out))
	seen := make([]bool, len(out))

	for i, outAxis := range axes {
		if outAxis < 0 || outAxis >= len(out) || seen[outAxis] {
			return nil, errors.Wrapf(ErrAxis, "axis %d of %s maps to invalid or repeated axis %d of %s", i, in, outAxis, out)
		}
		if in[i] != out[outAxis] {
			return nil, errors.Wrapf(ErrShape, "axis %d of %s has size %d, axis %d of %s has size %d",
				i, in, in[i], outAxis, out, out[outAxis])
		}
		seen[outAxis] = true
		strides[outAxis] = origStrides[i]
	}

	return strides, nil
}

// computeFlatIndex computes the flat index in the source array for a given output index.
// outStrides: strides of the output shape.
// inStrides: broadcast-adjusted strides of the input shape.
func computeFlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
