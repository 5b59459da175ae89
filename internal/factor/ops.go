package factor

import (
	"strconv"
	"strings"

	"github.com/born-ml/bayes/internal/parallel"
	"github.com/born-ml/bayes/internal/tensor"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Option configures how an operation runs. Options never change results.
type Option func(*options)

type options struct {
	parallel parallel.Config
}

func newOptions(opts []Option) options {
	o := options{parallel: parallel.DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithParallel sets the parallel loop configuration used by the product kernel.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.parallel = cfg
	}
}

// Multiply returns the product of f1 and f2 over Union(f1.Scope(), f2.Scope()):
// for every assignment z of the union, result(z) = f1(z|f1) * f2(z|f2).
// The result is not normalized.
func Multiply(f1, f2 Factor, opts ...Option) (Factor, error) {
	union, err := Union(f1.scope, f2.scope)
	if err != nil {
		return Factor{}, errors.WithMessagef(err, "multiply %s by %s", f1, f2)
	}
	o := newOptions(opts)

	values, err := tensor.MulMapped(union.Shape(),
		f1.values, union.axesIn(f1.scope),
		f2.values, union.axesIn(f2.scope),
		o.parallel)
	if err != nil {
		return Factor{}, errors.WithMessagef(err, "multiply %s by %s", f1, f2)
	}

	result := Factor{scope: union, values: values}
	klog.V(2).Infof("factor: %s * %s -> %s", f1, f2, result)
	return result, nil
}

// Multiply returns Multiply(f, g).
func (f Factor) Multiply(g Factor, opts ...Option) (Factor, error) {
	return Multiply(f, g, opts...)
}

// Product folds Multiply over factors from the left. The product of no
// factors is Constant(1).
func Product(factors []Factor, opts ...Option) (Factor, error) {
	if len(factors) == 0 {
		return Constant(1), nil
	}
	acc := factors[0]
	for i, f := range factors[1:] {
		var err error
		acc, err = Multiply(acc, f, opts...)
		if err != nil {
			return Factor{}, errors.WithMessagef(err, "product term %d", i+1)
		}
	}
	return acc, nil
}

// SumOut removes v from f's scope by summing over its domain. The remaining
// variables keep their order. Summing out the last variable yields a
// constant holding the total mass. A variable absent from the scope fails
// with ErrVariableNotInScope.
func SumOut(f Factor, v Variable) (Factor, error) {
	axis, err := f.scope.axisOf(v)
	if err != nil {
		return Factor{}, errors.WithMessagef(err, "sum out %s", v)
	}
	scope, err := f.scope.Without(v)
	if err != nil {
		return Factor{}, errors.WithMessagef(err, "sum out %s", v)
	}
	values, err := f.values.SumAxis(axis)
	if err != nil {
		return Factor{}, errors.WithMessagef(err, "sum out %s", v)
	}

	result := Factor{scope: scope, values: values}
	klog.V(2).Infof("factor: sum %s out of %s -> %s", v, f, result)
	return result, nil
}

// SumOut returns SumOut(f, v).
func (f Factor) SumOut(v Variable) (Factor, error) {
	return SumOut(f, v)
}

// Normalize divides f by the sum over its last k axes, separately for each
// assignment of the leading axes, so every trailing slice sums to 1.
// k must be in [1, |scope|]. A slice summing to zero fails with
// ErrZeroMassSlice.
func Normalize(f Factor, k int) (Factor, error) {
	if err := checkAxisCount(f.scope, k); err != nil {
		return Factor{}, err
	}
	sums, err := f.values.SumTrailing(k)
	if err != nil {
		return Factor{}, errors.WithMessage(err, "normalize")
	}

	leading := Scope{vars: f.scope.vars[:f.scope.Len()-k]}
	data := sums.Data()
	i := 0
	for idx := range sums.Shape().Iter() {
		if data[i] == 0 {
			return Factor{}, errors.Wrapf(ErrZeroMassSlice,
				"%s at %s", f, describe(leading, idx))
		}
		i++
	}

	values, err := f.values.DivTrailing(k, sums)
	if err != nil {
		return Factor{}, errors.WithMessage(err, "normalize")
	}

	result := Factor{scope: f.scope, values: values}
	klog.V(2).Infof("factor: normalize %s over last %d axes", f, k)
	return result, nil
}

// Normalize returns Normalize(f, k).
func (f Factor) Normalize(k int) (Factor, error) {
	return Normalize(f, k)
}

// NormalizeLast normalizes over the last axis, the usual single-child case.
func (f Factor) NormalizeLast() (Factor, error) {
	return Normalize(f, 1)
}

func checkAxisCount(s Scope, k int) error {
	if k < 1 || k > s.Len() {
		return errors.Wrapf(ErrInvalidAxisCount, "k=%d for scope %s of %d variables", k, s, s.Len())
	}
	return nil
}

// describe formats the assignment idx of scope as "{A=0 B=1}".
func describe(s Scope, idx []int) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.vars {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.name)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(idx[i]))
	}
	b.WriteByte('}')
	return b.String()
}
