package factor

import (
	"fmt"
	"iter"
	"math"

	"github.com/born-ml/bayes/internal/tensor"
	"github.com/pkg/errors"
)

// Tolerances used by Equal, matching numpy.allclose defaults.
const (
	RelTolerance = 1e-5
	AbsTolerance = 1e-8
)

// Assignment maps variables to indices in their domains.
type Assignment map[Variable]int

// Factor is an immutable table over the assignments of its scope.
// Construct one with New, FromTensor, Constant or NewConditional.
type Factor struct {
	scope  Scope
	values *tensor.Dense
}

// New creates a factor over scope from row-major values (the last scope
// variable varies fastest). len(values) must equal the product of the
// domain sizes, 1 for an empty scope.
func New(scope Scope, values []float64) (Factor, error) {
	shape := scope.Shape()
	if want := shape.NumElements(); len(values) != want {
		return Factor{}, errors.Wrapf(ErrShapeMismatch,
			"scope %s has shape %s and needs %d values, got %d", scope, shape, want, len(values))
	}
	t, err := tensor.New(shape, values)
	if err != nil {
		return Factor{}, errors.Wrapf(ErrShapeMismatch, "scope %s: %v", scope, err)
	}
	return Factor{scope: scope, values: t}, nil
}

// FromTensor creates a factor over scope backed by t, whose shape must be
// scope.Shape().
func FromTensor(scope Scope, t *tensor.Dense) (Factor, error) {
	if t == nil {
		return Factor{}, errors.Wrapf(ErrShapeMismatch, "nil tensor for scope %s", scope)
	}
	if !t.Shape().Equal(scope.Shape()) {
		return Factor{}, errors.Wrapf(ErrShapeMismatch,
			"tensor shape %s, scope %s has shape %s", t.Shape(), scope, scope.Shape())
	}
	return Factor{scope: scope, values: t}, nil
}

// Constant returns an empty-scope factor holding v.
func Constant(v float64) Factor {
	return Factor{values: tensor.Scalar(v)}
}

// NewConditional creates a factor holding a conditional distribution whose
// own variables are the last k of scope. Every slice over those axes must
// sum to 1 within AbsTolerance+RelTolerance, else ErrNotNormalized.
func NewConditional(scope Scope, values []float64, k int) (Factor, error) {
	f, err := New(scope, values)
	if err != nil {
		return Factor{}, err
	}
	if err := checkAxisCount(scope, k); err != nil {
		return Factor{}, err
	}
	sums, err := f.values.SumTrailing(k)
	if err != nil {
		return Factor{}, errors.Wrap(err, "conditional")
	}
	for i, s := range sums.Data() {
		if math.Abs(s-1) > AbsTolerance+RelTolerance {
			return Factor{}, errors.Wrapf(ErrNotNormalized,
				"slice %d over the last %d axes of %s sums to %g", i, k, scope, s)
		}
	}
	return f, nil
}

// Scope returns the factor's scope.
func (f Factor) Scope() Scope { return f.scope }

// Shape returns the shape of the values tensor.
func (f Factor) Shape() tensor.Shape { return f.values.Shape() }

// Values returns a copy of the row-major values.
func (f Factor) Values() []float64 { return f.values.Data() }

// Tensor returns the values tensor. It is immutable and safe to share.
func (f Factor) Tensor() *tensor.Dense { return f.values }

// Sum returns the total mass of the factor.
func (f Factor) Sum() float64 { return f.values.Sum() }

// Evaluate returns the factor's value at a. Every scope variable must be
// assigned; entries for other variables are ignored.
func (f Factor) Evaluate(a Assignment) (float64, error) {
	coords := make([]int, f.scope.Len())
	for axis, v := range f.scope.vars {
		idx, ok := a[v]
		if !ok {
			return 0, errors.Wrapf(ErrMissingVariable, "%q of %s", v.name, f.scope)
		}
		if idx < 0 || idx >= v.size {
			return 0, errors.Wrapf(ErrIndexOutOfRange, "%q=%d, domain size %d", v.name, idx, v.size)
		}
		coords[axis] = idx
	}
	val, err := f.values.At(coords...)
	if err != nil {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "%s: %v", f.scope, err)
	}
	return val, nil
}

// Assignments iterates over every assignment of the scope in row-major
// order. Each yielded Assignment is freshly allocated.
func (f Factor) Assignments() iter.Seq[Assignment] {
	return func(yield func(Assignment) bool) {
		for idx := range f.scope.Shape().Iter() {
			a := make(Assignment, len(idx))
			for axis, v := range f.scope.vars {
				a[v] = idx[axis]
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Reorder returns the same factor with its axes permuted to follow order,
// which must hold exactly the variables of f's scope.
func (f Factor) Reorder(order Scope) (Factor, error) {
	if order.Len() != f.scope.Len() {
		return Factor{}, errors.Wrapf(ErrScopeMismatch, "cannot reorder %s as %s", f.scope, order)
	}
	perm := make([]int, order.Len())
	for i, v := range order.vars {
		axis := f.scope.IndexOf(v)
		if axis < 0 {
			return Factor{}, errors.Wrapf(ErrScopeMismatch, "cannot reorder %s as %s", f.scope, order)
		}
		perm[i] = axis
	}
	values, err := f.values.Permute(perm)
	if err != nil {
		return Factor{}, errors.Wrap(err, "reorder")
	}
	return Factor{scope: order, values: values}, nil
}

// Equal reports whether g has the same scope, in the same order, and values
// within RelTolerance/AbsTolerance of f's.
func (f Factor) Equal(g Factor) bool {
	return f.scope.Equal(g.scope) && tensor.AllClose(f.values, g.values, RelTolerance, AbsTolerance)
}

// Equivalent reports whether f and g agree on every assignment, allowing
// their scopes to list the same variables in different orders.
func (f Factor) Equivalent(g Factor) bool {
	aligned, err := g.Reorder(f.scope)
	if err != nil {
		return false
	}
	return f.Equal(aligned)
}

// String returns a short description, e.g. "Factor([A B], (2, 2))".
func (f Factor) String() string {
	return fmt.Sprintf("Factor(%s, %s)", f.scope, f.values.Shape())
}
