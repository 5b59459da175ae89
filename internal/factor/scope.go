package factor

import (
	"strings"

	"github.com/born-ml/bayes/internal/tensor"
	"github.com/pkg/errors"
)

// Scope is an ordered list of distinct variables. Position i in the scope is
// axis i of a factor's values. The zero Scope is the empty scope.
type Scope struct {
	vars []Variable
}

// NewScope returns a scope over vars in the given order.
// Variables are distinct by name; a repeated name fails with ErrDuplicateVariable.
func NewScope(vars ...Variable) (Scope, error) {
	owned := make([]Variable, len(vars))
	for i, v := range vars {
		if v.name == "" || v.size <= 0 {
			return Scope{}, errors.Wrapf(ErrInvalidDomain, "scope position %d holds an uninitialized variable", i)
		}
		for _, prev := range owned[:i] {
			if prev.name == v.name {
				return Scope{}, errors.Wrapf(ErrDuplicateVariable, "%q at position %d", v.name, i)
			}
		}
		owned[i] = v
	}
	return Scope{vars: owned}, nil
}

// Len returns the number of variables.
func (s Scope) Len() int { return len(s.vars) }

// At returns the variable of axis i.
func (s Scope) At(i int) Variable { return s.vars[i] }

// Variables returns a copy of the variables in axis order.
func (s Scope) Variables() []Variable {
	out := make([]Variable, len(s.vars))
	copy(out, s.vars)
	return out
}

// IndexOf returns the axis of v, or -1 if v is not in the scope.
func (s Scope) IndexOf(v Variable) int {
	for i, sv := range s.vars {
		if sv == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is in the scope.
func (s Scope) Contains(v Variable) bool {
	return s.IndexOf(v) >= 0
}

// Shape returns the tensor shape of the scope: one axis per variable, sized
// by its domain.
func (s Scope) Shape() tensor.Shape {
	shape := make(tensor.Shape, len(s.vars))
	for i, v := range s.vars {
		shape[i] = v.size
	}
	return shape
}

// Equal reports whether both scopes hold the same variables in the same order.
func (s Scope) Equal(other Scope) bool {
	if len(s.vars) != len(other.vars) {
		return false
	}
	for i := range s.vars {
		if s.vars[i] != other.vars[i] {
			return false
		}
	}
	return true
}

// String formats the scope as "[A B C]".
func (s Scope) String() string {
	names := make([]string, len(s.vars))
	for i, v := range s.vars {
		names[i] = v.name
	}
	return "[" + strings.Join(names, " ") + "]"
}

// Union returns the canonical union of a and b: the variables of a in their
// order, followed by the variables of b not in a, in b's order.
// A name present in both with different domain sizes fails with ErrDomainMismatch.
func Union(a, b Scope) (Scope, error) {
	vars := make([]Variable, len(a.vars), len(a.vars)+len(b.vars))
	copy(vars, a.vars)
	for _, v := range b.vars {
		i := a.indexOfName(v.name)
		if i < 0 {
			vars = append(vars, v)
			continue
		}
		if a.vars[i].size != v.size {
			return Scope{}, errors.Wrapf(ErrDomainMismatch,
				"%q has domain size %d in %s and %d in %s", v.name, a.vars[i].size, a, v.size, b)
		}
	}
	return Scope{vars: vars}, nil
}

// Without returns the scope with v removed, keeping the order of the rest.
func (s Scope) Without(v Variable) (Scope, error) {
	i, err := s.axisOf(v)
	if err != nil {
		return Scope{}, err
	}
	vars := make([]Variable, 0, len(s.vars)-1)
	vars = append(vars, s.vars[:i]...)
	vars = append(vars, s.vars[i+1:]...)
	return Scope{vars: vars}, nil
}

// axisOf finds v by name, reporting ErrVariableNotInScope when absent and
// ErrDomainMismatch when the name is present with a different size.
func (s Scope) axisOf(v Variable) (int, error) {
	i := s.indexOfName(v.name)
	if i < 0 {
		return -1, errors.Wrapf(ErrVariableNotInScope, "%q not in %s", v.name, s)
	}
	if s.vars[i].size != v.size {
		return -1, errors.Wrapf(ErrDomainMismatch,
			"%q has domain size %d in %s, got %d", v.name, s.vars[i].size, s, v.size)
	}
	return i, nil
}

func (s Scope) indexOfName(name string) int {
	for i, v := range s.vars {
		if v.name == name {
			return i
		}
	}
	return -1
}

// axesIn maps each axis of sub to its axis in s. Every variable of sub must
// be in s.
func (s Scope) axesIn(sub Scope) []int {
	axes := make([]int, len(sub.vars))
	for i, v := range sub.vars {
		axes[i] = s.indexOfName(v.name)
	}
	return axes
}
