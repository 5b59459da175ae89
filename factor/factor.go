// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package factor

import (
	"github.com/born-ml/bayes/internal/factor"
	"github.com/born-ml/bayes/internal/parallel"
	"github.com/born-ml/bayes/tensor"
)

// Type aliases for public API

// Variable is a discrete random variable: a name plus a domain size.
type Variable = factor.Variable

// Registry declares the variables of one model.
type Registry = factor.Registry

// Scope is an ordered list of distinct variables.
type Scope = factor.Scope

// Factor is an immutable table over the assignments of its scope.
type Factor = factor.Factor

// Assignment maps variables to indices in their domains.
type Assignment = factor.Assignment

// Option configures how an operation runs.
type Option = factor.Option

// ParallelConfig controls the parallel product kernel.
type ParallelConfig = parallel.Config

// Tolerances used by Factor.Equal.
const (
	RelTolerance = factor.RelTolerance
	AbsTolerance = factor.AbsTolerance
)

// Errors.
var (
	ErrInvalidDomain      = factor.ErrInvalidDomain
	ErrInvalidName        = factor.ErrInvalidName
	ErrDuplicateVariable  = factor.ErrDuplicateVariable
	ErrUnknownVariable    = factor.ErrUnknownVariable
	ErrShapeMismatch      = factor.ErrShapeMismatch
	ErrMissingVariable    = factor.ErrMissingVariable
	ErrIndexOutOfRange    = factor.ErrIndexOutOfRange
	ErrDomainMismatch     = factor.ErrDomainMismatch
	ErrVariableNotInScope = factor.ErrVariableNotInScope
	ErrZeroMassSlice      = factor.ErrZeroMassSlice
	ErrInvalidAxisCount   = factor.ErrInvalidAxisCount
	ErrScopeMismatch      = factor.ErrScopeMismatch
	ErrNotNormalized      = factor.ErrNotNormalized
)

// Variables and scopes

// NewVariable creates a variable with the given name and domain size.
func NewVariable(name string, domainSize int) (Variable, error) {
	return factor.NewVariable(name, domainSize)
}

// NewRegistry returns an empty variable registry.
func NewRegistry() *Registry {
	return factor.NewRegistry()
}

// NewScope returns a scope over vars in the given order.
func NewScope(vars ...Variable) (Scope, error) {
	return factor.NewScope(vars...)
}

// MustScope is NewScope that panics on error. Intended for literals in
// examples and tests.
func MustScope(vars ...Variable) Scope {
	s, err := factor.NewScope(vars...)
	if err != nil {
		panic(err)
	}
	return s
}

// Union returns the canonical union of two scopes: a's variables, then b's
// new variables in b's order.
func Union(a, b Scope) (Scope, error) {
	return factor.Union(a, b)
}

// Construction

// New creates a factor over scope from row-major values.
func New(scope Scope, values []float64) (Factor, error) {
	return factor.New(scope, values)
}

// FromTensor creates a factor over scope backed by t.
func FromTensor(scope Scope, t *tensor.Dense) (Factor, error) {
	return factor.FromTensor(scope, t)
}

// Constant returns an empty-scope factor holding v.
func Constant(v float64) Factor {
	return factor.Constant(v)
}

// NewConditional creates a factor whose slices over the last k axes each sum to 1.
func NewConditional(scope Scope, values []float64, k int) (Factor, error) {
	return factor.NewConditional(scope, values, k)
}

// Operations

// Multiply returns the product of f1 and f2 over the union of their scopes.
func Multiply(f1, f2 Factor, opts ...Option) (Factor, error) {
	return factor.Multiply(f1, f2, opts...)
}

// Product multiplies factors from left to right.
func Product(factors []Factor, opts ...Option) (Factor, error) {
	return factor.Product(factors, opts...)
}

// SumOut removes v from f's scope by summing over its domain.
func SumOut(f Factor, v Variable) (Factor, error) {
	return factor.SumOut(f, v)
}

// Normalize rescales f so every slice over its last k axes sums to 1.
func Normalize(f Factor, k int) (Factor, error) {
	return factor.Normalize(f, k)
}

// WithParallel sets the parallel loop configuration of the product kernel.
func WithParallel(cfg ParallelConfig) Option {
	return factor.WithParallel(cfg)
}

// DefaultParallelConfig returns the configuration used when none is given.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}
