// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/bayes/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor. An empty Shape is a scalar.
type Shape = tensor.Shape

// Dense is an immutable row-major float64 tensor.
type Dense = tensor.Dense

// Errors.
var (
	ErrShape = tensor.ErrShape
	ErrIndex = tensor.ErrIndex
	ErrAxis  = tensor.ErrAxis
)

// Creation functions

// New creates a tensor with the given shape, copying data.
//
// Example:
//
//	t, err := tensor.New(tensor.Shape{2, 2}, []float64{0.1, 0.2, 0.3, 0.4})
func New(shape Shape, data []float64) (*Dense, error) {
	return tensor.New(shape, data)
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape) (*Dense, error) {
	return tensor.Zeros(shape)
}

// Scalar creates a rank-0 tensor holding v.
func Scalar(v float64) *Dense {
	return tensor.Scalar(v)
}

// AllClose reports whether a and b have equal shapes and elementwise
// |a-b| <= atol + rtol*|b|.
func AllClose(a, b *Dense, rtol, atol float64) bool {
	return tensor.AllClose(a, b, rtol, atol)
}
