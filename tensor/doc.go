// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the dense float64 tensors that back factors.
//
// Tensors are immutable, stored flat in row-major order (the last axis
// varies fastest), and every operation allocates its result.
//
//	t, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	rows, err := t.SumAxis(1)        // shape (2,): [6 15]
//	v, err := t.At(1, 2)             // 6
//	tt, err := t.Permute([]int{1, 0}) // shape (3, 2)
package tensor
