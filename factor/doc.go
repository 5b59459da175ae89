// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package factor provides discrete factors for exact inference over Bayesian
// networks.
//
// # Overview
//
// A Factor maps every assignment of its discrete variables to a real number.
// It is stored as a dense row-major tensor with one axis per variable of its
// Scope. Four primitive operations are provided:
//   - Evaluate: look up the value of one assignment
//   - Multiply: pointwise product over the union of two scopes
//   - SumOut: marginalize a variable away
//   - Normalize: rescale so slices over the trailing axes sum to 1
//
// All operations return new factors and never modify their operands.
//
// # Basic Usage
//
//	import "github.com/born-ml/bayes/factor"
//
//	func main() {
//	    vars := factor.NewRegistry()
//	    a, _ := vars.Variable("A", 2)
//	    b, _ := vars.Variable("B", 2)
//
//	    fa, _ := factor.New(factor.MustScope(a), []float64{0.3, 0.7})
//	    fb, _ := factor.New(factor.MustScope(b), []float64{0.4, 0.6})
//
//	    joint, _ := factor.Multiply(fa, fb)  // scope [A B]
//	    back, _ := factor.SumOut(joint, b)  // [0.3 0.7]
//	    p, _ := back.Evaluate(factor.Assignment{a: 0})
//	}
//
// # Axis Order
//
// Multiply lists the left operand's variables first, then the right
// operand's new variables in their order. Use Factor.Equivalent to compare
// factors whose scopes differ only in order.
//
// # Conditional Distributions
//
// Normalize(f, k) treats the last k scope variables as the node's own
// variables. Build conditional tables with the child variable(s) last;
// NewConditional validates that convention.
package factor
