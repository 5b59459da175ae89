// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package factor_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/bayes/factor"
)

func Example() {
	vars := factor.NewRegistry()
	a, _ := vars.Variable("A", 2)
	b, _ := vars.Variable("B", 2)

	fa, _ := factor.New(factor.MustScope(a), []float64{0.3, 0.7})
	fb, _ := factor.New(factor.MustScope(b), []float64{0.4, 0.6})

	joint, _ := factor.Multiply(fa, fb)
	fmt.Println(joint)
	fmt.Printf("%.2f\n", joint.Values())

	back, _ := factor.SumOut(joint, b)
	p, _ := back.Evaluate(factor.Assignment{a: 1})
	fmt.Printf("%.1f\n", p)
	// Output:
	// Factor([A B], (2, 2))
	// [0.12 0.18 0.28 0.42]
	// 0.7
}

func ExampleNormalize() {
	a, _ := factor.NewVariable("A", 2)

	f, _ := factor.New(factor.MustScope(a), []float64{3, 7})
	n, _ := factor.Normalize(f, 1)
	fmt.Printf("%.1f\n", n.Values())

	zero, _ := factor.New(factor.MustScope(a), []float64{0, 0})
	_, err := factor.Normalize(zero, 1)
	fmt.Println(errors.Is(err, factor.ErrZeroMassSlice))
	// Output:
	// [0.3 0.7]
	// true
}

func ExampleFactor_Equivalent() {
	vars := factor.NewRegistry()
	a, _ := vars.Variable("A", 2)
	b, _ := vars.Variable("B", 3)

	fa, _ := factor.New(factor.MustScope(a), []float64{1, 2})
	fb, _ := factor.New(factor.MustScope(b), []float64{1, 2, 3})

	ab, _ := factor.Multiply(fa, fb)
	ba, _ := factor.Multiply(fb, fa)
	fmt.Println(ab.Scope(), ba.Scope(), ab.Equal(ba), ab.Equivalent(ba))
	// Output:
	// [A B] [B A] false true
}
