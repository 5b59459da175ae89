// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/bayes/tensor"
)

// TestDenseAPI verifies the Dense type alias exposes the expected API.
func TestDenseAPI(t *testing.T) {
	d, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if shape := d.Shape(); !shape.Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", shape)
	}
	if n := d.NumElements(); n != 6 {
		t.Errorf("NumElements() = %d, want 6", n)
	}
	if v, err := d.At(1, 2); err != nil || v != 6 {
		t.Errorf("At(1, 2) = %v, %v, want 6", v, err)
	}

	rows, err := d.SumAxis(1)
	if err != nil {
		t.Fatalf("SumAxis failed: %v", err)
	}
	if got := rows.Data(); got[0] != 6 || got[1] != 15 {
		t.Errorf("SumAxis(1) = %v, want [6 15]", got)
	}
}

func TestErrors(t *testing.T) {
	_, err := tensor.New(tensor.Shape{2}, []float64{1})
	if !errors.Is(err, tensor.ErrShape) {
		t.Errorf("New with short data: got %v, want ErrShape", err)
	}

	z, err := tensor.Zeros(tensor.Shape{2})
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	if _, err := z.At(2); !errors.Is(err, tensor.ErrIndex) {
		t.Errorf("At(2): got %v, want ErrIndex", err)
	}
	if _, err := z.SumAxis(1); !errors.Is(err, tensor.ErrAxis) {
		t.Errorf("SumAxis(1): got %v, want ErrAxis", err)
	}
}

func TestAllClose(t *testing.T) {
	a := tensor.Scalar(1)
	b := tensor.Scalar(1 + 1e-12)
	if !tensor.AllClose(a, b, 1e-9, 0) {
		t.Error("AllClose should accept values within tolerance")
	}
	if tensor.AllClose(a, tensor.Scalar(2), 1e-9, 0) {
		t.Error("AllClose should reject distant values")
	}
}
