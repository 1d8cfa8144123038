/*
Copyright 2024 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package render

import (
	"math"
	"testing"

	"github.com/pagefold/pagefold/pkg/types"
)

func TestMultiplyIdentity(t *testing.T) {
	m := Matrix{{2, 0, 0}, {0, 3, 0}, {5, 7, 1}}
	got := m.Multiply(IdentMatrix)
	if got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestTransformForRotationSameSizeNoRotation(t *testing.T) {
	src := types.RectForDim(100, 200)
	dst := types.RectForDim(100, 200)
	m := transformForRotation(src, dst, 0)

	if !almostEqual(m[0][0], 1) || !almostEqual(m[1][1], 1) {
		t.Errorf("expected unit scale, got %v", m)
	}
	if !almostEqual(m[0][1], 0) || !almostEqual(m[1][0], 0) {
		t.Errorf("expected no shear/rotation terms, got %v", m)
	}
}

func TestTransformForRotation90SwapsAspect(t *testing.T) {
	src := types.RectForDim(100, 200)
	dst := types.RectForDim(200, 100)
	m := transformForRotation(src, dst, 90)

	// A 90-degree rotation carries a +/-1 sin/cos term, not an identity one.
	if almostEqual(m[0][0], 1) && almostEqual(m[1][1], 1) {
		t.Errorf("expected a rotated transform, got %v", m)
	}
}

func TestTransformForRotation180TranslatesBack(t *testing.T) {
	src := types.RectForDim(100, 200)
	dst := types.RectForDim(100, 200)
	m0 := transformForRotation(src, dst, 0)
	m180 := transformForRotation(src, dst, 180)

	if almostEqual(m0[2][0], m180[2][0]) && almostEqual(m0[2][1], m180[2][1]) {
		t.Errorf("expected 180-degree rotation to shift translation, got identical %v", m0)
	}
}
