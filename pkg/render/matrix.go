/*
Copyright 2018 The pdfcpu Authors.

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

// Package render stamps mapped source pages into their target panel boxes,
// using the real pdfcpu document model for PDF object creation.
package render

import (
	"math"

	"github.com/pagefold/pagefold/pkg/types"
)

const degToRad = math.Pi / 180

// Matrix is a 3x3 PDF-style affine transform: row 2 carries translation.
type Matrix [3][3]float64

// IdentMatrix is the identity transform.
var IdentMatrix = Matrix{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Multiply returns m * n.
func (m Matrix) Multiply(n Matrix) Matrix {
	var p Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				p[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return p
}

// transformForRotation computes the matrix that maps src (a rectangle with
// its lower-left corner at the origin) into dst, rotating the content by
// rotationDegrees (one of 0, 90, 180, 270) about its own center.
//
// rotationDegrees decomposes into a base 0/90 swap (which dimension of src
// maps to which dimension of dst, exactly as when fitting a landscape page
// into a portrait box) plus an optional further 180 degree turn. Composing
// the two independently keeps the scale/rotate/translate construction
// identical for every supported angle.
func transformForRotation(src, dst *types.Rectangle, rotationDegrees int) Matrix {
	baseRot := rotationDegrees % 180
	extra180 := (rotationDegrees/180)%2 == 1

	r1 := *src
	var w, h, dx, dy float64

	if baseRot == 90 {
		r1.UR.X, r1.UR.Y = r1.UR.Y, r1.UR.X
	}

	switch {
	case r1.FitsWithin(dst):
		w, h = r1.Width(), r1.Height()
	case r1.AspectRatio() <= dst.AspectRatio():
		h = dst.Height()
		w = r1.ScaledWidth(h)
	default:
		w = dst.Width()
		h = r1.ScaledHeight(w)
	}

	dx = dst.LL.X - r1.LL.X*w/r1.Width() + dst.Width()/2 - w/2
	dy = dst.LL.Y - r1.LL.Y*h/r1.Height() + dst.Height()/2 - h/2

	if baseRot == 90 {
		dx += w
		w /= r1.Width()
		h /= r1.Height()
		w, h = h, w
	} else {
		w /= r1.Width()
		h /= r1.Height()
	}

	m1 := IdentMatrix
	m1[0][0] = w
	m1[1][1] = h

	rot := float64(baseRot)
	if extra180 {
		rot = math.Mod(rot+180, 360)
	}
	m2 := IdentMatrix
	sin := math.Sin(rot * degToRad)
	cos := math.Cos(rot * degToRad)
	m2[0][0] = cos
	m2[0][1] = sin
	m2[1][0] = -sin
	m2[1][1] = cos

	m3 := IdentMatrix
	m3[2][0] = dx
	m3[2][1] = dy

	m := m1.Multiply(m2).Multiply(m3)

	if extra180 {
		if baseRot == 0 {
			m[2][0] += w * r1.Width()
			m[2][1] += h * r1.Height()
		} else {
			m[2][0] -= h * r1.Width()
			m[2][1] += w * r1.Height()
		}
	}

	return m
}
