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

package types

import "fmt"

// Point is a 2D point in PDF user space.
type Point struct {
	X, Y float64
}

// Rectangle is an axis-aligned rectangle with lower-left and upper-right
// corners, matching PDF user space conventions (origin at lower left).
type Rectangle struct {
	LL, UR Point
}

// Rect creates a rectangle from four coordinates.
func Rect(llx, lly, urx, ury float64) *Rectangle {
	return &Rectangle{LL: Point{llx, lly}, UR: Point{urx, ury}}
}

// RectForDim creates a rectangle with lower-left at the origin.
func RectForDim(width, height float64) *Rectangle {
	return Rect(0, 0, width, height)
}

// Width returns the rectangle's width.
func (r Rectangle) Width() float64 { return r.UR.X - r.LL.X }

// Height returns the rectangle's height.
func (r Rectangle) Height() float64 { return r.UR.Y - r.LL.Y }

// Landscape reports whether the rectangle is wider than it is tall.
func (r Rectangle) Landscape() bool { return r.Width() > r.Height() }

// Portrait reports whether the rectangle is taller than it is wide.
func (r Rectangle) Portrait() bool { return r.Width() < r.Height() }

// AspectRatio returns width/height.
func (r Rectangle) AspectRatio() float64 { return r.Width() / r.Height() }

// FitsWithin reports whether r fits inside r2 without scaling.
func (r Rectangle) FitsWithin(r2 *Rectangle) bool {
	return r.Width() <= r2.Width() && r.Height() <= r2.Height()
}

// ScaledWidth returns the width r would have if scaled to height h.
func (r Rectangle) ScaledWidth(h float64) float64 {
	return r.Width() * h / r.Height()
}

// ScaledHeight returns the height r would have if scaled to width w.
func (r Rectangle) ScaledHeight(w float64) float64 {
	return r.Height() * w / r.Width()
}

// CroppedCopy returns a copy of r inset by margin on all sides.
func (r Rectangle) CroppedCopy(margin float64) *Rectangle {
	return Rect(r.LL.X+margin, r.LL.Y+margin, r.UR.X-margin, r.UR.Y-margin)
}

// Dimensions returns r's Dim.
func (r Rectangle) Dimensions() Dim {
	return Dim{Width: r.Width(), Height: r.Height()}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f, %.2f)", r.LL.X, r.LL.Y, r.UR.X, r.UR.Y)
}

// GridBoxes subdivides rect into a rows x cols grid of equal rectangles,
// row-major starting at the top-left panel, matching how a printed sheet
// is read: left to right, top row first.
func GridBoxes(rect *Rectangle, rows, cols int) []*Rectangle {
	gw := rect.Width() / float64(cols)
	gh := rect.Height() / float64(rows)

	boxes := make([]*Rectangle, 0, rows*cols)
	for row := 0; row < rows; row++ {
		// Row 0 is the topmost row: its y-range is the highest in user space.
		lly := rect.UR.Y - float64(row+1)*gh
		for col := 0; col < cols; col++ {
			llx := rect.LL.X + float64(col)*gw
			boxes = append(boxes, Rect(llx, lly, llx+gw, lly+gh))
		}
	}
	return boxes
}

// Split2Up halves rect into left and right rectangles at the x midpoint.
func Split2Up(rect *Rectangle) (left, right *Rectangle) {
	midX := (rect.LL.X + rect.UR.X) / 2
	return Rect(rect.LL.X, rect.LL.Y, midX, rect.UR.Y), Rect(midX, rect.LL.Y, rect.UR.X, rect.UR.Y)
}

// SplitTB halves rect into top and bottom rectangles at the y midpoint.
func SplitTB(rect *Rectangle) (top, bottom *Rectangle) {
	midY := (rect.LL.Y + rect.UR.Y) / 2
	return Rect(rect.LL.X, midY, rect.UR.X, rect.UR.Y), Rect(rect.LL.X, rect.LL.Y, rect.UR.X, midY)
}

// A4Portrait returns the canonical A4 rectangle in portrait orientation.
func A4Portrait() *Rectangle {
	d := PaperSize["A4"]
	return RectForDim(d.Width, d.Height)
}

// A4Landscape returns the canonical A4 rectangle in landscape orientation.
func A4Landscape() *Rectangle {
	d := PaperSize["A4"]
	return RectForDim(d.Height, d.Width)
}
