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

// Package types provides the Geometry Engine's primitives (dimensions,
// rectangles, paper sizes, grid boxes) used by the renderer.
package types

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// DisplayUnit represents the display unit in effect for parsing/formatting.
type DisplayUnit int

// Supported display units.
const (
	POINTS DisplayUnit = iota
	INCHES
	CENTIMETRES
	MILLIMETRES
)

func (u DisplayUnit) String() string {
	switch u {
	case INCHES:
		return "in"
	case CENTIMETRES:
		return "cm"
	case MILLIMETRES:
		return "mm"
	default:
		return "pt"
	}
}

// ParseDisplayUnit maps a unit string onto a DisplayUnit.
func ParseDisplayUnit(s string) (DisplayUnit, error) {
	switch strings.ToLower(s) {
	case "", "points", "po", "pt":
		return POINTS, nil
	case "inches", "in":
		return INCHES, nil
	case "cm":
		return CENTIMETRES, nil
	case "mm":
		return MILLIMETRES, nil
	default:
		return POINTS, errors.Errorf("pagefold: unsupported display unit: %s", s)
	}
}

// ToUserSpace converts a value expressed in unit u into PDF points.
func ToUserSpace(f float64, u DisplayUnit) float64 {
	switch u {
	case INCHES:
		return f * 72
	case CENTIMETRES:
		return f / 2.54 * 72
	case MILLIMETRES:
		return f / 25.4 * 72
	default:
		return f
	}
}

// Dim represents the dimensions of a rectangular area in points.
type Dim struct {
	Width, Height float64
}

func (dim Dim) String() string {
	return fmt.Sprintf("%fx%f points", dim.Width, dim.Height)
}

// Portrait returns true for a portrait aspect ratio.
func (dim Dim) Portrait() bool {
	return dim.Width < dim.Height
}

// Landscape returns true for a landscape aspect ratio.
func (dim Dim) Landscape() bool {
	return dim.Width > dim.Height
}

// AspectRatio returns the ratio of width to height.
func (dim Dim) AspectRatio() float64 {
	return dim.Width / dim.Height
}

// PaperSize is the fixed set of trim sizes pagefold understands.
//
// Values in PDF points (1/72 in), grounded on the teacher's own
// pkg/pdfcpu/paperSize.go ISO-A table.
var PaperSize = map[string]Dim{
	"A4": {Width: 595, Height: 842},
	"A5": {Width: 420, Height: 595},
	"A6": {Width: 298, Height: 420},
	"A7": {Width: 210, Height: 298},
	"A8": {Width: 148, Height: 210},
}

// TargetSizes lists the booklet trim sizes in fold-level order — A5 needs
// one fold of an A4 sheet, A6 two, A7 three, A8 four.
var TargetSizes = []string{"A5", "A6", "A7", "A8"}

// ParsePageFormat parses a paper format string like "A5" or "A5L" (landscape
// override) into a Dim.
func ParsePageFormat(v string) (Dim, string, error) {
	portrait := true
	switch {
	case strings.HasSuffix(v, "L"):
		v = v[:len(v)-1]
		portrait = false
	case strings.HasSuffix(v, "P"):
		v = v[:len(v)-1]
	}

	d, ok := PaperSize[strings.ToUpper(v)]
	if !ok {
		return Dim{}, v, errors.Errorf("pagefold: page format %s is unsupported", v)
	}

	if (d.Portrait() && !portrait) || (d.Landscape() && portrait) {
		d.Width, d.Height = d.Height, d.Width
	}

	return d, strings.ToUpper(v), nil
}
