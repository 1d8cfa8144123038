/*
Copyright 2021 The pdfcpu Authors.

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

// Package model holds pagefold's wire-level data types: signature pairs,
// plans, placement records and the job descriptor that ties them together.
// Nothing in this package performs computation — that lives in pkg/fold.
package model

import (
	"fmt"
	"strings"
)

// SignaturePair is an unordered pair of allowed signature sizes, each a
// positive multiple of 4. A configured slice of these is the Plan
// Selector's search space.
type SignaturePair struct {
	Large, Small int
}

// Validate checks the multiple-of-4 and positivity precondition.
func (p SignaturePair) Validate() error {
	large, small := p.Large, p.Small
	if large < small {
		large, small = small, large
	}
	if small <= 0 {
		return NewError(InvalidPair, "signature sizes must be positive, got (%d, %d)", p.Large, p.Small)
	}
	if large%4 != 0 || small%4 != 0 {
		return NewError(InvalidPair, "signature sizes must be multiples of 4, got (%d, %d)", p.Large, p.Small)
	}
	if large <= small {
		return NewError(InvalidPair, "large signature must exceed small, got (%d, %d)", p.Large, p.Small)
	}
	return nil
}

// Ordered returns the pair with Large >= Small.
func (p SignaturePair) Ordered() SignaturePair {
	if p.Large >= p.Small {
		return p
	}
	return SignaturePair{Large: p.Small, Small: p.Large}
}

// Plan is the result of signature planning for a given page count and pair.
type Plan struct {
	Pair       SignaturePair
	CountHi    int // number of Large signatures
	CountLo    int // number of Small signatures
	TotalPages int // count_hi*large + count_lo*small, rounded up to a multiple of 4
	Blanks     int // TotalPages - input pages, always >= 0
	Sequence   []int
	Expression string
}

func (p Plan) String() string {
	return fmt.Sprintf("Plan: %s, sequence=%v, blanks=%d", p.Expression, p.Sequence, p.Blanks)
}

// Level is the number of folds applied to a signature; it determines the
// intra-sheet panel grid.
type Level int

// Supported fold levels.
const (
	Level1 Level = 1
	Level2 Level = 2
	Level3 Level = 3
	Level4 Level = 4
)

// grids maps a fold level onto its (rows, cols) panel grid, per spec.
var grids = map[Level][2]int{
	Level1: {2, 1},
	Level2: {2, 2},
	Level3: {4, 2},
	Level4: {4, 4},
}

// Grid returns the (rows, cols) panel grid for level.
func (l Level) Grid() (rows, cols int, ok bool) {
	g, ok := grids[l]
	if !ok {
		return 0, 0, false
	}
	return g[0], g[1], true
}

// PanelsPerSide returns rows*cols for level.
func (l Level) PanelsPerSide() int {
	rows, cols, _ := l.Grid()
	return rows * cols
}

// PanelsPerSheet returns 2*PanelsPerSide (front + back).
func (l Level) PanelsPerSheet() int {
	return 2 * l.PanelsPerSide()
}

// Valid reports whether l is one of the four supported fold levels.
func (l Level) Valid() bool {
	_, ok := grids[l]
	return ok
}

// Binding is the reading direction governing placement order and rotation.
type Binding int

// Supported bindings.
const (
	LTR Binding = iota
	RTL
)

func (b Binding) String() string {
	if b == RTL {
		return "RTL"
	}
	return "LTR"
}

// ParseBinding parses "ltr"/"rtl" (case-insensitive).
func ParseBinding(s string) (Binding, error) {
	switch strings.ToLower(s) {
	case "", "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	default:
		return LTR, NewError(InvalidPair, "unknown binding: %s", s)
	}
}
