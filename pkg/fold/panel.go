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

package fold

import "github.com/pagefold/pagefold/pkg/model"

// RotateCW treats seq as a 2x(n/2) grid (top = seq[:n/2], bot = seq[n/2:])
// and returns its 90-degree clockwise reading. For len(seq) == 1 the input
// is returned unchanged — the base case when a deep fold would otherwise
// split a 1-element group.
func RotateCW(seq []int) []int {
	n := len(seq)
	if n <= 1 {
		out := make([]int, n)
		copy(out, seq)
		return out
	}

	mid := n / 2
	top, bot := seq[:mid], seq[mid:]
	out := make([]int, 0, n)
	for i := 0; i < mid; i++ {
		out = append(out, bot[i], top[i])
	}
	return out
}

// rotationBudget returns the number of rotate_cw passes process2DArray may
// spend across the whole fold: 1 for level 3, 2 for level 4, 0 otherwise.
// This is the budget-based variant; a flag-gated variant restricted to
// exactly level 3 is superseded.
func rotationBudget(level model.Level) int {
	switch level {
	case model.Level3:
		return 1
	case model.Level4:
		return 2
	default:
		return 0
	}
}

// Process2DArray performs up to int(level) halving passes over the
// columns of matrix, optionally rotating the left/right halves when the
// rotation budget allows, and returns the arranged groups. The first cell
// of each returned group is the panel number occupying that physical
// position.
func Process2DArray(matrix [][]int, level model.Level) [][]int {
	current := make([][]int, len(matrix))
	for i, row := range matrix {
		r := make([]int, len(row))
		copy(r, row)
		current[i] = r
	}

	rotationsLeft := rotationBudget(level)

	for pass := 0; pass < int(level); pass++ {
		allLEn := true
		for _, row := range current {
			if len(row) > 2 {
				allLEn = false
				break
			}
		}
		if allLEn {
			break
		}

		var lefts, rights [][]int
		rotateThisPass := rotationsLeft > 0
		for _, row := range current {
			mid := len(row) / 2
			left, right := row[:mid], row[mid:]
			if rotateThisPass {
				left = RotateCW(left)
				right = RotateCW(right)
			}
			lefts = append(lefts, left)
			rights = append(rights, right)
		}
		if rotateThisPass {
			rotationsLeft--
		}

		current = append(lefts, rights...)
	}

	return current
}

// SplitFrontBack partitions arranged by 1-based index parity: odd-indexed
// entries form fronts, even-indexed form backs, mirroring the alternation
// of front and back through the fold.
func SplitFrontBack(arranged [][]int) (fronts, backs [][]int) {
	for i, g := range arranged {
		if (i+1)%2 == 1 {
			fronts = append(fronts, g)
		} else {
			backs = append(backs, g)
		}
	}
	return fronts, backs
}

// FrontPairs emits, for n front groups within a signature padded to size
// padded, the booklet-order mates (1+2k, padded-2k) placed on each front
// spread.
func FrontPairs(n, padded int) [][2]int {
	pairs := make([][2]int, n)
	for k := 0; k < n; k++ {
		pairs[k] = [2]int{1 + 2*k, padded - 2*k}
	}
	return pairs
}

// BackPairs emits, for n back groups within a signature padded to size
// padded, the booklet-order mates (2+2k, padded-(2k+1)) placed on each
// back spread.
func BackPairs(n, padded int) [][2]int {
	pairs := make([][2]int, n)
	for k := 0; k < n; k++ {
		pairs[k] = [2]int{2 + 2*k, padded - (2*k + 1)}
	}
	return pairs
}

// PanelToSheetSide computes the sheet index, side and orientation for a
// global panel number under the given fold level and binding.
func PanelToSheetSide(panel int, level model.Level, binding model.Binding) (sheet int, side model.Side, orientation model.Orientation) {
	perSheet := level.PanelsPerSheet()
	perSide := level.PanelsPerSide()

	sheet = ceilDiv(panel, perSheet)
	if (panel-1)%perSheet < perSide {
		side = model.Front
	} else {
		side = model.Back
	}

	ltrOrientation := model.LeftToRight
	if side == model.Back {
		ltrOrientation = model.RightToLeft
	}
	if binding == model.LTR {
		orientation = ltrOrientation
	} else if ltrOrientation == model.LeftToRight {
		orientation = model.RightToLeft
	} else {
		orientation = model.LeftToRight
	}

	return sheet, side, orientation
}

// rowColOrder returns the 0-based (row, col) grid slots in the order
// panels on a side should be assigned, for the given grid shape, side and
// binding. LTR reads fronts left-to-right and backs right-to-left; RTL is
// the mirror image. A5 (cols == 1) under RTL additionally applies a
// vertical flip: slots are assigned top-to-bottom in reverse.
func rowColOrder(rows, cols int, side model.Side, binding model.Binding) [][2]int {
	ltr := side == model.Front
	if binding == model.RTL {
		ltr = !ltr
	}

	slots := make([][2]int, 0, rows*cols)
	for r := 0; r < rows; r++ {
		if ltr {
			for c := 0; c < cols; c++ {
				slots = append(slots, [2]int{r, c})
			}
		} else {
			for c := cols - 1; c >= 0; c-- {
				slots = append(slots, [2]int{r, c})
			}
		}
	}

	if cols == 1 && binding == model.RTL {
		for i, j := 0, len(slots)-1; i < j; i, j = i+1, j-1 {
			slots[i], slots[j] = slots[j], slots[i]
		}
	}

	return slots
}
