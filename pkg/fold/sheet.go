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

import (
	"sort"

	"github.com/pagefold/pagefold/pkg/model"
)

// buildMatrix lays consecutive panel numbers, starting at first, row-major
// into a rows x cols grid.
func buildMatrix(first, rows, cols int) [][]int {
	matrix := make([][]int, rows)
	n := first
	for r := 0; r < rows; r++ {
		row := make([]int, cols)
		for c := 0; c < cols; c++ {
			row[c] = n
			n++
		}
		matrix[r] = row
	}
	return matrix
}

// BuildRecords computes one []PlacementRecord per signature in sequence,
// sorted by global_page ascending with blanks last.
func BuildRecords(sequence []int, level model.Level, binding model.Binding) ([]model.SignatureResult, error) {
	if !level.Valid() {
		return nil, model.NewError(model.InvalidLevel, "fold level must be 1..4, got %d", level)
	}

	perSheet := level.PanelsPerSheet()
	perSide := level.PanelsPerSide()
	rows, cols, _ := level.Grid()
	frontAngle, backAngle := rotationAngles(level, binding)
	frontSlots := rowColOrder(rows, cols, model.Front, binding)
	backSlots := rowColOrder(rows, cols, model.Back, binding)

	results := make([]model.SignatureResult, 0, len(sequence))
	pageOffsetReal := 0
	panelOffsetPadded := 0

	for _, s := range sequence {
		padded := s + (perSheet-s%perSheet)%perSheet
		sigFirstPanel := panelOffsetPadded + 1

		innerLen := 1 << uint(level)
		matrix := buildMatrix(sigFirstPanel, padded/innerLen, innerLen)
		arranged := Process2DArray(matrix, level)
		fronts, backs := SplitFrontBack(arranged)

		frontPairs := FrontPairs(len(fronts), padded)
		backPairs := BackPairs(len(backs), padded)

		records := make([]model.PlacementRecord, 0, padded)
		records = appendSide(records, fronts, frontPairs, s, pageOffsetReal, sigFirstPanel,
			level, binding, model.Front, perSide, frontSlots, frontAngle)
		records = appendSide(records, backs, backPairs, s, pageOffsetReal, sigFirstPanel,
			level, binding, model.Back, perSide, backSlots, backAngle)

		sort.SliceStable(records, func(i, j int) bool {
			pi, pj := records[i].GlobalPage, records[j].GlobalPage
			switch {
			case pi == nil && pj == nil:
				return false
			case pi == nil:
				return false
			case pj == nil:
				return true
			default:
				return *pi < *pj
			}
		})

		results = append(results, model.SignatureResult{
			Padded:  padded,
			Sheets:  padded / perSheet,
			Records: records,
		})

		pageOffsetReal += s
		panelOffsetPadded += padded
	}

	return results, nil
}

// appendSide emits placement records for one side (front or back) of a
// signature: each page-number pair (local page numbers within the
// signature) is matched by index to the two-cell arranged group carrying
// the global panel numbers that occupy those pages. SplitFrontBack already
// guarantees every panel number passed in here resolves back to side via
// PanelToSheetSide.
func appendSide(
	records []model.PlacementRecord,
	groups [][]int,
	pagePairs [][2]int,
	sigRealSize, pageOffsetReal, sigFirstPanel int,
	level model.Level,
	binding model.Binding,
	side model.Side,
	perSide int,
	slots [][2]int,
	rotation int,
) []model.PlacementRecord {
	for k, pair := range pagePairs {
		group := groups[k]
		localPages := [2]int{pair[0], pair[1]}
		globalPanels := [2]int{group[0], group[1]}

		for i := 0; i < 2; i++ {
			localPage := localPages[i]
			globalPanel := globalPanels[i]

			sheet, _, orient := PanelToSheetSide(globalPanel, level, binding)
			// PanelToSheetSide counts sheets across the job; make it 1-based
			// within this signature (earlier signatures fill whole sheets).
			sheet -= (sigFirstPanel - 1) / level.PanelsPerSheet()
			localPanel := globalPanel - sigFirstPanel + 1

			var globalPage *int
			if localPage <= sigRealSize {
				gp := pageOffsetReal + localPage
				globalPage = &gp
			}

			withinSideIdx := (globalPanel - 1) % perSide
			slot := slots[withinSideIdx]

			records = append(records, model.PlacementRecord{
				GlobalPage:      globalPage,
				LocalPanel:      localPanel,
				GlobalPanel:     globalPanel,
				Sheet:           sheet,
				Side:            side,
				Orientation:     orient,
				Row:             slot[0],
				Col:             slot[1],
				RotationDegrees: rotation,
			})
		}
	}
	return records
}
