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

package model

import "fmt"

// Side is the printed face of a sheet.
type Side string

// The two sides of a sheet.
const (
	Front Side = "front"
	Back  Side = "back"
)

// Orientation is the reading direction of a placed spread, derived from
// Side and Binding.
type Orientation string

// The two placement orientations.
const (
	LeftToRight Orientation = "L→R"
	RightToLeft Orientation = "R→L"
)

// PlacementRecord describes where one panel of a signature lands on a
// physical sheet, and which source page (if any) it carries.
//
// GlobalPage is nil for a tail-blank panel: there is no source page to
// stamp, only a hole in the layout that the renderer must leave empty.
type PlacementRecord struct {
	GlobalPage      *int // 1-based source page, nil for a blank
	LocalPanel      int  // 1-based, within the signature
	GlobalPanel     int  // 1-based, across the whole job
	Sheet           int  // 1-based, within the signature
	Side            Side
	Orientation     Orientation
	Row, Col        int // 0-based grid position on this sheet side
	RotationDegrees int // one of 0, 90, 180, 270
}

// Blank reports whether this record has no source page to render.
func (r PlacementRecord) Blank() bool { return r.GlobalPage == nil }

func (r PlacementRecord) String() string {
	page := "blank"
	if r.GlobalPage != nil {
		page = fmt.Sprintf("%d", *r.GlobalPage)
	}
	return fmt.Sprintf("sheet=%d side=%s row=%d col=%d rot=%d page=%s",
		r.Sheet, r.Side, r.Row, r.Col, r.RotationDegrees, page)
}

// SignatureResult is the mapped output for one signature: its padded size,
// its sheet count, and the sorted placement records covering every panel.
type SignatureResult struct {
	Padded  int
	Sheets  int
	Records []PlacementRecord
}

// JobDescriptor is the complete output of an imposition run: the chosen
// Plan plus one SignatureResult per entry in Plan.Sequence.
type JobDescriptor struct {
	Plan       Plan
	Signatures []SignatureResult
}

// ImposeConfig holds the parameters an imposition run needs beyond the
// page count: the Plan Selector's search space and the geometric inset
// the renderer applies inside each panel box.
type ImposeConfig struct {
	Pairs      []SignaturePair
	PageMargin float64

	// EmitBlankTailSignature is accepted and validated but not yet
	// consumed by the mapper; see its read site in pkg/fold.Impose.
	EmitBlankTailSignature bool
}
