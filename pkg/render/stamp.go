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

package render

import (
	"bytes"
	"fmt"

	"github.com/pagefold/pagefold/pkg/log"
	"github.com/pagefold/pagefold/pkg/model"
	"github.com/pagefold/pagefold/pkg/types"
	pdffilter "github.com/pdfcpu/pdfcpu/pkg/filter"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pkg/errors"
)

// Imposer stamps a model.JobDescriptor's placement records into a fresh
// page tree on top of an already-open source document. It owns no state
// beyond the context it was built around.
type Imposer struct {
	ctx    *pdfcpu.Context
	level  model.Level
	margin float64
	guides bool
}

// NewImposer builds an Imposer over an already-opened source context.
func NewImposer(ctx *pdfcpu.Context, level model.Level, cfg model.ImposeConfig, guides bool) *Imposer {
	return &Imposer{ctx: ctx, level: level, margin: cfg.PageMargin, guides: guides}
}

// grid bundles the panel boxes for one sheet side with the shape they were
// cut from, so a (row, col) placement record can be turned back into an
// index without re-deriving cols from box geometry.
type grid struct {
	rows, cols int
	boxes      []*types.Rectangle
}

func (g grid) box(row, col int) *types.Rectangle {
	return g.boxes[row*g.cols+col]
}

// Run rewrites ctx's page tree in place to the imposed booklet layout
// described by job, at the given physical sheet size.
func (im *Imposer) Run(job *model.JobDescriptor, sheetDim types.Dim) error {
	rows, cols, ok := im.level.Grid()
	if !ok {
		return model.NewError(model.InvalidLevel, "fold level must be 1..4, got %d", im.level)
	}

	sheetRect := types.RectForDim(sheetDim.Width, sheetDim.Height)
	g := grid{rows: rows, cols: cols, boxes: types.GridBoxes(sheetRect, rows, cols)}
	mediaBox := pdfcpu.RectForDim(int(sheetDim.Width), int(sheetDim.Height))

	pagesDict := pdfcpu.Dict(map[string]pdfcpu.Object{
		"Type":     pdfcpu.Name("Pages"),
		"Count":    pdfcpu.Integer(0),
		"MediaBox": mediaBox.Array(),
	})
	pagesIndRef, err := im.ctx.IndRefForNewObject(pagesDict)
	if err != nil {
		return errors.Wrap(err, "pagefold: allocating page tree root")
	}

	for sigIdx, sig := range job.Signatures {
		if err := im.imposeSignature(sigIdx+1, sig, mediaBox, g, pagesDict, pagesIndRef); err != nil {
			return err
		}
	}

	rootDict, err := im.ctx.Catalog()
	if err != nil {
		return errors.Wrap(err, "pagefold: loading document catalog")
	}
	rootDict.Update("Pages", *pagesIndRef)

	return nil
}

// imposeSignature emits one pair of output pages (front, back) per sheet
// of sig, stamping every non-blank placement record into its panel box.
func (im *Imposer) imposeSignature(sigNr int, sig model.SignatureResult, mediaBox *pdfcpu.Rectangle, g grid, pagesDict pdfcpu.Dict, pagesIndRef *pdfcpu.IndirectRef) error {
	bySheet := make(map[int][]model.PlacementRecord)
	for _, r := range sig.Records {
		bySheet[r.Sheet] = append(bySheet[r.Sheet], r)
	}

	for sheet := 1; sheet <= sig.Sheets; sheet++ {
		records := bySheet[sheet]
		if err := im.imposeSheetSide(records, model.Front, mediaBox, g, pagesDict, pagesIndRef); err != nil {
			return errors.Wrapf(err, "pagefold: signature #%d sheet %d front", sigNr, sheet)
		}
		if err := im.imposeSheetSide(records, model.Back, mediaBox, g, pagesDict, pagesIndRef); err != nil {
			return errors.Wrapf(err, "pagefold: signature #%d sheet %d back", sigNr, sheet)
		}
	}
	return nil
}

// imposeSheetSide builds one output page for one side of one sheet,
// wrapping every source page it references as a Form XObject and
// composing a content stream that places each into its panel box.
func (im *Imposer) imposeSheetSide(records []model.PlacementRecord, side model.Side, mediaBox *pdfcpu.Rectangle, g grid, pagesDict pdfcpu.Dict, pagesIndRef *pdfcpu.IndirectRef) error {
	xRefTable := im.ctx.XRefTable

	var buf bytes.Buffer
	formsResDict := pdfcpu.NewDict()

	for i, r := range records {
		if r.Side != side || r.Blank() {
			continue
		}

		d, _, inhPAttrs, err := xRefTable.PageDict(*r.GlobalPage, true)
		if err != nil {
			return err
		}
		if d == nil {
			return model.NewError(model.RenderFailed, "unknown source page %d", *r.GlobalPage)
		}

		bb, err := xRefTable.PageContent(d)
		if err != nil {
			log.Debug.Printf("page %d has no content stream: %v", *r.GlobalPage, err)
			continue
		}

		resIndRef, err := xRefTable.IndRefForNewObject(inhPAttrs.Resources)
		if err != nil {
			return err
		}

		cropBox := inhPAttrs.MediaBox
		if inhPAttrs.CropBox != nil {
			cropBox = inhPAttrs.CropBox
		}

		formIndRef, err := newSourcePageForm(xRefTable, resIndRef, bb, cropBox)
		if err != nil {
			return err
		}

		formResID := fmt.Sprintf("Fm%d", i)
		formsResDict.Insert(formResID, *formIndRef)

		src := types.Rect(cropBox.LL.X, cropBox.LL.Y, cropBox.UR.X, cropBox.UR.Y)
		dst := g.box(r.Row, r.Col).CroppedCopy(im.margin)
		m := transformForRotation(src, dst, r.RotationDegrees)

		fmt.Fprintf(&buf, "q %.4f %.4f %.4f %.4f %.4f %.4f cm /%s Do Q\n",
			m[0][0], m[0][1], m[1][0], m[1][1], m[2][0], m[2][1], formResID)

		if im.guides {
			drawPanelGuides(&buf, dst)
		}
	}

	return wrapSheetPage(im.ctx, mediaBox, formsResDict, buf, pagesDict, pagesIndRef)
}

// newSourcePageForm wraps a source page's content stream and resource
// dictionary as a reusable Form XObject.
func newSourcePageForm(xRefTable *pdfcpu.XRefTable, resIndRef *pdfcpu.IndirectRef, content []byte, cropBox *pdfcpu.Rectangle) (*pdfcpu.IndirectRef, error) {
	sd := pdfcpu.StreamDict{
		Dict: pdfcpu.Dict(map[string]pdfcpu.Object{
			"Type":      pdfcpu.Name("XObject"),
			"Subtype":   pdfcpu.Name("Form"),
			"BBox":      cropBox.Array(),
			"Matrix":    pdfcpu.NewIntegerArray(1, 0, 0, 1, 0, 0),
			"Resources": *resIndRef,
		}),
		Content:        content,
		FilterPipeline: []pdfcpu.PDFFilter{{Name: pdffilter.Flate, DecodeParms: nil}},
	}
	sd.InsertName("Filter", pdffilter.Flate)
	if err := sd.Encode(); err != nil {
		return nil, err
	}
	return xRefTable.IndRefForNewObject(sd)
}

// wrapSheetPage turns an accumulated content stream and resource
// dictionary into a page object and appends it to the output page tree.
func wrapSheetPage(ctx *pdfcpu.Context, mediaBox *pdfcpu.Rectangle, xobjects pdfcpu.Dict, buf bytes.Buffer, pagesDict pdfcpu.Dict, pagesIndRef *pdfcpu.IndirectRef) error {
	xRefTable := ctx.XRefTable

	resIndRef, err := xRefTable.IndRefForNewObject(pdfcpu.Dict(map[string]pdfcpu.Object{"XObject": xobjects}))
	if err != nil {
		return err
	}

	sd, err := xRefTable.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return err
	}
	if err := sd.Encode(); err != nil {
		return err
	}
	contentsIndRef, err := xRefTable.IndRefForNewObject(*sd)
	if err != nil {
		return err
	}

	pageDict := pdfcpu.Dict(map[string]pdfcpu.Object{
		"Type":      pdfcpu.Name("Page"),
		"Parent":    *pagesIndRef,
		"MediaBox":  mediaBox.Array(),
		"Resources": *resIndRef,
		"Contents":  *contentsIndRef,
	})

	indRef, err := xRefTable.IndRefForNewObject(pageDict)
	if err != nil {
		return err
	}
	if err := pdfcpu.AppendPageTree(indRef, 1, &pagesDict); err != nil {
		return err
	}
	ctx.PageCount++
	return nil
}
