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
	"github.com/pagefold/pagefold/pkg/fold"
	"github.com/pagefold/pagefold/pkg/log"
	"github.com/pagefold/pagefold/pkg/model"
	"github.com/pagefold/pagefold/pkg/types"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pkg/errors"
)

// BookletFile reads inFile, plans and maps its pages onto a booklet sized
// for targetSize (one of types.TargetSizes), and writes the result to
// outFile.
func BookletFile(inFile, outFile, targetSize string, binding model.Binding, cfg model.ImposeConfig, guides bool) error {
	dim, _, err := types.ParsePageFormat(targetSize)
	if err != nil {
		return errors.Wrap(err, "pagefold: resolving target size")
	}
	level, err := levelForTargetSize(targetSize)
	if err != nil {
		return err
	}

	pageCount, err := api.PageCountFile(inFile)
	if err != nil {
		return errors.Wrap(err, "pagefold: counting source pages")
	}

	job, err := fold.Impose(pageCount, level, binding, cfg)
	if err != nil {
		return err
	}

	ctx, err := api.ReadContextFile(inFile)
	if err != nil {
		return errors.Wrap(err, "pagefold: opening source document")
	}

	// The physical sheet is A4; a landscape target ("A5L", ...) turns it.
	sheetDim := types.PaperSize["A4"]
	if dim.Landscape() {
		sheetDim.Width, sheetDim.Height = sheetDim.Height, sheetDim.Width
	}

	imposer := NewImposer(ctx, level, cfg, guides)
	if err := imposer.Run(job, sheetDim); err != nil {
		return model.NewError(model.RenderFailed, "%v", err)
	}

	if err := api.ValidateContext(ctx); err != nil {
		log.Info.Printf("imposed document failed strict validation: %v", err)
	}

	if err := api.WriteContextFile(ctx, outFile); err != nil {
		return errors.Wrap(err, "pagefold: writing output document")
	}

	log.Stats.Printf("%s: %d source pages -> %d sheets across %d signatures",
		outFile, pageCount, totalSheets(job), len(job.Signatures))

	return nil
}

// levelForTargetSize maps a trim size onto the fold level that produces it
// from an A4 source: A5 needs one fold, A6 two, A7 three, A8 four.
func levelForTargetSize(targetSize string) (model.Level, error) {
	switch targetSize {
	case "A5", "A5L", "A5P":
		return model.Level1, nil
	case "A6", "A6L", "A6P":
		return model.Level2, nil
	case "A7", "A7L", "A7P":
		return model.Level3, nil
	case "A8", "A8L", "A8P":
		return model.Level4, nil
	default:
		return 0, model.NewError(model.InvalidLevel, "unsupported target size: %s", targetSize)
	}
}

func totalSheets(job *model.JobDescriptor) int {
	n := 0
	for _, sig := range job.Signatures {
		n += sig.Sheets
	}
	return n
}
