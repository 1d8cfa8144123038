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
	"github.com/pagefold/pagefold/pkg/log"
	"github.com/pagefold/pagefold/pkg/model"
)

// Impose is the core entrypoint: given a source page count, a fold level
// and a binding, it chooses the best signature plan from cfg.Pairs and
// maps every signature to placement records.
//
// Failure is eager: an invalid page count, level or pair set is reported
// before any mapping work begins.
func Impose(pageCount int, level model.Level, binding model.Binding, cfg model.ImposeConfig) (*model.JobDescriptor, error) {
	if pageCount <= 0 {
		return nil, model.NewError(model.EmptyInput, "page count must be positive, got %d", pageCount)
	}
	if !level.Valid() {
		return nil, model.NewError(model.InvalidLevel, "fold level must be 1..4, got %d", level)
	}
	if len(cfg.Pairs) == 0 {
		return nil, model.NewError(model.NoPairs, "no signature pairs configured")
	}

	plan, _, err := ChooseBestPlan(pageCount, cfg.Pairs)
	if err != nil {
		return nil, err
	}

	log.Info.Printf("plan: %s", plan.String())
	if plan.Blanks > 0 {
		log.Info.Printf("plan pads input with %d blank pages", plan.Blanks)
	}

	// cfg.EmitBlankTailSignature is not consumed: no separate blank signature is emitted.
	_ = cfg.EmitBlankTailSignature

	signatures, err := BuildRecords(plan.Sequence, level, binding)
	if err != nil {
		return nil, err
	}

	// The plan's blanks are the pages past pageCount at the end of the last
	// signatures; they have no source page, so their records become blanks.
	// They are the highest pages of their signature, so blanks stay last.
	for i := range signatures {
		recs := signatures[i].Records
		for j := range recs {
			if gp := recs[j].GlobalPage; gp != nil && *gp > pageCount {
				recs[j].GlobalPage = nil
			}
		}
	}

	for i, sig := range signatures {
		if padding := sig.Padded - plan.Sequence[i]; padding > 0 {
			log.Info.Printf("signature #%d padded with %d blank pages", i+1, padding)
		}
	}

	return &model.JobDescriptor{Plan: plan, Signatures: signatures}, nil
}
