/*
Copyright 2024 The pdfcpu Authors.

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
	"testing"

	"github.com/pagefold/pagefold/pkg/model"
)

func TestBuildRecordsLocalPanelPermutation(t *testing.T) {
	for level := model.Level1; level <= model.Level4; level++ {
		results, err := BuildRecords([]int{32}, level, model.LTR)
		if err != nil {
			t.Fatalf("level %d: BuildRecords: %v", level, err)
		}
		sig := results[0]
		if len(sig.Records) != sig.Padded {
			t.Fatalf("level %d: got %d records, want %d", level, len(sig.Records), sig.Padded)
		}

		seen := make(map[int]bool, sig.Padded)
		for _, r := range sig.Records {
			if r.LocalPanel < 1 || r.LocalPanel > sig.Padded {
				t.Fatalf("level %d: local_panel %d out of range 1..%d", level, r.LocalPanel, sig.Padded)
			}
			if seen[r.LocalPanel] {
				t.Fatalf("level %d: duplicate local_panel %d", level, r.LocalPanel)
			}
			seen[r.LocalPanel] = true
		}
	}
}

func TestBuildRecordsLevel1DoesNotPanic(t *testing.T) {
	// Level 1's matrix has 2 columns (1<<1), not the 1-column physical
	// front/back grid level.Grid() reports — using the latter here used to
	// produce single-cell arranged groups and panic in appendSide.
	results, err := BuildRecords([]int{32}, model.Level1, model.LTR)
	if err != nil {
		t.Fatalf("BuildRecords: %v", err)
	}
	sig := results[0]
	if len(sig.Records) != sig.Padded {
		t.Fatalf("got %d records, want %d", len(sig.Records), sig.Padded)
	}
}

func TestBuildRecordsGlobalPagePermutation(t *testing.T) {
	sequence := []int{32, 28, 32}
	results, err := BuildRecords(sequence, model.Level2, model.LTR)
	if err != nil {
		t.Fatalf("BuildRecords: %v", err)
	}

	var pages []int
	for _, sig := range results {
		for _, r := range sig.Records {
			if !r.Blank() {
				pages = append(pages, *r.GlobalPage)
			}
		}
	}

	wantTotal := 0
	for _, s := range sequence {
		wantTotal += s
	}
	if len(pages) != wantTotal {
		t.Fatalf("got %d non-blank records, want %d", len(pages), wantTotal)
	}

	sort.Ints(pages)
	for i, p := range pages {
		if p != i+1 {
			t.Fatalf("global_page set is not a permutation of 1..%d: got %v", wantTotal, pages)
		}
	}
}

func TestBuildRecordsTailBlanksSortLast(t *testing.T) {
	// A 30-page signature at level 1 (per_sheet=4) pads to 32 pages,
	// leaving 2 tail blanks.
	results, err := BuildRecords([]int{30}, model.Level1, model.LTR)
	if err != nil {
		t.Fatalf("BuildRecords: %v", err)
	}
	sig := results[0]
	if sig.Padded != 32 {
		t.Fatalf("padded = %d, want 32", sig.Padded)
	}

	blanks := 0
	sawBlank := false
	for _, r := range sig.Records {
		if r.Blank() {
			sawBlank = true
			blanks++
			continue
		}
		if sawBlank {
			t.Fatalf("non-blank record after a blank: %+v", sig.Records)
		}
	}
	if blanks != 2 {
		t.Fatalf("blanks = %d, want 2", blanks)
	}
}

func TestBuildRecordsInvalidLevel(t *testing.T) {
	if _, err := BuildRecords([]int{32}, model.Level(7), model.LTR); err == nil {
		t.Fatal("expected an InvalidLevel error")
	}
}
