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
	"reflect"
	"testing"

	"github.com/pagefold/pagefold/pkg/model"
)

type planTestCase struct {
	id         string
	pageCount  int
	pair       model.SignaturePair
	wantSeq    []int
	wantBlanks int
	wantTotal  int
}

var planTestCases = []planTestCase{
	{
		id:         "exact fit",
		pageCount:  128,
		pair:       model.SignaturePair{Large: 32, Small: 28},
		wantSeq:    []int{32, 32, 32, 32},
		wantBlanks: 0,
		wantTotal:  128,
	},
	{
		id:         "interleaving",
		pageCount:  100,
		pair:       model.SignaturePair{Large: 32, Small: 28},
		wantSeq:    []int{32, 32, 32, 32},
		wantBlanks: 28,
		wantTotal:  128,
	},
	{
		id:         "tail blanks",
		pageCount:  30,
		pair:       model.SignaturePair{Large: 32, Small: 28},
		wantTotal:  32,
		wantBlanks: 2,
	},
}

func TestPlanForPair(t *testing.T) {
	for _, tc := range planTestCases {
		tc := tc
		t.Run(tc.id, func(t *testing.T) {
			plan, err := PlanForPair(tc.pageCount, tc.pair)
			if err != nil {
				t.Fatalf("PlanForPair: %v", err)
			}
			if plan.TotalPages != tc.wantTotal {
				t.Errorf("total_pages = %d, want %d", plan.TotalPages, tc.wantTotal)
			}
			if plan.Blanks != tc.wantBlanks {
				t.Errorf("blanks = %d, want %d", plan.Blanks, tc.wantBlanks)
			}
			if tc.wantSeq != nil && !reflect.DeepEqual(plan.Sequence, tc.wantSeq) {
				t.Errorf("sequence = %v, want %v", plan.Sequence, tc.wantSeq)
			}
			if plan.TotalPages%4 != 0 {
				t.Errorf("total_pages %d is not a multiple of 4", plan.TotalPages)
			}
			sum := 0
			for _, s := range plan.Sequence {
				sum += s
			}
			if sum != plan.TotalPages {
				t.Errorf("sum(sequence) = %d, want total_pages %d", sum, plan.TotalPages)
			}
		})
	}
}

func TestPlanForPairZeroPages(t *testing.T) {
	plan, err := PlanForPair(0, model.SignaturePair{Large: 32, Small: 28})
	if err != nil {
		t.Fatalf("PlanForPair: %v", err)
	}
	if plan.TotalPages != 0 || plan.Blanks != 0 || len(plan.Sequence) != 0 {
		t.Errorf("zero-page plan = %+v, want all-zero", plan)
	}
}

func TestPlanForPairBelowSmall(t *testing.T) {
	plan, err := PlanForPair(10, model.SignaturePair{Large: 32, Small: 28})
	if err != nil {
		t.Fatalf("PlanForPair: %v", err)
	}
	if len(plan.Sequence) != 1 || plan.Sequence[0] != 32 {
		t.Errorf("sequence = %v, want single 32-page signature", plan.Sequence)
	}
	if plan.Blanks != 22 {
		t.Errorf("blanks = %d, want 22", plan.Blanks)
	}
}

func TestPlanForPairInvalid(t *testing.T) {
	if _, err := PlanForPair(10, model.SignaturePair{Large: 12, Small: 12}); err == nil {
		t.Fatal("expected an error for a non-distinct pair")
	}
	if _, err := PlanForPair(10, model.SignaturePair{Large: 33, Small: 28}); err == nil {
		t.Fatal("expected an error for a pair not a multiple of 4")
	}
}

func TestChooseBestPlanMinimizesBlanks(t *testing.T) {
	pairs := []model.SignaturePair{
		{Large: 16, Small: 12},
		{Large: 32, Small: 28},
	}
	best, all, err := ChooseBestPlan(100, pairs)
	if err != nil {
		t.Fatalf("ChooseBestPlan: %v", err)
	}
	if len(all) != len(pairs) {
		t.Fatalf("len(all) = %d, want %d", len(all), len(pairs))
	}
	for _, p := range all {
		if best.Blanks > p.Blanks {
			t.Errorf("best.Blanks = %d exceeds plan %+v", best.Blanks, p)
		}
		if best.Blanks == p.Blanks && best.TotalPages > p.TotalPages {
			t.Errorf("best.TotalPages = %d exceeds tied plan %+v", best.TotalPages, p)
		}
	}
}

func TestChooseBestPlanNoPairs(t *testing.T) {
	if _, _, err := ChooseBestPlan(10, nil); err == nil {
		t.Fatal("expected NoPairs error")
	}
}
