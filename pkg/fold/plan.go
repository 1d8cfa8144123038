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

// Package fold implements pagefold's core: signature planning, panel
// mapping and sheet description. It is deliberately free of any PDF or
// file-system dependency — it consumes page counts and configuration and
// emits model.JobDescriptor values for a renderer to consume.
package fold

import (
	"fmt"
	"sort"

	"github.com/pagefold/pagefold/pkg/model"
)

// PlanForPair computes the signature plan for n pages using pair, ordering
// the pair so that large >= small first.
func PlanForPair(n int, pair model.SignaturePair) (model.Plan, error) {
	if err := pair.Validate(); err != nil {
		return model.Plan{}, err
	}
	pair = pair.Ordered()
	large, small := pair.Large, pair.Small

	if n <= 0 {
		return model.Plan{
			Pair:       pair,
			Expression: expression(0, 0, large, small),
		}, nil
	}

	if n < small {
		return model.Plan{
			Pair:       pair,
			CountHi:    1,
			TotalPages: large,
			Blanks:     large - n,
			Sequence:   []int{large},
			Expression: expression(1, 0, large, small),
		}, nil
	}

	loFit := n / small
	used := loFit * small
	r := n - used

	var countHi, countLo int
	if r == 0 {
		countHi, countLo = 0, loFit
	} else {
		delta := large - small
		x := ceilDiv(r, delta)
		if x > loFit {
			countHi, countLo = x, 0
		} else {
			countHi, countLo = x, loFit-x
		}
	}

	total := countHi*large + countLo*small
	total = roundUpToMultiple(total, 4)
	blanks := total - n

	return model.Plan{
		Pair:       pair,
		CountHi:    countHi,
		CountLo:    countLo,
		TotalPages: total,
		Blanks:     blanks,
		Sequence:   buildSequence(countHi, countLo, large, small),
		Expression: expression(countHi, countLo, large, small),
	}, nil
}

// ceilDiv returns ceil(a/b) for positive a, b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func roundUpToMultiple(v, m int) int {
	if v%m == 0 {
		return v
	}
	return v + (m - v%m)
}

// buildSequence interleaves large/small pairwise while both remain, then
// appends the tail of whichever count outlasts the other.
func buildSequence(countHi, countLo, large, small int) []int {
	seq := make([]int, 0, countHi+countLo)
	for countHi > 0 && countLo > 0 {
		seq = append(seq, large, small)
		countHi--
		countLo--
	}
	for ; countHi > 0; countHi-- {
		seq = append(seq, large)
	}
	for ; countLo > 0; countLo-- {
		seq = append(seq, small)
	}
	return seq
}

// expression renders a human-readable plan summary, omitting zero terms.
func expression(countHi, countLo, large, small int) string {
	switch {
	case countHi == 0 && countLo == 0:
		return "0"
	case countHi == 0:
		return fmt.Sprintf("%d*%d", countLo, small)
	case countLo == 0:
		return fmt.Sprintf("%d*%d", countHi, large)
	default:
		return fmt.Sprintf("%d*%d + %d*%d", countHi, large, countLo, small)
	}
}

// ChooseBestPlan computes a Plan for every configured pair and returns the
// one minimizing (blanks, total_pages), plus every computed Plan in the
// same order as pairs. Ties are resolved stably by input pair order.
func ChooseBestPlan(n int, pairs []model.SignaturePair) (model.Plan, []model.Plan, error) {
	if len(pairs) == 0 {
		return model.Plan{}, nil, model.NewError(model.NoPairs, "no signature pairs configured")
	}

	all := make([]model.Plan, len(pairs))
	for i, pair := range pairs {
		p, err := PlanForPair(n, pair)
		if err != nil {
			return model.Plan{}, nil, err
		}
		all[i] = p
	}

	ranked := make([]model.Plan, len(all))
	copy(ranked, all)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Blanks != ranked[j].Blanks {
			return ranked[i].Blanks < ranked[j].Blanks
		}
		return ranked[i].TotalPages < ranked[j].TotalPages
	})

	return ranked[0], all, nil
}
