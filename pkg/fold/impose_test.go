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
	"testing"

	"github.com/pagefold/pagefold/pkg/model"
)

func testConfig() model.ImposeConfig {
	return model.ImposeConfig{
		Pairs: []model.SignaturePair{
			{Large: 32, Small: 28},
			{Large: 16, Small: 12},
		},
	}
}

func TestImposeEndToEnd(t *testing.T) {
	job, err := Impose(100, model.Level2, model.LTR, testConfig())
	if err != nil {
		t.Fatalf("Impose: %v", err)
	}
	if job.Plan.TotalPages%4 != 0 {
		t.Errorf("total_pages %d not a multiple of 4", job.Plan.TotalPages)
	}
	if len(job.Signatures) != len(job.Plan.Sequence) {
		t.Fatalf("got %d signatures, want %d", len(job.Signatures), len(job.Plan.Sequence))
	}
}

func TestImposeEmptyInput(t *testing.T) {
	if _, err := Impose(0, model.Level1, model.LTR, testConfig()); err == nil {
		t.Fatal("expected an EmptyInput error")
	}
}

func TestImposeInvalidLevel(t *testing.T) {
	if _, err := Impose(10, model.Level(0), model.LTR, testConfig()); err == nil {
		t.Fatal("expected an InvalidLevel error")
	}
}

func TestImposeNoPairs(t *testing.T) {
	if _, err := Impose(10, model.Level1, model.LTR, model.ImposeConfig{}); err == nil {
		t.Fatal("expected a NoPairs error")
	}
}
