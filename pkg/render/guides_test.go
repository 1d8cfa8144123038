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
package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pagefold/pagefold/pkg/types"
)

func TestDrawPanelGuidesEmitsClosedPath(t *testing.T) {
	var buf bytes.Buffer
	box := types.Rect(10, 20, 110, 220)
	drawPanelGuides(&buf, box)

	out := buf.String()
	if !strings.HasPrefix(out, "q ") || !strings.Contains(out, " s Q") {
		t.Fatalf("expected a bracketed stroke operation, got %q", out)
	}
	if !strings.Contains(out, "10.00 20.00 m") {
		t.Fatalf("expected the path to start at the box's lower-left corner, got %q", out)
	}
}
