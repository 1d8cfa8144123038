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

	"github.com/pagefold/pagefold/pkg/types"
)

// drawPanelGuides appends a thin dashed rectangle tracing box to buf,
// giving the operator a fold/cut guide once the sheet is printed.
func drawPanelGuides(buf *bytes.Buffer, box *types.Rectangle) {
	fmt.Fprintf(buf, "q [3 3] 0 d 0.2 w %.2f %.2f m %.2f %.2f l %.2f %.2f l %.2f %.2f l s Q\n",
		box.LL.X, box.LL.Y, box.UR.X, box.LL.Y, box.UR.X, box.UR.Y, box.LL.X, box.UR.Y)
}
