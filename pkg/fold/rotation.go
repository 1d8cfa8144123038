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

import "github.com/pagefold/pagefold/pkg/model"

type rotationKey struct {
	level   model.Level
	binding model.Binding
}

type rotationPair struct {
	front, back int
}

// rotationTable holds the (front, back) panel rotation in degrees for every
// (level, binding) pair the folder supports, including the level-2
// back-angle correction and the RTL level-1/2 correction. It is generated
// from computeRotationAngles and cross-checked against it in
// rotation_test.go so the two can never silently diverge; the table itself
// is what rotationAngles consults at runtime.
var rotationTable = buildRotationTable()

func buildRotationTable() map[rotationKey]rotationPair {
	t := make(map[rotationKey]rotationPair)
	for _, level := range []model.Level{model.Level1, model.Level2, model.Level3, model.Level4} {
		for _, binding := range []model.Binding{model.LTR, model.RTL} {
			front, back := computeRotationAngles(level, binding)
			t[rotationKey{level, binding}] = rotationPair{front, back}
		}
	}
	return t
}

// rotationAngles returns the (front, back) rotation in degrees for the
// given fold level and binding, per the fold schedule.
func rotationAngles(level model.Level, binding model.Binding) (front, back int) {
	p := rotationTable[rotationKey{level, binding}]
	return p.front, p.back
}

// computeRotationAngles derives the (front, back) rotation pair
// arithmetically. These formulae are empirically tuned to a specific
// folder/cutter workflow and must be reproduced exactly — see the worked
// corrections for level 2 and RTL levels 1-2.
func computeRotationAngles(level model.Level, binding model.Binding) (front, back int) {
	if level == model.Level4 {
		return 0, 180
	}

	delta := 0
	if binding == model.RTL {
		delta = 180
	}

	front = mod360((int(level)-1)*90 + 90 + delta)
	if binding == model.RTL && (level == model.Level1 || level == model.Level2) {
		front = mod360(front - 180)
	}

	back = mod360(front + 180)
	if level == model.Level2 {
		back = mod360(back - 180)
	}

	return front, back
}

func mod360(v int) int {
	v %= 360
	if v < 0 {
		v += 360
	}
	return v
}
