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

package model

import "fmt"

// ErrorKind enumerates the core's reported (never caught for control flow)
// failure modes.
type ErrorKind int

const (
	// EmptyInput means the page count is zero.
	EmptyInput ErrorKind = iota
	// InvalidLevel means the fold level is outside 1..4.
	InvalidLevel
	// InvalidPair means a signature pair fails the multiple-of-4 or
	// positivity precondition.
	InvalidPair
	// NoPairs means the configured pair set is empty.
	NoPairs
	// RenderFailed wraps an opaque external-collaborator failure.
	RenderFailed
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case InvalidLevel:
		return "InvalidLevel"
	case InvalidPair:
		return "InvalidPair"
	case NoPairs:
		return "NoPairs"
	case RenderFailed:
		return "RenderFailed"
	default:
		return "Unknown"
	}
}

// Error is pagefold's structured error type. It always carries a Kind so
// callers can branch on failure mode without string matching, plus enough
// context (which signature, which pair) to act on it.
type Error struct {
	Kind      ErrorKind
	Message   string
	Signature int // 1-based, 0 if not applicable
	Pair      *SignaturePair
}

func (e *Error) Error() string {
	s := fmt.Sprintf("pagefold: %s: %s", e.Kind, e.Message)
	if e.Signature > 0 {
		s += fmt.Sprintf(" (signature #%d)", e.Signature)
	}
	if e.Pair != nil {
		s += fmt.Sprintf(" (pair %d/%d)", e.Pair.Large, e.Pair.Small)
	}
	return s
}

// NewError builds an *Error for the given kind and message.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
