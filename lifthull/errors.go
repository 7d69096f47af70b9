// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lifthull

import "fmt"

// Code classifies a hull engine failure.
type Code int

const (
	// CodeInputInconsistency marks input the engine cannot accept, such as
	// coordinate slices of different lengths.
	CodeInputInconsistency Code = iota + 1
	// CodeSingularInput marks a point set with no two-dimensional extent,
	// such as an entirely collinear configuration.
	CodeSingularInput
	// CodePrecision marks a failure of the engine's floating-point
	// processing on an otherwise acceptable input.
	CodePrecision
	// CodeOutOfMemory marks exhaustion of the engine's working memory.
	CodeOutOfMemory
	// CodeInternal marks a broken invariant inside the engine itself.
	CodeInternal
)

func (c Code) String() string {
	switch c {
	case CodeInputInconsistency:
		return "input inconsistency"
	case CodeSingularInput:
		return "singular input data"
	case CodePrecision:
		return "precision error"
	case CodeOutOfMemory:
		return "insufficient memory"
	case CodeInternal:
		return "internal error"
	}
	return "unknown error"
}

// Error is a hull engine failure with its classification code.
type Error struct {
	Code   Code
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("lifthull: %s", e.Code)
	}
	return fmt.Sprintf("lifthull: %s: %s", e.Code, e.Detail)
}
