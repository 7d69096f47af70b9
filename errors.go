// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package planartri

import (
	"errors"
	"fmt"

	"github.com/2dChan/planartri/lifthull"
)

var (
	// ErrMismatchedLengths is returned when x and y differ in length.
	ErrMismatchedLengths = errors.New("x and y must be slices of the same length")
	// ErrTooFewPoints is returned for inputs of fewer than 3 points.
	ErrTooFewPoints = errors.New("x and y must have a length of at least 3")
	// ErrNotEnoughUniquePoints is returned when the input holds fewer than
	// 3 distinct points.
	ErrNotEnoughUniquePoints = errors.New("x and y must consist of at least 3 unique points")
	// ErrInternal is returned when a triangulation invariant breaks. It is
	// never expected and always fatal to the call.
	ErrInternal = errors.New("internal error in Delaunay triangulation")
)

// EngineError reports a failure inside the hull engine, keeping the engine's
// own classification and raw exit code so callers can tell retryable
// conditions (memory exhaustion) from fundamentally bad input (singular
// configurations that passed the cheap uniqueness check).
type EngineError struct {
	Code                  lifthull.Code
	ExitCode              int
	DiagnosticsSuppressed bool

	cause error
}

func (e *EngineError) Error() string {
	msg := fmt.Sprintf("error in Delaunay triangulation calculation: %s (exitcode=%d)",
		e.Code, e.ExitCode)
	if e.DiagnosticsSuppressed {
		msg += "; use WithDiagnostics to see the original hull engine error"
	}
	return msg
}

func (e *EngineError) Unwrap() error {
	return e.cause
}
