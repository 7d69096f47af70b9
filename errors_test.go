// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package planartri

import (
	"strings"
	"testing"

	"github.com/2dChan/planartri/lifthull"
)

func TestEngineError_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        *EngineError
		wantSubstr []string
		wantHint   bool
	}{
		{
			"singular suppressed",
			&EngineError{Code: lifthull.CodeSingularInput, ExitCode: 2, DiagnosticsSuppressed: true},
			[]string{"singular input data", "exitcode=2"},
			true,
		},
		{
			"precision surfaced",
			&EngineError{Code: lifthull.CodePrecision, ExitCode: 3},
			[]string{"precision error", "exitcode=3"},
			false,
		},
		{
			"unknown code",
			&EngineError{Code: lifthull.Code(42), ExitCode: 42},
			[]string{"unknown error", "exitcode=42"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, sub := range tt.wantSubstr {
				if !strings.Contains(msg, sub) {
					t.Errorf("engineErr.Error() = %q, want substring %q", msg, sub)
				}
			}
			hasHint := strings.Contains(msg, "WithDiagnostics")
			if hasHint != tt.wantHint {
				t.Errorf("engineErr.Error() = %q, diagnostics hint = %v, want %v", msg, hasHint, tt.wantHint)
			}
		})
	}
}

func TestEngineError_Unwrap(t *testing.T) {
	cause := &lifthull.Error{Code: lifthull.CodePrecision}
	err := &EngineError{Code: lifthull.CodePrecision, ExitCode: 3, cause: cause}
	if got := err.Unwrap(); got != error(cause) {
		t.Errorf("engineErr.Unwrap() = %v, want %v", got, cause)
	}
}
