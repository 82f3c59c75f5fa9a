// internal/core/domain/report_test.go
package domain

import (
	"testing"

	"modelfetch/internal/testutil"
)

func TestReport_ExitCode(t *testing.T) {
	tests := []struct {
		status    RunStatus
		exit      int
		succeeded bool
	}{
		{StatusSucceeded, 0, true},
		{StatusAlreadyComplete, 0, true},
		{StatusWarning, 0, false},
		{StatusFailed, 1, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := Report{Status: tt.status}
			testutil.AssertEqual(t, r.ExitCode(), tt.exit, "exit code")
			testutil.AssertEqual(t, r.Succeeded(), tt.succeeded, "succeeded")
		})
	}
}
