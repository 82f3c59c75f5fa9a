// internal/platform/resilience/retryable_strategy_test.go
package resilience

import (
	"context"
	"testing"
	"time"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/platform/errors"
	"modelfetch/internal/testutil"
)

// scripted devuelve los outcomes en orden; el último se repite.
type scripted struct {
	outcomes []domain.Outcome
	calls    int
}

func (s *scripted) Name() string { return "pip-git" }

func (s *scripted) Remote() string { return "https://github.com/FunAudioLLM/CosyVoice.git" }

func (s *scripted) Acquire(ctx context.Context, target domain.Target) domain.Outcome {
	i := s.calls
	if i >= len(s.outcomes) {
		i = len(s.outcomes) - 1
	}
	s.calls++
	return s.outcomes[i]
}

var remoteFailure = domain.Failure(errors.Wrap(errors.ErrRemoteFailure, "pip install"))

func TestRetryableStrategy_RetriesRemoteFailures(t *testing.T) {
	inner := &scripted{outcomes: []domain.Outcome{remoteFailure, remoteFailure, domain.Success()}}
	r := NewRetryableStrategy(inner, 3, time.Millisecond, 1.0, nil)

	outcome := r.Acquire(context.Background(), domain.Target{Name: "cosyvoice"})

	testutil.AssertTrue(t, outcome.Succeeded(), "should succeed on third call")
	testutil.AssertEqual(t, inner.calls, 3, "calls")
}

func TestRetryableStrategy_GivesUpAfterMaxRetries(t *testing.T) {
	inner := &scripted{outcomes: []domain.Outcome{remoteFailure}}
	r := NewRetryableStrategy(inner, 2, time.Millisecond, 1.0, nil)

	outcome := r.Acquire(context.Background(), domain.Target{Name: "cosyvoice"})

	testutil.AssertFalse(t, outcome.Succeeded(), "should fail")
	testutil.AssertEqual(t, outcome.Category(), domain.CategoryRemote, "category of last failure")
	testutil.AssertEqual(t, inner.calls, 3, "one call plus two retries")
}

func TestRetryableStrategy_DoesNotRetryOtherCategories(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"tool missing", domain.MissingTool("git")},
		{"no installable", errors.ErrNoInstallable},
		{"unexpected", errors.ErrUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &scripted{outcomes: []domain.Outcome{domain.Failure(tt.err)}}
			r := NewRetryableStrategy(inner, 5, time.Millisecond, 1.0, nil)

			r.Acquire(context.Background(), domain.Target{Name: "cosyvoice"})

			testutil.AssertEqual(t, inner.calls, 1, "calls")
		})
	}
}

func TestRetryableStrategy_CancelledDuringBackoff(t *testing.T) {
	inner := &scripted{outcomes: []domain.Outcome{remoteFailure}}
	r := NewRetryableStrategy(inner, 5, time.Hour, 1.0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	outcome := r.Acquire(ctx, domain.Target{Name: "cosyvoice"})

	testutil.AssertEqual(t, outcome.Category(), domain.CategoryTimeout, "deadline during backoff")
	testutil.AssertEqual(t, inner.calls, 1, "no retry after deadline")
}

func TestRetryableStrategy_Delegates(t *testing.T) {
	r := NewRetryableStrategy(&scripted{outcomes: []domain.Outcome{domain.Success()}}, 1, 0, 0, nil)

	testutil.AssertEqual(t, r.Name(), "pip-git", "name")
	testutil.AssertEqual(t, r.Remote(), "https://github.com/FunAudioLLM/CosyVoice.git", "remote")
}

func TestCalculateBackoff(t *testing.T) {
	r := NewRetryableStrategy(&scripted{outcomes: []domain.Outcome{domain.Success()}}, 10, time.Second, 2.0, nil)

	testutil.AssertEqual(t, r.calculateBackoff(0), time.Second, "first backoff")
	testutil.AssertEqual(t, r.calculateBackoff(2), 4*time.Second, "third backoff")
	testutil.AssertEqual(t, r.calculateBackoff(10), 60*time.Second, "capped")
}
