// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"sync"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/core/ports"
	"modelfetch/internal/platform/errors"
)

// callLog registra el orden de invocación entre varias estrategias
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) add(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, name)
}

func (c *callLog) get() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.calls...)
}

// mockStrategy es un mock de ports.Strategy
type mockStrategy struct {
	name        string
	log         *callLog
	acquireFunc func(ctx context.Context, target domain.Target) domain.Outcome
	calls       int
}

func (m *mockStrategy) Name() string { return m.name }

func (m *mockStrategy) Acquire(ctx context.Context, target domain.Target) domain.Outcome {
	m.calls++
	if m.log != nil {
		m.log.add(m.name)
	}
	if m.acquireFunc != nil {
		return m.acquireFunc(ctx, target)
	}
	return domain.Success()
}

func succeeding(name string, log *callLog) *mockStrategy {
	return &mockStrategy{name: name, log: log}
}

func failing(name string, log *callLog) *mockStrategy {
	return &mockStrategy{
		name: name,
		log:  log,
		acquireFunc: func(ctx context.Context, target domain.Target) domain.Outcome {
			return domain.Failure(errors.Wrapf(errors.ErrRemoteFailure, "%s failed", name))
		},
	}
}

// remoteStrategy agrega Remote() para probar la remediación con host
type remoteStrategy struct {
	*mockStrategy
	remote string
}

func (r remoteStrategy) Remote() string { return r.remote }

// mockPrerequisite es un mock de ports.Prerequisite
type mockPrerequisite struct {
	name  string
	err   error
	calls int
}

func (m *mockPrerequisite) Name() string { return m.name }

func (m *mockPrerequisite) Check(ctx context.Context) error {
	m.calls++
	return m.err
}

// recordingObserver guarda los eventos del runner
type recordingObserver struct {
	ports.NopObserver
	started  []string
	finished []domain.Attempt
	prereq   []string
	report   *domain.Report
}

func (o *recordingObserver) AttemptStarted(index, total int, strategy string) {
	o.started = append(o.started, strategy)
}

func (o *recordingObserver) AttemptFinished(index, total int, attempt domain.Attempt) {
	o.finished = append(o.finished, attempt)
}

func (o *recordingObserver) PrerequisiteFailed(name string, err error) {
	o.prereq = append(o.prereq, name)
}

func (o *recordingObserver) RunFinished(report domain.Report) {
	o.report = &report
}
