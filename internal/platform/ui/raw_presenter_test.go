// internal/platform/ui/raw_presenter_test.go
package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/core/ports"
	"modelfetch/internal/platform/errors"
	"modelfetch/internal/platform/fsutil"
)

type namedStrategy string

func (s namedStrategy) Name() string { return string(s) }

func (s namedStrategy) Acquire(ctx context.Context, target domain.Target) domain.Outcome {
	return domain.Success()
}

func newTestRaw(format LogFormat) (*RawPresenter, *bytes.Buffer) {
	var buf bytes.Buffer
	r := newRawPresenter(&buf, format)
	r.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return r, &buf
}

func testPlan() ports.Plan {
	return ports.Plan{
		Target:     domain.Target{Name: "cosyvoice", Dir: "/models/cosyvoice-source"},
		Strategies: []ports.Strategy{namedStrategy("pip-git"), namedStrategy("git-source")},
	}
}

func TestRawPresenter_TextRunStarted(t *testing.T) {
	r, buf := newTestRaw(LogFormatText)

	r.RunStarted(testPlan())

	want := "2026-01-02T03:04:05Z INFO  run_started asset=cosyvoice dest=/models/cosyvoice-source optional=false strategies=pip-git,git-source\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestRawPresenter_TextQuotesSpaces(t *testing.T) {
	r, buf := newTestRaw(LogFormatText)

	attempt := domain.Attempt{
		Strategy: "pip-git",
		Outcome:  domain.Failure(errors.Wrap(errors.ErrRemoteFailure, "pip install")),
		Duration: 1500 * time.Millisecond,
	}
	r.AttemptFinished(1, 2, attempt)

	line := buf.String()
	if !strings.Contains(line, "WARN  attempt_finished") {
		t.Errorf("Expected WARN attempt_finished, got %q", line)
	}
	if !strings.Contains(line, `reason="pip install: network or remote failure"`) {
		t.Errorf("Expected quoted reason, got %q", line)
	}
	if !strings.Contains(line, "duration=1.5s") {
		t.Errorf("Expected duration=1.5s, got %q", line)
	}
	if !strings.Contains(line, "status=error") {
		t.Errorf("Expected status=error, got %q", line)
	}
}

func TestRawPresenter_JSONRunFinished(t *testing.T) {
	r, buf := newTestRaw(LogFormatJSON)

	r.RunFinished(domain.Report{
		Target:   domain.Target{Name: "multitts", Dir: "/models"},
		Status:   domain.StatusWarning,
		Attempts: []domain.Attempt{{Strategy: "pip", Outcome: domain.Failure(errors.ErrRemoteFailure)}},
		Guidance: []domain.Guidance{{Strategy: "pip", Category: domain.CategoryRemote, Reason: "The install or clone command failed"}},
		Notes:    []string{"It may not be a standard PyPI package"},
		Duration: 2 * time.Second,
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines (remediation, note, run_finished), got %d: %q", len(lines), buf.String())
	}

	var last struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}

	if last.Level != "WARN" || last.Message != "run_finished" {
		t.Errorf("Expected WARN run_finished, got %s %s", last.Level, last.Message)
	}
	if last.Data["status"] != "warning" {
		t.Errorf("Expected status=warning, got %v", last.Data["status"])
	}
	if last.Data["exit_code"] != float64(0) {
		t.Errorf("Expected exit_code=0, got %v", last.Data["exit_code"])
	}
	if last.Data["duration"] != "2s" {
		t.Errorf("Expected duration=2s, got %v", last.Data["duration"])
	}
}

func TestRawPresenter_SuccessSkipsRemediation(t *testing.T) {
	r, buf := newTestRaw(LogFormatText)

	r.RunFinished(domain.Report{
		Target:   domain.Target{Name: "paddleocr", Dir: "/models"},
		Status:   domain.StatusSucceeded,
		Winner:   "paddleocr-2.6",
		Guidance: []domain.Guidance{{Strategy: "paddleocr-3x", Reason: "failed"}},
	})

	out := buf.String()
	if strings.Contains(out, "remediation") {
		t.Errorf("Expected no remediation on success, got %q", out)
	}
	if !strings.Contains(out, "winner=paddleocr-2.6") {
		t.Errorf("Expected winner field, got %q", out)
	}
}

func TestRawPresenter_Contents(t *testing.T) {
	r, buf := newTestRaw(LogFormatText)

	r.Contents("/models", []fsutil.Entry{
		{Name: "PP-OCRv5_server_det", IsDir: true, Size: 3 * 1024 * 1024},
		{Name: "README.md", Size: 1024 * 1024 / 2},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "size_mb=3.00") {
		t.Errorf("Expected size_mb=3.00, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "size_mb=0.50") {
		t.Errorf("Expected size_mb=0.50, got %q", lines[1])
	}
}

func TestNew_SelectsPresenter(t *testing.T) {
	if _, ok := New("json", false, true).(*RawPresenter); !ok {
		t.Error("Expected RawPresenter for json output")
	}
	if _, ok := New("raw", true, true).(*RawPresenter); !ok {
		t.Error("Expected RawPresenter for raw output even when quiet")
	}
	if _, ok := New("pretty", true, true).(*NoopPresenter); !ok {
		t.Error("Expected NoopPresenter when quiet")
	}
	if _, ok := New("pretty", false, true).(*PTermPresenter); !ok {
		t.Error("Expected PTermPresenter by default")
	}
}
