// internal/strategies/relocate_test.go
package strategies

import (
	"context"
	"path/filepath"
	"testing"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/platform/errors"
	"modelfetch/internal/platform/fsutil"
	"modelfetch/internal/platform/logx"
	"modelfetch/internal/testutil"
)

type stubStrategy struct {
	outcome domain.Outcome
	write   string
}

func (s stubStrategy) Name() string { return "stub" }

func (s stubStrategy) Acquire(ctx context.Context, target domain.Target) domain.Outcome {
	if s.write != "" {
		_ = fsutil.EnsureDir(filepath.Join(target.Dir, s.write))
	}
	return s.outcome
}

func TestRelocate_CopiesFromFirstNonEmptyFallback(t *testing.T) {
	target := newTestTarget(t, "")
	empty := t.TempDir()
	cache := t.TempDir()
	other := t.TempDir()
	writeFile(t, filepath.Join(cache, "PP-OCRv5_server_det", "inference.pdiparams"))
	writeFile(t, filepath.Join(other, "should-not-copy", "x"))

	r := NewRelocate(stubStrategy{outcome: domain.Success()}, []string{empty, cache, other}, logx.Nop())
	out := r.Acquire(context.Background(), target)

	testutil.AssertTrue(t, out.Succeeded(), "succeeded")
	testutil.AssertContains(t, out.Detail(), cache, "detail names the source")
	testutil.AssertTrue(t, fsutil.Exists(filepath.Join(target.Dir, "PP-OCRv5_server_det", "inference.pdiparams")), "copied")
	testutil.AssertFalse(t, fsutil.Exists(filepath.Join(target.Dir, "should-not-copy")), "only the first source is used")
}

func TestRelocate_SkipsWhenDestinationNotEmpty(t *testing.T) {
	target := newTestTarget(t, "")
	cache := t.TempDir()
	writeFile(t, filepath.Join(cache, "cached-model", "x"))

	r := NewRelocate(stubStrategy{outcome: domain.Success(), write: "PP-OCRv5_mobile_rec"}, []string{cache}, logx.Nop())
	out := r.Acquire(context.Background(), target)

	testutil.AssertTrue(t, out.Succeeded(), "succeeded")
	testutil.AssertEqual(t, out.Detail(), "", "no relocation")
	testutil.AssertFalse(t, fsutil.Exists(filepath.Join(target.Dir, "cached-model")), "fallback not copied")
}

func TestRelocate_SkipsOnFailure(t *testing.T) {
	target := newTestTarget(t, "")
	cache := t.TempDir()
	writeFile(t, filepath.Join(cache, "cached-model", "x"))

	r := NewRelocate(stubStrategy{outcome: domain.Failure(errors.ErrRemoteFailure)}, []string{cache}, logx.Nop())
	out := r.Acquire(context.Background(), target)

	testutil.AssertFalse(t, out.Succeeded(), "failure passes through")
	empty, _ := fsutil.IsEmpty(target.Dir)
	testutil.AssertTrue(t, empty, "nothing copied")
}

func TestRelocate_DeduplicatesFallbacks(t *testing.T) {
	r := NewRelocate(stubStrategy{}, []string{"/root/.paddlex/official_models", "/root/.paddlex/official_models", ""}, nil)
	testutil.AssertStrings(t, r.Fallbacks(), []string{"/root/.paddlex/official_models"}, "deduplicated")
	testutil.AssertEqual(t, r.Name(), "stub", "name delegated")
}

func TestRelocate_Describe(t *testing.T) {
	tc := newTestToolchain(nil, nil)
	r := NewRelocate(NewPip("pip", "multi-tts", nil, tc), []string{"/root/.paddlex/official_models"}, logx.Nop())

	testutil.AssertEqual(t, r.Describe(), "pip install multi-tts (relocating from /root/.paddlex/official_models if empty)", "describe")
	testutil.AssertEqual(t, describe(stubStrategy{}), "stub", "falls back to the name")
}
