// internal/strategies/pip_test.go
package strategies

import (
	"context"
	"testing"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/testutil"
	"modelfetch/internal/testutil/fakes"
)

func TestPip_Success(t *testing.T) {
	runner := fakes.NewRunner()
	env := map[string]string{"PIP_DISABLE_PIP_VERSION_CHECK": "1"}
	pip := NewPip("pip", "multi-tts", nil, newTestToolchain(runner, env))

	out := pip.Acquire(context.Background(), newTestTarget(t, ""))

	testutil.AssertTrue(t, out.Succeeded(), "pip succeeded")
	testutil.AssertStrings(t, runner.Lines(), []string{"python3 -m pip install multi-tts"}, "command")
	testutil.AssertEqual(t, runner.Calls()[0].Env["PIP_DISABLE_PIP_VERSION_CHECK"], "1", "asset env passed to the subprocess")
}

func TestPip_FailureIsRemote(t *testing.T) {
	runner := fakes.NewRunner().Fail("python3 -m pip install", "ERROR: No matching distribution found for multi-tts")
	pip := NewPip("pip", "multi-tts", nil, newTestToolchain(runner, nil))

	out := pip.Acquire(context.Background(), newTestTarget(t, ""))

	testutil.AssertFalse(t, out.Succeeded(), "pip failed")
	testutil.AssertEqual(t, out.Category(), domain.CategoryRemote, "category")
	testutil.AssertContains(t, out.Reason().Error(), "No matching distribution", "stderr kept in reason")
}

func TestPip_MissingPython(t *testing.T) {
	runner := fakes.NewRunner().Missing("python3")
	out := NewPip("pip", "multi-tts", nil, newTestToolchain(runner, nil)).Acquire(context.Background(), newTestTarget(t, ""))

	testutil.AssertEqual(t, out.Category(), domain.CategoryToolMissing, "category")
	testutil.AssertEqual(t, len(runner.Calls()), 0, "nothing executed")
}

func TestPip_Remote(t *testing.T) {
	tc := newTestToolchain(fakes.NewRunner(), nil)

	testutil.AssertEqual(t, NewPip("pip", "git+https://github.com/FunAudioLLM/CosyVoice.git", nil, tc).Remote(),
		"https://github.com/FunAudioLLM/CosyVoice.git", "git spec")
	testutil.AssertEqual(t, NewPip("pip", "multi-tts", nil, tc).Remote(), "https://pypi.org/simple/multi-tts", "pypi spec")
}
