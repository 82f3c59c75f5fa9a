// internal/strategies/source_test.go
package strategies

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/platform/fsutil"
	"modelfetch/internal/testutil"
	"modelfetch/internal/testutil/fakes"
)

const cosyRepo = "https://github.com/FunAudioLLM/CosyVoice.git"

func TestSource_SetupPy(t *testing.T) {
	target := newTestTarget(t, "cosyvoice-source")
	runner := fakes.NewRunner().On("git clone", cloneWriting("setup.py", "cosyvoice/__init__.py"))

	out := NewSource("git-source", cosyRepo, 1, newTestToolchain(runner, nil)).Acquire(context.Background(), target)

	testutil.AssertTrue(t, out.Succeeded(), "installed")
	testutil.AssertEqual(t, out.Detail(), "setup.py", "descriptor used")
	calls := runner.Calls()
	testutil.AssertEqual(t, len(calls), 2, "clone + install")
	testutil.AssertEqual(t, strings.Join(calls[0].Args[:4], " "), "clone --depth 1 "+cosyRepo, "shallow clone")
	testutil.AssertEqual(t, calls[1].String(), "python3 setup.py install", "setup.py install")
	testutil.AssertEqual(t, calls[1].Dir, target.Dir, "runs inside the clone")
	testutil.AssertTrue(t, fsutil.Exists(filepath.Join(target.Dir, "setup.py")), "clone swapped into place")
}

func TestSource_Pyproject(t *testing.T) {
	target := newTestTarget(t, "cosyvoice-source")
	runner := fakes.NewRunner().On("git clone", cloneWriting("pyproject.toml"))

	out := NewSource("git-source", cosyRepo, 1, newTestToolchain(runner, nil)).Acquire(context.Background(), target)

	testutil.AssertTrue(t, out.Succeeded(), "installed")
	testutil.AssertEqual(t, out.Detail(), "pyproject.toml", "descriptor used")
	testutil.AssertEqual(t, runner.Lines()[1], "python3 -m pip install -e "+target.Dir, "editable install")
}

func TestSource_SubdirectoryScan(t *testing.T) {
	target := newTestTarget(t, "cosyvoice-source")
	runner := fakes.NewRunner().
		On("git clone", cloneWriting("README.md", "a-broken/setup.py", "b-good/pyproject.toml", "docs/index.md")).
		Fail("python3 -m pip install -e "+filepath.Join(target.Dir, "a-broken"), "error: invalid command")

	out := NewSource("git-source", cosyRepo, 1, newTestToolchain(runner, nil)).Acquire(context.Background(), target)

	testutil.AssertTrue(t, out.Succeeded(), "second candidate installed")
	testutil.AssertEqual(t, out.Detail(), "b-good", "winning subdirectory")
	testutil.AssertEqual(t, len(runner.Calls()), 3, "clone + two installs, docs skipped")
}

func TestSource_NoDescriptor(t *testing.T) {
	target := newTestTarget(t, "cosyvoice-source")
	runner := fakes.NewRunner().On("git clone", cloneWriting("README.md", "examples/run.py"))

	out := NewSource("git-source", cosyRepo, 1, newTestToolchain(runner, nil)).Acquire(context.Background(), target)

	testutil.AssertEqual(t, out.Category(), domain.CategoryNoInstallable, "category")
	testutil.AssertEqual(t, len(runner.Calls()), 1, "only the clone ran")
	testutil.AssertTrue(t, fsutil.Exists(filepath.Join(target.Dir, "README.md")), "clone kept for manual inspection")
}

func TestSource_CloneFailureLeavesDestinationUntouched(t *testing.T) {
	target := newTestTarget(t, "cosyvoice-source")
	writeFile(t, filepath.Join(target.Dir, "old.txt"))
	runner := fakes.NewRunner().Fail("git clone", "fatal: unable to access: Could not resolve host: github.com")

	out := NewSource("git-source", cosyRepo, 1, newTestToolchain(runner, nil)).Acquire(context.Background(), target)

	testutil.AssertEqual(t, out.Category(), domain.CategoryRemote, "category")
	testutil.AssertTrue(t, fsutil.Exists(filepath.Join(target.Dir, "old.txt")), "old tree intact")

	siblings, err := os.ReadDir(filepath.Dir(target.Dir))
	testutil.RequireNoError(t, err, "read parent")
	for _, s := range siblings {
		testutil.AssertFalse(t, strings.Contains(s.Name(), ".staging-"), "staging dir removed")
	}
}

func TestSource_RecloneReplacesWholeTree(t *testing.T) {
	target := newTestTarget(t, "cosyvoice-source")
	writeFile(t, filepath.Join(target.Dir, "stale.py"))
	runner := fakes.NewRunner().On("git clone", cloneWriting("setup.py"))

	out := NewSource("git-source", cosyRepo, 1, newTestToolchain(runner, nil)).Acquire(context.Background(), target)

	testutil.AssertTrue(t, out.Succeeded(), "installed")
	testutil.AssertFalse(t, fsutil.Exists(filepath.Join(target.Dir, "stale.py")), "no mix of old and new trees")
	testutil.AssertTrue(t, fsutil.Exists(filepath.Join(target.Dir, "setup.py")), "new tree present")
}
