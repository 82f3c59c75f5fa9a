// internal/core/usecases/remediation_test.go
package usecases

import (
	"testing"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/platform/errors"
	"modelfetch/internal/testutil"
)

func TestAnalyze_Categories(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCat    domain.Category
		wantReason string
	}{
		{"tool missing", domain.MissingTool("git-lfs"), domain.CategoryToolMissing, "git-lfs is not installed or not on PATH"},
		{"license", errors.ErrLicenseNotAccepted, domain.CategoryLicense, "The Xcode license has not been accepted"},
		{"no installable", errors.Wrap(errors.ErrNoInstallable, "cosyvoice-source"), domain.CategoryNoInstallable, "The fetched source has no setup.py or pyproject.toml"},
		{"timeout", errors.ErrTimeout, domain.CategoryTimeout, "The strategy exceeded its time budget"},
		{"dns", errors.Wrap(errors.ErrRemoteFailure, "fatal: unable to access: Could not resolve host: github.com"), domain.CategoryRemote, "DNS resolution failed"},
		{"pypi", errors.Wrap(errors.ErrRemoteFailure, "ERROR: No matching distribution found for multi-tts"), domain.CategoryRemote, "The package is not published on the package index"},
		{"disk", errors.Wrap(errors.ErrRemoteFailure, "write error: No space left on device"), domain.CategoryRemote, "Insufficient disk space"},
		{"unexpected", errors.New("boom"), domain.CategoryUnexpected, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Analyze("strategy", tt.err, "", "https://example.org/docs")
			testutil.AssertEqual(t, g.Category, tt.wantCat, "category")
			testutil.AssertEqual(t, g.Reason, tt.wantReason, "reason")
			testutil.AssertTrue(t, len(g.Solutions) > 0, "has solutions")
			testutil.AssertEqual(t, g.DocsURL, "https://example.org/docs", "docs url kept")
		})
	}
}

func TestInstallHints(t *testing.T) {
	testutil.AssertContains(t, installHints("git", "darwin"), "brew install git", "darwin git")
	testutil.AssertContains(t, installHints("git-lfs", "linux"), "sudo apt-get install git-lfs && git lfs install", "linux lfs")
	testutil.AssertContains(t, installHints("python3.11", "linux"), "sudo apt-get install python3 python3-pip", "python variants share hints")
	testutil.AssertStrings(t, installHints("xcodebuild", "plan9"), []string{"Install xcodebuild and make sure it is on PATH"}, "fallback hint")
}

func TestRegistrableHost(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{"https://github.com/index-tts/index-tts.git", "github.com"},
		{"git+https://github.com/FunAudioLLM/CosyVoice.git", "github.com"},
		{"https://mirrors.tuna.tsinghua.edu.cn/pypi/web/simple", "tsinghua.edu.cn"},
		{"", ""},
		{"not a url", ""},
	}

	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			testutil.AssertEqual(t, registrableHost(tt.remote), tt.want, "host")
		})
	}
}
