// internal/core/domain/target_test.go
package domain

import (
	"path/filepath"
	"testing"

	"modelfetch/internal/testutil"
)

func TestNewTarget(t *testing.T) {
	base := t.TempDir()

	target, err := NewTarget(" CosyVoice ", base, "cosyvoice-source")
	testutil.RequireNoError(t, err, "valid target")
	testutil.AssertEqual(t, target.Name, "cosyvoice", "name normalised")
	testutil.AssertEqual(t, target.ModelsDir, base, "models dir")
	testutil.AssertEqual(t, target.Dir, filepath.Join(base, "cosyvoice-source"), "dir joins subdir")
}

func TestNewTarget_NoSubdir(t *testing.T) {
	base := t.TempDir()

	target, err := NewTarget("paddleocr", base, "")
	testutil.RequireNoError(t, err, "valid target")
	testutil.AssertEqual(t, target.Dir, base, "dir is the models dir")
}

func TestNewTarget_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		asset     string
		modelsDir string
		subdir    string
	}{
		{"empty name", "", "/models", ""},
		{"empty dir", "paddleocr", "  ", ""},
		{"absolute subdir", "cosyvoice", "/models", "/etc"},
		{"escaping subdir", "cosyvoice", "/models", "../outside"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTarget(tt.asset, tt.modelsDir, tt.subdir)
			testutil.AssertError(t, err, "should be rejected")
		})
	}
}

func TestNewTarget_RelativeDirIsResolved(t *testing.T) {
	target, err := NewTarget("multitts", "./models", "")
	testutil.RequireNoError(t, err, "relative dir")
	testutil.AssertTrue(t, filepath.IsAbs(target.Dir), "dir is absolute")
}
