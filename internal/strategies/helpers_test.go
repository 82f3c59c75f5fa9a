// internal/strategies/helpers_test.go
package strategies

import (
	"os"
	"path/filepath"
	"testing"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/platform/execx"
	"modelfetch/internal/platform/fsutil"
	"modelfetch/internal/platform/logx"
	"modelfetch/internal/testutil"
	"modelfetch/internal/testutil/fakes"
)

func newTestToolchain(r *fakes.Runner, env map[string]string) Toolchain {
	return NewToolchain(r, logx.Nop(), "python3", "git", env)
}

// newTestTarget crea el destino como lo haría el runner antes de la primera estrategia.
func newTestTarget(t *testing.T, subdir string) domain.Target {
	t.Helper()
	target, err := domain.NewTarget("asset", t.TempDir(), subdir)
	testutil.RequireNoError(t, err, "target")
	testutil.RequireNoError(t, fsutil.EnsureDir(target.Dir), "mkdir")
	return target
}

// cloneWriting simula un git clone que deja files en el directorio destino
// del comando (su último argumento).
func cloneWriting(files ...string) fakes.Handler {
	return func(cmd execx.Command) (execx.Result, error) {
		dest := cmd.Args[len(cmd.Args)-1]
		for _, f := range files {
			path := filepath.Join(dest, f)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return execx.Result{}, err
			}
			if err := os.WriteFile(path, []byte(f), 0o644); err != nil {
				return execx.Result{}, err
			}
		}
		return execx.Result{}, nil
	}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	testutil.RequireNoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "mkdir")
	testutil.RequireNoError(t, os.WriteFile(path, []byte("x"), 0o644), "write")
}
