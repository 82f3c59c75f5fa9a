// internal/strategies/source.go
package strategies

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/platform/errors"
)

const (
	setupPy   = "setup.py"
	pyproject = "pyproject.toml"
)

// Source clona el repositorio (superficial) en el destino e instala desde el
// código: setup.py, luego pyproject.toml, luego un subdirectorio que tenga
// alguno de los dos.
type Source struct {
	name  string
	repo  string
	depth int
	tc    Toolchain
}

// NewSource crea una estrategia de clon + instalación desde el código.
func NewSource(name, repo string, depth int, tc Toolchain) *Source {
	return &Source{name: name, repo: repo, depth: depth, tc: tc}
}

func (s *Source) Name() string { return s.name }

func (s *Source) Describe() string { return "git clone " + s.repo + " and install from source" }

func (s *Source) Remote() string { return s.repo }

// Acquire clona y luego instala.
func (s *Source) Acquire(ctx context.Context, target domain.Target) domain.Outcome {
	if err := clone(ctx, s.tc, s.repo, target.Dir, s.depth); err != nil {
		return domain.Failure(err)
	}
	return installFromSource(ctx, s.tc, target.Dir)
}

// installFromSource elige el descriptor de instalación de dir.
func installFromSource(ctx context.Context, tc Toolchain, dir string) domain.Outcome {
	if fileExists(filepath.Join(dir, setupPy)) {
		tc.Logger.Info("found setup.py, installing", "dir", dir)
		if _, err := tc.python(ctx, dir, setupPy, "install"); err != nil {
			return domain.Failure(commandFailure("setup.py install", err))
		}
		return domain.SuccessWith(setupPy)
	}

	if fileExists(filepath.Join(dir, pyproject)) {
		tc.Logger.Info("found pyproject.toml, installing", "dir", dir)
		if _, err := tc.pip(ctx, "install", "-e", dir); err != nil {
			return domain.Failure(commandFailure("pip install -e "+dir, err))
		}
		return domain.SuccessWith(pyproject)
	}

	candidates, err := installableSubdirs(dir)
	if err != nil {
		return domain.Failure(errors.Wrap(err, "scan "+dir))
	}
	if len(candidates) == 0 {
		return domain.Failure(errors.Wrapf(errors.ErrNoInstallable, "%s has no %s or %s", dir, setupPy, pyproject))
	}

	var lastErr error
	for _, sub := range candidates {
		tc.Logger.Info("found install descriptor in subdirectory", "subdir", filepath.Base(sub))
		if _, err := tc.pip(ctx, "install", "-e", sub); err != nil {
			lastErr = commandFailure("pip install -e "+sub, err)
			tc.Logger.Warn("subdirectory install failed", "subdir", filepath.Base(sub), "error", err.Error())
			continue
		}
		return domain.SuccessWith(filepath.Base(sub))
	}
	return domain.Failure(lastErr)
}

// installableSubdirs lista, ordenados, los subdirectorios de primer nivel con
// setup.py o pyproject.toml.
func installableSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub := filepath.Join(dir, e.Name())
		if fileExists(filepath.Join(sub, setupPy)) || fileExists(filepath.Join(sub, pyproject)) {
			out = append(out, sub)
		}
	}
	sort.Strings(out)
	return out, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
