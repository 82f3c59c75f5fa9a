// internal/strategies/toolchain.go
package strategies

import (
	"context"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/platform/errors"
	"modelfetch/internal/platform/execx"
	"modelfetch/internal/platform/logx"
)

// Toolchain agrupa lo que toda estrategia necesita para lanzar subprocesos:
// el runner, los binarios configurados y el bloque de entorno del asset.
type Toolchain struct {
	Runner execx.Runner
	Logger logx.Logger
	Python string
	Git    string

	// Env se aplica a cada subproceso; el proceso actual nunca se modifica
	Env map[string]string
}

// NewToolchain crea un toolchain con los defaults python3 y git.
func NewToolchain(runner execx.Runner, logger logx.Logger, python, git string, env map[string]string) Toolchain {
	if python == "" {
		python = "python3"
	}
	if git == "" {
		git = "git"
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return Toolchain{
		Runner: runner,
		Logger: logger,
		Python: python,
		Git:    git,
		Env:    env,
	}
}

func (tc Toolchain) exec(ctx context.Context, dir, name string, args ...string) (execx.Result, error) {
	logger := tc.Logger
	return tc.Runner.Run(ctx, execx.Command{
		Name: name,
		Args: args,
		Dir:  dir,
		Env:  tc.Env,
		OnLine: func(line string) {
			logger.Debug(line, "tool", name)
		},
	})
}

func (tc Toolchain) python(ctx context.Context, dir string, args ...string) (execx.Result, error) {
	return tc.exec(ctx, dir, tc.Python, args...)
}

func (tc Toolchain) pip(ctx context.Context, args ...string) (execx.Result, error) {
	return tc.exec(ctx, "", tc.Python, append([]string{"-m", "pip"}, args...)...)
}

func (tc Toolchain) git(ctx context.Context, dir string, args ...string) (execx.Result, error) {
	return tc.exec(ctx, dir, tc.Git, args...)
}

// commandFailure clasifica el error de un subproceso. Las categorías ya
// conocidas (herramienta ausente, timeout, cancelación) se conservan; un
// código de salida distinto de cero cuenta como fallo remoto.
func commandFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	switch domain.Classify(err) {
	case domain.CategoryToolMissing, domain.CategoryTimeout, domain.CategoryCancelled, domain.CategoryRemote:
		return errors.Wrap(err, op)
	}

	var exitErr *execx.ExitError
	if errors.As(err, &exitErr) {
		return errors.Wrapf(errors.ErrRemoteFailure, "%s: %v", op, exitErr)
	}
	return errors.Wrapf(errors.ErrUnexpected, "%s: %v", op, err)
}
