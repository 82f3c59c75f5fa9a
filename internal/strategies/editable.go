// internal/strategies/editable.go
package strategies

import (
	"context"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/platform/fsutil"
)

// Editable clona el repositorio solo si el destino está vacío y después lo
// instala en modo editable. Un clon existente se reutiliza tal cual.
type Editable struct {
	name string
	repo string
	tc   Toolchain
}

// NewEditable crea una estrategia clone-if-absent + pip install -e.
func NewEditable(name, repo string, tc Toolchain) *Editable {
	return &Editable{name: name, repo: repo, tc: tc}
}

func (e *Editable) Name() string { return e.name }

func (e *Editable) Describe() string { return "git clone " + e.repo + " (if absent) and pip install -e" }

func (e *Editable) Remote() string { return e.repo }

// Acquire clona si hace falta e instala.
func (e *Editable) Acquire(ctx context.Context, target domain.Target) domain.Outcome {
	empty, err := fsutil.IsEmpty(target.Dir)
	if err != nil {
		return domain.Failure(err)
	}

	if empty {
		if err := clone(ctx, e.tc, e.repo, target.Dir, 0); err != nil {
			return domain.Failure(err)
		}
	} else {
		e.tc.Logger.Info("repository already present", "dir", target.Dir)
	}

	e.tc.Logger.Info("installing in editable mode", "dir", target.Dir)
	if _, err := e.tc.pip(ctx, "install", "-e", target.Dir); err != nil {
		return domain.Failure(commandFailure("pip install -e "+target.Dir, err))
	}
	return domain.Success()
}
