// internal/strategies/pip.go
package strategies

import (
	"context"
	"strings"

	"modelfetch/internal/core/domain"
)

const pypiSimple = "https://pypi.org/simple/"

// Pip instala un paquete con "python -m pip install <spec>". spec puede ser un
// nombre de PyPI o una URL git+https://.
type Pip struct {
	name  string
	spec  string
	extra []string
	tc    Toolchain
}

// NewPip crea una estrategia pip. extra se añade tras "install".
func NewPip(name, spec string, extra []string, tc Toolchain) *Pip {
	return &Pip{name: name, spec: spec, extra: extra, tc: tc}
}

func (p *Pip) Name() string { return p.name }

func (p *Pip) Describe() string { return "pip install " + p.spec }

// Remote devuelve la URL del repositorio o el índice de PyPI del paquete.
func (p *Pip) Remote() string {
	if strings.HasPrefix(p.spec, "git+") {
		return strings.TrimPrefix(p.spec, "git+")
	}
	return pypiSimple + p.spec
}

// Acquire ejecuta pip install.
func (p *Pip) Acquire(ctx context.Context, target domain.Target) domain.Outcome {
	p.tc.Logger.Info("installing with pip", "asset", target.Name, "package", p.spec)

	args := append([]string{"install"}, p.extra...)
	args = append(args, p.spec)
	if _, err := p.tc.pip(ctx, args...); err != nil {
		return domain.Failure(commandFailure("pip install "+p.spec, err))
	}
	return domain.Success()
}
