// internal/strategies/python_init.go
package strategies

import (
	"context"
	"strings"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/platform/errors"
	"modelfetch/internal/platform/execx"
)

// PythonInit ejecuta un fragmento de Python cuyo efecto secundario es
// descargar los pesos (ej: construir PaddleOCR con PADDLEX_HOME apuntando al
// destino). Cada variante de argumentos es una instancia distinta.
type PythonInit struct {
	name   string
	module string
	script string
	tc     Toolchain
}

// NewPythonInit crea una estrategia de warm-up. module es el paquete que el
// script importa; si falta, el fallo se reporta como herramienta ausente.
func NewPythonInit(name, module, script string, tc Toolchain) *PythonInit {
	return &PythonInit{name: name, module: module, script: script, tc: tc}
}

func (p *PythonInit) Name() string { return p.name }

func (p *PythonInit) Describe() string {
	return "python -c " + strings.ReplaceAll(strings.TrimSpace(p.script), "\n", "; ")
}

// Acquire ejecuta el script con el entorno del asset.
func (p *PythonInit) Acquire(ctx context.Context, target domain.Target) domain.Outcome {
	p.tc.Logger.Info("initialising python package to download weights", "asset", target.Name, "variant", p.name)

	_, err := p.tc.python(ctx, target.Dir, "-c", p.script)
	if err == nil {
		return domain.Success()
	}

	var exitErr *execx.ExitError
	if p.module != "" && errors.As(err, &exitErr) && missingModule(exitErr.Stderr) {
		return domain.Failure(errors.Wrap(domain.MissingTool("python package "+p.module), exitErr.Error()))
	}
	return domain.Failure(commandFailure(p.name, err))
}

func missingModule(stderr string) bool {
	return strings.Contains(stderr, "ModuleNotFoundError") || strings.Contains(stderr, "No module named")
}
