// internal/core/ports/strategy.go
package ports

import (
	"context"

	"modelfetch/internal/core/domain"
)

// Strategy es un método autocontenido para adquirir un asset
// (pip install, git clone, warm-up de Python...).
type Strategy interface {
	// Name retorna un nombre corto y único dentro del plan (ej: "pip", "git-source")
	Name() string

	// Acquire intenta adquirir el asset en target.Dir. Nunca debe devolver
	// éxito si el destino no quedó utilizable.
	Acquire(ctx context.Context, target domain.Target) domain.Outcome
}

// Describer lo implementan las estrategias que pueden explicar qué harán.
type Describer interface {
	Describe() string
}

// RemoteStrategy la implementan las estrategias que hablan con un remoto;
// la remediación usa la URL para sugerir qué host comprobar.
type RemoteStrategy interface {
	Strategy
	Remote() string
}

// Prerequisite se verifica antes de cualquier estrategia. Un fallo es fatal
// para la ejecución y ninguna estrategia se intenta.
type Prerequisite interface {
	Name() string
	Check(ctx context.Context) error
}

// CompletionCheck indica si dir ya contiene el asset esperado.
type CompletionCheck func(dir string) (bool, error)
