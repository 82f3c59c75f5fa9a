// internal/core/ports/plan.go
package ports

import "modelfetch/internal/core/domain"

// Plan es lo que construye el catálogo y consume el runner.
type Plan struct {
	Target      domain.Target
	Description string

	// Env se pasa a cada subproceso del asset; nunca se aplica al proceso actual
	Env map[string]string

	Prerequisites []Prerequisite
	Strategies    []Strategy

	// Complete es opcional; sin él la ejecución nunca es un no-op
	Complete CompletionCheck

	// Remediation son líneas que se imprimen cuando todas las estrategias fallan
	Remediation []string
	DocsURL     string

	// Optional: agotar las estrategias es un warning, no un fallo
	Optional bool
}

// StrategyNames lista los nombres en orden.
func (p Plan) StrategyNames() []string {
	names := make([]string, len(p.Strategies))
	for i, s := range p.Strategies {
		names[i] = s.Name()
	}
	return names
}
