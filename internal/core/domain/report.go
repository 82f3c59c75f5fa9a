// internal/core/domain/report.go
package domain

import "time"

// RunStatus es el estado final de una ejecución.
type RunStatus string

const (
	StatusSucceeded       RunStatus = "succeeded"
	StatusAlreadyComplete RunStatus = "already_complete"
	StatusFailed          RunStatus = "failed"
	// StatusWarning: asset opcional que no se pudo adquirir; no es fatal
	StatusWarning RunStatus = "warning"
)

// Guidance es el texto de remediación para un fallo.
type Guidance struct {
	Strategy  string
	Category  Category
	Error     error
	Reason    string
	Solutions []string
	DocsURL   string
}

// Attempt registra un intento de estrategia.
type Attempt struct {
	Strategy string
	Outcome  Outcome
	Duration time.Duration
}

// Report es lo que devuelve el runner.
type Report struct {
	Target   Target
	Status   RunStatus
	Attempts []Attempt

	// Winner es la estrategia que tuvo éxito (vacío si ninguna)
	Winner string

	// Fatal es el error que cortó la ejecución antes del bucle (prerequisito, mkdir)
	Fatal error

	// Guidance agrega la remediación por intento y por prerequisito
	Guidance []Guidance

	// Notes son las líneas de remediación propias del asset
	Notes []string

	Duration time.Duration
}

// Succeeded es true para éxito o destino ya completo.
func (r Report) Succeeded() bool {
	return r.Status == StatusSucceeded || r.Status == StatusAlreadyComplete
}

// ExitCode: 0 en éxito (o warning de asset opcional), 1 en fallo.
func (r Report) ExitCode() int {
	if r.Status == StatusFailed {
		return 1
	}
	return 0
}
