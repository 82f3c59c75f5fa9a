// internal/core/ports/observer.go
package ports

import "modelfetch/internal/core/domain"

// Observer recibe los eventos del runner para narrarlos.
// Implementa el patrón Observer para desacoplar el runner de la UI.
type Observer interface {
	RunStarted(plan Plan)
	PrerequisiteFailed(name string, err error)
	AttemptStarted(index, total int, strategy string)
	AttemptFinished(index, total int, attempt domain.Attempt)
	RunFinished(report domain.Report)
}

// NopObserver descarta todos los eventos.
type NopObserver struct{}

func (NopObserver) RunStarted(Plan) {}
func (NopObserver) PrerequisiteFailed(string, error) {}
func (NopObserver) AttemptStarted(int, int, string) {}
func (NopObserver) AttemptFinished(int, int, domain.Attempt) {}
func (NopObserver) RunFinished(domain.Report) {}
