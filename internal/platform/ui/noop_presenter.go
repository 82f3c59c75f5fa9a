// internal/platform/ui/noop_presenter.go
package ui

import (
	"modelfetch/internal/core/domain"
	"modelfetch/internal/core/ports"
	"modelfetch/internal/platform/fsutil"
)

// NoopPresenter es una implementación vacía del Presenter
// que no produce ninguna salida. Útil para modo quiet o headless.
type NoopPresenter struct {
	ports.NopObserver
}

// NewNoopPresenter crea una instancia del presenter sin salida
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

// RunFinished no hace nada
func (n *NoopPresenter) RunFinished(report domain.Report) {}

// Assets no hace nada
func (n *NoopPresenter) Assets(source string, rows []AssetRow) {}

// Check no hace nada
func (n *NoopPresenter) Check(result CheckResult) {}

// Contents no hace nada
func (n *NoopPresenter) Contents(dir string, entries []fsutil.Entry) {}

// Info no hace nada
func (n *NoopPresenter) Info(msg string) {}

// Warning no hace nada
func (n *NoopPresenter) Warning(msg string) {}

// Error no hace nada
func (n *NoopPresenter) Error(msg string) {}

// Close no hace nada
func (n *NoopPresenter) Close() error {
	return nil
}
