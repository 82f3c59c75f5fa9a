// internal/platform/ui/symbols.go
package ui

import (
	"github.com/pterm/pterm"

	"modelfetch/internal/core/domain"
)

// Status representa el estado de un intento o de la ejecución
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusWarning
	StatusError
	StatusSkipped
)

// String convierte el status a string
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Symbol retorna el símbolo Unicode para cada estado
func (s Status) Symbol() string {
	switch s {
	case StatusPending:
		return "⏸"
	case StatusRunning:
		return "⣾"
	case StatusSuccess:
		return "✓"
	case StatusWarning:
		return "⚠"
	case StatusError:
		return "✗"
	case StatusSkipped:
		return "⊘"
	default:
		return "?"
	}
}

// Style retorna el estilo pterm para cada estado
func (s Status) Style() *pterm.Style {
	switch s {
	case StatusRunning:
		return pterm.NewStyle(pterm.FgCyan)
	case StatusSuccess:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusWarning:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// FromRunStatus traduce el estado final de una ejecución.
func FromRunStatus(s domain.RunStatus) Status {
	switch s {
	case domain.StatusSucceeded:
		return StatusSuccess
	case domain.StatusAlreadyComplete:
		return StatusSkipped
	case domain.StatusWarning:
		return StatusWarning
	default:
		return StatusError
	}
}

// FromOutcome traduce el resultado de un intento.
func FromOutcome(o domain.Outcome) Status {
	if o.Succeeded() {
		return StatusSuccess
	}
	return StatusError
}

// Icons usados en la narración
var (
	IconAsset   = "📦"
	IconFolder  = "📁"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconTime    = "⏱"
	IconFix     = "🔧"
	IconDocs    = "📖"
)

// Separadores
var (
	SeparatorHeavy = "════════════════════════════════════════════════════════════"
	SeparatorLight = "────────────────────────────────────────────────────────────"
)
