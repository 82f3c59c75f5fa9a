// internal/platform/ui/confirm.go
package ui

import (
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Confirmer pregunta sí/no en la terminal con pterm.
type Confirmer struct{}

// NewConfirmer devuelve nil si stdin no es una terminal: sin terminal no
// hay a quién preguntar.
func NewConfirmer() *Confirmer {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	return &Confirmer{}
}

// Confirm muestra la pregunta; la respuesta por defecto es no.
func (c *Confirmer) Confirm(question string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show(question)
}
