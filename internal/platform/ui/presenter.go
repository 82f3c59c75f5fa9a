// internal/platform/ui/presenter.go
package ui

import (
	"modelfetch/internal/core/ports"
	"modelfetch/internal/platform/fsutil"
)

// Presenter narra una ejecución para el usuario. Recibe los eventos del
// runner (ports.Observer) y además muestra catálogo, contenido y mensajes.
type Presenter interface {
	ports.Observer

	// Assets muestra el catálogo
	Assets(source string, rows []AssetRow)

	// Check muestra si un asset ya está completo en su destino
	Check(result CheckResult)

	// Contents lista lo descargado con su tamaño
	Contents(dir string, entries []fsutil.Entry)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Close limpia recursos del presenter
	Close() error
}

// AssetRow es una fila del listado de catálogo.
type AssetRow struct {
	Name        string
	Description string
	Dir         string
	Strategies  []string
	Optional    bool
}

// CheckResult es la respuesta de "modelfetch check".
type CheckResult struct {
	Asset    string
	Dir      string
	Declared bool // el asset declara una comprobación de completitud
	Complete bool
	Entries  []fsutil.Entry
}

// New elige el presenter según el modo de salida.
func New(output string, quiet, noColor bool) Presenter {
	switch {
	case output == "json":
		return NewRawPresenter(LogFormatJSON)
	case output == "raw":
		return NewRawPresenter(LogFormatText)
	case quiet:
		return NewNoopPresenter()
	}
	return NewPTermPresenter(noColor)
}
