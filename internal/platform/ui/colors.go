// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Paleta de la narración
var (
	Ember = pterm.NewRGB(255, 107, 53)
	Gold  = pterm.NewRGB(255, 182, 39)
	Red   = pterm.NewRGB(215, 38, 56)
	Ash   = pterm.NewRGB(128, 128, 128)
	Cyan  = pterm.NewRGB(0, 206, 209)
	Smoke = pterm.NewRGB(232, 232, 232)
)

// Estilos preconfigurados
var (
	// StylePrimary - headers y nombres de asset
	StylePrimary = Ember.ToRGBStyle()

	// StyleSuccess - operaciones exitosas
	StyleSuccess = Cyan.ToRGBStyle()

	// StyleWarning - advertencias y assets opcionales
	StyleWarning = Gold.ToRGBStyle()

	// StyleError - fallos
	StyleError = Red.ToRGBStyle()

	// StyleSecondary - texto secundario (rutas, duraciones)
	StyleSecondary = Ash.ToRGBStyle()

	// StyleText - texto principal
	StyleText = Smoke.ToRGBStyle()
)
