// internal/core/domain/errors.go
package domain

import (
	"fmt"

	"modelfetch/internal/platform/errors"
)

// Errores de dominio comunes.
var (
	// Target errors
	ErrEmptyAssetName = errors.New("asset name cannot be empty")
	ErrEmptyDir       = errors.New("destination directory cannot be empty")

	// Plan errors
	ErrNoStrategies  = errors.New("plan has no strategies")
	ErrUnknownAsset  = errors.New("unknown asset")
	ErrRunCancelled  = errors.New("acquisition cancelled")
	ErrIncompleteDir = errors.New("destination incomplete after strategy reported success")
)

// ToolError reporta una herramienta externa ausente o inutilizable.
type ToolError struct {
	Tool string
	Err  error
}

// MissingTool construye un ToolError con categoría ToolMissing.
func MissingTool(tool string) *ToolError {
	return &ToolError{Tool: tool, Err: errors.ErrToolMissing}
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
