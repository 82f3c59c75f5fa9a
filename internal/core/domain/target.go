// internal/core/domain/target.go
package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Target es el asset nombrado más su directorio destino para una ejecución.
// Se crea desde la CLI y no cambia durante la ejecución.
type Target struct {
	// Name identifica el asset en el catálogo (ej: "paddleocr", "cosyvoice")
	Name string

	// ModelsDir es el directorio que pasó el usuario
	ModelsDir string

	// Dir es el destino absoluto: ModelsDir más el subdirectorio del asset
	Dir string
}

// NewTarget valida la entrada y resuelve rutas absolutas.
func NewTarget(name, modelsDir, subdir string) (Target, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return Target{}, ErrEmptyAssetName
	}
	if strings.TrimSpace(modelsDir) == "" {
		return Target{}, ErrEmptyDir
	}

	abs, err := filepath.Abs(modelsDir)
	if err != nil {
		return Target{}, fmt.Errorf("resolve %s: %w", modelsDir, err)
	}

	dir := abs
	if subdir != "" {
		if filepath.IsAbs(subdir) || strings.HasPrefix(filepath.Clean(subdir), "..") {
			return Target{}, fmt.Errorf("subdirectory %q must stay inside %s", subdir, abs)
		}
		dir = filepath.Join(abs, subdir)
	}

	return Target{Name: name, ModelsDir: abs, Dir: dir}, nil
}

// String retorna "name -> dir".
func (t Target) String() string {
	return fmt.Sprintf("%s -> %s", t.Name, t.Dir)
}
