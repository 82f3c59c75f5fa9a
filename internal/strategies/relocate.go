// internal/strategies/relocate.go
package strategies

import (
	"context"
	"strings"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/core/ports"
	"modelfetch/internal/platform/fsutil"
	"modelfetch/internal/platform/logx"
)

// Relocate envuelve una estrategia cuyo paquete puede ignorar el destino y
// descargar en su caché por defecto. Si la estrategia tuvo éxito y el destino
// sigue vacío, copia el contenido de la primera ubicación alternativa no
// vacía. Con el destino no vacío nunca copia nada.
type Relocate struct {
	inner     ports.Strategy
	fallbacks []string
	logger    logx.Logger
}

// NewRelocate crea el decorador. Las rutas admiten "~/".
func NewRelocate(inner ports.Strategy, fallbacks []string, logger logx.Logger) *Relocate {
	seen := make(map[string]bool)
	var paths []string
	for _, f := range fallbacks {
		p := fsutil.ExpandHome(f)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Relocate{inner: inner, fallbacks: paths, logger: logger}
}

func (r *Relocate) Name() string { return r.inner.Name() }

// Remote delega en la estrategia envuelta.
func (r *Relocate) Remote() string {
	if rs, ok := r.inner.(ports.RemoteStrategy); ok {
		return rs.Remote()
	}
	return ""
}

// Describe delega en la estrategia envuelta.
func (r *Relocate) Describe() string {
	return describe(r.inner) + " (relocating from " + strings.Join(r.fallbacks, ", ") + " if empty)"
}

// Fallbacks devuelve las ubicaciones alternativas ya expandidas.
func (r *Relocate) Fallbacks() []string {
	return append([]string{}, r.fallbacks...)
}

// Acquire ejecuta la estrategia envuelta y reubica si hace falta.
func (r *Relocate) Acquire(ctx context.Context, target domain.Target) domain.Outcome {
	out := r.inner.Acquire(ctx, target)
	if !out.Succeeded() {
		return out
	}

	empty, err := fsutil.IsEmpty(target.Dir)
	if err != nil || !empty {
		return out
	}

	for _, src := range r.fallbacks {
		if srcEmpty, _ := fsutil.IsEmpty(src); srcEmpty {
			continue
		}

		r.logger.Warn("weights landed outside the destination, copying", "from", src, "to", target.Dir)
		n, err := fsutil.CopyEntries(src, target.Dir)
		if err != nil {
			r.logger.Warn("relocation failed", "from", src, "error", err.Error())
			continue
		}
		r.logger.Info("relocated weights", "from", src, "entries", n)
		return domain.SuccessWith("relocated from " + src)
	}

	return out
}

func describe(s ports.Strategy) string {
	if d, ok := s.(ports.Describer); ok {
		return d.Describe()
	}
	return s.Name()
}
