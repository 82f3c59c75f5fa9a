// internal/platform/registry/registry.go
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"modelfetch/internal/platform/errors"
)

// Registry asocia nombres de tipo ("pip", "git-lfs"...) con su implementación.
// Implementa el patrón Registry + Factory para que el catálogo no tenga que
// conocer cada estrategia: cada tipo se registra una vez, típicamente desde init().
type Registry[T any] struct {
	mu           sync.RWMutex
	kind         string // qué se registra, para los mensajes de error
	items        map[string]T
	descriptions map[string]string
}

// New crea un registry vacío. kind nombra lo registrado en los errores
// (ej: "strategy" produce `unknown strategy kind "conda"`).
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:         kind,
		items:        make(map[string]T),
		descriptions: make(map[string]string),
	}
}

// Register registra item bajo name con una descripción corta.
func (r *Registry[T]) Register(name, description string, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return errors.Wrapf(errors.ErrInvalidInput, "%s kind name cannot be empty", r.kind)
	}

	if _, exists := r.items[name]; exists {
		return errors.Wrapf(errors.ErrInvalidInput, "%s kind %q is already registered", r.kind, name)
	}

	r.items[name] = item
	r.descriptions[name] = description
	return nil
}

// MustRegister es Register para init(): un registro duplicado es un bug.
func (r *Registry[T]) MustRegister(name, description string, item T) {
	if err := r.Register(name, description, item); err != nil {
		panic(err)
	}
}

// Get devuelve lo registrado bajo name.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	return item, ok
}

// Lookup es Get con un error que lista los tipos conocidos.
func (r *Registry[T]) Lookup(name string) (T, error) {
	item, ok := r.Get(name)
	if !ok {
		return item, errors.Wrapf(errors.ErrInvalidInput, "unknown %s kind %q (known: %s)", r.kind, name, strings.Join(r.List(), ", "))
	}
	return item, nil
}

// List retorna los nombres registrados, ordenados.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe retorna la descripción registrada para name.
func (r *Registry[T]) Describe(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.descriptions[name]
}

// String resume el registry para logs.
func (r *Registry[T]) String() string {
	return fmt.Sprintf("%s kinds: %s", r.kind, strings.Join(r.List(), ","))
}
