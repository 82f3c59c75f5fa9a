// internal/catalog/catalog.go
package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/platform/errors"
)

// Entry es un asset del catálogo antes de resolver sus variables.
type Entry struct {
	Name        string
	Description string
	Dir         string
	Optional    bool

	resolve func(Vars) (AssetSpec, error)
}

// Resolve devuelve la descripción con las variables sustituidas y validada.
func (e Entry) Resolve(v Vars) (AssetSpec, error) {
	spec, err := e.resolve(v)
	if err != nil {
		return AssetSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return AssetSpec{}, err
	}
	return spec, nil
}

// Catalog es el conjunto ordenado de assets conocidos.
type Catalog struct {
	source  string
	entries []Entry
}

func newCatalog(source string, entries []Entry) (*Catalog, error) {
	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e.Name] {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "%s: duplicate asset %q", source, e.Name)
		}
		seen[e.Name] = true

		// Resolver con valores de ejemplo detecta errores al cargar y no al ejecutar
		if _, err := e.Resolve(Vars{ModelsDir: "/models", Dest: "/models/" + e.Name, Home: "/home/user"}); err != nil {
			return nil, errors.Wrap(err, source)
		}
	}
	return &Catalog{source: source, entries: entries}, nil
}

// Source indica de dónde se cargó el catálogo.
func (c *Catalog) Source() string { return c.source }

// Entries devuelve los assets en el orden del catálogo.
func (c *Catalog) Entries() []Entry {
	return append([]Entry{}, c.entries...)
}

// Names devuelve los nombres ordenados alfabéticamente.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup busca un asset por nombre, sin distinguir mayúsculas.
func (c *Catalog) Lookup(name string) (Entry, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, e := range c.entries {
		if e.Name == key {
			return e, nil
		}
	}
	return Entry{}, errors.Wrapf(domain.ErrUnknownAsset, "%q (known: %s)", name, strings.Join(c.Names(), ", "))
}

// Resolve busca el asset, construye su Target bajo modelsDir y resuelve sus
// variables contra ese destino.
func (c *Catalog) Resolve(name, modelsDir string) (AssetSpec, domain.Target, error) {
	entry, err := c.Lookup(name)
	if err != nil {
		return AssetSpec{}, domain.Target{}, err
	}

	target, err := domain.NewTarget(entry.Name, modelsDir, entry.Dir)
	if err != nil {
		return AssetSpec{}, domain.Target{}, err
	}

	spec, err := entry.Resolve(NewVars(target.ModelsDir, target.Dir))
	if err != nil {
		return AssetSpec{}, domain.Target{}, err
	}
	return spec, target, nil
}

// Load lee un catálogo de usuario; el formato se elige por la extensión.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return ParseHCL(data, path)
	case ".yaml", ".yml":
		return ParseYAML(data, path)
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "catalog %s: unsupported extension (want .yaml, .yml or .hcl)", path)
	}
}

// LoadOrDefault carga path, o el catálogo embebido si path está vacío.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
