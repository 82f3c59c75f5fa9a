// internal/catalog/yaml.go
package catalog

import (
	"bytes"
	_ "embed"

	"gopkg.in/yaml.v3"

	"modelfetch/internal/platform/errors"
)

//go:embed assets.yaml
var defaultCatalog []byte

// yamlFile es la raíz de un catálogo YAML.
type yamlFile struct {
	Assets []AssetSpec `yaml:"assets"`
}

// Default devuelve el catálogo embebido.
func Default() (*Catalog, error) {
	return ParseYAML(defaultCatalog, "builtin:assets.yaml")
}

// ParseYAML decodifica un catálogo YAML. Los campos desconocidos son error.
func ParseYAML(data []byte, filename string) (*Catalog, error) {
	var file yamlFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "parse %s: %v", filename, err)
	}

	entries := make([]Entry, 0, len(file.Assets))
	for _, a := range file.Assets {
		raw := a
		entries = append(entries, Entry{
			Name:        raw.Name,
			Description: raw.Description,
			Dir:         raw.Dir,
			Optional:    raw.Optional,
			resolve: func(v Vars) (AssetSpec, error) {
				return v.expandSpec(raw), nil
			},
		})
	}
	return newCatalog(filename, entries)
}
