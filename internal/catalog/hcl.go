// internal/catalog/hcl.go
package catalog

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"modelfetch/internal/platform/errors"
)

// hclFile es la raíz: uno o más bloques asset.
type hclFile struct {
	Assets []*hclAsset `hcl:"asset,block"`
}

// hclAsset decodifica solo los atributos estáticos; el resto del cuerpo se
// evalúa cuando el destino es conocido.
type hclAsset struct {
	Name        string   `hcl:"name,label"`
	Description string   `hcl:"description,optional"`
	Dir         string   `hcl:"dir,optional"`
	Optional    bool     `hcl:"optional,optional"`
	Body        hcl.Body `hcl:",remain"`
}

type hclAssetBody struct {
	DocsURL      string            `hcl:"docs_url,optional"`
	Env          map[string]string `hcl:"env,optional"`
	Complete     string            `hcl:"complete,optional"`
	RelocateFrom []string          `hcl:"relocate_from,optional"`
	ListContents bool              `hcl:"list_contents,optional"`
	Remediation  []string          `hcl:"remediation,optional"`

	Prerequisites []hclPrereq   `hcl:"prerequisite,block"`
	Strategies    []hclStrategy `hcl:"strategy,block"`
}

type hclPrereq struct {
	Kind    string   `hcl:"kind,label"`
	Name    string   `hcl:"name,optional"`
	Command string   `hcl:"command,optional"`
	Args    []string `hcl:"args,optional"`
}

type hclStrategy struct {
	Kind    string   `hcl:"kind,label"`
	Name    string   `hcl:"name,label"`
	Package string   `hcl:"package,optional"`
	Extra   []string `hcl:"extra,optional"`
	Repo    string   `hcl:"repo,optional"`
	Depth   int      `hcl:"depth,optional"`
	Module  string   `hcl:"module,optional"`
	Script  string   `hcl:"script,optional"`
	Retries int      `hcl:"retries,optional"`
}

// ParseHCL decodifica un catálogo HCL. Ejemplo:
//
//	asset "indextts2" {
//	  dir = "index-tts"
//	  prerequisite "git-lfs" {}
//	  strategy "editable" "clone-editable" {
//	    repo = "https://github.com/index-tts/index-tts.git"
//	  }
//	  remediation = ["Cloned into ${dest}"]
//	}
func ParseHCL(data []byte, filename string) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "parse %s: %s", filename, diags.Error())
	}

	var root hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "decode %s: %s", filename, diags.Error())
	}

	entries := make([]Entry, 0, len(root.Assets))
	for _, a := range root.Assets {
		asset := a
		entries = append(entries, Entry{
			Name:        asset.Name,
			Description: asset.Description,
			Dir:         asset.Dir,
			Optional:    asset.Optional,
			resolve: func(v Vars) (AssetSpec, error) {
				return asset.decode(v)
			},
		})
	}
	return newCatalog(filename, entries)
}

// decode evalúa el cuerpo del asset con models_dir, dest y home como variables.
func (a *hclAsset) decode(v Vars) (AssetSpec, error) {
	var body hclAssetBody
	if diags := gohcl.DecodeBody(a.Body, v.evalContext(), &body); diags.HasErrors() {
		return AssetSpec{}, errors.Wrapf(errors.ErrInvalidInput, "asset %q: %s", a.Name, diags.Error())
	}

	spec := AssetSpec{
		Name:         a.Name,
		Description:  a.Description,
		Dir:          a.Dir,
		Optional:     a.Optional,
		DocsURL:      body.DocsURL,
		Env:          body.Env,
		Complete:     body.Complete,
		RelocateFrom: body.RelocateFrom,
		ListContents: body.ListContents,
		Remediation:  body.Remediation,
	}
	for _, p := range body.Prerequisites {
		spec.Prerequisites = append(spec.Prerequisites, PrereqSpec(p))
	}
	for _, s := range body.Strategies {
		spec.Strategies = append(spec.Strategies, StrategySpec{
			Kind:    s.Kind,
			Name:    s.Name,
			Package: s.Package,
			Extra:   s.Extra,
			Repo:    s.Repo,
			Depth:   s.Depth,
			Module:  s.Module,
			Script:  s.Script,
			Retries: s.Retries,
		})
	}
	return spec, nil
}
