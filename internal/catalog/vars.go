// internal/catalog/vars.go
package catalog

import (
	"os"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Vars son los valores que una descripción puede referenciar.
type Vars struct {
	ModelsDir string
	Dest      string
	Home      string
}

// NewVars completa Home desde el entorno.
func NewVars(modelsDir, dest string) Vars {
	home, _ := os.UserHomeDir()
	return Vars{ModelsDir: modelsDir, Dest: dest, Home: home}
}

func (v Vars) lookup(name string) (string, bool) {
	switch name {
	case "models_dir":
		return v.ModelsDir, true
	case "dest":
		return v.Dest, true
	case "home":
		return v.Home, true
	}
	return "", false
}

var varRefRe = regexp.MustCompile(`\$\{([a-z_]+)\}`)

// expand sustituye ${var}. Las referencias desconocidas y cualquier otro "$"
// (ej: dentro de un script) se dejan intactos.
func (v Vars) expand(s string) string {
	return varRefRe.ReplaceAllStringFunc(s, func(ref string) string {
		if val, ok := v.lookup(ref[2 : len(ref)-1]); ok {
			return val
		}
		return ref
	})
}

// evalContext expone las variables a las expresiones HCL.
func (v Vars) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"models_dir": cty.StringVal(v.ModelsDir),
			"dest":       cty.StringVal(v.Dest),
			"home":       cty.StringVal(v.Home),
		},
	}
}

// expandSpec aplica expand a todos los strings de la descripción.
func (v Vars) expandSpec(a AssetSpec) AssetSpec {
	out := a
	if a.Env != nil {
		out.Env = make(map[string]string, len(a.Env))
		for k, val := range a.Env {
			out.Env[k] = v.expand(val)
		}
	}
	out.RelocateFrom = v.expandAll(a.RelocateFrom)
	out.Remediation = v.expandAll(a.Remediation)

	out.Prerequisites = make([]PrereqSpec, len(a.Prerequisites))
	for i, p := range a.Prerequisites {
		p.Command = v.expand(p.Command)
		p.Args = v.expandAll(p.Args)
		out.Prerequisites[i] = p
	}

	out.Strategies = make([]StrategySpec, len(a.Strategies))
	for i, s := range a.Strategies {
		s.Package = v.expand(s.Package)
		s.Repo = v.expand(s.Repo)
		s.Script = v.expand(s.Script)
		s.Extra = v.expandAll(s.Extra)
		out.Strategies[i] = s
	}
	return out
}

func (v Vars) expandAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = v.expand(s)
	}
	return out
}
