// Package catalog describes every known asset and turns a description into
// an executable plan.
//
// Descriptions are format agnostic (AssetSpec). The built-in catalog is YAML
// embedded in the binary; user catalogs may be YAML or HCL. String values can
// reference ${models_dir}, ${dest} and ${home}, resolved once the destination
// of a run is known.
package catalog

import (
	"fmt"
	"regexp"

	"modelfetch/internal/platform/errors"
	"modelfetch/internal/platform/registry"
	"modelfetch/internal/platform/validator"
)

// Completion check kinds.
const (
	CompleteNone     = ""
	CompleteNonEmpty = "non_empty"
)

// Strategy kinds.
const (
	KindPip      = "pip"
	KindSource   = "source"
	KindEditable = "editable"
	KindPython   = "python"
)

// Prerequisite kinds.
const (
	PrereqTool         = "tool"
	PrereqGitLFS       = "git-lfs"
	PrereqXcodeLicense = "xcode-license"
)

var assetNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// AssetSpec es la descripción de un asset, independiente del formato.
type AssetSpec struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Dir         string            `yaml:"dir"`
	Optional    bool              `yaml:"optional"`
	DocsURL     string            `yaml:"docs_url"`
	Env         map[string]string `yaml:"env"`

	Complete     string   `yaml:"complete"`
	RelocateFrom []string `yaml:"relocate_from"`
	ListContents bool     `yaml:"list_contents"`
	Remediation  []string `yaml:"remediation"`

	Prerequisites []PrereqSpec   `yaml:"prerequisites"`
	Strategies    []StrategySpec `yaml:"strategies"`
}

// PrereqSpec describe un prerequisito.
type PrereqSpec struct {
	Kind    string   `yaml:"kind"`
	Name    string   `yaml:"name"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// StrategySpec describe una estrategia. Los campos usados dependen de Kind.
type StrategySpec struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`

	// pip
	Package string   `yaml:"package"`
	Extra   []string `yaml:"extra"`

	// source, editable
	Repo  string `yaml:"repo"`
	Depth int    `yaml:"depth"` // source: 0 = shallow (1), < 0 = full clone

	// python
	Module string `yaml:"module"`
	Script string `yaml:"script"`

	// Retries repite la estrategia ante fallos de red o del remoto
	Retries int `yaml:"retries"`
}

const (
	// maxRetries limita los reintentos por estrategia
	maxRetries = 5

	maxNameLength = 64
)

// Validate comprueba la forma de la descripción.
func (a AssetSpec) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, errors.Wrapf(errors.ErrInvalidInput, "asset %q: %s", a.Name, fmt.Sprintf(format, args...)))
	}

	if !assetNameRe.MatchString(a.Name) {
		fail("name must be lowercase letters, digits, '.', '_' or '-'")
	}
	if !validator.MaxLength(a.Name, maxNameLength) {
		fail("name longer than %d characters", maxNameLength)
	}
	if len(a.Strategies) == 0 {
		fail("no strategies")
	}
	if err := registry.ValidateEnum("complete", a.Complete, []string{CompleteNone, CompleteNonEmpty}); err != nil {
		fail("unknown completion check: %v", err)
	}
	if a.DocsURL != "" && !validator.IsURL(a.DocsURL) {
		fail("docs_url %q is not an http(s) URL", a.DocsURL)
	}
	for k := range a.Env {
		if !validator.IsEnvName(k) {
			fail("invalid environment variable name %q", k)
		}
	}

	names := make(map[string]bool)
	for i, s := range a.Strategies {
		if s.Name == "" {
			fail("strategy %d has no name", i+1)
		} else if names[s.Name] {
			fail("duplicate strategy %q", s.Name)
		}
		names[s.Name] = true

		if err := registry.ValidateIntRange("retries", s.Retries, 0, maxRetries); err != nil {
			fail("strategy %q: %v", s.Name, err)
		}

		kind, ok := strategyKinds.Get(s.Kind)
		if !ok {
			fail("strategy %q: unknown kind %q (%s)", s.Name, s.Kind, strategyKinds)
			continue
		}
		if err := kind.validate(s); err != nil {
			fail("strategy %q: %v", s.Name, err)
		}
	}

	for i, p := range a.Prerequisites {
		kind, ok := prereqKinds.Get(p.Kind)
		if !ok {
			fail("prerequisite %d: unknown kind %q (%s)", i+1, p.Kind, prereqKinds)
			continue
		}
		if err := kind.validate(p); err != nil {
			fail("prerequisite %d: %v", i+1, err)
		}
	}

	return errors.Join(errs...)
}
