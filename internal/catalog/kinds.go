// internal/catalog/kinds.go
package catalog

import (
	"fmt"

	"modelfetch/internal/core/ports"
	"modelfetch/internal/platform/registry"
	"modelfetch/internal/platform/validator"
	"modelfetch/internal/strategies"
)

// strategyKind valida y construye un tipo de estrategia.
type strategyKind struct {
	validate func(s StrategySpec) error
	build    func(s StrategySpec, tc strategies.Toolchain) ports.Strategy
}

// prereqKind valida y construye un tipo de prerequisito.
type prereqKind struct {
	validate func(p PrereqSpec) error
	build    func(p PrereqSpec, tc strategies.Toolchain, opts BuildOptions) ports.Prerequisite
}

var (
	strategyKinds = registry.New[strategyKind]("strategy")
	prereqKinds   = registry.New[prereqKind]("prerequisite")
)

func init() {
	strategyKinds.MustRegister(KindPip, "pip install a requirement or git+ URL", strategyKind{
		validate: func(s StrategySpec) error {
			if err := registry.ValidateRequiredString("package", s.Package); err != nil {
				return err
			}
			if !validator.IsPipRequirement(s.Package) {
				return fmt.Errorf("%q is not a pip requirement", s.Package)
			}
			return registry.ValidateEach("extra", s.Extra, func(arg string) bool { return arg != "" })
		},
		build: func(s StrategySpec, tc strategies.Toolchain) ports.Strategy {
			return strategies.NewPip(s.Name, validator.NormalizeRequirement(s.Package), s.Extra, tc)
		},
	})

	strategyKinds.MustRegister(KindSource, "shallow clone, then install setup.py, pyproject.toml or subpackages", strategyKind{
		validate: validateRepo,
		build: func(s StrategySpec, tc strategies.Toolchain) ports.Strategy {
			depth := s.Depth
			switch {
			case depth == 0:
				depth = 1
			case depth < 0:
				depth = 0
			}
			return strategies.NewSource(s.Name, s.Repo, depth, tc)
		},
	})

	strategyKinds.MustRegister(KindEditable, "clone if absent, then pip install -e", strategyKind{
		validate: validateRepo,
		build: func(s StrategySpec, tc strategies.Toolchain) ports.Strategy {
			return strategies.NewEditable(s.Name, s.Repo, tc)
		},
	})

	strategyKinds.MustRegister(KindPython, "run a python snippet that downloads on first use", strategyKind{
		validate: func(s StrategySpec) error {
			if err := registry.ValidateRequiredString("script", s.Script); err != nil {
				return err
			}
			if s.Module != "" && !validator.IsModuleName(s.Module) {
				return fmt.Errorf("invalid module name %q", s.Module)
			}
			return nil
		},
		build: func(s StrategySpec, tc strategies.Toolchain) ports.Strategy {
			return strategies.NewPythonInit(s.Name, s.Module, s.Script, tc)
		},
	})

	prereqKinds.MustRegister(PrereqTool, "a binary on PATH that answers a version command", prereqKind{
		validate: func(p PrereqSpec) error {
			if p.Name == "" && p.Command == "" {
				return fmt.Errorf("tool needs a name or command")
			}
			return nil
		},
		build: buildTool,
	})

	prereqKinds.MustRegister(PrereqGitLFS, "git lfs is installed", prereqKind{
		validate: func(PrereqSpec) error { return nil },
		build: func(_ PrereqSpec, tc strategies.Toolchain, _ BuildOptions) ports.Prerequisite {
			return strategies.NewGitLFS(tc)
		},
	})

	prereqKinds.MustRegister(PrereqXcodeLicense, "the Xcode license is accepted (macOS only)", prereqKind{
		validate: func(PrereqSpec) error { return nil },
		build: func(_ PrereqSpec, tc strategies.Toolchain, opts BuildOptions) ports.Prerequisite {
			return strategies.NewXcodeLicense(tc, opts.Confirmer, opts.AssumeYes)
		},
	})
}

func validateRepo(s StrategySpec) error {
	if err := registry.ValidateRequiredString("repo", s.Repo); err != nil {
		return err
	}
	if !validator.IsRepoURL(s.Repo) {
		return fmt.Errorf("%q is not a git repository URL", s.Repo)
	}
	return nil
}

// buildTool resuelve "python" y "git" a los binarios configurados.
func buildTool(p PrereqSpec, tc strategies.Toolchain, _ BuildOptions) ports.Prerequisite {
	name, command := p.Name, p.Command
	if command == "" {
		switch name {
		case "python":
			command = tc.Python
		case "git":
			command = tc.Git
		default:
			command = name
		}
	}
	if name == "" {
		name = command
	}
	args := p.Args
	if len(args) == 0 {
		args = []string{"--version"}
	}
	return strategies.NewTool(name, command, args, tc)
}
