// internal/catalog/build.go
package catalog

import (
	"time"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/core/ports"
	"modelfetch/internal/platform/errors"
	"modelfetch/internal/platform/execx"
	"modelfetch/internal/platform/fsutil"
	"modelfetch/internal/platform/logx"
	"modelfetch/internal/platform/resilience"
	"modelfetch/internal/strategies"
)

// BuildOptions son las dependencias con las que se construyen estrategias y
// prerequisitos.
type BuildOptions struct {
	Runner    execx.Runner
	Logger    logx.Logger
	Python    string
	Git       string
	Confirmer strategies.Confirmer
	AssumeYes bool

	// RetryBackoff es el primer backoff de las estrategias con retries (0 = 2s)
	RetryBackoff time.Duration
}

// Build convierte una descripción resuelta en el plan que ejecuta el runner.
func Build(spec AssetSpec, target domain.Target, opts BuildOptions) (ports.Plan, error) {
	if opts.Runner == nil {
		return ports.Plan{}, errors.Wrap(errors.ErrInvalidInput, "build: nil runner")
	}
	if opts.Logger == nil {
		opts.Logger = logx.Nop()
	}
	logger := opts.Logger.With("asset", spec.Name)
	tc := strategies.NewToolchain(opts.Runner, logger, opts.Python, opts.Git, spec.Env)

	plan := ports.Plan{
		Target:      target,
		Description: spec.Description,
		Env:         spec.Env,
		Remediation: spec.Remediation,
		DocsURL:     spec.DocsURL,
		Optional:    spec.Optional,
		Complete:    completionCheck(spec.Complete),
	}

	for _, p := range spec.Prerequisites {
		pre, err := buildPrereq(p, tc, opts)
		if err != nil {
			return ports.Plan{}, errors.Wrapf(err, "asset %q", spec.Name)
		}
		plan.Prerequisites = append(plan.Prerequisites, pre)
	}

	for _, s := range spec.Strategies {
		strategy, err := buildStrategy(s, tc)
		if err != nil {
			return ports.Plan{}, errors.Wrapf(err, "asset %q", spec.Name)
		}
		logger.Debug("strategy built", "strategy", s.Name, "kind", s.Kind, "about", strategyKinds.Describe(s.Kind))
		if s.Retries > 0 {
			strategy = resilience.NewRetryableStrategy(strategy, s.Retries, opts.RetryBackoff, 2.0, logger)
		}
		if len(spec.RelocateFrom) > 0 {
			strategy = strategies.NewRelocate(strategy, spec.RelocateFrom, logger)
		}
		plan.Strategies = append(plan.Strategies, strategy)
	}

	return plan, nil
}

func buildPrereq(p PrereqSpec, tc strategies.Toolchain, opts BuildOptions) (ports.Prerequisite, error) {
	kind, err := prereqKinds.Lookup(p.Kind)
	if err != nil {
		return nil, err
	}
	return kind.build(p, tc, opts), nil
}

func buildStrategy(s StrategySpec, tc strategies.Toolchain) (ports.Strategy, error) {
	kind, err := strategyKinds.Lookup(s.Kind)
	if err != nil {
		return nil, err
	}
	return kind.build(s, tc), nil
}

func completionCheck(kind string) ports.CompletionCheck {
	switch kind {
	case CompleteNonEmpty:
		return func(dir string) (bool, error) {
			empty, err := fsutil.IsEmpty(dir)
			return !empty, err
		}
	}
	return nil
}
