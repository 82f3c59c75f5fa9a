// internal/core/usecases/runner.go
package usecases

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/core/ports"
	"modelfetch/internal/platform/errors"
	"modelfetch/internal/platform/fsutil"
	"modelfetch/internal/platform/logx"
)

// Runner ejecuta la cadena de estrategias de un plan, en orden, hasta el primer éxito.
type Runner struct {
	logger   logx.Logger
	observer ports.Observer

	// Configuración
	strategyTimeout time.Duration
	force           bool
}

// RunnerOptions configura el runner.
type RunnerOptions struct {
	Logger          logx.Logger
	Observer        ports.Observer
	StrategyTimeout time.Duration // 0 = sin timeout
	Force           bool          // ignora la comprobación de completitud
}

// NewRunner crea una nueva instancia del runner.
func NewRunner(opts RunnerOptions) *Runner {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Observer == nil {
		opts.Observer = ports.NopObserver{}
	}
	if opts.StrategyTimeout < 0 {
		opts.StrategyTimeout = 0
	}

	return &Runner{
		logger:          opts.Logger.With("component", "runner"),
		observer:        opts.Observer,
		strategyTimeout: opts.StrategyTimeout,
		force:           opts.Force,
	}
}

// Run adquiere el asset del plan. Nunca devuelve error: todo fallo queda en el Report.
func (r *Runner) Run(ctx context.Context, plan ports.Plan) domain.Report {
	start := time.Now()
	target := plan.Target
	logger := r.logger.With("asset", target.Name)

	report := domain.Report{Target: target}
	finish := func(status domain.RunStatus) domain.Report {
		report.Status = status
		report.Duration = time.Since(start)
		r.observer.RunFinished(report)
		return report
	}

	r.observer.RunStarted(plan)

	if len(plan.Strategies) == 0 {
		report.Fatal = errors.Wrap(errors.ErrInvalidInput, domain.ErrNoStrategies.Error())
		return finish(domain.StatusFailed)
	}

	// El destino existe antes de que cualquier estrategia escriba
	if err := fsutil.EnsureDir(target.Dir); err != nil {
		report.Fatal = err
		report.Guidance = append(report.Guidance, Analyze("mkdir", err, "", plan.DocsURL))
		return finish(domain.StatusFailed)
	}

	if !r.force && plan.Complete != nil {
		done, err := plan.Complete(target.Dir)
		if err != nil {
			logger.Warn("completion check failed, acquiring anyway", "error", err.Error())
		} else if done {
			logger.Info("destination already complete", "dir", target.Dir)
			return finish(domain.StatusAlreadyComplete)
		}
	}

	for _, pre := range plan.Prerequisites {
		if err := pre.Check(ctx); err != nil {
			logger.Warn("prerequisite not met", "prerequisite", pre.Name(), "error", err.Error())
			r.observer.PrerequisiteFailed(pre.Name(), err)
			report.Fatal = err
			report.Guidance = append(report.Guidance, Analyze(pre.Name(), err, "", plan.DocsURL))
			report.Notes = plan.Remediation
			return finish(r.exhaustedStatus(plan))
		}
		logger.Debug("prerequisite ok", "prerequisite", pre.Name())
	}

	total := len(plan.Strategies)
	for i, strategy := range plan.Strategies {
		if err := ctx.Err(); err != nil {
			report.Fatal = errors.Wrap(domain.ErrRunCancelled, err.Error())
			break
		}

		logger.Debug("running strategy", "strategy", strategy.Name(), "action", describe(strategy))
		r.observer.AttemptStarted(i+1, total, strategy.Name())
		attempt := r.attempt(ctx, strategy, plan)
		report.Attempts = append(report.Attempts, attempt)
		r.observer.AttemptFinished(i+1, total, attempt)

		if attempt.Outcome.Succeeded() {
			logger.Info("strategy succeeded",
				"strategy", strategy.Name(),
				"attempt", i+1,
				"duration", attempt.Duration.String(),
			)
			report.Winner = strategy.Name()
			return finish(domain.StatusSucceeded)
		}

		reason := attempt.Outcome.Reason()
		logger.Warn("strategy failed",
			"strategy", strategy.Name(),
			"attempt", i+1,
			"category", attempt.Outcome.Category(),
			"reason", reason.Error(),
		)
		report.Guidance = append(report.Guidance, Analyze(strategy.Name(), reason, remoteOf(strategy), plan.DocsURL))
	}

	if report.Fatal != nil {
		logger.Warn("run cancelled", "attempts", len(report.Attempts))
		return finish(domain.StatusFailed)
	}

	report.Notes = plan.Remediation
	logger.Warn("all strategies exhausted", "attempts", len(report.Attempts))
	return finish(r.exhaustedStatus(plan))
}

// attempt runs one strategy with the per-strategy timeout, recovers panics and
// downgrades a success whose destination fails the completion check.
func (r *Runner) attempt(ctx context.Context, strategy ports.Strategy, plan ports.Plan) (attempt domain.Attempt) {
	start := time.Now()
	attempt.Strategy = strategy.Name()

	if r.strategyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.strategyTimeout)
		defer cancel()
	}

	defer func() {
		if p := recover(); p != nil {
			// Único caso en que se muestra la traza completa
			r.logger.Err(fmt.Errorf("panic: %v", p), "strategy", strategy.Name(), "stack", "\n"+string(debug.Stack()))
			attempt.Outcome = domain.Failure(errors.Wrapf(errors.ErrUnexpected, "%s panicked: %v", strategy.Name(), p))
		}
		attempt.Duration = time.Since(start)
	}()

	outcome := strategy.Acquire(ctx, plan.Target)
	if outcome.Succeeded() && plan.Complete != nil {
		done, err := plan.Complete(plan.Target.Dir)
		if err != nil || !done {
			outcome = domain.Failure(errors.Wrapf(errors.ErrNoInstallable, "%s: %s", domain.ErrIncompleteDir.Error(), plan.Target.Dir))
		}
	}

	attempt.Outcome = outcome
	return attempt
}

func (r *Runner) exhaustedStatus(plan ports.Plan) domain.RunStatus {
	if plan.Optional {
		return domain.StatusWarning
	}
	return domain.StatusFailed
}

func remoteOf(s ports.Strategy) string {
	if rs, ok := s.(ports.RemoteStrategy); ok {
		return rs.Remote()
	}
	return ""
}

func describe(s ports.Strategy) string {
	if d, ok := s.(ports.Describer); ok {
		return d.Describe()
	}
	return s.Name()
}
