// internal/platform/resilience/retryable_strategy.go
package resilience

import (
	"context"
	"math"
	"time"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/core/ports"
	"modelfetch/internal/platform/errors"
	"modelfetch/internal/platform/logx"
)

// RetryableStrategy envuelve una estrategia y la repite cuando falla por un
// problema de red o del remoto. Las demás categorías no se repiten: una
// herramienta ausente o un repo sin setup.py fallarán igual la segunda vez.
type RetryableStrategy struct {
	strategy          ports.Strategy
	maxRetries        int
	backoffBase       time.Duration
	backoffMultiplier float64
	logger            logx.Logger
}

// NewRetryableStrategy crea un nuevo RetryableStrategy.
func NewRetryableStrategy(
	strategy ports.Strategy,
	maxRetries int,
	backoffBase time.Duration,
	backoffMultiplier float64,
	logger logx.Logger,
) *RetryableStrategy {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if backoffBase <= 0 {
		backoffBase = 2 * time.Second
	}
	if backoffMultiplier < 1.0 {
		backoffMultiplier = 2.0
	}
	if logger == nil {
		logger = logx.Nop()
	}

	return &RetryableStrategy{
		strategy:          strategy,
		maxRetries:        maxRetries,
		backoffBase:       backoffBase,
		backoffMultiplier: backoffMultiplier,
		logger:            logger.With("component", "retry", "strategy", strategy.Name()),
	}
}

// Name retorna el nombre de la estrategia subyacente.
func (r *RetryableStrategy) Name() string {
	return r.strategy.Name()
}

// Remote delega en la estrategia subyacente si habla con un remoto.
func (r *RetryableStrategy) Remote() string {
	if rs, ok := r.strategy.(ports.RemoteStrategy); ok {
		return rs.Remote()
	}
	return ""
}

// Describe delega en la estrategia subyacente.
func (r *RetryableStrategy) Describe() string {
	if d, ok := r.strategy.(ports.Describer); ok {
		return d.Describe()
	}
	return r.strategy.Name()
}

// Acquire ejecuta la estrategia con reintentos y backoff exponencial.
func (r *RetryableStrategy) Acquire(ctx context.Context, target domain.Target) domain.Outcome {
	var outcome domain.Outcome

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			r.logger.Info("retrying strategy",
				"attempt", attempt,
				"max_retries", r.maxRetries,
			)
		}

		outcome = r.strategy.Acquire(ctx, target)
		if outcome.Succeeded() {
			if attempt > 0 {
				r.logger.Info("strategy succeeded after retry", "attempts", attempt+1)
			}
			return outcome
		}

		if outcome.Category() != domain.CategoryRemote || attempt >= r.maxRetries {
			break
		}

		backoff := r.calculateBackoff(attempt)
		r.logger.Debug("backing off before retry",
			"delay_ms", backoff.Milliseconds(),
			"reason", outcome.Reason().Error(),
		)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return domain.Failure(errors.Wrapf(ctx.Err(), "%s: backoff after %d attempts", r.strategy.Name(), attempt+1))
		}
	}

	return outcome
}

// calculateBackoff calcula el delay de backoff exponencial.
func (r *RetryableStrategy) calculateBackoff(attempt int) time.Duration {
	multiplier := math.Pow(r.backoffMultiplier, float64(attempt))
	backoff := time.Duration(float64(r.backoffBase) * multiplier)

	// Máximo de un minuto
	maxBackoff := 60 * time.Second
	if backoff > maxBackoff {
		backoff = maxBackoff
	}

	return backoff
}
