package ai

import (
	"atscheck/internal/config"
	"atscheck/internal/errors"

	"github.com/sony/gobreaker/v2"
	"google.golang.org/genai"
)

// Breaker guards one class of provider call. A nil *Breaker means the
// breaker is disabled and calls pass straight through.
type Breaker[T any] struct {
	cb *gobreaker.CircuitBreaker[T]
}

func newBreaker[T any](name string, cfg config.CircuitBreakerConfig, trip func(gobreaker.Counts) bool, logger *errors.Logger) *Breaker[T] {
	if !cfg.Enabled {
		return nil
	}

	return &Breaker[T]{cb: gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: trip,
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Info("Circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String())
			}
		},
	})}
}

// NewGenerationBreaker builds the breaker for content generation calls,
// tripping on the operation's configured failure ratio.
func NewGenerationBreaker(operationType string, cfg *config.OperationAIConfig, logger *errors.Logger) *Breaker[*genai.GenerateContentResponse] {
	bc := cfg.CircuitBreaker
	return newBreaker[*genai.GenerateContentResponse]("AI-"+operationType, bc, func(counts gobreaker.Counts) bool {
		ratio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= bc.MinRequests && ratio >= bc.FailureThreshold
	}, logger)
}

// NewModelInfoBreaker builds the breaker for model availability lookups.
// Availability checks are advisory, so the trip threshold is looser than
// the generation breaker's.
func NewModelInfoBreaker(operationType string, cfg *config.OperationAIConfig, logger *errors.Logger) *Breaker[*genai.Model] {
	return newBreaker[*genai.Model]("AI-Model-"+operationType, cfg.CircuitBreaker, func(counts gobreaker.Counts) bool {
		ratio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 5 && ratio >= 0.8
	}, logger)
}

// Do runs fn under the breaker, or directly when the breaker is disabled.
func (b *Breaker[T]) Do(fn func() (T, error)) (T, error) {
	if b == nil || b.cb == nil {
		return fn()
	}
	return b.cb.Execute(fn)
}

// Healthy reports whether the breaker is closed (or disabled).
func (b *Breaker[T]) Healthy() bool {
	if b == nil || b.cb == nil {
		return true
	}
	return b.cb.State() == gobreaker.StateClosed
}

// Stats returns the breaker's current state for diagnostics endpoints.
func (b *Breaker[T]) Stats() map[string]any {
	if b == nil || b.cb == nil {
		return map[string]any{"enabled": false}
	}

	return map[string]any{
		"name":    b.cb.Name(),
		"state":   b.cb.State().String(),
		"counts":  b.cb.Counts(),
		"enabled": true,
	}
}
