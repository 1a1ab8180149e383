package ai

import (
	"errors"
	"testing"
	"time"

	"atscheck/internal/config"

	"google.golang.org/genai"
)

func breakerConfig(minRequests uint32, threshold float64) *config.OperationAIConfig {
	return &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      minRequests,
			FailureThreshold: threshold,
		},
	}
}

func TestGenerationBreakerNaming(t *testing.T) {
	b := NewGenerationBreaker("match", breakerConfig(3, 0.6), nil)

	stats := b.Stats()
	if stats["name"] != "AI-match" {
		t.Errorf("name = %v, want AI-match", stats["name"])
	}
	if stats["state"] != "closed" {
		t.Errorf("initial state = %v, want closed", stats["state"])
	}
	if stats["enabled"] != true {
		t.Errorf("enabled = %v, want true", stats["enabled"])
	}
	if !b.Healthy() {
		t.Error("new breaker should report healthy")
	}
}

func TestBreakersAreIndependent(t *testing.T) {
	match := NewGenerationBreaker("match", breakerConfig(1, 0.5), nil)
	qualifications := NewGenerationBreaker("qualifications", breakerConfig(3, 0.6), nil)

	// Trip the match breaker with consecutive failures.
	boom := errors.New("provider down")
	for range 3 {
		_, _ = match.Do(func() (*genai.GenerateContentResponse, error) {
			return nil, boom
		})
	}

	if match.Healthy() {
		t.Error("match breaker should be open after repeated failures")
	}
	if !qualifications.Healthy() {
		t.Error("qualifications breaker must not be affected by match failures")
	}
}

func TestBreakerOpenRejectsCalls(t *testing.T) {
	b := NewGenerationBreaker("match", breakerConfig(1, 0.5), nil)

	boom := errors.New("provider down")
	for range 2 {
		_, _ = b.Do(func() (*genai.GenerateContentResponse, error) {
			return nil, boom
		})
	}

	called := false
	_, err := b.Do(func() (*genai.GenerateContentResponse, error) {
		called = true
		return nil, nil
	})
	if err == nil {
		t.Fatal("expected open breaker to reject the call")
	}
	if called {
		t.Error("open breaker must not invoke the wrapped function")
	}
}

func TestDisabledBreakerPassesThrough(t *testing.T) {
	cfg := &config.OperationAIConfig{
		Provider:       "gemini",
		Model:          "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{Enabled: false},
	}

	b := NewGenerationBreaker("match", cfg, nil)
	if b != nil {
		t.Fatal("disabled breaker should be nil")
	}

	// A nil breaker still executes and reports healthy.
	out, err := b.Do(func() (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{}, nil
	})
	if err != nil || out == nil {
		t.Errorf("nil breaker should pass the call through, got (%v, %v)", out, err)
	}
	if !b.Healthy() {
		t.Error("nil breaker should report healthy")
	}
	if enabled := b.Stats()["enabled"]; enabled != false {
		t.Errorf("nil breaker stats enabled = %v, want false", enabled)
	}
}

func TestModelInfoBreakerNaming(t *testing.T) {
	b := NewModelInfoBreaker("qualifications", breakerConfig(3, 0.6), nil)
	if name := b.Stats()["name"]; name != "AI-Model-qualifications" {
		t.Errorf("name = %v, want AI-Model-qualifications", name)
	}
}
