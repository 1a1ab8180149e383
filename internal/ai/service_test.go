package ai

import (
	"log/slog"
	"testing"
	"time"

	"atscheck/internal/config"
	"atscheck/internal/errors"
)

func durPtr(d time.Duration) *time.Duration { return &d }
func f32Ptr(f float32) *float32             { return &f }

func TestMatchConfigOverridesAndFallbacks(t *testing.T) {
	cfg := &config.Config{
		AI: config.AIConfig{
			Provider:    "gemini",
			Model:       "global-model",
			Timeout:     60 * time.Second,
			APIKey:      "global-key",
			MaxRetries:  5,
			Temperature: 0.9,
			Match: config.OperationAIConfig{
				Model:       "match-model",
				Timeout:     durPtr(90 * time.Second),
				Temperature: f32Ptr(0.1),
			},
		},
	}

	match := cfg.GetMatchConfig()
	if match.Model != "match-model" {
		t.Errorf("match model = %q, want the operation override", match.Model)
	}
	if *match.Timeout != 90*time.Second {
		t.Errorf("match timeout = %v, want the operation override", *match.Timeout)
	}
	if *match.Temperature != 0.1 {
		t.Errorf("match temperature = %v, want the operation override", *match.Temperature)
	}
	if match.APIKey != "global-key" {
		t.Errorf("match api key = %q, want the global fallback", match.APIKey)
	}
	if *match.MaxRetries != 5 {
		t.Errorf("match max retries = %d, want the global fallback", *match.MaxRetries)
	}
}

func TestQualificationsConfigFallsBackToGlobals(t *testing.T) {
	cfg := &config.Config{
		AI: config.AIConfig{
			Provider:    "gemini",
			Model:       "global-model",
			Timeout:     60 * time.Second,
			APIKey:      "global-key",
			MaxRetries:  3,
			Temperature: 0.2,
		},
	}

	qual := cfg.GetQualificationsConfig()
	if qual.Model != "global-model" || qual.APIKey != "global-key" {
		t.Errorf("qualifications config = %q/%q, want global fallbacks", qual.Model, qual.APIKey)
	}
	if *qual.Timeout != 60*time.Second {
		t.Errorf("qualifications timeout = %v, want the global fallback", *qual.Timeout)
	}
}

func TestNewServiceRejectsUnknownProvider(t *testing.T) {
	cfg := &config.Config{
		AI: config.AIConfig{
			Provider:    "openai",
			Model:       "some-model",
			Timeout:     30 * time.Second,
			APIKey:      "key",
			MaxRetries:  1,
			Temperature: 0.2,
		},
	}

	logger := errors.NewLogger(slog.LevelError)
	match := cfg.GetMatchConfig()
	if _, err := NewService(&match, "match", logger); err == nil {
		t.Fatal("expected an error for an unsupported provider")
	}
}
