package ai

import (
	"context"
	"fmt"

	"atscheck/internal/config"
	"atscheck/internal/errors"
	"atscheck/internal/scoring"
	"atscheck/internal/types"
)

// Service handles AI operations for resume and job analysis
type Service struct {
	Provider Provider // Exported for access from server package
	config   *config.OperationAIConfig
	logger   *errors.Logger
}

// NewService creates a new AI service instance with configuration for a specific operation
func NewService(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (*Service, error) {
	var provider Provider
	var err error

	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_retries", *cfg.MaxRetries,
		"use_system_prompts", *cfg.UseSystemPrompts)

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, operationType, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		logger:   logger,
	}, nil
}

// MatchKeywords runs the AI keyword comparison and degrades to the local
// heuristic matcher when the provider fails, so the match operation never
// hard-fails on AI availability.
func (s *Service) MatchKeywords(ctx context.Context, resumeKeywords, jobKeywords []string) (*types.KeywordMatchResult, *TokenUsage, error) {
	result, usage, err := s.Provider.MatchKeywords(ctx, resumeKeywords, jobKeywords)
	if err != nil {
		s.logger.Warn("AI keyword match failed, falling back to heuristic matching",
			"error", err.Error(),
			"resume_keywords", len(resumeKeywords),
			"job_keywords", len(jobKeywords))
		return scoring.BasicMatchKeywords(resumeKeywords, jobKeywords), nil, nil
	}
	return result, usage, nil
}

// ExtractQualifications runs the AI qualification profile extraction
func (s *Service) ExtractQualifications(ctx context.Context, resumeText string) (*types.QualificationProfile, *TokenUsage, error) {
	return s.Provider.ExtractQualifications(ctx, resumeText)
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	return s.Provider.GetModelInfo(ctx)
}

// GetCircuitBreakerStats exposes the provider's circuit breaker state for
// health checks. Providers without breakers report them as disabled.
func (s *Service) GetCircuitBreakerStats() map[string]any {
	type breakerStats interface {
		GetCircuitBreakerStats() map[string]any
	}
	if p, ok := s.Provider.(breakerStats); ok {
		return p.GetCircuitBreakerStats()
	}
	return map[string]any{"enabled": false}
}
