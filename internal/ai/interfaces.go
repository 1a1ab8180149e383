package ai

import (
	"context"

	"atscheck/internal/types"
)

// Provider is the interface AI backends implement.
// All methods return token usage information - callers can ignore it if not needed
type Provider interface {
	MatchKeywords(ctx context.Context, resumeKeywords, jobKeywords []string) (*types.KeywordMatchResult, *TokenUsage, error)
	ExtractQualifications(ctx context.Context, resumeText string) (*types.QualificationProfile, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
