package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"strings"
	"time"

	"atscheck/internal/config"
	apperrors "atscheck/internal/errors"
	"atscheck/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// GeminiProvider implements Provider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	httpClient     *http.Client
	config         *config.OperationAIConfig
	circuitBreaker *Breaker[*genai.GenerateContentResponse]
	modelBreaker   *Breaker[*genai.Model]
	logger         *apperrors.Logger
}

// Ensure GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance for a specific operation
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, logger *apperrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, apperrors.NewAIError(apperrors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	// Initialize circuit breakers with operation-specific configuration
	circuitBreaker := NewGenerationBreaker(operationType, cfg, logger)
	modelBreaker := NewModelInfoBreaker(operationType, cfg, logger)

	return &GeminiProvider{
		client: client,
		httpClient: &http.Client{
			Timeout: *cfg.Timeout,
		},
		config:         cfg,
		circuitBreaker: circuitBreaker,
		modelBreaker:   modelBreaker,
		logger:         logger,
	}, nil
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	// Create a timeout context for the model check
	timeout := getAIModelCheckTimeout()
	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Get model information from Gemini API with circuit breaker
	model, err := g.modelBreaker.Do(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)

		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	// Model is available, populate info
	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

// executeWithRetry executes an AI operation with retry logic and exponential backoff
func (g *GeminiProvider) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= *g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", *g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			// Use crypto/rand for secure random jitter
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			// Cap maximum backoff at 30 seconds
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("AI operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1,
					"total_attempts", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		// Don't retry on certain errors (auth, invalid input, etc.)
		if !g.isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	g.logger.LogError(lastErr, "AI operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", *g.config.MaxRetries+1)

	return nil, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, *g.config.MaxRetries, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func (g *GeminiProvider) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Check for network errors (timeouts, connection issues)
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true // Retry on timeouts
		}
		// Consider other network errors retryable (e.g., connection refused)
		return true
	}

	// Check for Google API errors (HTTP status codes)
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// executeAIOperation is a generic helper to run AI operations with common tracing, circuit breaker, and parsing logic.
func executeAIOperation[Out any](
	g *GeminiProvider,
	ctx context.Context,
	operationName string,
	userPrompt string,
	systemPrompt string,
	genaiConfig *genai.GenerateContentConfig,
	spanAttributes ...attribute.KeyValue,
) (Out, *TokenUsage, error) {
	var output Out
	tracer := otel.Tracer("atscheck.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operationName)
	defer span.End()

	// Set base attributes
	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	if *g.config.UseSystemPrompts && systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := g.circuitBreaker.Do(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(ctx, operationName, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, apperrors.NewAIError(apperrors.ErrCodeAIServiceFailed, "Failed to generate content for "+operationName, err)
	}

	if err := json.Unmarshal([]byte(result.Text()), &output); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, apperrors.NewAIError("AI_RESPONSE_PARSE_FAILED", "Failed to parse AI response for "+operationName, err)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return output, tokenUsage, nil
}

// MatchKeywords implements Provider for semantic keyword matching
func (g *GeminiProvider) MatchKeywords(ctx context.Context, resumeKeywords, jobKeywords []string) (*types.KeywordMatchResult, *TokenUsage, error) {
	systemPrompt := g.getSystemPrompt("match")
	userPrompt := fmt.Sprintf(g.getUserPrompt("match"),
		strings.Join(resumeKeywords, ", "),
		strings.Join(jobKeywords, ", "))
	config := g.buildMatchSchema()

	output, tokenUsage, err := executeAIOperation[types.KeywordMatchResult](
		g,
		ctx,
		"match_keywords",
		userPrompt,
		systemPrompt,
		config,
		attribute.Int("input.resume_keywords", len(resumeKeywords)),
		attribute.Int("input.job_keywords", len(jobKeywords)),
	)

	if err != nil {
		return nil, nil, err
	}

	return &output, tokenUsage, nil
}

// ExtractQualifications implements Provider for qualification profile extraction
func (g *GeminiProvider) ExtractQualifications(ctx context.Context, resumeText string) (*types.QualificationProfile, *TokenUsage, error) {
	systemPrompt := g.getSystemPrompt("qualifications")
	userPrompt := fmt.Sprintf(g.getUserPrompt("qualifications"), resumeText)
	config := g.buildQualificationsSchema()

	output, tokenUsage, err := executeAIOperation[types.QualificationProfile](
		g,
		ctx,
		"extract_qualifications",
		userPrompt,
		systemPrompt,
		config,
		attribute.Int("input.resume_length", len(resumeText)),
	)

	if err != nil {
		return nil, nil, err
	}

	return &output, tokenUsage, nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"ai_operations":    g.circuitBreaker.Stats(),
		"model_operations": g.modelBreaker.Stats(),
	}

	// Overall health - both breakers must be healthy
	stats["overall_healthy"] = g.circuitBreaker.Healthy() && g.modelBreaker.Healthy()

	return stats
}

// Close implements Provider interface
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	// Probably needed in streaming mode
	return nil
}

// buildMatchSchema creates the schema for keyword match requests
func (g *GeminiProvider) buildMatchSchema() *genai.GenerateContentConfig {
	keywordPair := map[string]*genai.Schema{
		"jobKeyword":    {Type: genai.TypeString},
		"resumeKeyword": {Type: genai.TypeString},
		"confidence":    {Type: genai.TypeNumber},
	}
	relatedPair := map[string]*genai.Schema{
		"jobKeyword":    {Type: genai.TypeString},
		"resumeKeyword": {Type: genai.TypeString},
		"relationship":  {Type: genai.TypeString},
		"confidence":    {Type: genai.TypeNumber},
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"exactMatches": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"semanticMatches": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type:       genai.TypeObject,
						Properties: keywordPair,
						Required:   []string{"jobKeyword", "resumeKeyword", "confidence"},
					},
				},
				"relatedMatches": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type:       genai.TypeObject,
						Properties: relatedPair,
						Required:   []string{"jobKeyword", "resumeKeyword", "relationship", "confidence"},
					},
				},
				"unmatchedCritical": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"unmatchedOptional": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"matchRate": {Type: genai.TypeNumber},
				"analysis":  {Type: genai.TypeString},
			},
			Required: []string{"exactMatches", "semanticMatches", "relatedMatches", "unmatchedCritical", "unmatchedOptional", "matchRate", "analysis"},
		},
	}

	// Apply temperature configuration if set
	if *g.config.Temperature > 0 {
		config.Temperature = g.config.Temperature
	}

	return config
}

// buildQualificationsSchema creates the schema for qualification extraction requests
func (g *GeminiProvider) buildQualificationsSchema() *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary": {Type: genai.TypeString},
				"keySkills": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"achievements": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"yearsExperience": {Type: genai.TypeString},
			},
			Required: []string{"summary", "keySkills", "achievements", "yearsExperience"},
		},
	}

	// Apply temperature configuration if set
	if *g.config.Temperature > 0 {
		config.Temperature = g.config.Temperature
	}

	return config
}

// getSystemPrompt returns the appropriate system prompt
func (g *GeminiProvider) getSystemPrompt(promptType string) string {
	loadedPrompts, configPrompts := g.getPrompts(promptType)
	var configSystemPrompts *config.SystemPrompts
	if configPrompts != nil {
		configSystemPrompts = &configPrompts.SystemPrompts
	} else {
		// Create an empty struct to avoid nil pointer panics
		configSystemPrompts = &config.SystemPrompts{}
	}

	switch promptType {
	case "match":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.MatchKeywords,
			configSystemPrompts.MatchKeywords,
			DefaultSystemPrompts.MatchKeywords,
		)
	case "qualifications":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.ExtractQualifications,
			configSystemPrompts.ExtractQualifications,
			DefaultSystemPrompts.ExtractQualifications,
		)
	default:
		return ""
	}
}

// getUserPrompt returns the appropriate user prompt template
func (g *GeminiProvider) getUserPrompt(promptType string) string {
	loadedPrompts, configPrompts := g.getPrompts(promptType)
	var configUserPrompts *config.UserPrompts
	if configPrompts != nil {
		configUserPrompts = &configPrompts.UserPrompts
	} else {
		// Create an empty struct to avoid nil pointer panics
		configUserPrompts = &config.UserPrompts{}
	}

	switch promptType {
	case "match":
		return resolvePrompt(
			loadedPrompts.UserPrompts.MatchKeywords,
			configUserPrompts.MatchKeywords,
			DefaultUserPrompts.MatchKeywords,
		)
	case "qualifications":
		return resolvePrompt(
			loadedPrompts.UserPrompts.ExtractQualifications,
			configUserPrompts.ExtractQualifications,
			DefaultUserPrompts.ExtractQualifications,
		)
	default:
		return ""
	}
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// extractTokenUsage extracts token usage information from Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}

// getAIModelCheckTimeout returns the configured AI model check timeout
func getAIModelCheckTimeout() time.Duration {
	// Use default timeout since we don't have access to config here
	// Fallback to default
	return 10 * time.Second
}

// getPrompts returns the appropriate prompts for the operation, prioritizing loaded content over config
func (g *GeminiProvider) getPrompts(operationType string) (config.OperationLoadedPrompts, *config.PromptConfig) {
	// Get loaded prompts (returns a copy)
	loadedPrompts := config.GetPromptsForOperation(operationType)
	configPrompts := &g.config.CustomPrompts
	return loadedPrompts, configPrompts
}

// resolvePrompt selects the correct prompt string based on a clear priority order:
// 1. A prompt loaded from a file.
// 2. A prompt defined directly in the configuration.
// 3. A hardcoded default prompt.
func resolvePrompt(loadedFromFile, fromConfig, fromDefault string) string {
	if loadedFromFile != "" {
		return loadedFromFile
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
