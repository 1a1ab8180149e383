package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"atscheck/internal/analyzer"
	"atscheck/internal/observability"
	"atscheck/internal/parser"
	"atscheck/internal/scoring"
	"atscheck/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createScoreHandler wraps the score handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("atscheck.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		// Parse request
		var req types.ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("resumeText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if len(req.JobDescription) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescription))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jobDescription exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "score"),
		)

		resume := parser.NewResumeParser().Parse(req.ResumeText, "", strings.ToLower(req.ResumeFormat))
		job := analyzer.NewJobAnalyzer(s.AppConfig.Scoring.TopKeywords).Analyze(req.JobDescription)
		result := scoring.NewScorer().Score(resume, job)

		// Record success metrics
		metrics := om.GetMetrics()
		metrics.RecordScoringMetric(ctx, "resume_scored", true, om,
			attribute.Float64("overall_score", result.OverallScore))
		metrics.RecordScoreDistribution(ctx, result.OverallScore, om)
		metrics.RecordContentSizes(ctx, len(req.ResumeText), len(req.JobDescription), om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("response.overall_score", result.OverallScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createAnalyzeHandler wraps the analyze handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("atscheck.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		var req types.AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		if len(req.JobDescription) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescription))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jobDescription exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "analyze"),
		)

		result := analyzer.NewJobAnalyzer(s.AppConfig.Scoring.TopKeywords).Analyze(req.JobDescription)

		metrics := om.GetMetrics()
		metrics.RecordScoringMetric(ctx, "job_analyzed", true, om,
			attribute.Int("required_skills", len(result.RequiredSkills)),
			attribute.Int("preferred_skills", len(result.PreferredSkills)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("required_skills", len(result.RequiredSkills)),
			attribute.Int("preferred_skills", len(result.PreferredSkills)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createParseHandler wraps the parse handler with observability
func (s *Server) createParseHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("atscheck.api")
		ctx, span := tracer.Start(ctx, "api.parse")
		defer span.End()

		var req types.ParseRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		if len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("resumeText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "parse"),
		)

		result := parser.NewResumeParser().Parse(req.ResumeText, "", "")

		metrics := om.GetMetrics()
		metrics.RecordScoringMetric(ctx, "resume_parsed", true, om,
			attribute.Int("skills_count", len(result.Skills)),
			attribute.Int("keywords_count", len(result.Keywords)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("skills_count", len(result.Skills)),
			attribute.Int("keywords_count", len(result.Keywords)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createMatchHandler wraps the match handler with observability
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("atscheck.api")
		ctx, span := tracer.Start(ctx, "api.match")
		defer span.End()

		var req types.MatchRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		if len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("resumeText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if len(req.JobDescription) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescription))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jobDescription exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "match"),
			attribute.Bool("ai_enabled", s.AppConfig.AI.Enabled),
		)

		resume := parser.NewResumeParser().Parse(req.ResumeText, "", "")
		job := analyzer.NewJobAnalyzer(s.AppConfig.Scoring.TopKeywords).Analyze(req.JobDescription)

		jobKeywords := make([]string, 0, len(job.Keywords.SingleWords))
		for _, kw := range job.Keywords.SingleWords {
			jobKeywords = append(jobKeywords, kw.Keyword)
		}

		metrics := om.GetMetrics()
		var result *types.KeywordMatchResult

		if s.AppConfig.AI.Enabled {
			if s.matchAIErr != nil {
				span.RecordError(s.matchAIErr)
				span.SetAttributes(attribute.String("error.type", "service_creation"))
				writeErrorResponse(w, "AI service unavailable", s.matchAIErr.Error(), http.StatusInternalServerError)
				return
			}

			// Track AI operation with observability and token usage. The
			// service itself falls back to lexical matching when the provider
			// is unavailable.
			err := metrics.TrackAIOperationWithTokens(ctx, "match", func(ctx context.Context) *observability.AIOperationResult {
				output, tokenUsage, aiErr := s.matchAI.MatchKeywords(ctx, resume.Keywords, jobKeywords)
				result = output
				return &observability.AIOperationResult{
					Error:      aiErr,
					TokenUsage: (*observability.TokenUsage)(tokenUsage),
				}
			}, om)

			if err != nil {
				span.RecordError(err)
				span.SetAttributes(attribute.String("error.type", "ai_processing"))
				metrics.RecordScoringMetric(ctx, "keywords_matched", false, om,
					attribute.String("error", err.Error()))
				writeErrorResponse(w, "Failed to match keywords", err.Error(), http.StatusInternalServerError)
				return
			}
		} else {
			result = scoring.BasicMatchKeywords(resume.Keywords, jobKeywords)
		}

		metrics.RecordScoringMetric(ctx, "keywords_matched", true, om,
			attribute.Float64("match_rate", result.MatchRate),
			attribute.Int("exact_matches", len(result.ExactMatches)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("response.match_rate", result.MatchRate),
			attribute.Int("response.exact_matches", len(result.ExactMatches)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}
