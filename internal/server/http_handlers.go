package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"atscheck/internal/ai"
)

// getHealthCheckTimeout returns the configured health check timeout
func (s *Server) getHealthCheckTimeout() time.Duration {
	return s.AppConfig.Observability.HealthCheck.Timeout
}

// healthHandler provides a comprehensive health check endpoint including AI model status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status":  "healthy",
		"service": "atscheck",
		"version": s.Version,
	}

	// The scoring pipeline is local, so AI status only matters when the
	// optional AI enrichment is enabled.
	response["ai_enabled"] = s.AppConfig.AI.Enabled

	overallHealthy := true

	if s.AppConfig.AI.Enabled {
		aiStatus := s.checkAIModelsHealth()
		response["ai_models"] = aiStatus

		circuitBreakerStatus := s.checkCircuitBreakerHealth()
		response["circuit_breakers"] = circuitBreakerStatus

		for _, modelStatus := range aiStatus {
			switch info := modelStatus.(type) {
			case *ai.ModelInfo:
				if !info.Available {
					overallHealthy = false
				}
			case map[string]any:
				if avail, ok := info["available"].(bool); ok && !avail {
					overallHealthy = false
				}
			}
			if !overallHealthy {
				break
			}
		}
	}

	// Check certificate status if certificate manager is available
	certStatus := s.checkCertificateHealth()
	if certStatus != nil {
		response["certificates"] = certStatus

		if healthy, exists := certStatus["healthy"]; exists {
			if certHealthy, ok := healthy.(bool); ok && !certHealthy {
				overallHealthy = false
			}
		}
	}

	if !overallHealthy {
		response["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// checkAIModelsHealth reports model availability for the long-lived AI
// services. Construction failures from startup are surfaced here.
func (s *Server) checkAIModelsHealth() map[string]any {
	timeout := s.getHealthCheckTimeout()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return map[string]any{
		"match":          s.modelStatus(ctx, s.matchAI, s.matchAIErr),
		"qualifications": s.modelStatus(ctx, s.qualificationsAI, s.qualificationsAIErr),
	}
}

func (s *Server) modelStatus(ctx context.Context, svc *ai.Service, initErr error) any {
	if initErr != nil {
		return map[string]any{
			"available": false,
			"error":     fmt.Sprintf("Failed to create AI service: %v", initErr),
		}
	}
	if svc == nil {
		return map[string]any{
			"available": false,
			"error":     "AI service not initialized",
		}
	}
	return svc.GetModelInfo(ctx)
}

// checkCircuitBreakerHealth reports the accumulated breaker state of the
// long-lived AI services.
func (s *Server) checkCircuitBreakerHealth() map[string]any {
	status := make(map[string]any)

	if s.matchAI != nil {
		status["match"] = s.matchAI.GetCircuitBreakerStats()
	} else {
		status["match"] = map[string]any{
			"available": false,
			"error":     fmt.Sprintf("Failed to create AI service: %v", s.matchAIErr),
		}
	}

	if s.qualificationsAI != nil {
		status["qualifications"] = s.qualificationsAI.GetCircuitBreakerStats()
	} else {
		status["qualifications"] = map[string]any{
			"available": false,
			"error":     fmt.Sprintf("Failed to create AI service: %v", s.qualificationsAIErr),
		}
	}

	return status
}

// checkCertificateHealth reports TLS certificate expiry and reload counters
// when the certificate reloader is running.
func (s *Server) checkCertificateHealth() map[string]any {
	if s.certReloader == nil {
		return nil
	}

	certStatus := make(map[string]any)

	timeToExpiry, err := s.certReloader.CheckExpiry()
	if err != nil {
		certStatus["healthy"] = false
		certStatus["error"] = fmt.Sprintf("Failed to check certificate expiry: %v", err)
		return certStatus
	}

	certStatus["time_to_expiry_hours"] = int(timeToExpiry.Hours())
	certStatus["time_to_expiry"] = timeToExpiry.String()

	switch {
	case timeToExpiry <= 0:
		certStatus["healthy"] = false
		certStatus["status"] = "expired"
		certStatus["message"] = "Certificate has expired"
	case timeToExpiry <= 24*time.Hour:
		certStatus["healthy"] = false
		certStatus["status"] = "critical"
		certStatus["message"] = "Certificate expires within 24 hours"
	case timeToExpiry <= 7*24*time.Hour:
		certStatus["healthy"] = true
		certStatus["status"] = "warning"
		certStatus["message"] = "Certificate expires within 7 days"
	default:
		certStatus["healthy"] = true
		certStatus["status"] = "ok"
		certStatus["message"] = "Certificate is valid"
	}

	certStatus["reload"] = s.certReloader.Stats()

	return certStatus
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "atscheck",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
	}

	// Add rate limiting stats if enabled
	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.Stats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	// Add configuration info
	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
