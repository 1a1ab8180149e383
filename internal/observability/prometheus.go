package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// PrometheusConfig holds the scrape endpoint settings.
type PrometheusConfig struct {
	Enabled  bool
	Endpoint string
	Port     string
}

// newPrometheusReader bridges OTel metrics into the default Prometheus
// registry and serves the scrape endpoint on its own port, separate from
// the API server.
func (om *ObservabilityManager) newPrometheusReader() (sdkmetric.Reader, error) {
	exporter, err := otelprom.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(om.config.Prometheus.Endpoint, promhttp.Handler())
	om.prometheusServer = mux

	addr := ":" + om.config.Prometheus.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	fmt.Printf("Prometheus metrics available at http://localhost%s%s\n", addr, om.config.Prometheus.Endpoint)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Prometheus server error: %v\n", err)
		}
	}()

	return exporter, nil
}
