package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saransh1220/rawconvert/internal/gateway/middleware"
	conversion_http "github.com/saransh1220/rawconvert/internal/modules/conversion/interfaces/http"
)

// RouterConfig holds the handlers needed for routing
type RouterConfig struct {
	ConversionHandler *conversion_http.ConversionHandler
}

// SetupRoutes creates and configures all routes
func SetupRoutes(config RouterConfig) http.Handler {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /invoke", config.ConversionHandler.Invoke)

	return middleware.PrometheusMiddleware(mux)
}
