package server

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Status is reported by /healthz.
type Status struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id"`
}

// NewHTTPServer serves /healthz and /metrics for a running drill.
func NewHTTPServer(addr string, logger zerolog.Logger, gatherer prometheus.Gatherer, sessionID string) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(Status{Status: "ok", SessionID: sessionID}); err != nil {
			logger.Warn().Err(err).Msg("write health response")
		}
	})

	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}
