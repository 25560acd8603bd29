package api

import (
	"net/http"

	"github.com/vytor/edugame/internal/logger"
)

// handleHealth returns a liveness probe - always returns 200 OK.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReady returns 200 once the ledger database answers a ping.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	if s.Ledger != nil {
		if err := s.Ledger.PingContext(ctx); err != nil {
			log.Warn("readiness check failed - ledger: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Ledger unavailable"))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}
