package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(metricsMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Post("/scrape", s.handleScrape)
	r.Get("/balance/{username}", s.handleBalance)
	r.Get("/balance/{username}/history", s.handleHistory)
	r.Get("/leaderboard", s.handleLeaderboard)
	r.Post("/play-coinflip", s.handleCoinFlip)
	r.Post("/play-slots", s.handleSlots)
	r.Get("/shop/items", s.handleShopItems)
	r.Post("/purchase", s.handlePurchase)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())
	return r
}
