package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/edugame/internal/logger"
	"github.com/vytor/edugame/internal/models"
)

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	username, err := formIdentity(r, "username")
	if err != nil {
		handleError(w, r, err)
		return
	}
	// Never trimmed and never logged.
	password := r.FormValue("password")

	ctx := logger.NewContext(r.Context(), logger.FromContext(r.Context()).WithField("username", username))
	result, err := s.ScrapeService.Scrape(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	student, err := s.StudentService.Balance(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, student)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := formInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}
	page, err := s.StudentService.History(r.Context(), chi.URLParam(r, "username"), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, page)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.LeaderboardService.Leaderboard(r.Context()))
}

func (s *Server) handleCoinFlip(w http.ResponseWriter, r *http.Request) {
	username, err := formIdentity(r, "username")
	if err != nil {
		handleError(w, r, err)
		return
	}
	bet, err := formUint(r, "bet_amount")
	if err != nil {
		handleError(w, r, err)
		return
	}
	choice, err := formString(r, "choice")
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.GameService.CoinFlip(r.Context(), username, bet, choice)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	username, err := formIdentity(r, "username")
	if err != nil {
		handleError(w, r, err)
		return
	}
	amount, err := formUint(r, "amount")
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.GameService.Slots(r.Context(), username, amount)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleShopItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.ShopService.Items(r.Context()))
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	username, err := formIdentity(r, "username")
	if err != nil {
		handleError(w, r, err)
		return
	}
	item, err := formString(r, "item_type")
	if err != nil {
		handleError(w, r, err)
		return
	}
	quantity, err := formInt(r, "quantity", 1)
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.ShopService.Purchase(r.Context(), username, item, quantity)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
