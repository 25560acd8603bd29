package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vytor/edugame/internal/errors"
	"github.com/vytor/edugame/internal/jobs"
	"github.com/vytor/edugame/internal/logger"
	"github.com/vytor/edugame/internal/metrics"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/registry"
)

const (
	Heads = "heads"
	Tails = "tails"

	WinThreeOfAKind = "3 Iguales"
	WinPair         = "2 Iguales"
)

// SlotSymbols is the reel every slot draws from.
var SlotSymbols = []string{
	"IHatePyhisics",
	"IDontLikeAlgebra",
	"ILikeCounterStrike",
	"IHateVisualStudio",
	"ILikeSublimeText",
	"ILikeCaffeine",
	"PythonIsTrash",
	"NobodyWillReadThisxD",
}

// Randomizer returns a uniform integer in [0, n).
type Randomizer interface {
	IntN(n int) int
}

type mathRandomizer struct{}

func (mathRandomizer) IntN(n int) int { return rand.Intn(n) }

// DefaultRandomizer draws from math/rand's global source.
func DefaultRandomizer() Randomizer { return mathRandomizer{} }

// GameService runs the coin flip and slot machine against student balances
type GameService interface {
	CoinFlip(ctx context.Context, username string, bet uint64, choice string) (*models.CoinFlipResult, error)
	Slots(ctx context.Context, username string, amount uint64) (*models.SlotsResult, error)
}

type gameService struct {
	registry *registry.Registry
	rng      Randomizer
	jobQueue jobs.JobQueue
}

// NewGameService creates a new GameService
func NewGameService(reg *registry.Registry, rng Randomizer, jobQueue jobs.JobQueue) GameService {
	if rng == nil {
		rng = DefaultRandomizer()
	}
	return &gameService{registry: reg, rng: rng, jobQueue: jobQueue}
}

func (s *gameService) CoinFlip(ctx context.Context, username string, bet uint64, choice string) (*models.CoinFlipResult, error) {
	log := logger.FromContext(ctx).WithField("username", username)
	log.Debug("coin flip: bet=%d, choice=%s", bet, choice)

	choice = strings.ToLower(strings.TrimSpace(choice))
	if choice != Heads && choice != Tails {
		return nil, errors.NewValidationError("choice", "must be heads or tails")
	}
	if bet == 0 {
		return nil, errors.NewValidationError("bet_amount", "must be at least 1")
	}

	var result models.CoinFlipResult
	student, err := s.registry.Mutate(username, func(st *models.Student) error {
		if st.Coins < bet {
			return errors.NewInsufficientFundsError(st.Coins, bet)
		}

		result.Result = Tails
		if s.rng.IntN(2) == 0 {
			result.Result = Heads
		}
		result.Won = result.Result == choice

		if result.Won {
			result.CoinsWon = bet * 2
			st.Coins += result.CoinsWon
		} else {
			result.CoinsLost = bet
			st.Coins -= bet
		}
		return nil
	})
	if err != nil {
		metrics.GamesTotal.WithLabelValues("coinflip", "refused").Inc()
		log.Debug("coin flip refused: %v", err)
		return nil, lookupError(username, err)
	}
	result.NewBalance = student.Coins

	outcome := "lost"
	delta := -int64(bet)
	if result.Won {
		outcome = "won"
		delta = int64(result.CoinsWon)
	}
	metrics.GamesTotal.WithLabelValues("coinflip", outcome).Inc()
	metrics.CoinsWageredTotal.WithLabelValues("coinflip").Add(float64(bet))

	recordLedger(ctx, s.jobQueue, models.LedgerEntry{
		Username: username,
		Kind:     models.LedgerCoinFlip,
		Delta:    delta,
		Balance:  student.Coins,
		Detail:   fmt.Sprintf("bet=%d choice=%s result=%s", bet, choice, result.Result),
	})

	log.Info("coin flip %s: bet=%d, balance=%d", outcome, bet, result.NewBalance)
	return &result, nil
}

func (s *gameService) Slots(ctx context.Context, username string, amount uint64) (*models.SlotsResult, error) {
	log := logger.FromContext(ctx).WithField("username", username)
	log.Debug("slots: amount=%d", amount)

	if amount == 0 {
		return nil, errors.NewValidationError("amount", "must be at least 1")
	}

	var result models.SlotsResult
	student, err := s.registry.Mutate(username, func(st *models.Student) error {
		if st.Coins < amount {
			return errors.NewInsufficientFundsError(st.Coins, amount)
		}

		symbols := make([]string, 3)
		for i := range symbols {
			symbols[i] = SlotSymbols[s.rng.IntN(len(SlotSymbols))]
		}
		result = scoreSpin(symbols, amount)

		st.Coins = st.Coins + result.Payout - amount
		return nil
	})
	if err != nil {
		metrics.GamesTotal.WithLabelValues("slots", "refused").Inc()
		log.Debug("slots refused: %v", err)
		return nil, lookupError(username, err)
	}
	result.NewBalance = student.Coins

	outcome := "lost"
	if result.Won {
		outcome = "won"
	}
	metrics.GamesTotal.WithLabelValues("slots", outcome).Inc()
	metrics.CoinsWageredTotal.WithLabelValues("slots").Add(float64(amount))

	recordLedger(ctx, s.jobQueue, models.LedgerEntry{
		Username: username,
		Kind:     models.LedgerSlots,
		Delta:    int64(result.Payout) - int64(amount),
		Balance:  student.Coins,
		Detail:   strings.Join(result.Symbols, ","),
	})

	log.Info("slots %s: amount=%d, payout=%d, balance=%d", outcome, amount, result.Payout, result.NewBalance)
	return &result, nil
}

// scoreSpin pays 10x for three equal symbols and 3x for any pair.
func scoreSpin(symbols []string, amount uint64) models.SlotsResult {
	r := models.SlotsResult{Symbols: symbols, AmountWagered: amount}
	a, b, c := symbols[0], symbols[1], symbols[2]
	switch {
	case a == b && b == c:
		r.Won, r.Payout, r.WinType = true, amount*10, WinThreeOfAKind
	case a == b || b == c || a == c:
		r.Won, r.Payout, r.WinType = true, amount*3, WinPair
	}
	return r
}
