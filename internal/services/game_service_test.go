package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/edugame/internal/errors"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/registry"
	"github.com/vytor/edugame/internal/services"
	"github.com/vytor/edugame/internal/testutil/mocks"
)

// seqRandomizer replays a fixed sequence of draws.
type seqRandomizer struct {
	mu    sync.Mutex
	draws []int
}

func (r *seqRandomizer) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.draws[0] % n
	r.draws = append(r.draws[1:], r.draws[0])
	return v
}

func seeded(username string, coins uint64) *registry.Registry {
	reg := registry.New()
	reg.Upsert(username, models.Student{Name: username, Coins: coins, Level: 1})
	return reg
}

func TestGameService_CoinFlip_Win(t *testing.T) {
	reg := seeded("ana", 100)
	queue := new(mocks.MockJobQueue)
	queue.On("EnqueueLedger", mock.MatchedBy(func(e models.LedgerEntry) bool {
		return e.Kind == models.LedgerCoinFlip && e.Delta == 20 && e.Balance == 120
	})).Return(nil)
	svc := services.NewGameService(reg, &seqRandomizer{draws: []int{0}}, queue)

	result, err := svc.CoinFlip(context.Background(), "ana", 10, "HEADS")
	require.NoError(t, err)

	assert.Equal(t, services.Heads, result.Result)
	assert.True(t, result.Won)
	assert.Equal(t, uint64(20), result.CoinsWon)
	assert.Equal(t, uint64(0), result.CoinsLost)
	assert.Equal(t, uint64(120), result.NewBalance)
	queue.AssertExpectations(t)
}

func TestGameService_CoinFlip_Loss(t *testing.T) {
	reg := seeded("ana", 100)
	svc := services.NewGameService(reg, &seqRandomizer{draws: []int{1}}, nil)

	result, err := svc.CoinFlip(context.Background(), "ana", 30, "heads")
	require.NoError(t, err)

	assert.Equal(t, services.Tails, result.Result)
	assert.False(t, result.Won)
	assert.Equal(t, uint64(30), result.CoinsLost)
	assert.Equal(t, uint64(70), result.NewBalance)

	stored, _ := reg.Get("ana")
	assert.Equal(t, uint64(70), stored.Coins)
}

func TestGameService_CoinFlip_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		username string
		bet      uint64
		choice   string
		wantCode string
	}{
		{name: "bad choice", username: "ana", bet: 10, choice: "edge", wantCode: errors.ErrCodeValidation},
		{name: "zero bet", username: "ana", bet: 0, choice: "heads", wantCode: errors.ErrCodeValidation},
		{name: "over balance", username: "ana", bet: 101, choice: "heads", wantCode: errors.ErrCodeInsufficientFunds},
		{name: "unknown user", username: "bob", bet: 1, choice: "heads", wantCode: errors.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := seeded("ana", 100)
			svc := services.NewGameService(reg, &seqRandomizer{draws: []int{0}}, nil)

			_, err := svc.CoinFlip(context.Background(), tt.username, tt.bet, tt.choice)
			assert.True(t, errors.HasCode(err, tt.wantCode), "got %v", err)

			stored, _ := reg.Get("ana")
			assert.Equal(t, uint64(100), stored.Coins)
		})
	}
}

func TestGameService_Slots(t *testing.T) {
	tests := []struct {
		name        string
		draws       []int
		wantWon     bool
		wantPayout  uint64
		wantWinType string
		wantBalance uint64
	}{
		{name: "three of a kind", draws: []int{2, 2, 2}, wantWon: true, wantPayout: 100, wantWinType: services.WinThreeOfAKind, wantBalance: 190},
		{name: "pair", draws: []int{1, 4, 1}, wantWon: true, wantPayout: 30, wantWinType: services.WinPair, wantBalance: 120},
		{name: "no match", draws: []int{0, 1, 2}, wantBalance: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := seeded("ana", 100)
			svc := services.NewGameService(reg, &seqRandomizer{draws: tt.draws}, nil)

			result, err := svc.Slots(context.Background(), "ana", 10)
			require.NoError(t, err)

			assert.Len(t, result.Symbols, 3)
			assert.Equal(t, tt.wantWon, result.Won)
			assert.Equal(t, tt.wantPayout, result.Payout)
			assert.Equal(t, tt.wantWinType, result.WinType)
			assert.Equal(t, uint64(10), result.AmountWagered)
			assert.Equal(t, tt.wantBalance, result.NewBalance)
		})
	}
}

func TestGameService_Slots_InsufficientFunds(t *testing.T) {
	reg := seeded("ana", 5)
	svc := services.NewGameService(reg, &seqRandomizer{draws: []int{0}}, nil)

	_, err := svc.Slots(context.Background(), "ana", 6)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInsufficientFunds))

	_, err = svc.Slots(context.Background(), "ana", 0)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestGameService_ConcurrentBetsNeverOverdraw(t *testing.T) {
	reg := seeded("ana", 100)
	svc := services.NewGameService(reg, &seqRandomizer{draws: []int{1}}, nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.CoinFlip(context.Background(), "ana", 10, "heads"); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	stored, err := reg.Get("ana")
	require.NoError(t, err)
	assert.Equal(t, 10, accepted)
	assert.Equal(t, uint64(0), stored.Coins)
}

func TestGameService_ConcurrentWinsAndLossesSettleExactly(t *testing.T) {
	const start, bet, players = uint64(10000), uint64(10), 100
	reg := seeded("ana", start)
	svc := services.NewGameService(reg, &seqRandomizer{draws: []int{0, 1}}, nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var won, lost uint64
	wins := 0
	for i := 0; i < players; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.CoinFlip(context.Background(), "ana", bet, "heads")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			won += result.CoinsWon
			lost += result.CoinsLost
			if result.Won {
				wins++
			}
		}()
	}
	wg.Wait()

	stored, err := reg.Get("ana")
	require.NoError(t, err)
	assert.Equal(t, players/2, wins)
	assert.Equal(t, start+won-lost, stored.Coins)
	assert.Equal(t, start+uint64(players/2)*2*bet-uint64(players/2)*bet, stored.Coins)
}
