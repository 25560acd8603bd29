package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/registry"
	"github.com/vytor/edugame/internal/services"
)

func TestRank_Ordering(t *testing.T) {
	snapshot := []registry.Entry{
		{Username: "dora", Student: models.Student{Exp: 100, Level: 10, Coins: 5}},
		{Username: "ana", Student: models.Student{Exp: 500, Level: 20, Coins: 1}},
		{Username: "carl", Student: models.Student{Exp: 100, Level: 10, Coins: 9}},
		{Username: "bob", Student: models.Student{Exp: 100, Level: 10, Coins: 9}},
		{Username: "eve", Student: models.Student{Exp: 100, Level: 11, Coins: 0}},
	}

	ranked := services.Rank(snapshot)

	got := make([]string, len(ranked))
	for i, e := range ranked {
		got[i] = e.Username
		assert.Equal(t, i+1, e.Rank)
	}
	assert.Equal(t, []string{"ana", "eve", "bob", "carl", "dora"}, got)
}

func TestLeaderboardService_Empty(t *testing.T) {
	svc := services.NewLeaderboardService(registry.New(), time.Minute)
	assert.Empty(t, svc.Leaderboard(context.Background()))
}

func TestLeaderboardService_ReflectsWrites(t *testing.T) {
	reg := registry.New()
	reg.Upsert("ana", models.Student{Exp: 10})
	svc := services.NewLeaderboardService(reg, time.Hour)

	first := svc.Leaderboard(context.Background())
	require.Len(t, first, 1)

	reg.Upsert("bob", models.Student{Exp: 20})
	second := svc.Leaderboard(context.Background())
	require.Len(t, second, 2)
	assert.Equal(t, "bob", second[0].Username)
}

func TestLeaderboardService_CallersCannotCorruptCache(t *testing.T) {
	reg := registry.New()
	reg.Upsert("ana", models.Student{Exp: 10})
	svc := services.NewLeaderboardService(reg, time.Hour)

	first := svc.Leaderboard(context.Background())
	first[0].Username = "mallory"

	assert.Equal(t, "ana", svc.Leaderboard(context.Background())[0].Username)
}

func TestLeaderboardService_NoCache(t *testing.T) {
	reg := registry.New()
	reg.Upsert("ana", models.Student{Exp: 10})
	svc := services.NewLeaderboardService(reg, 0)

	assert.Len(t, svc.Leaderboard(context.Background()), 1)
}
