package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/vytor/edugame/internal/logger"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/registry"
)

// LeaderboardService ranks every registered student
type LeaderboardService interface {
	Leaderboard(ctx context.Context) []models.LeaderboardEntry
}

type leaderboardService struct {
	registry *registry.Registry
	cache    *cache.Cache
}

// NewLeaderboardService creates a new LeaderboardService. A ttl of 0
// disables caching.
func NewLeaderboardService(reg *registry.Registry, ttl time.Duration) LeaderboardService {
	s := &leaderboardService{registry: reg}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

func leaderboardKey(version uint64) string {
	return fmt.Sprintf("leaderboard:%d", version)
}

// Leaderboard orders by exp, then level, then coins, all descending, and
// finally by username. Cached rankings are keyed by registry version, so a
// hit always reflects one point-in-time table.
func (s *leaderboardService) Leaderboard(ctx context.Context) []models.LeaderboardEntry {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		if cached, found := s.cache.Get(leaderboardKey(s.registry.Version())); found {
			log.Debug("leaderboard cache hit")
			return cloneEntries(cached.([]models.LeaderboardEntry))
		}
	}

	snapshot, version := s.registry.SnapshotVersion()
	ranked := Rank(snapshot)
	log.Debug("leaderboard computed: students=%d, version=%d", len(ranked), version)

	if s.cache != nil {
		s.cache.Set(leaderboardKey(version), ranked, cache.DefaultExpiration)
	}
	return cloneEntries(ranked)
}

// Rank sorts a registry snapshot into leaderboard order and numbers it from 1.
func Rank(snapshot []registry.Entry) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, len(snapshot))
	for i, e := range snapshot {
		entries[i] = models.LeaderboardEntry{Username: e.Username, Student: e.Student}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Exp != b.Exp {
			return a.Exp > b.Exp
		}
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		if a.Coins != b.Coins {
			return a.Coins > b.Coins
		}
		return a.Username < b.Username
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func cloneEntries(in []models.LeaderboardEntry) []models.LeaderboardEntry {
	out := make([]models.LeaderboardEntry, len(in))
	copy(out, in)
	return out
}
