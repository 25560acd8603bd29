package api

import (
	"context"

	"github.com/vytor/edugame/internal/services"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	ScrapeService      services.ScrapeService
	GameService        services.GameService
	ShopService        services.ShopService
	LeaderboardService services.LeaderboardService
	StudentService     services.StudentService
	Ledger             Pinger
}
