package repository

import (
	"context"

	"github.com/vytor/edugame/internal/models"
)

// LedgerRepository handles activity ledger data access
type LedgerRepository interface {
	Insert(ctx context.Context, entry models.LedgerEntry) (string, error)
	List(ctx context.Context, filter models.LedgerFilter) ([]models.LedgerEntry, error)
	Count(ctx context.Context, filter models.LedgerFilter) (int, error)
}
