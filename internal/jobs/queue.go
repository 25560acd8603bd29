package jobs

import "github.com/vytor/edugame/internal/models"

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueLedger(entry models.LedgerEntry) error
}
