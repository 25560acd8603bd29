package jobs

import (
	"github.com/vytor/edugame/internal/metrics"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/repository"
	"github.com/vytor/edugame/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	ledgerPool *worker.Pool
	ledgerRepo repository.LedgerRepository
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(ledgerPool *worker.Pool, ledgerRepo repository.LedgerRepository) JobQueue {
	return &WorkerQueue{
		ledgerPool: ledgerPool,
		ledgerRepo: ledgerRepo,
	}
}

func (q *WorkerQueue) EnqueueLedger(entry models.LedgerEntry) error {
	err := q.ledgerPool.Submit(&worker.RecordLedgerJob{
		Repo:  q.ledgerRepo,
		Entry: entry,
	})
	if err != nil {
		metrics.LedgerWriteFailures.Inc()
	}
	return err
}
