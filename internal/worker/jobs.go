package worker

import (
	"context"

	"github.com/vytor/edugame/internal/logger"
	"github.com/vytor/edugame/internal/metrics"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/repository"
)

// RecordLedgerJob stores one coin movement after the registry has committed it.
type RecordLedgerJob struct {
	Repo  repository.LedgerRepository
	Entry models.LedgerEntry
}

func (j *RecordLedgerJob) Name() string { return "record_ledger" }

func (j *RecordLedgerJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"username": j.Entry.Username,
		"kind":     j.Entry.Kind,
	})

	id, err := j.Repo.Insert(ctx, j.Entry)
	if err != nil {
		metrics.LedgerWriteFailures.Inc()
		log.Error("failed to record ledger entry: %v", err)
		return err
	}
	log.Debug("ledger entry recorded: id=%s, delta=%d, balance=%d", id, j.Entry.Delta, j.Entry.Balance)
	return nil
}
