package services

import (
	"context"
	stderrors "errors"

	"github.com/vytor/edugame/internal/errors"
	"github.com/vytor/edugame/internal/jobs"
	"github.com/vytor/edugame/internal/logger"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/registry"
)

// recordLedger queues entry after the registry commit. A failure is only
// logged; the committed game state stands.
func recordLedger(ctx context.Context, q jobs.JobQueue, entry models.LedgerEntry) {
	if q == nil {
		return
	}
	if err := q.EnqueueLedger(entry); err != nil {
		logger.FromContext(ctx).Warn("failed to queue ledger entry: kind=%s, username=%s: %v", entry.Kind, entry.Username, err)
	}
}

// lookupError maps registry failures onto application errors. Errors that
// already are application errors pass through.
func lookupError(username string, err error) error {
	if stderrors.Is(err, registry.ErrNotFound) {
		return errors.NewNotFoundError("student", username)
	}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return errors.NewInternalError(err)
}
