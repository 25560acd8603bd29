package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vytor/edugame/internal/logger"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const defaultLedgerLimit = 50

type ledgerRepository struct {
	db *sql.DB
}

// NewLedgerRepository creates a new LedgerRepository implementation
func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Insert(ctx context.Context, entry models.LedgerEntry) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("ledger_repo")

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	log.Debug("inserting ledger entry: id=%s, username=%s, kind=%s, delta=%d", entry.ID, entry.Username, entry.Kind, entry.Delta)

	query, args, err := sqlBuilder.Insert("ledger_entries").
		Columns("id", "username", "kind", "delta", "balance", "detail", "created_at").
		Values(entry.ID, entry.Username, string(entry.Kind), entry.Delta, int64(entry.Balance), entry.Detail, entry.CreatedAt).
		ToSql()
	if err != nil {
		log.Error("failed to build insert query: %v", err)
		return "", err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to insert ledger entry: %v", err)
		return "", err
	}
	return entry.ID, nil
}

func (r *ledgerRepository) List(ctx context.Context, filter models.LedgerFilter) ([]models.LedgerEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("ledger_repo")

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLedgerLimit
	}

	query := applyLedgerFilter(
		sqlBuilder.Select("id", "username", "kind", "delta", "balance", "detail", "created_at").From("ledger_entries"),
		filter,
	).OrderBy("seq DESC").Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build list query: %v", err)
		return nil, err
	}
	log.Debug("listing ledger entries: username=%s, kind=%s, limit=%d", filter.Username, filter.Kind, limit)

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list ledger entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		var (
			e       models.LedgerEntry
			kind    string
			balance int64
		)
		if err := rows.Scan(&e.ID, &e.Username, &kind, &e.Delta, &balance, &e.Detail, &e.CreatedAt); err != nil {
			log.Error("failed to scan ledger row: %v", err)
			return nil, err
		}
		e.Kind = models.LedgerKind(kind)
		e.Balance = uint64(balance)
		entries = append(entries, e)
	}

	log.Debug("found %d ledger entries", len(entries))
	return entries, rows.Err()
}

func (r *ledgerRepository) Count(ctx context.Context, filter models.LedgerFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("ledger_repo")

	sqlStr, args, err := applyLedgerFilter(sqlBuilder.Select("COUNT(*)").From("ledger_entries"), filter).ToSql()
	if err != nil {
		log.Error("failed to build count query: %v", err)
		return 0, err
	}

	var n int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&n); err != nil {
		log.Error("failed to count ledger entries: %v", err)
		return 0, err
	}
	return n, nil
}

func applyLedgerFilter(q squirrel.SelectBuilder, filter models.LedgerFilter) squirrel.SelectBuilder {
	if filter.Username != "" {
		q = q.Where(squirrel.Eq{"username": filter.Username})
	}
	if filter.Kind != "" {
		q = q.Where(squirrel.Eq{"kind": string(filter.Kind)})
	}
	return q
}
