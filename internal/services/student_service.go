package services

import (
	"context"
	"strings"

	"github.com/vytor/edugame/internal/errors"
	"github.com/vytor/edugame/internal/logger"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/registry"
	"github.com/vytor/edugame/internal/repository"
)

const maxHistoryLimit = 200

// StudentService answers balance and history lookups
type StudentService interface {
	Balance(ctx context.Context, username string) (*models.Student, error)
	History(ctx context.Context, username string, limit int) (*models.LedgerPage, error)
}

type studentService struct {
	registry   *registry.Registry
	ledgerRepo repository.LedgerRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(reg *registry.Registry, ledgerRepo repository.LedgerRepository) StudentService {
	return &studentService{registry: reg, ledgerRepo: ledgerRepo}
}

func (s *studentService) Balance(ctx context.Context, username string) (*models.Student, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting balance: username=%s", username)

	student, err := s.registry.Get(username)
	if err != nil {
		return nil, lookupError(username, err)
	}
	return &student, nil
}

func (s *studentService) History(ctx context.Context, username string, limit int) (*models.LedgerPage, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting history: username=%s, limit=%d", username, limit)

	if strings.TrimSpace(username) == "" {
		return nil, errors.NewValidationError("username", "cannot be empty")
	}
	if _, err := s.registry.Get(username); err != nil {
		return nil, lookupError(username, err)
	}
	if limit < 0 || limit > maxHistoryLimit {
		return nil, errors.NewValidationError("limit", "must be between 0 and 200")
	}

	entries, err := s.ledgerRepo.List(ctx, models.LedgerFilter{Username: username, Limit: limit})
	if err != nil {
		log.Error("failed to list ledger entries: %v", err)
		return nil, errors.NewInternalError(err)
	}
	total, err := s.ledgerRepo.Count(ctx, models.LedgerFilter{Username: username})
	if err != nil {
		log.Error("failed to count ledger entries: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if entries == nil {
		entries = []models.LedgerEntry{}
	}
	return &models.LedgerPage{Entries: entries, Total: total}, nil
}
