package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/vytor/edugame/internal/models"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueLedger(entry models.LedgerEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}
