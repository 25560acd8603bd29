package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/portal"
)

// MockPortalClient is a mock implementation of portal.ClientInterface
type MockPortalClient struct {
	mock.Mock
}

func (m *MockPortalClient) Establish(ctx context.Context, creds models.Credentials) (portal.SessionInterface, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(portal.SessionInterface), args.Error(1)
}

// MockPortalSession is a mock implementation of portal.SessionInterface
type MockPortalSession struct {
	mock.Mock
}

func (m *MockPortalSession) FetchCourse(ctx context.Context, code string) (models.RawCoursePage, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(models.RawCoursePage), args.Error(1)
}
