package portal

import (
	"context"

	"github.com/vytor/edugame/internal/models"
)

// ClientInterface opens authenticated portal sessions.
type ClientInterface interface {
	Establish(ctx context.Context, creds models.Credentials) (SessionInterface, error)
}

// SessionInterface fetches course pages with an authenticated session.
type SessionInterface interface {
	FetchCourse(ctx context.Context, code string) (models.RawCoursePage, error)
}

// Ensure Client and Session implement the interfaces
var (
	_ ClientInterface  = (*Client)(nil)
	_ SessionInterface = (*Session)(nil)
)
