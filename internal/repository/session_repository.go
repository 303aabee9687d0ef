package repository

import (
	"context"

	"github.com/mhagelund/folio/internal/model"
)

// SessionRepository handles persistence for server-side sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	FindByToken(ctx context.Context, token string) (*model.Session, error)
	SetLoggedIn(ctx context.Context, token string, loggedIn bool) error
	DeleteByToken(ctx context.Context, token string) error
}
