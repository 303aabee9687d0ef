package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"time"

	"github.com/mhagelund/folio/internal/model"
	"github.com/mhagelund/folio/internal/repository"
)

// SessionDuration はセッションの有効期限
const SessionDuration = 7 * 24 * time.Hour

// SessionService manages DB-backed sessions.
// Implements session.Store.
type SessionService struct {
	repo repository.SessionRepository
}

// NewSessionService creates a SessionService.
func NewSessionService(repo repository.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// generateToken returns an opaque random token (also used for CSRF secrets).
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Ensure returns the session for the given token, creating a fresh anonymous
// one when the token is empty, unknown, or expired. The second return value
// reports whether a new session (and hence a new cookie) was created.
func (s *SessionService) Ensure(ctx context.Context, token string) (*model.Session, bool, error) {
	if token != "" {
		sess, err := s.repo.FindByToken(ctx, token)
		if err == nil {
			if !sess.Expired(time.Now()) {
				return sess, false, nil
			}
			if err := s.repo.DeleteByToken(ctx, token); err != nil {
				slog.Warn("expired session cleanup failed", "error", err)
			}
		} else if err != repository.ErrNotFound {
			return nil, false, err
		}
	}

	newToken, err := generateToken()
	if err != nil {
		return nil, false, err
	}
	secret, err := generateToken()
	if err != nil {
		return nil, false, err
	}

	now := time.Now()
	sess := &model.Session{
		Token:      newToken,
		LoggedIn:   false,
		CSRFSecret: secret,
		CreatedAt:  now,
		ExpiresAt:  now.Add(SessionDuration),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, false, err
	}
	return sess, true, nil
}

// SetLoggedIn flips the login flag on an existing session (login / logout).
func (s *SessionService) SetLoggedIn(ctx context.Context, token string, loggedIn bool) error {
	return s.repo.SetLoggedIn(ctx, token, loggedIn)
}
