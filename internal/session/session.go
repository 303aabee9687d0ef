// Package session carries the server-side session through a request: an
// opaque cookie token backed by a DB row, a per-session CSRF secret, and the
// single login flag the rest of the application gates on.
package session

import (
	"context"
	"net/http"
	"os"

	"github.com/mhagelund/folio/internal/model"
)

const cookieName = "folio_session"

// CookieName はセッションクッキー名
func CookieName() string {
	return cookieName
}

// Store is what the middleware needs from the session service.
// Implemented by service.SessionService.
type Store interface {
	Ensure(ctx context.Context, token string) (*model.Session, bool, error)
	SetLoggedIn(ctx context.Context, token string, loggedIn bool) error
}

type contextKey string

const sessionKey contextKey = "session"

// FromContext は context からセッションを取得する
func FromContext(ctx context.Context) (*model.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*model.Session)
	return s, ok
}

// WithSession は context にセッションをセットする
func WithSession(ctx context.Context, s *model.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// IsLoggedIn reports whether the request carries an authenticated session.
func IsLoggedIn(ctx context.Context) bool {
	s, ok := FromContext(ctx)
	return ok && s.LoggedIn
}

// SetCookie writes the session cookie for the given token.
func SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   os.Getenv("ENV") == "production",
	})
}
