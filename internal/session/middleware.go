package session

import (
	"crypto/hmac"
	"log/slog"
	"mime"
	"net/http"

	"github.com/mhagelund/folio/internal/model"
)

// CSRFFieldName is the hidden form field carrying the anti-forgery token.
const CSRFFieldName = "csrfToken"

// Middleware loads the session for the request cookie, lazily creating an
// anonymous one, and stores it in the request context. If the session store
// itself is down the request proceeds with an ephemeral logged-out session so
// read-only pages keep working.
func Middleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if c, err := r.Cookie(cookieName); err == nil {
				token = c.Value
			}

			sess, created, err := store.Ensure(r.Context(), token)
			if err != nil {
				slog.Error("session lookup failed", "error", err)
				sess = &model.Session{}
			} else if created {
				SetCookie(w, sess.Token)
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// CSRF rejects form POSTs whose hidden token does not match the per-session
// secret. Multipart bodies (the create-project upload) are exempt; that route
// is login-gated and the body is parsed by the handler itself.
func CSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && !isMultipart(r) {
			sess, ok := FromContext(r.Context())
			if !ok || sess.CSRFSecret == "" {
				http.Error(w, "invalid csrf token", http.StatusForbidden)
				return
			}
			if err := r.ParseForm(); err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			token := r.PostFormValue(CSRFFieldName)
			if !hmac.Equal([]byte(token), []byte(sess.CSRFSecret)) {
				http.Error(w, "invalid csrf token", http.StatusForbidden)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}
