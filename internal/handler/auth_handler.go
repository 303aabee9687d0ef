package handler

import (
	"log/slog"
	"net/http"

	"github.com/mhagelund/folio/internal/service"
	"github.com/mhagelund/folio/internal/session"
)

// AuthHandler serves the admin login page, login, and logout.
type AuthHandler struct {
	*Handler
	auth     service.AuthService
	sessions session.Store
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(h *Handler, auth service.AuthService, sessions session.Store) *AuthHandler {
	return &AuthHandler{Handler: h, auth: auth, sessions: sessions}
}

type loginPage struct {
	basePage
	Error bool
}

// LoginPage handles GET /admin.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, "login", loginPage{basePage: h.page(r)})
}

// Login handles POST /admin. Failure re-renders the login page with a single
// generic error; it never says which field was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if !h.auth.Login(username, password) {
		h.view.Render(w, "login", loginPage{basePage: h.page(r), Error: true})
		return
	}

	sess, ok := session.FromContext(r.Context())
	if !ok || sess.Token == "" {
		// Session store was unavailable when the request came in; nothing to
		// attach the login to.
		h.view.Render(w, "login", loginPage{basePage: h.page(r), Error: true})
		return
	}
	if err := h.sessions.SetLoggedIn(r.Context(), sess.Token, true); err != nil {
		slog.Error("login flag update failed", "error", err)
		h.view.Render(w, "login", loginPage{basePage: h.page(r), Error: true})
		return
	}
	redirect(w, r, "/")
}

// Logout handles POST /logout. Unconditionally clears the login flag.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok && sess.Token != "" {
		if err := h.sessions.SetLoggedIn(r.Context(), sess.Token, false); err != nil {
			slog.Error("logout flag update failed", "error", err)
		}
	}
	redirect(w, r, "/")
}
