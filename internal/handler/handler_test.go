package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/mhagelund/folio/internal/model"
	"github.com/mhagelund/folio/internal/session"
	"github.com/mhagelund/folio/internal/view"
)

// ---------------------------------------------------------------------------
// Shared test helpers
// ---------------------------------------------------------------------------

func testRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	v, err := view.New()
	if err != nil {
		t.Fatalf("view.New failed: %v", err)
	}
	return v
}

func testBase(t *testing.T) *Handler {
	t.Helper()
	return New(testRenderer(t))
}

// withSession attaches a session to the request context, as the session
// middleware would.
func withSession(r *http.Request, loggedIn bool) *http.Request {
	sess := &model.Session{Token: "tok", LoggedIn: loggedIn, CSRFSecret: "secret"}
	return r.WithContext(session.WithSession(r.Context(), sess))
}

// formRequest builds a POST with an urlencoded body, bypassing the CSRF
// middleware (handlers are tested in isolation).
func formRequest(path string, vals url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Errorf("expected redirect to %q, got %q", location, got)
	}
}

// ---------------------------------------------------------------------------
// Base handler tests
// ---------------------------------------------------------------------------

func TestHome(t *testing.T) {
	h := testBase(t)
	req := withSession(httptest.NewRequest(http.MethodGet, "/", nil), false)
	rec := httptest.NewRecorder()
	h.Home(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected html content type, got %q", ct)
	}
}

func TestNotFound(t *testing.T) {
	h := testBase(t)
	req := withSession(httptest.NewRequest(http.MethodGet, "/no/such/page", nil), false)
	rec := httptest.NewRecorder()
	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid directory") {
		t.Error("expected the invalid-directory view")
	}
}

// The admin nav (logout form) only renders for an authenticated session.
func TestHome_NavFollowsLoginFlag(t *testing.T) {
	h := testBase(t)

	req := withSession(httptest.NewRequest(http.MethodGet, "/", nil), false)
	rec := httptest.NewRecorder()
	h.Home(rec, req)
	if strings.Contains(rec.Body.String(), "/logout") {
		t.Error("anonymous visitors must not see the logout form")
	}

	req = withSession(httptest.NewRequest(http.MethodGet, "/", nil), true)
	rec = httptest.NewRecorder()
	h.Home(rec, req)
	if !strings.Contains(rec.Body.String(), "/logout") {
		t.Error("expected the logout form for the admin")
	}
}
