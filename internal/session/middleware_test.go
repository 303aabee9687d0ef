package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mhagelund/folio/internal/model"
)

// ---------------------------------------------------------------------------
// mockStore
// ---------------------------------------------------------------------------

type mockStore struct {
	ensureFunc func(ctx context.Context, token string) (*model.Session, bool, error)
}

func (m *mockStore) Ensure(ctx context.Context, token string) (*model.Session, bool, error) {
	if m.ensureFunc != nil {
		return m.ensureFunc(ctx, token)
	}
	return &model.Session{Token: "tok", CSRFSecret: "secret"}, false, nil
}

func (m *mockStore) SetLoggedIn(ctx context.Context, token string, loggedIn bool) error {
	return nil
}

func testSession() *model.Session {
	return &model.Session{
		Token:      "tok",
		CSRFSecret: "secret",
		CreatedAt:  time.Now(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

// ---------------------------------------------------------------------------
// Middleware tests
// ---------------------------------------------------------------------------

func TestMiddleware_SetsCookieForNewSession(t *testing.T) {
	store := &mockStore{
		ensureFunc: func(ctx context.Context, token string) (*model.Session, bool, error) {
			return testSession(), true, nil
		},
	}

	var got *model.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	Middleware(store)(next).ServeHTTP(rec, req)

	if got == nil || got.Token != "tok" {
		t.Fatalf("expected session in context, got %+v", got)
	}

	cookies := rec.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == CookieName() && c.Value == "tok" {
			found = true
			if !c.HttpOnly {
				t.Error("session cookie must be HttpOnly")
			}
		}
	}
	if !found {
		t.Error("expected session cookie to be set")
	}
}

func TestMiddleware_NoCookieForExistingSession(t *testing.T) {
	store := &mockStore{
		ensureFunc: func(ctx context.Context, token string) (*model.Session, bool, error) {
			if token != "tok" {
				t.Errorf("expected cookie token to be passed through, got %q", token)
			}
			return testSession(), false, nil
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName(), Value: "tok"})
	rec := httptest.NewRecorder()
	Middleware(store)(next).ServeHTTP(rec, req)

	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no Set-Cookie for an existing session")
	}
}

// A store failure yields an ephemeral logged-out session, not a 500.
func TestMiddleware_StoreDown(t *testing.T) {
	store := &mockStore{
		ensureFunc: func(ctx context.Context, token string) (*model.Session, bool, error) {
			return nil, false, context.DeadlineExceeded
		},
	}

	var got *model.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	Middleware(store)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected request to proceed, got %d", rec.Code)
	}
	if got == nil || got.LoggedIn {
		t.Errorf("expected an ephemeral logged-out session, got %+v", got)
	}
}

// ---------------------------------------------------------------------------
// CSRF tests
// ---------------------------------------------------------------------------

func csrfRequest(t *testing.T, token string) *http.Request {
	t.Helper()
	body := url.Values{}
	if token != "" {
		body.Set(CSRFFieldName, token)
	}
	req := httptest.NewRequest(http.MethodPost, "/faq", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req.WithContext(WithSession(req.Context(), testSession()))
}

func TestCSRF_ValidTokenPasses(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	CSRF(next).ServeHTTP(rec, csrfRequest(t, "secret"))

	if !called {
		t.Error("expected handler to run with a valid token")
	}
}

func TestCSRF_BadTokenRejected(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	CSRF(next).ServeHTTP(rec, csrfRequest(t, "forged"))

	if called {
		t.Error("handler must not run with a forged token")
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestCSRF_MissingTokenRejected(t *testing.T) {
	rec := httptest.NewRecorder()
	CSRF(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(rec, csrfRequest(t, ""))

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestCSRF_GetExempt(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/faq", nil)
	req = req.WithContext(WithSession(req.Context(), testSession()))
	rec := httptest.NewRecorder()
	CSRF(next).ServeHTTP(rec, req)

	if !called {
		t.Error("GET requests must pass without a token")
	}
}

func TestCSRF_MultipartExempt(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/create-project", strings.NewReader("--x--"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	req = req.WithContext(WithSession(req.Context(), testSession()))
	rec := httptest.NewRecorder()
	CSRF(next).ServeHTTP(rec, req)

	if !called {
		t.Error("multipart POSTs are handled by the upload route itself")
	}
}

func TestIsLoggedIn(t *testing.T) {
	ctx := context.Background()
	if IsLoggedIn(ctx) {
		t.Error("no session in context must read as logged out")
	}
	ctx = WithSession(ctx, &model.Session{LoggedIn: false})
	if IsLoggedIn(ctx) {
		t.Error("anonymous session must read as logged out")
	}
	ctx = WithSession(ctx, &model.Session{LoggedIn: true})
	if !IsLoggedIn(ctx) {
		t.Error("authenticated session must read as logged in")
	}
}
