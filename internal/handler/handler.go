package handler

import (
	"net/http"
	"strconv"

	"github.com/mhagelund/folio/internal/session"
	"github.com/mhagelund/folio/internal/view"
)

// User-facing messages. Store and upload failures are always generic; internal
// detail goes to the log, never the page.
const (
	msgStoreError  = "An error occurred, try again"
	msgUploadError = "An error occurred, try again"
	msgNotLoggedIn = "You have to be logged in for this feature"
	msgSelectImage = "You need to select an image"
)

// basePage carries the fields every page template needs. Page-specific view
// models embed it.
type basePage struct {
	IsLoggedIn bool
	CSRFToken  string
}

// Handler is the shared base for all page handlers: it owns the renderer and
// the handlers for pages without any data behind them.
type Handler struct {
	view *view.Renderer
}

// New creates the base Handler.
func New(v *view.Renderer) *Handler {
	return &Handler{view: v}
}

// page builds the common view model from the request's session.
func (h *Handler) page(r *http.Request) basePage {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		return basePage{}
	}
	return basePage{IsLoggedIn: sess.LoggedIn, CSRFToken: sess.CSRFSecret}
}

// Home handles GET /.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, "start", h.page(r))
}

// About handles GET /about.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, "about", h.page(r))
}

// NotFound handles everything no other route matched.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.view.RenderStatus(w, http.StatusNotFound, "invalid-directory", h.page(r))
}

// redirect sends a 303 so a POST is never resubmitted on refresh.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// formID parses the "id" form field. ok is false for missing or non-numeric
// values; callers treat that as a silent no-op, matching the update/delete
// semantics for unknown ids.
func formID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PostFormValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
