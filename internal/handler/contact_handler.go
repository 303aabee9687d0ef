package handler

import (
	"log/slog"
	"net/http"

	"github.com/mhagelund/folio/internal/form"
	"github.com/mhagelund/folio/internal/model"
	"github.com/mhagelund/folio/internal/service"
	"github.com/mhagelund/folio/internal/session"
)

// ContactHandler serves the contact page, visitor submissions, and the admin
// reply/delete actions.
type ContactHandler struct {
	*Handler
	contact service.ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(h *Handler, contact service.ContactService) *ContactHandler {
	return &ContactHandler{Handler: h, contact: contact}
}

type contactPage struct {
	basePage
	DBError     string
	FieldErrors []string
	Messages    []*model.ContactMessage
}

// List handles GET /contact. The message list is only rendered for the admin
// but is fetched unconditionally; the template gates on the login flag.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contact.List(r.Context())
	if err != nil {
		slog.Error("contact list failed", "error", err)
		h.view.Render(w, "contact", contactPage{basePage: h.page(r), DBError: msgStoreError})
		return
	}
	h.view.Render(w, "contact", contactPage{basePage: h.page(r), Messages: messages})
}

// Submit handles POST /contact. Any visitor may submit; the message is stored
// as-is with status "new".
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	msg := &model.ContactMessage{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Message: r.PostFormValue("message"),
	}
	if err := h.contact.Submit(r.Context(), msg); err != nil {
		slog.Error("contact insert failed", "error", err)
		h.view.Render(w, "contact", contactPage{basePage: h.page(r), DBError: msgStoreError})
		return
	}
	redirect(w, r, "/contact")
}

// AnswerMessage handles POST /answer-message: btnID "submit" stores the reply
// and marks the message answered, "delete" removes it, anything else silently
// redirects back.
func (h *ContactHandler) AnswerMessage(w http.ResponseWriter, r *http.Request) {
	if !session.IsLoggedIn(r.Context()) {
		redirect(w, r, "/contact")
		return
	}
	id, ok := formID(r)
	if !ok {
		redirect(w, r, "/contact")
		return
	}

	switch r.PostFormValue("btnID") {
	case "submit":
		f := form.AnswerForm{Answer: r.PostFormValue("answer")}
		if msgs := form.Validate(f); msgs != nil {
			h.view.Render(w, "contact", contactPage{basePage: h.page(r), FieldErrors: msgs})
			return
		}
		if err := h.contact.Answer(r.Context(), id, f.Answer); err != nil {
			slog.Error("contact answer failed", "error", err, "id", id)
			h.view.Render(w, "contact", contactPage{basePage: h.page(r), DBError: msgStoreError})
			return
		}
	case "delete":
		if err := h.contact.Delete(r.Context(), id); err != nil {
			slog.Error("contact delete failed", "error", err, "id", id)
			h.view.Render(w, "contact", contactPage{basePage: h.page(r), DBError: msgStoreError})
			return
		}
	default:
		// Unknown action: no mutation, no error.
	}
	redirect(w, r, "/contact")
}
