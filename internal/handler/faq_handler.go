package handler

import (
	"log/slog"
	"net/http"

	"github.com/mhagelund/folio/internal/form"
	"github.com/mhagelund/folio/internal/model"
	"github.com/mhagelund/folio/internal/service"
	"github.com/mhagelund/folio/internal/session"
)

// FaqHandler serves the FAQ pages: the public listing and ask form, and the
// admin answer/edit/delete actions.
type FaqHandler struct {
	*Handler
	faq service.FaqService
}

// NewFaqHandler creates a FaqHandler.
func NewFaqHandler(h *Handler, faq service.FaqService) *FaqHandler {
	return &FaqHandler{Handler: h, faq: faq}
}

type faqPage struct {
	basePage
	DBError   string
	Questions []*model.Question
}

type askQuestionPage struct {
	basePage
	DBError     string
	FieldErrors []string
}

type answerQuestionsPage struct {
	basePage
	DBError     string
	FieldErrors []string
	Questions   []*model.Question
}

// List handles GET /faq.
func (h *FaqHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.faq.List(r.Context())
	if err != nil {
		slog.Error("question list failed", "error", err)
		h.view.Render(w, "faq", faqPage{basePage: h.page(r), DBError: msgStoreError})
		return
	}
	h.view.Render(w, "faq", faqPage{basePage: h.page(r), Questions: questions})
}

// Delete handles POST /faq (admin delete of a question).
func (h *FaqHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !session.IsLoggedIn(r.Context()) {
		redirect(w, r, "/faq")
		return
	}
	id, ok := formID(r)
	if !ok {
		redirect(w, r, "/faq")
		return
	}
	if err := h.faq.Delete(r.Context(), id); err != nil {
		slog.Error("question delete failed", "error", err, "id", id)
		h.view.Render(w, "faq", faqPage{basePage: h.page(r), DBError: msgStoreError})
		return
	}
	redirect(w, r, "/faq")
}

// AskPage handles GET /ask-question.
func (h *FaqHandler) AskPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, "ask-question", askQuestionPage{basePage: h.page(r)})
}

// Ask handles POST /ask-question. Open to any visitor; the form field is
// named "title".
func (h *FaqHandler) Ask(w http.ResponseWriter, r *http.Request) {
	f := form.QuestionForm{Question: r.PostFormValue("title")}
	if msgs := form.Validate(f); msgs != nil {
		h.view.Render(w, "ask-question", askQuestionPage{basePage: h.page(r), FieldErrors: msgs})
		return
	}
	if err := h.faq.Ask(r.Context(), f.Question); err != nil {
		slog.Error("question insert failed", "error", err)
		h.view.Render(w, "ask-question", askQuestionPage{basePage: h.page(r), DBError: msgStoreError})
		return
	}
	redirect(w, r, "/faq")
}

// AnswerPage handles GET /answer-question.
func (h *FaqHandler) AnswerPage(w http.ResponseWriter, r *http.Request) {
	h.questionAdminPage(w, r, "answer-question")
}

// Answer handles POST /answer-question.
func (h *FaqHandler) Answer(w http.ResponseWriter, r *http.Request) {
	h.saveAnswer(w, r, "answer-question")
}

// EditPage handles GET /edit-question.
func (h *FaqHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	h.questionAdminPage(w, r, "edit-question")
}

// Edit handles POST /edit-question. Same store operation as Answer; only the
// page rendered on failure differs.
func (h *FaqHandler) Edit(w http.ResponseWriter, r *http.Request) {
	h.saveAnswer(w, r, "edit-question")
}

// questionAdminPage renders the admin question listing, or redirects home for
// anonymous visitors.
func (h *FaqHandler) questionAdminPage(w http.ResponseWriter, r *http.Request, viewName string) {
	if !session.IsLoggedIn(r.Context()) {
		redirect(w, r, "/")
		return
	}
	questions, err := h.faq.List(r.Context())
	if err != nil {
		slog.Error("question list failed", "error", err)
		h.view.Render(w, viewName, answerQuestionsPage{basePage: h.page(r), DBError: msgStoreError})
		return
	}
	h.view.Render(w, viewName, answerQuestionsPage{basePage: h.page(r), Questions: questions})
}

// saveAnswer validates and stores an admin answer.
func (h *FaqHandler) saveAnswer(w http.ResponseWriter, r *http.Request, viewName string) {
	if !session.IsLoggedIn(r.Context()) {
		redirect(w, r, "/")
		return
	}
	id, ok := formID(r)
	if !ok {
		redirect(w, r, "/faq")
		return
	}

	f := form.AnswerForm{Answer: r.PostFormValue("answer")}
	if msgs := form.Validate(f); msgs != nil {
		h.view.Render(w, viewName, answerQuestionsPage{basePage: h.page(r), FieldErrors: msgs})
		return
	}
	if err := h.faq.Answer(r.Context(), id, f.Answer); err != nil {
		slog.Error("question answer failed", "error", err, "id", id)
		h.view.Render(w, viewName, answerQuestionsPage{basePage: h.page(r), DBError: msgStoreError})
		return
	}
	redirect(w, r, "/faq")
}
