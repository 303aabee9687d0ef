package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mhagelund/folio/internal/form"
	"github.com/mhagelund/folio/internal/model"
	"github.com/mhagelund/folio/internal/service"
	"github.com/mhagelund/folio/internal/session"
	"github.com/mhagelund/folio/internal/storage"
)

// PortfolioHandler serves the portfolio pages and project CRUD.
type PortfolioHandler struct {
	*Handler
	portfolio service.PortfolioService
	storage   storage.Storage
}

// NewPortfolioHandler creates a PortfolioHandler.
func NewPortfolioHandler(h *Handler, ps service.PortfolioService, store storage.Storage) *PortfolioHandler {
	return &PortfolioHandler{Handler: h, portfolio: ps, storage: store}
}

type portfolioPage struct {
	basePage
	DBError  string
	Error    string
	Projects []*model.Project
}

type projectPage struct {
	basePage
	DBError        string
	FieldErrors    []string
	FocusedProject *model.Project
	Projects       []*model.Project
}

type createProjectPage struct {
	basePage
	DBError     string
	UploadError string
	FieldErrors []string
}

// List handles GET /portfolio.
func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.portfolio.List(r.Context())
	if err != nil {
		slog.Error("portfolio list failed", "error", err)
		h.view.Render(w, "portfolio", portfolioPage{basePage: h.page(r), DBError: msgStoreError})
		return
	}
	h.view.Render(w, "portfolio", portfolioPage{basePage: h.page(r), Projects: projects})
}

// Detail handles GET /portfolio/{id}. The focused project is shown alongside
// links to all the others, so a single listing query serves both.
func (h *PortfolioHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	all, err := h.portfolio.List(r.Context())
	if err != nil {
		slog.Error("portfolio list failed", "error", err)
		h.view.Render(w, "project", projectPage{basePage: h.page(r), DBError: msgStoreError})
		return
	}

	page := projectPage{basePage: h.page(r)}
	for _, p := range all {
		if p.ID == id {
			page.FocusedProject = p
		} else {
			page.Projects = append(page.Projects, p)
		}
	}
	h.view.Render(w, "project", page)
}

// Save handles POST /portfolio/{id}: btnID "save" updates title/description,
// "delete" removes the project, anything else silently redirects back.
func (h *PortfolioHandler) Save(w http.ResponseWriter, r *http.Request) {
	if !session.IsLoggedIn(r.Context()) {
		h.view.Render(w, "portfolio", portfolioPage{basePage: h.page(r), Error: msgNotLoggedIn})
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		redirect(w, r, "/portfolio")
		return
	}

	switch r.PostFormValue("btnID") {
	case "save":
		f := form.ProjectForm{
			Title:       r.PostFormValue("title"),
			Description: r.PostFormValue("description"),
		}
		if msgs := form.Validate(f); msgs != nil {
			h.view.Render(w, "project", projectPage{basePage: h.page(r), FieldErrors: msgs})
			return
		}
		if err := h.portfolio.Update(r.Context(), id, f.Title, f.Description); err != nil {
			slog.Error("project update failed", "error", err, "id", id)
			h.view.Render(w, "portfolio", portfolioPage{basePage: h.page(r), DBError: msgStoreError})
			return
		}
	case "delete":
		if err := h.portfolio.Delete(r.Context(), id); err != nil {
			slog.Error("project delete failed", "error", err, "id", id)
			h.view.Render(w, "portfolio", portfolioPage{basePage: h.page(r), DBError: msgStoreError})
			return
		}
	default:
		// Unknown action: no mutation, no error.
	}
	redirect(w, r, "/portfolio")
}

// CreatePage handles GET /create-project.
func (h *PortfolioHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	if !session.IsLoggedIn(r.Context()) {
		redirect(w, r, "/portfolio")
		return
	}
	h.view.Render(w, "create-project", createProjectPage{basePage: h.page(r)})
}

// Create handles POST /create-project. The upload gate (type and size) runs
// before field validation; a failed upload short-circuits with a generic
// upload error.
func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !session.IsLoggedIn(r.Context()) {
		h.view.Render(w, "portfolio", portfolioPage{basePage: h.page(r), Error: msgNotLoggedIn})
		return
	}

	if err := r.ParseMultipartForm(storage.MaxUploadSize); err != nil {
		h.view.Render(w, "create-project", createProjectPage{basePage: h.page(r), UploadError: msgUploadError})
		return
	}

	f := form.ProjectForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		msgs := append(form.Validate(f), msgSelectImage)
		h.view.Render(w, "create-project", createProjectPage{basePage: h.page(r), FieldErrors: msgs})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxUploadSize+1))
	if err != nil || len(data) > storage.MaxUploadSize {
		h.view.Render(w, "create-project", createProjectPage{basePage: h.page(r), UploadError: msgUploadError})
		return
	}
	if err := storage.ValidateImage(header.Filename, data); err != nil {
		h.view.Render(w, "create-project", createProjectPage{basePage: h.page(r), UploadError: msgUploadError})
		return
	}

	if msgs := form.Validate(f); msgs != nil {
		h.view.Render(w, "create-project", createProjectPage{basePage: h.page(r), FieldErrors: msgs})
		return
	}

	filename := storage.UploadFilename("image", header.Filename)
	if _, err := h.storage.Save(r.Context(), filename, bytes.NewReader(data)); err != nil {
		slog.Error("image upload failed", "error", err)
		h.view.Render(w, "create-project", createProjectPage{basePage: h.page(r), UploadError: msgUploadError})
		return
	}

	p := &model.Project{Title: f.Title, Description: f.Description, Image: filename}
	if err := h.portfolio.Create(r.Context(), p); err != nil {
		slog.Error("project create failed", "error", err)
		h.view.Render(w, "create-project", createProjectPage{basePage: h.page(r), DBError: msgStoreError})
		return
	}
	redirect(w, r, "/portfolio")
}
