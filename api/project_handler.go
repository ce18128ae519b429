package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/flowforge-ai/backend/errs"
	"github.com/flowforge-ai/backend/models"
)

// projectStore is the slice of the project repository the handler needs.
type projectStore interface {
	FindAllPublished() ([]models.ProjectDocument, error)
	FindPublishedBySlug(slug string) (*models.ProjectDocument, error)
	Add(project *models.Project) error
	TogglePublish(id uuid.UUID) (bool, error)
}

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     projectStore
}

func newProjectHandler(store projectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// health answers the liveness probe.
func (h projectHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{"status": "ok"})
	}
}

// listProjects returns every published project as a fully aggregated
// document, newest first.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.store.FindAllPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProjectBySlug returns a single published project by its slug.
func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.store.FindPublishedBySlug(slug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("project"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

type createProjectRequest struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Category    *string `json:"category"`
	ShortDesc   *string `json:"short_desc"`
	CoverColor  *string `json:"cover_color"`
	IsPublished bool    `json:"is_published"`
}

func (req createProjectRequest) validate() error {
	if strings.TrimSpace(req.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if len(strings.TrimSpace(req.Title)) < 3 {
		return errs.NewInvalidFieldError("title", "must be at least 3 characters")
	}
	slug := models.NormalizeSlug(req.Slug)
	if slug == "" {
		return errs.NewMissingRequiredFieldError("slug")
	}
	if len(slug) < 3 {
		return errs.NewInvalidFieldError("slug", "must be at least 3 characters")
	}
	return nil
}

// createProject inserts a new base project row. The slug is normalized
// before storage; a collision with an existing slug answers 409 and leaves
// the store unchanged. New projects stay unpublished unless the request
// says otherwise.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode create project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("create project", err))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := models.Project{
			Title:       strings.TrimSpace(req.Title),
			Slug:        models.NormalizeSlug(req.Slug),
			Category:    req.Category,
			ShortDesc:   req.ShortDesc,
			CoverColor:  req.CoverColor,
			IsPublished: req.IsPublished,
		}

		if err := h.store.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success":    true,
			"project_id": project.ID,
		})
	}
}

// togglePublish flips the publish flag for a project in one atomic update
// and reports the new value.
func (h projectHandler) togglePublish() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectIDStr := chi.URLParam(r, "projectID")
		if projectIDStr == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		projectID, err := uuid.Parse(projectIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		isPublished, err := h.store.TogglePublish(projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("project"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"is_published": isPublished})
	}
}
