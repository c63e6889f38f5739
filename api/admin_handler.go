package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oss-atlas/open-source-directory-backend/database"
	"github.com/oss-atlas/open-source-directory-backend/errs"
	"github.com/oss-atlas/open-source-directory-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
}

func newAdminHandler(projects ProjectStore) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// getProjects is the moderation listing: visible projects scoped by
// confirmation state (pending, confirmed, or all), with the review child
// data preloaded.
func (h adminHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		opts := database.ProjectListOptions{
			Page:        intParam(query.Get("page"), 1),
			PerPage:     intParam(query.Get("per_page"), 20),
			VisibleOnly: true,
			WithReview:  true,
		}

		switch query.Get("status") {
		case "pending":
			opts.Confirmed = boolPtr(false)
		case "confirmed":
			opts.Confirmed = boolPtr(true)
		case "", "all":
			// no confirmation filter
		default:
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be pending, confirmed or all"))
			return
		}

		projects, total, err := h.projects.FindPage(opts)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectListResponse{
			Projects: projects,
			Total:    total,
			Page:     opts.Page,
			PerPage:  opts.PerPage,
		})
	}
}

type adminActionRequest struct {
	ProjectID string          `json:"projectId"`
	Action    string          `json:"action"`
	Value     json.RawMessage `json:"value"`
}

// patchProject applies a moderation action: confirm, feature, or status.
// Confirm and feature take an optional boolean value defaulting to true;
// status takes a lifecycle value. Unknown actions are rejected.
func (h adminHandler) patchProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.ProjectID == "" || req.Action == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("projectId and action are required"))
			return
		}
		projectID, err := uuid.Parse(req.ProjectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectId"))
			return
		}

		var project *models.Project
		switch req.Action {
		case "confirm":
			value, err := boolValue(req.Value, true)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("value", "must be a boolean"))
				return
			}
			project, err = h.projects.SetConfirmed(projectID, value)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("confirm project", "project", err))
				return
			}
		case "feature":
			value, err := boolValue(req.Value, true)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("value", "must be a boolean"))
				return
			}
			project, err = h.projects.SetFeatured(projectID, value)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("feature project", "project", err))
				return
			}
		case "status":
			var status string
			if err := json.Unmarshal(req.Value, &status); err != nil || !models.ValidProjectStatus(status) {
				h.responder.WriteError(w, errs.NewInvalidFieldError("value", "unknown project status"))
				return
			}
			project, err = h.projects.SetStatus(projectID, status)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update project status", "project", err))
				return
			}
		default:
			h.responder.WriteError(w, errs.NewInvalidFieldError("action", "must be confirm, feature or status"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes a project and every owned child row, children
// first.
func (h adminHandler) deleteProject() http.HandlerFunc {
	type deleteRequest struct {
		ProjectID string `json:"projectId"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.ProjectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("projectId is required"))
			return
		}
		projectID, err := uuid.Parse(req.ProjectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectId"))
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// getProject fetches the full aggregate for the edit screen, no visibility
// constraint.
func (h adminHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// updateProject applies an allow-listed field edit. Fields outside the
// typed allow-list are dropped by decoding; an update carrying nothing
// valid is rejected.
func (h adminHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		var upd database.AdminProjectUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if upd.Empty() {
			h.responder.WriteError(w, errs.NewBadRequestError("no valid fields to update"))
			return
		}
		if upd.Status != nil && !models.ValidProjectStatus(*upd.Status) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "unknown project status"))
			return
		}

		project, err := h.projects.ApplyAdminUpdate(projectID, upd)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"success": true,
			"project": project,
			"message": "project updated successfully",
		})
	}
}

// boolValue reads an optional JSON boolean, defaulting when absent or null.
func boolValue(raw json.RawMessage, defaultValue bool) (bool, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return defaultValue, nil
	}
	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		return false, err
	}
	return value, nil
}
