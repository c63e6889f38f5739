package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oss-atlas/open-source-directory-backend/database"
	"github.com/oss-atlas/open-source-directory-backend/errs"
	"github.com/oss-atlas/open-source-directory-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
}

func newProjectHandler(projects ProjectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// projectPayload is the public submission shape: core fields plus the child
// collections captured by the multi-tab form.
type projectPayload struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description *string  `json:"description"`
	LogoURL     *string  `json:"logo_url"`
	HomepageURL *string  `json:"homepage_url"`
	RepoURL     *string  `json:"repo_url"`
	License     *string  `json:"license"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
	Visibility  *bool    `json:"visibility"`
	SubmitterID *string  `json:"submitter_id"`

	StackComponents      []uuid.UUID                  `json:"stack_components"`
	Contributors         []models.Contributor         `json:"contributors"`
	Sponsors             []models.Sponsor             `json:"sponsors"`
	GettingStartedGuides []models.GettingStartedGuide `json:"getting_started_guides"`
	CommunityLinks       []models.CommunityLink       `json:"community_links"`
	ContributingInfo     *models.ContributingInfo     `json:"contributing_info"`
	Metrics              *models.Metrics              `json:"metrics"`
	RoadmapItems         []models.RoadmapItem         `json:"roadmap_items"`
}

// getProjects is the public listing: visible and confirmed projects only,
// filtered and paginated, newest first.
func (h projectHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		opts := database.ProjectListOptions{
			Page:        intParam(query.Get("page"), 1),
			PerPage:     intParam(query.Get("per_page"), 20),
			Search:      query.Get("search"),
			Status:      query.Get("status"),
			Tags:        query["tags"],
			StackTypes:  query["stack_types"],
			Featured:    query.Get("featured") == "true",
			VisibleOnly: true,
			Confirmed:   boolPtr(true),
		}

		if opts.Status != "" && !models.ValidProjectStatus(opts.Status) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "unknown project status"))
			return
		}
		for _, stackType := range opts.StackTypes {
			if !models.ValidStackComponentType(stackType) {
				h.responder.WriteError(w, errs.NewInvalidFieldError("stack_types", "unknown stack component type"))
				return
			}
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

// getProject returns one visible project with every child collection
// expanded; hidden and unknown slugs both answer 404.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.projects.FindBySlug(slug, true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject accepts a public submission and stores the project with all
// child collections in one transaction. The slug derives from the name when
// omitted; duplicates answer 409.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload projectPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if payload.Slug == "" {
			payload.Slug = models.Slugify(payload.Name)
		}
		if payload.Slug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("slug"))
			return
		}
		if payload.Status == "" {
			payload.Status = "active"
		}
		if !models.ValidProjectStatus(payload.Status) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "unknown project status"))
			return
		}
		if err := validateChildren(payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		visibility := true
		if payload.Visibility != nil {
			visibility = *payload.Visibility
		}

		project := models.Project{
			Name:        payload.Name,
			Slug:        payload.Slug,
			Description: payload.Description,
			LogoURL:     payload.LogoURL,
			HomepageURL: payload.HomepageURL,
			RepoURL:     payload.RepoURL,
			License:     payload.License,
			Status:      payload.Status,
			Tags:        datatypes.NewJSONSlice(payload.Tags),
			Visibility:  visibility,
			SubmitterID: payload.SubmitterID,
		}
		children := database.ProjectChildren{
			StackComponentIDs: payload.StackComponents,
			Contributors:      payload.Contributors,
			Sponsors:          payload.Sponsors,
			Guides:            payload.GettingStartedGuides,
			CommunityLinks:    payload.CommunityLinks,
			ContributingInfo:  payload.ContributingInfo,
			Metrics:           payload.Metrics,
			RoadmapItems:      payload.RoadmapItems,
		}

		if err := h.projects.Create(&project, children); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject is the slug-keyed public update: non-nil core fields are
// applied and, when stack_components is present, the join rows are replaced
// wholesale.
func (h projectHandler) updateProject() http.HandlerFunc {
	type updateRequest struct {
		database.ProjectUpdate
		StackComponents *[]uuid.UUID `json:"stack_components"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project update body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Status != nil && !models.ValidProjectStatus(*req.Status) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "unknown project status"))
			return
		}

		updated, err := h.projects.UpdateBySlug(slug, req.ProjectUpdate, req.StackComponents)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject removes a project and all of its child rows.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.projects.FindBySlug(slug, false)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if err := h.projects.Delete(project.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// validateChildren rejects unknown enum values in the submitted child
// collections before anything is written.
func validateChildren(payload projectPayload) error {
	for _, contributor := range payload.Contributors {
		if contributor.Name == "" {
			return errs.NewMissingRequiredFieldError("contributors.name")
		}
		if !models.ValidContributorRole(contributor.Role) {
			return errs.NewInvalidFieldError("contributors.role", "unknown contributor role")
		}
	}
	for _, sponsor := range payload.Sponsors {
		if sponsor.Name == "" {
			return errs.NewMissingRequiredFieldError("sponsors.name")
		}
		if !models.ValidSponsorTier(sponsor.Tier) {
			return errs.NewInvalidFieldError("sponsors.tier", "unknown sponsor tier")
		}
		if sponsor.Type != "" && !models.ValidSponsorType(sponsor.Type) {
			return errs.NewInvalidFieldError("sponsors.type", "unknown sponsor type")
		}
	}
	for _, guide := range payload.GettingStartedGuides {
		if guide.Title == "" {
			return errs.NewMissingRequiredFieldError("getting_started_guides.title")
		}
	}
	for _, link := range payload.CommunityLinks {
		if link.URL == "" {
			return errs.NewMissingRequiredFieldError("community_links.url")
		}
		if !models.ValidCommunityPlatform(link.Platform) {
			return errs.NewInvalidFieldError("community_links.platform", "unknown community platform")
		}
	}
	if payload.ContributingInfo != nil && !models.ValidDifficultyLevel(payload.ContributingInfo.DifficultyLevel) {
		return errs.NewInvalidFieldError("contributing_info.difficulty_level", "unknown difficulty level")
	}
	for _, item := range payload.RoadmapItems {
		if item.Title == "" {
			return errs.NewMissingRequiredFieldError("roadmap_items.title")
		}
		if item.Status != "" && !models.ValidRoadmapStatus(item.Status) {
			return errs.NewInvalidFieldError("roadmap_items.status", "unknown roadmap status")
		}
		if item.Priority != "" && !models.ValidRoadmapPriority(item.Priority) {
			return errs.NewInvalidFieldError("roadmap_items.priority", "unknown roadmap priority")
		}
	}
	return nil
}

func intParam(raw string, defaultValue int) int {
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}

func boolPtr(v bool) *bool {
	return &v
}
