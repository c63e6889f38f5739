package api

import (
	"encoding/json"
	"net/http"

	"github.com/oss-atlas/open-source-directory-backend/errs"
	"github.com/oss-atlas/open-source-directory-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type stackComponentHandler struct {
	responder  Responder
	logger     zerolog.Logger
	components StackComponentStore
}

func newStackComponentHandler(components StackComponentStore) stackComponentHandler {
	logger := log.With().Str("handlerName", "stackComponentHandler").Logger()

	return stackComponentHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		components: components,
	}
}

// getComponents lists stack components ordered by name, optionally filtered
// by type and name search.
func (h stackComponentHandler) getComponents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		componentType := r.URL.Query().Get("type")
		if componentType != "" && !models.ValidStackComponentType(componentType) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("type", "unknown stack component type"))
			return
		}

		components, err := h.components.FindAll(componentType, r.URL.Query().Get("search"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find stack components", "stack components", err))
			return
		}

		if components == nil {
			components = []*models.StackComponent{}
		}
		h.responder.WriteJSON(w, components)
	}
}

// createComponent registers a new reusable stack component. Names are
// unique; duplicates answer 409.
func (h stackComponentHandler) createComponent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var component models.StackComponent
		if err := json.NewDecoder(r.Body).Decode(&component); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode stack component body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if component.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if component.Type == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("type"))
			return
		}
		if !models.ValidStackComponentType(component.Type) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("type", "unknown stack component type"))
			return
		}

		if err := h.components.Add(&component); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create stack component", "stack component", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, component)
	}
}
