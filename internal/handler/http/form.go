package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/formkeeper/formkeeper/internal/logger"
	"github.com/formkeeper/formkeeper/internal/utils"
	"github.com/formkeeper/formkeeper/models"
)

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createForm").Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	form, err := h.services.FormService.CreateForm(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createForm").Msg("error creating form")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, form, http.StatusCreated)
}

func (h *Handler) listForms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.listForms").Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	forms, err := h.services.FormService.ListForms(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listForms").Msg("error listing forms")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}
	if forms == nil {
		forms = []models.Form{}
	}

	utils.WriteJSON(w, forms, http.StatusOK)
}

func (h *Handler) getForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getForm").Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	formID := chi.URLParam(r, "formId")
	form, err := h.services.FormService.GetForm(ctx, userID, formID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getForm").Str("formId", formID).Msg("error loading form")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, form, http.StatusOK)
}

// saveComponents handles the replace-all save. The body is a JSON array of
// {id, type, value}; the owning form id always comes from the path, never
// from the body. List order carries position.
func (h *Handler) saveComponents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.saveComponents").Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var components []models.Component
	if err := json.NewDecoder(r.Body).Decode(&components); err != nil {
		log.Err(err).Str("func", "*Handler.saveComponents").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	formID := chi.URLParam(r, "formId")
	if err := h.services.FormService.SaveComponents(ctx, userID, formID, components); err != nil {
		log.Err(err).Str("func", "*Handler.saveComponents").Str("formId", formID).Msg("error saving components")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Form saved"}, http.StatusOK)
}

func (h *Handler) deleteForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteForm").Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	formID := chi.URLParam(r, "formId")
	if err := h.services.FormService.DeleteForm(ctx, userID, formID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteForm").Str("formId", formID).Msg("error deleting form")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Form deleted"}, http.StatusOK)
}

// preview serves the public respondent view of a shared form: no auth, no
// ownership check, just the form and its ordered components.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	formID := chi.URLParam(r, "formId")
	form, err := h.services.FormService.GetPreview(ctx, formID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.preview").Str("formId", formID).Msg("error loading form preview")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, form, http.StatusOK)
}
