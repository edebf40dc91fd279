package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/formkeeper/formkeeper/internal/logger"
	"github.com/formkeeper/formkeeper/internal/utils"
	"github.com/formkeeper/formkeeper/models"
)

// submitProspect accepts a public respondent submission. The body is a flat
// JSON object of answers; arbitrary extra keys are allowed and dropped — the
// accepted key set is re-derived from the form's stored components.
func (h *Handler) submitProspect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var answers map[string]string
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		log.Err(err).Str("func", "*Handler.submitProspect").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	formID := chi.URLParam(r, "formId")
	if _, err := h.services.ProspectService.Submit(ctx, formID, answers); err != nil {
		log.Err(err).Str("func", "*Handler.submitProspect").Str("formId", formID).Msg("error submitting prospect")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Prospect saved"}, http.StatusOK)
}

func (h *Handler) listProspects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.listProspects").Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	formID := chi.URLParam(r, "formId")
	prospects, err := h.services.ProspectService.ListProspects(ctx, userID, formID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listProspects").Str("formId", formID).Msg("error listing prospects")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}
	if prospects == nil {
		prospects = []models.Prospect{}
	}

	utils.WriteJSON(w, prospects, http.StatusOK)
}
