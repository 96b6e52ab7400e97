package handler

import (
	"encoding/json"
	"net/http"

	"dsa_tracker/internal/api/middleware"
	"dsa_tracker/internal/app/service"
	"dsa_tracker/internal/common"

	"github.com/go-chi/chi/v5"
)

type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(ps *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: ps}
}

func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)

	r.Get("/{userID}", h.getProgress)
	r.Post("/", h.updateProgress)
}

func (h *ProgressHandler) getProgress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !requesterMayAccess(r, userID) {
		common.RespondWithError(w, http.StatusForbidden, "Cannot access another user's progress")
		return
	}

	records, err := h.progressService.ListByUser(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, records)
}

func (h *ProgressHandler) updateProgress(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if !requesterMayAccess(r, req.UserID) {
		common.RespondWithError(w, http.StatusForbidden, "Cannot update another user's progress")
		return
	}

	if err := h.progressService.Update(r.Context(), req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Progress updated",
	})
}
