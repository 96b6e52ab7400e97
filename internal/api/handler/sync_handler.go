package handler

import (
	"net/http"

	"dsa_tracker/internal/app/service"
	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type SyncHandler struct {
	syncService *service.SyncService
}

func NewSyncHandler(ss *service.SyncService) *SyncHandler {
	return &SyncHandler{syncService: ss}
}

// RegisterRoutes expects to be mounted under an authenticated group; the
// bulk endpoint additionally requires admin (wired in the router).
func (h *SyncHandler) RegisterRoutes(r chi.Router) {
	r.Get("/sync-gfg-progress/{userID}", h.syncGFG)
	r.Get("/sync-leetcode-progress/{userID}", h.syncLeetCode)
	r.Get("/sync-all-progress/{userID}", h.syncAll)
}

func (h *SyncHandler) syncGFG(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !requesterMayAccess(r, userID) {
		common.RespondWithError(w, http.StatusForbidden, "Cannot sync another user's progress")
		return
	}

	result, err := h.syncService.SyncGFG(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}

func (h *SyncHandler) syncLeetCode(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !requesterMayAccess(r, userID) {
		common.RespondWithError(w, http.StatusForbidden, "Cannot sync another user's progress")
		return
	}

	result, err := h.syncService.SyncLeetCode(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}

func (h *SyncHandler) syncAll(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !requesterMayAccess(r, userID) {
		common.RespondWithError(w, http.StatusForbidden, "Cannot sync another user's progress")
		return
	}

	results, err := h.syncService.SyncAll(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]map[model.Platform]*model.SyncResult{
		"results": results,
	})
}

// SyncAllUsers is the admin bulk endpoint.
func (h *SyncHandler) SyncAllUsers(w http.ResponseWriter, r *http.Request) {
	results, err := h.syncService.SyncAllUsers(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"results": results,
	})
}
