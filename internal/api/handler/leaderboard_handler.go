package handler

import (
	"net/http"

	"dsa_tracker/internal/app/service"
	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
)

type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

func NewLeaderboardHandler(ls *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: ls}
}

func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	period := model.LeaderboardPeriod(r.URL.Query().Get("period"))

	entries, err := h.leaderboardService.GetLeaderboard(r.Context(), period)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, entries)
}
