package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/forumapi-dev/forumapi/internal/api"
	"github.com/forumapi-dev/forumapi/internal/logger"
	"github.com/forumapi-dev/forumapi/internal/utils"
)

const readyTimeout = 2 * time.Second

// Health answers as long as the process serves requests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, nil)
}

// Ready pings the configured storage driver (postgres or sqlite). The forum
// cannot answer any thread request without it, so a failed ping is a 503.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	driver := h.health.Driver()
	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Warn("storage not ready", "driver", driver, "error", err)
		utils.WriteFail(w, http.StatusServiceUnavailable, "penyimpanan "+driver+" tidak tersedia")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, api.ReadinessResponse{Storage: driver})
}
