package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/service"
)

// StatsHandler handles HTTP requests for generation statistics.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// HandleStats handles GET /api/v1/stats requests. The optional since query
// parameter is an RFC 3339 timestamp; it defaults to 24 hours ago.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	since := time.Now().Add(-24 * time.Hour)
	if v := r.URL.Query().Get("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("since must be an RFC 3339 timestamp"))
			return
		}
		since = t
	}

	subject, _ := middleware.SubjectFromContext(r.Context())
	resp, err := h.service.Summary(r.Context(), since)
	if err != nil {
		slog.Error("loading generation stats failed",
			"error", err,
			"subject", subject,
			"request_id", middleware.RequestIDFromContext(r.Context()),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	slog.Debug("generation stats served", "subject", subject, "since", resp.Since)
	writeJSON(w, http.StatusOK, resp)
}
