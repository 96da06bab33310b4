package httpapi

import "net/http"

func (h *Handler) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdminStats")
	defer span.End()

	current, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.adminService.Stats(ctx, current)
	if err != nil {
		h.logger.WarnContext(ctx, "admin stats failed", "user_id", current.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, adminStatsToDTO(stats))
}

func (h *Handler) GetAdminReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdminReports")
	defer span.End()

	current, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	reports, err := h.adminService.Reports(ctx, current)
	if err != nil {
		h.logger.WarnContext(ctx, "admin reports failed", "user_id", current.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, adminReportsToDTO(reports))
}
