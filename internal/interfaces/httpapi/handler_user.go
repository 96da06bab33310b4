package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/prediction-league/internal/usecase"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUsers")
	defer span.End()

	query := r.URL.Query()
	items, err := h.userService.List(ctx, usecase.ListUsersInput{
		Search: strings.TrimSpace(query.Get("search")),
		Role:   strings.TrimSpace(query.Get("role")),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list users failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]userDTO, 0, len(items))
	for _, item := range items {
		out = append(out, userToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
