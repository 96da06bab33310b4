package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/prediction-league/internal/usecase"
)

type upsertPredictionRequest struct {
	MatchID   string `json:"matchId" validate:"required"`
	HomeScore *int   `json:"homeScore" validate:"required,min=0"`
	AwayScore *int   `json:"awayScore" validate:"required,min=0"`
}

func (h *Handler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPredictions")
	defer span.End()

	query := r.URL.Query()
	items, err := h.predictionService.List(ctx, usecase.ListPredictionsInput{
		UserID:  strings.TrimSpace(query.Get("userId")),
		MatchID: strings.TrimSpace(query.Get("matchId")),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list predictions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]predictionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, predictionToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) UpsertPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertPrediction")
	defer span.End()

	current, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req upsertPredictionRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.predictionService.Upsert(ctx, usecase.UpsertPredictionInput{
		MatchID:   req.MatchID,
		UserID:    current.ID,
		HomeScore: *req.HomeScore,
		AwayScore: *req.AwayScore,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert prediction failed", "user_id", current.ID, "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(item))
}
