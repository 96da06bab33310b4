package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/prediction-league/internal/usecase"
)

type createMatchRequest struct {
	HomeTeam    string `json:"homeTeam" validate:"required,max=100"`
	AwayTeam    string `json:"awayTeam" validate:"required,max=100"`
	HomeFlag    string `json:"homeFlag"`
	AwayFlag    string `json:"awayFlag"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Status      string `json:"status" validate:"omitempty,oneof=upcoming live finished"`
	MatchNumber *int   `json:"matchNumber" validate:"omitempty,gt=0"`
	Stage       string `json:"stage"`
	Group       string `json:"group"`
	Stadium     string `json:"stadium"`
	City        string `json:"city"`
}

type updateMatchRequest struct {
	Status    *string `json:"status"`
	HomeScore *int    `json:"homeScore"`
	AwayScore *int    `json:"awayScore"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	current, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	items, err := h.matchService.ListMatches(ctx, status, current.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "user_id", current.ID, "status", status, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchWithPredictionToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	item, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	current, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createMatchRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.CreateMatch(ctx, current, usecase.CreateMatchInput{
		HomeTeam:    req.HomeTeam,
		AwayTeam:    req.AwayTeam,
		HomeFlag:    req.HomeFlag,
		AwayFlag:    req.AwayFlag,
		Date:        req.Date,
		Time:        req.Time,
		Status:      req.Status,
		MatchNumber: req.MatchNumber,
		Stage:       req.Stage,
		GroupLabel:  req.Group,
		Stadium:     req.Stadium,
		City:        req.City,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "user_id", current.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	current, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req updateMatchRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.UpdateMatch(ctx, current, matchID, usecase.UpdateMatchInput{
		Status:    req.Status,
		HomeScore: req.HomeScore,
		AwayScore: req.AwayScore,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "user_id", current.ID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}
