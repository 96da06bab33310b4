package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/prediction-league/internal/usecase"
)

type createGroupRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	Description   string `json:"description" validate:"max=500"`
	ScoringSystem string `json:"scoringSystem" validate:"omitempty,oneof=classic extended simple"`
}

type joinGroupRequest struct {
	InviteCode string `json:"inviteCode" validate:"required,max=32"`
}

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroups")
	defer span.End()

	current, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	views, err := h.groupService.ListGroups(ctx, usecase.ListGroupsInput{
		ViewerUserID: current.ID,
		Filter:       strings.TrimSpace(query.Get("filter")),
		Search:       strings.TrimSpace(query.Get("search")),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list groups failed", "user_id", current.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]groupDTO, 0, len(views))
	for _, view := range views {
		items = append(items, groupViewToDTO(view))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGroup")
	defer span.End()

	current, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createGroupRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.groupService.CreateGroup(ctx, usecase.CreateGroupInput{
		OwnerUserID:   current.ID,
		Name:          req.Name,
		Description:   req.Description,
		ScoringSystem: req.ScoringSystem,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create group failed", "user_id", current.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, groupViewToDTO(view))
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGroup")
	defer span.End()

	current, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	groupID := strings.TrimSpace(r.PathValue("groupID"))

	view, err := h.groupService.GetGroup(ctx, current.ID, groupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get group failed", "user_id", current.ID, "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groupViewToDTO(view))
}

func (h *Handler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinGroup")
	defer span.End()

	current, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req joinGroupRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.groupService.JoinByInviteCode(ctx, current.ID, req.InviteCode)
	if err != nil {
		h.logger.WarnContext(ctx, "join group failed", "user_id", current.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groupViewToDTO(view))
}

func (h *Handler) ListGroupMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroupMembers")
	defer span.End()

	groupID := strings.TrimSpace(r.PathValue("groupID"))
	members, err := h.groupService.ListMembers(ctx, groupID)
	if err != nil {
		h.logger.WarnContext(ctx, "list group members failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]groupMemberDTO, 0, len(members))
	for _, member := range members {
		items = append(items, memberToDTO(member))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGroupRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGroupRanking")
	defer span.End()

	groupID := strings.TrimSpace(r.PathValue("groupID"))
	ranked, err := h.groupService.Ranking(ctx, groupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get group ranking failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]groupMemberDTO, 0, len(ranked))
	for _, member := range ranked {
		items = append(items, rankedMemberToDTO(member))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
