package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/prediction-league/internal/domain/group"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

const groupsInviteCodeConstraint = "groups_invite_code_key"

const memberProfileColumns = "gm.seq, gm.group_id, gm.user_id, gm.joined_at, gm.points, gm.is_admin, " +
	"u.name AS user_name, u.email AS user_email, u.avatar_url AS user_avatar_url"

type GroupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) CreateWithOwner(ctx context.Context, item group.Group, owner group.Member) (group.Group, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return group.Group{}, fmt.Errorf("begin tx create group: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	row := groupRowFromDomain(item)
	row.PlayerCount = 1
	groupQuery, groupArgs, err := qb.InsertModel("groups", row, "RETURNING *")
	if err != nil {
		return group.Group{}, fmt.Errorf("build create group query: %w", err)
	}
	var stored groupTableModel
	if err := tx.GetContext(ctx, &stored, groupQuery, groupArgs...); err != nil {
		if isUniqueViolation(err, groupsInviteCodeConstraint) {
			return group.Group{}, fmt.Errorf("create group: %w", group.ErrInviteCodeTaken)
		}
		return group.Group{}, fmt.Errorf("create group: %w", err)
	}

	owner.GroupID = item.ID
	memberQuery, memberArgs, err := qb.InsertModel("group_members", memberInsertFromDomain(owner), "")
	if err != nil {
		return group.Group{}, fmt.Errorf("build create owner membership query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, memberQuery, memberArgs...); err != nil {
		return group.Group{}, fmt.Errorf("create owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return group.Group{}, fmt.Errorf("commit create group tx: %w", err)
	}
	return groupFromRow(stored), nil
}

func (r *GroupRepository) GetByID(ctx context.Context, groupID string) (group.Group, bool, error) {
	return r.getOne(ctx, "id", groupID)
}

func (r *GroupRepository) GetByInviteCode(ctx context.Context, inviteCode string) (group.Group, bool, error) {
	return r.getOne(ctx, "invite_code", inviteCode)
}

func (r *GroupRepository) List(ctx context.Context, filter group.ListFilter) ([]group.Group, error) {
	query, args, err := buildListGroupsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list groups query: %w", err)
	}

	var rows []groupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	out := make([]group.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, groupFromRow(row))
	}
	return out, nil
}

// AddMember locks the group row so concurrent joins serialize, then inserts
// the membership and recomputes player_count from the membership rows.
func (r *GroupRepository) AddMember(ctx context.Context, member group.Member) (group.Member, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return group.Member{}, false, fmt.Errorf("begin tx add group member: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lockQuery, lockArgs, err := qb.Select("id").From("groups").Where(qb.Eq("id", member.GroupID)).ForUpdate().ToSQL()
	if err != nil {
		return group.Member{}, false, fmt.Errorf("build lock group query: %w", err)
	}
	var lockedID string
	if err := tx.GetContext(ctx, &lockedID, lockQuery, lockArgs...); err != nil {
		if isNotFound(err) {
			return group.Member{}, false, group.ErrGroupNotFound
		}
		return group.Member{}, false, fmt.Errorf("lock group: %w", err)
	}

	existingQuery, existingArgs, err := qb.Select("*").
		From("group_members").
		Where(qb.Eq("group_id", member.GroupID), qb.Eq("user_id", member.UserID)).
		ToSQL()
	if err != nil {
		return group.Member{}, false, fmt.Errorf("build get group member query: %w", err)
	}
	var existing groupMemberTableModel
	err = tx.GetContext(ctx, &existing, existingQuery, existingArgs...)
	switch {
	case err == nil:
		return memberFromRow(existing), false, nil
	case !isNotFound(err):
		return group.Member{}, false, fmt.Errorf("get group member: %w", err)
	}

	insertQuery, insertArgs, err := qb.InsertModel("group_members", memberInsertFromDomain(member), "RETURNING *")
	if err != nil {
		return group.Member{}, false, fmt.Errorf("build insert group member query: %w", err)
	}
	var inserted groupMemberTableModel
	if err := tx.GetContext(ctx, &inserted, insertQuery, insertArgs...); err != nil {
		return group.Member{}, false, fmt.Errorf("insert group member: %w", err)
	}

	countQuery, countArgs, err := buildRefreshPlayerCountQuery(member.GroupID)
	if err != nil {
		return group.Member{}, false, fmt.Errorf("build refresh player count query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, countQuery, countArgs...); err != nil {
		return group.Member{}, false, fmt.Errorf("refresh player count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return group.Member{}, false, fmt.Errorf("commit add group member tx: %w", err)
	}
	return memberFromRow(inserted), true, nil
}

func (r *GroupRepository) ListMembers(ctx context.Context, groupID string) ([]group.MemberProfile, error) {
	query, args, err := qb.Select(memberProfileColumns).
		From("group_members gm JOIN users u ON u.id = gm.user_id").
		Where(qb.Eq("gm.group_id", groupID)).
		OrderBy("gm.seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list group members query: %w", err)
	}

	var rows []groupMemberProfileRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}

	out := make([]group.MemberProfile, 0, len(rows))
	for _, row := range rows {
		out = append(out, group.MemberProfile{
			Member: group.Member{
				GroupID:  row.GroupID,
				UserID:   row.UserID,
				JoinedAt: row.JoinedAt,
				Points:   row.Points,
				IsAdmin:  row.IsAdmin,
				Seq:      row.Seq,
			},
			UserName:  row.UserName,
			UserEmail: row.UserEmail,
			AvatarURL: derefString(row.UserAvatarURL),
		})
	}
	return out, nil
}

func (r *GroupRepository) ListMembershipsByUser(ctx context.Context, userID string) ([]group.Member, error) {
	query, args, err := qb.Select("*").
		From("group_members").
		Where(qb.Eq("user_id", userID)).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list memberships by user query: %w", err)
	}

	var rows []groupMemberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list memberships by user: %w", err)
	}

	out := make([]group.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, memberFromRow(row))
	}
	return out, nil
}

func (r *GroupRepository) getOne(ctx context.Context, column, value string) (group.Group, bool, error) {
	query, args, err := qb.Select("*").From("groups").Where(qb.Eq(column, value)).ToSQL()
	if err != nil {
		return group.Group{}, false, fmt.Errorf("build get group by %s query: %w", column, err)
	}

	var row groupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return group.Group{}, false, nil
		}
		return group.Group{}, false, fmt.Errorf("get group by %s: %w", column, err)
	}
	return groupFromRow(row), true, nil
}

func buildListGroupsQuery(filter group.ListFilter) (string, []any, error) {
	conditions := make([]qb.Condition, 0, 3)
	if filter.AdminUserID != "" {
		conditions = append(conditions, qb.Eq("admin_id", filter.AdminUserID))
	}
	if filter.MemberUserID != "" {
		conditions = append(conditions, qb.Expr(
			"EXISTS (SELECT 1 FROM group_members gm WHERE gm.group_id = groups.id AND gm.user_id = ?)",
			filter.MemberUserID,
		))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		conditions = append(conditions, qb.ILike("name", qb.ContainsPattern(search)))
	}

	return qb.Select("*").
		From("groups").
		Where(conditions...).
		OrderBy("created_at", "id").
		ToSQL()
}

func buildRefreshPlayerCountQuery(groupID string) (string, []any, error) {
	return qb.Update("groups").
		SetExpr("player_count", "(SELECT COUNT(*) FROM group_members WHERE group_id = ?)", groupID).
		Where(qb.Eq("id", groupID)).
		ToSQL()
}

func groupRowFromDomain(g group.Group) groupTableModel {
	return groupTableModel{
		ID:            g.ID,
		Name:          g.Name,
		Description:   stringPtr(g.Description),
		AdminID:       g.AdminID,
		PlayerCount:   g.PlayerCount,
		InviteCode:    g.InviteCode,
		InviteLink:    stringPtr(g.InviteLink),
		ScoringSystem: g.ScoringSystem,
		Status:        g.Status,
		CreatedAt:     g.CreatedAt,
	}
}

func groupFromRow(row groupTableModel) group.Group {
	return group.Group{
		ID:            row.ID,
		Name:          row.Name,
		Description:   derefString(row.Description),
		AdminID:       row.AdminID,
		PlayerCount:   row.PlayerCount,
		InviteCode:    row.InviteCode,
		InviteLink:    derefString(row.InviteLink),
		ScoringSystem: row.ScoringSystem,
		Status:        row.Status,
		CreatedAt:     row.CreatedAt,
	}
}

func memberInsertFromDomain(m group.Member) groupMemberInsertModel {
	return groupMemberInsertModel{
		GroupID:  m.GroupID,
		UserID:   m.UserID,
		JoinedAt: m.JoinedAt,
		Points:   m.Points,
		IsAdmin:  m.IsAdmin,
	}
}

func memberFromRow(row groupMemberTableModel) group.Member {
	return group.Member{
		GroupID:  row.GroupID,
		UserID:   row.UserID,
		JoinedAt: row.JoinedAt,
		Points:   row.Points,
		IsAdmin:  row.IsAdmin,
		Seq:      row.Seq,
	}
}
