package postgres

import "time"

type userTableModel struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	AvatarURL    *string   `db:"avatar_url"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type groupTableModel struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Description   *string   `db:"description"`
	AdminID       string    `db:"admin_id"`
	PlayerCount   int       `db:"player_count"`
	InviteCode    string    `db:"invite_code"`
	InviteLink    *string   `db:"invite_link"`
	ScoringSystem string    `db:"scoring_system"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

type groupMemberTableModel struct {
	Seq      int64     `db:"seq"`
	GroupID  string    `db:"group_id"`
	UserID   string    `db:"user_id"`
	JoinedAt time.Time `db:"joined_at"`
	Points   int       `db:"points"`
	IsAdmin  bool      `db:"is_admin"`
}

type groupMemberInsertModel struct {
	GroupID  string    `db:"group_id"`
	UserID   string    `db:"user_id"`
	JoinedAt time.Time `db:"joined_at"`
	Points   int       `db:"points"`
	IsAdmin  bool      `db:"is_admin"`
}

type groupMemberProfileRow struct {
	Seq           int64     `db:"seq"`
	GroupID       string    `db:"group_id"`
	UserID        string    `db:"user_id"`
	JoinedAt      time.Time `db:"joined_at"`
	Points        int       `db:"points"`
	IsAdmin       bool      `db:"is_admin"`
	UserName      string    `db:"user_name"`
	UserEmail     string    `db:"user_email"`
	UserAvatarURL *string   `db:"user_avatar_url"`
}

type matchTableModel struct {
	ID          string    `db:"id"`
	HomeTeam    string    `db:"home_team"`
	AwayTeam    string    `db:"away_team"`
	HomeFlag    *string   `db:"home_flag"`
	AwayFlag    *string   `db:"away_flag"`
	MatchDate   time.Time `db:"match_date"`
	MatchTime   *string   `db:"match_time"`
	Status      string    `db:"status"`
	HomeScore   *int      `db:"home_score"`
	AwayScore   *int      `db:"away_score"`
	MatchNumber *int      `db:"match_number"`
	Stage       *string   `db:"stage"`
	GroupLabel  *string   `db:"group_label"`
	Stadium     *string   `db:"stadium"`
	City        *string   `db:"city"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type matchInsertModel struct {
	ID          string  `db:"id"`
	HomeTeam    string  `db:"home_team"`
	AwayTeam    string  `db:"away_team"`
	HomeFlag    *string `db:"home_flag"`
	AwayFlag    *string `db:"away_flag"`
	MatchDate   string  `db:"match_date"`
	MatchTime   *string `db:"match_time"`
	Status      string  `db:"status"`
	HomeScore   *int    `db:"home_score"`
	AwayScore   *int    `db:"away_score"`
	MatchNumber *int    `db:"match_number"`
	Stage       *string `db:"stage"`
	GroupLabel  *string `db:"group_label"`
	Stadium     *string `db:"stadium"`
	City        *string `db:"city"`
}

type predictionTableModel struct {
	ID        string    `db:"id"`
	MatchID   string    `db:"match_id"`
	UserID    string    `db:"user_id"`
	HomeScore int       `db:"home_score"`
	AwayScore int       `db:"away_score"`
	Points    *int      `db:"points"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
