package httpapi

import (
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/group"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	"github.com/riskibarqy/prediction-league/internal/usecase"
)

type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

type authDTO struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

type groupDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	AdminID       string    `json:"adminId"`
	PlayerCount   int       `json:"playerCount"`
	InviteCode    string    `json:"inviteCode"`
	InviteLink    *string   `json:"inviteLink"`
	ScoringSystem string    `json:"scoringSystem"`
	CreatedAt     time.Time `json:"createdAt"`
	Status        string    `json:"status"`
	IsMember      bool      `json:"isMember"`
	IsAdmin       bool      `json:"isAdmin"`
}

type groupMemberDTO struct {
	UserID   string    `json:"userId"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Avatar   *string   `json:"avatar"`
	JoinedAt time.Time `json:"joinedAt"`
	Points   int       `json:"points"`
	IsAdmin  bool      `json:"isAdmin"`
	Position *int      `json:"position,omitempty"`
}

type predictionDTO struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"matchId"`
	UserID    string    `json:"userId"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
	Points    *int      `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type matchDTO struct {
	ID             string         `json:"id"`
	HomeTeam       string         `json:"homeTeam"`
	AwayTeam       string         `json:"awayTeam"`
	HomeFlag       *string        `json:"homeFlag"`
	AwayFlag       *string        `json:"awayFlag"`
	Date           string         `json:"date"`
	Time           *string        `json:"time"`
	Status         string         `json:"status"`
	HomeScore      *int           `json:"homeScore"`
	AwayScore      *int           `json:"awayScore"`
	MatchNumber    *int           `json:"matchNumber"`
	Stage          *string        `json:"stage"`
	Group          *string        `json:"group"`
	Stadium        *string        `json:"stadium"`
	City           *string        `json:"city"`
	UserPrediction *predictionDTO `json:"userPrediction"`
}

type adminStatsDTO struct {
	TotalUsers       int `json:"totalUsers"`
	TotalGroups      int `json:"totalGroups"`
	ActiveMatches    int `json:"activeMatches"`
	TotalPredictions int `json:"totalPredictions"`
}

type adminReportsDTO struct {
	Users struct {
		Total       int `json:"total"`
		Admins      int `json:"admins"`
		NewThisWeek int `json:"newThisWeek"`
	} `json:"users"`
	Groups struct {
		Total        int           `json:"total"`
		Active       int           `json:"active"`
		AvgMembers   float64       `json:"avgMembers"`
		LargestGroup int           `json:"largestGroup"`
		NewThisWeek  int           `json:"newThisWeek"`
		TopGroups    []topGroupDTO `json:"topGroups"`
	} `json:"groups"`
	Predictions struct {
		Total  int `json:"total"`
		Scored int `json:"scored"`
	} `json:"predictions"`
}

type topGroupDTO struct {
	GroupID         string `json:"groupId"`
	Name            string `json:"name"`
	MemberCount     int    `json:"memberCount"`
	PredictionCount int    `json:"predictionCount"`
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:        v.ID,
		Email:     v.Email,
		Name:      v.Name,
		Role:      v.Role,
		Avatar:    optionalString(v.AvatarURL),
		CreatedAt: v.CreatedAt,
	}
}

func authToDTO(v usecase.AuthResult) authDTO {
	return authDTO{User: userToDTO(v.User), Token: v.Token}
}

func groupViewToDTO(v usecase.GroupView) groupDTO {
	return groupDTO{
		ID:            v.Group.ID,
		Name:          v.Group.Name,
		Description:   optionalString(v.Group.Description),
		AdminID:       v.Group.AdminID,
		PlayerCount:   v.Group.PlayerCount,
		InviteCode:    v.Group.InviteCode,
		InviteLink:    optionalString(v.Group.InviteLink),
		ScoringSystem: v.Group.ScoringSystem,
		CreatedAt:     v.Group.CreatedAt,
		Status:        v.Group.Status,
		IsMember:      v.Viewer.IsMember,
		IsAdmin:       v.Viewer.IsAdmin,
	}
}

func memberToDTO(v group.MemberProfile) groupMemberDTO {
	return groupMemberDTO{
		UserID:   v.UserID,
		Name:     v.UserName,
		Email:    v.UserEmail,
		Avatar:   optionalString(v.AvatarURL),
		JoinedAt: v.JoinedAt,
		Points:   v.Points,
		IsAdmin:  v.IsAdmin,
	}
}

func rankedMemberToDTO(v group.RankedMember) groupMemberDTO {
	out := memberToDTO(v.MemberProfile)
	position := v.Position
	out.Position = &position
	return out
}

func predictionToDTO(v prediction.Prediction) predictionDTO {
	return predictionDTO{
		ID:        v.ID,
		MatchID:   v.MatchID,
		UserID:    v.UserID,
		HomeScore: v.HomeScore,
		AwayScore: v.AwayScore,
		Points:    v.Points,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:          v.ID,
		HomeTeam:    v.HomeTeam,
		AwayTeam:    v.AwayTeam,
		HomeFlag:    optionalString(v.HomeFlag),
		AwayFlag:    optionalString(v.AwayFlag),
		Date:        v.Date,
		Time:        optionalString(v.Time),
		Status:      v.Status,
		HomeScore:   v.HomeScore,
		AwayScore:   v.AwayScore,
		MatchNumber: v.MatchNumber,
		Stage:       optionalString(v.Stage),
		Group:       optionalString(v.GroupLabel),
		Stadium:     optionalString(v.Stadium),
		City:        optionalString(v.City),
	}
}

func matchWithPredictionToDTO(v usecase.MatchWithPrediction) matchDTO {
	out := matchToDTO(v.Match)
	if v.UserPrediction != nil {
		p := predictionToDTO(*v.UserPrediction)
		out.UserPrediction = &p
	}
	return out
}

func adminStatsToDTO(v usecase.AdminStats) adminStatsDTO {
	return adminStatsDTO{
		TotalUsers:       v.TotalUsers,
		TotalGroups:      v.TotalGroups,
		ActiveMatches:    v.ActiveMatches,
		TotalPredictions: v.TotalPredictions,
	}
}

func adminReportsToDTO(v usecase.AdminReports) adminReportsDTO {
	var out adminReportsDTO
	out.Users.Total = v.Users.Total
	out.Users.Admins = v.Users.Admins
	out.Users.NewThisWeek = v.Users.NewThisWeek

	out.Groups.Total = v.Groups.Total
	out.Groups.Active = v.Groups.Active
	out.Groups.AvgMembers = v.Groups.AvgMembers
	out.Groups.LargestGroup = v.Groups.LargestGroup
	out.Groups.NewThisWeek = v.Groups.NewThisWeek
	out.Groups.TopGroups = make([]topGroupDTO, 0, len(v.Groups.TopGroups))
	for _, item := range v.Groups.TopGroups {
		out.Groups.TopGroups = append(out.Groups.TopGroups, topGroupDTO{
			GroupID:         item.GroupID,
			Name:            item.Name,
			MemberCount:     item.MemberCount,
			PredictionCount: item.PredictionCount,
		})
	}

	out.Predictions.Total = v.Predictions.Total
	out.Predictions.Scored = v.Predictions.Scored
	return out
}
