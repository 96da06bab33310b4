package prediction

import "time"

// Prediction is a user's guessed score for one match. Points stays nil until scored.
type Prediction struct {
	ID        string
	MatchID   string
	UserID    string
	HomeScore int
	AwayScore int
	Points    *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ListFilter struct {
	UserID  string
	MatchID string
	// UserIDs restricts results to any of the listed users when non-empty.
	UserIDs []string
}

func (f ListFilter) Matches(p Prediction) bool {
	if f.UserID != "" && p.UserID != f.UserID {
		return false
	}
	if f.MatchID != "" && p.MatchID != f.MatchID {
		return false
	}
	if len(f.UserIDs) > 0 {
		for _, userID := range f.UserIDs {
			if userID == p.UserID {
				return true
			}
		}
		return false
	}
	return true
}
