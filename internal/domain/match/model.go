package match

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	StatusUpcoming = "upcoming"
	StatusLive     = "live"
	StatusFinished = "finished"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ErrMatchExists is returned when creating a match whose id is already stored.
var ErrMatchExists = errors.New("match already exists")

// Match is one fixture. Scores stay nil while the match is upcoming.
type Match struct {
	ID          string
	HomeTeam    string
	AwayTeam    string
	HomeFlag    string
	AwayFlag    string
	Date        string
	Time        string
	Status      string
	HomeScore   *int
	AwayScore   *int
	MatchNumber *int
	Stage       string
	GroupLabel  string
	Stadium     string
	City        string
}

type ListFilter struct {
	Status string
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusUpcoming, StatusLive, StatusFinished:
		return true
	default:
		return false
	}
}

func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// Validate checks field formats and the upcoming-has-no-score rule.
func (m Match) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("match id is required")
	}
	if strings.TrimSpace(m.HomeTeam) == "" || strings.TrimSpace(m.AwayTeam) == "" {
		return fmt.Errorf("home and away team are required")
	}
	if !IsValidStatus(m.Status) {
		return fmt.Errorf("invalid status %q", m.Status)
	}
	if _, err := time.Parse(DateLayout, m.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	if m.Time != "" {
		if _, err := time.Parse(TimeLayout, m.Time); err != nil {
			return fmt.Errorf("time must be HH:MM: %w", err)
		}
	}
	if m.Status == StatusUpcoming && (m.HomeScore != nil || m.AwayScore != nil) {
		return fmt.Errorf("upcoming match cannot carry a score")
	}
	if (m.HomeScore != nil && *m.HomeScore < 0) || (m.AwayScore != nil && *m.AwayScore < 0) {
		return fmt.Errorf("scores must be non-negative")
	}
	if m.MatchNumber != nil && *m.MatchNumber <= 0 {
		return fmt.Errorf("match number must be > 0")
	}
	return nil
}

// IsActive reports matches that still accept or await results.
func (m Match) IsActive() bool {
	return m.Status != StatusFinished
}
