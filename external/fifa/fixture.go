package fifa

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
)

const (
	statusCodeUpcoming = 1
	statusCodeLive     = 2
)

// Fixture is one record of the scraped fixture export.
type Fixture struct {
	MatchID     string  `json:"match_id"`
	MatchNumber flexInt `json:"match_number"`
	HomeTeam    *string `json:"home_team"`
	AwayTeam    *string `json:"away_team"`
	Date        *string `json:"date"`
	MatchStatus flexInt `json:"match_status"`
	HomeScore   flexInt `json:"home_score"`
	AwayScore   flexInt `json:"away_score"`
	Stage       *string `json:"stage"`
	Group       *string `json:"group"`
	Stadium     *string `json:"stadium"`
	City        *string `json:"city"`
}

// flexInt accepts ints, floats with no fraction, numeric strings, and null.
type flexInt struct {
	Value *int
}

func (f *flexInt) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		f.Value = nil
		return nil
	}
	text := strings.Trim(string(raw), `"`)
	if text == "" || strings.EqualFold(text, "nan") {
		f.Value = nil
		return nil
	}

	number, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", text, err)
	}
	value := int(number)
	if float64(value) != number {
		return fmt.Errorf("invalid integer %q: has fraction", text)
	}
	f.Value = &value
	return nil
}

type LoaderConfig struct {
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Loader reads fixture exports from a local file or an http(s) URL.
type Loader struct {
	httpClient *http.Client
}

func NewLoader(cfg LoaderConfig) *Loader {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}
	return &Loader{httpClient: httpClient}
}

func (l *Loader) Load(ctx context.Context, source string) ([]Fixture, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, crerr.New("fixture source is required")
	}

	var (
		raw []byte
		err error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		raw, err = l.fetch(ctx, source)
	} else {
		raw, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, crerr.Wrapf(err, "read fixture source %s", source)
	}

	return Decode(raw)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build fixture request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, crerr.Wrap(err, "fetch fixtures")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, crerr.Newf("fetch fixtures: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func Decode(raw []byte) ([]Fixture, error) {
	var out []Fixture
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, crerr.Wrap(err, "decode fixtures")
	}
	return out, nil
}

// ToMatch maps a fixture record onto a Match. Upcoming matches never carry a score.
func (f Fixture) ToMatch() (match.Match, error) {
	out := match.Match{
		ID:          strings.TrimSpace(f.MatchID),
		HomeTeam:    teamOrTBD(f.HomeTeam),
		AwayTeam:    teamOrTBD(f.AwayTeam),
		Status:      statusFromCode(f.MatchStatus.Value),
		MatchNumber: f.MatchNumber.Value,
		Stage:       deref(f.Stage),
		GroupLabel:  deref(f.Group),
		Stadium:     deref(f.Stadium),
		City:        deref(f.City),
	}
	if out.ID == "" {
		if f.MatchNumber.Value == nil {
			return match.Match{}, crerr.New("fixture has neither match_id nor match_number")
		}
		out.ID = fmt.Sprintf("match-%d", *f.MatchNumber.Value)
	}
	out.HomeFlag = TeamFlag(out.HomeTeam)
	out.AwayFlag = TeamFlag(out.AwayTeam)

	kickoff, err := parseKickoff(deref(f.Date))
	if err != nil {
		return match.Match{}, crerr.Wrapf(err, "parse date for fixture %s", out.ID)
	}
	out.Date = kickoff.Format(match.DateLayout)
	out.Time = kickoff.Format(match.TimeLayout)

	if out.Status != match.StatusUpcoming {
		out.HomeScore = f.HomeScore.Value
		out.AwayScore = f.AwayScore.Value
	}
	return out, nil
}

func statusFromCode(code *int) string {
	if code == nil {
		return match.StatusUpcoming
	}
	switch *code {
	case statusCodeUpcoming:
		return match.StatusUpcoming
	case statusCodeLive:
		return match.StatusLive
	default:
		return match.StatusFinished
	}
}

func parseKickoff(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, crerr.New("date is empty")
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, crerr.Newf("unsupported date format %q", value)
}

func teamOrTBD(name *string) string {
	value := strings.TrimSpace(deref(name))
	if value == "" {
		return teamTBD
	}
	return value
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
