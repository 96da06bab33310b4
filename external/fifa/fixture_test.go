package fifa

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/prediction-league/internal/domain/match"
)

const sampleFixtures = `[
  {"match_id": "400021443", "match_number": 1, "home_team": "México", "away_team": "Sudáfrica",
   "date": "2026-06-11T19:00:00Z", "match_status": 1, "home_score": null, "away_score": null,
   "stage": "First Stage", "group": "Group A", "stadium": "Estadio Azteca", "city": "Mexico City"},
  {"match_id": null, "match_number": 73.0, "home_team": null, "away_team": "Narnia",
   "date": "2026-06-28T16:30:00Z", "match_status": 0, "home_score": 2, "away_score": "1",
   "stage": "Round of 32", "group": null, "stadium": null, "city": null},
  {"match_id": "live-1", "match_number": null, "home_team": "USA", "away_team": "England",
   "date": "2026-06-12T20:00:00", "match_status": 2, "home_score": 0, "away_score": 0}
]`

func TestDecodeAndMap(t *testing.T) {
	t.Parallel()

	fixtures, err := Decode([]byte(sampleFixtures))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(fixtures) != 3 {
		t.Fatalf("expected 3 fixtures, got %d", len(fixtures))
	}

	opener, err := fixtures[0].ToMatch()
	if err != nil {
		t.Fatalf("map opener: %v", err)
	}
	if opener.ID != "400021443" || opener.Status != match.StatusUpcoming {
		t.Fatalf("unexpected opener: %+v", opener)
	}
	if opener.Date != "2026-06-11" || opener.Time != "19:00" {
		t.Fatalf("unexpected kickoff: %s %s", opener.Date, opener.Time)
	}
	if opener.HomeFlag != "🇲🇽" || opener.AwayFlag != "🇿🇦" {
		t.Fatalf("unexpected flags: %s %s", opener.HomeFlag, opener.AwayFlag)
	}
	if opener.GroupLabel != "Group A" || opener.City != "Mexico City" {
		t.Fatalf("unexpected venue fields: %+v", opener)
	}
	if err := opener.Validate(); err != nil {
		t.Fatalf("mapped match should validate: %v", err)
	}

	knockout, err := fixtures[1].ToMatch()
	if err != nil {
		t.Fatalf("map knockout: %v", err)
	}
	if knockout.ID != "match-73" {
		t.Fatalf("expected id derived from match number, got %q", knockout.ID)
	}
	if knockout.HomeTeam != "TBD" || knockout.HomeFlag != "🏴" || knockout.AwayFlag != "🏳️" {
		t.Fatalf("unexpected placeholder mapping: %+v", knockout)
	}
	if knockout.Status != match.StatusFinished || knockout.HomeScore == nil || *knockout.AwayScore != 1 {
		t.Fatalf("unexpected finished mapping: %+v", knockout)
	}

	live, err := fixtures[2].ToMatch()
	if err != nil {
		t.Fatalf("map live: %v", err)
	}
	if live.Status != match.StatusLive || live.MatchNumber != nil || live.Time != "20:00" {
		t.Fatalf("unexpected live mapping: %+v", live)
	}
}

func TestToMatchDropsScoresForUpcoming(t *testing.T) {
	t.Parallel()

	fixtures, err := Decode([]byte(`[{"match_id":"m-1","home_team":"USA","away_team":"Canada","date":"2026-06-12T18:00:00Z","match_status":1,"home_score":1,"away_score":0}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out, err := fixtures[0].ToMatch()
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if out.HomeScore != nil || out.AwayScore != nil {
		t.Fatalf("upcoming match must not carry scores")
	}
}

func TestToMatchRejectsMissingIdentity(t *testing.T) {
	t.Parallel()

	fixtures, _ := Decode([]byte(`[{"home_team":"USA","away_team":"Canada","date":"2026-06-12T18:00:00Z"}]`))
	if _, err := fixtures[0].ToMatch(); err == nil {
		t.Fatalf("expected error without match id or number")
	}
}

func TestDecodeRejectsFractionalNumbers(t *testing.T) {
	t.Parallel()

	if _, err := Decode([]byte(`[{"match_id":"m-1","match_number":1.5}]`)); err == nil {
		t.Fatalf("expected error for fractional match number")
	}
}

func TestLoaderReadsFileAndURL(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fixtures.json")
	if err := os.WriteFile(path, []byte(sampleFixtures), 0o600); err != nil {
		t.Fatalf("write fixture file: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fixtures.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(sampleFixtures))
	}))
	defer srv.Close()

	loader := NewLoader(LoaderConfig{HTTPClient: srv.Client()})

	fromFile, err := loader.Load(t.Context(), path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	fromURL, err := loader.Load(t.Context(), srv.URL+"/fixtures.json")
	if err != nil {
		t.Fatalf("load url: %v", err)
	}
	if len(fromFile) != 3 || len(fromURL) != 3 {
		t.Fatalf("unexpected fixture counts: file=%d url=%d", len(fromFile), len(fromURL))
	}

	if _, err := loader.Load(t.Context(), srv.URL+"/missing.json"); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestTeamFlag(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":         "🏴",
		"TBD":      "🏴",
		"Brazil":   "🇧🇷",
		"Brasil":   "🇧🇷",
		"Atlantis": "🏳️",
	}
	for team, want := range cases {
		if got := TeamFlag(team); got != want {
			t.Fatalf("TeamFlag(%q) = %q, want %q", team, got, want)
		}
	}
}
