package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-season/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-season/internal/platform/id"
	"github.com/riskibarqy/league-season/internal/platform/logging"
	"github.com/riskibarqy/league-season/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	refereeRepo := memory.NewRefereeRepository(memory.SeedReferees())
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues(), memory.SeedSeasons())
	seasonRepo := memory.NewLeagueSeasonRepository(memory.SeedLeagueSeasons(), teamRepo)
	fixtureRepo := memory.NewFixtureRepository(nil)

	seasonService := usecase.NewSeasonService(usecase.SeasonRepositories{
		League:       leagueRepo,
		LeagueSeason: seasonRepo,
		Team:         teamRepo,
		Referee:      refereeRepo,
		Fixture:      fixtureRepo,
	}, usecase.DefaultSeasonServiceConfig(), logger)

	handler := NewHandler(
		usecase.NewLeagueService(leagueRepo, logger),
		usecase.NewParticipantService(teamRepo, refereeRepo, id.NewUUIDGenerator(), logger),
		seasonService,
		logger,
	)
	return NewRouter(handler, logger, RouterOptions{CORSAllowedOrigins: []string{"*"}})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("%s %s: unmarshal response %q: %v", method, path, rec.Body.String(), err)
	}
	return rec.Code, out
}

func errorStatus(body map[string]any) string {
	errObj, _ := body["error"].(map[string]any)
	status, _ := errObj["status"].(string)
	return status
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	code, body := doJSON(t, newTestRouter(t), http.MethodGet, "/healthz", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	data, _ := body["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", body)
	}
}

func TestRouter_LeagueRegistry(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	code, body := doJSON(t, router, http.MethodPost, "/v1/leagues", `{"name":"Serie A"}`)
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%v", code, body)
	}
	data, _ := body["data"].(map[string]any)
	if data["id"] != "serie-a" {
		t.Fatalf("unexpected league id: %v", data["id"])
	}

	code, body = doJSON(t, router, http.MethodPost, "/v1/leagues", `{"name":"Serie A"}`)
	if code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate league, got %d body=%v", code, body)
	}

	code, body = doJSON(t, router, http.MethodPost, "/v1/leagues", `{"name":""}`)
	if code != http.StatusBadRequest || errorStatus(body) != "INVALID_ARGUMENT" {
		t.Fatalf("expected 400 INVALID_ARGUMENT, got %d body=%v", code, body)
	}

	code, body = doJSON(t, router, http.MethodPost, "/v1/leagues", `{"name":"Serie A","extra":true}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 on unknown field, got %d body=%v", code, body)
	}

	code, body = doJSON(t, router, http.MethodGet, "/v1/leagues", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	items, _ := body["data"].([]any)
	if len(items) != 3 {
		t.Fatalf("expected 3 leagues, got %d", len(items))
	}
}

func TestRouter_SeasonLifecycle(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	base := "/v1/leagues/" + memory.LeagueIDLiga1Indonesia + "/seasons/2026"

	code, body := doJSON(t, router, http.MethodGet, base, "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%v", code, body)
	}
	data, _ := body["data"].(map[string]any)
	if data["state"] != "CONFIGURING" {
		t.Fatalf("unexpected state before scheduling: %v", data["state"])
	}

	code, body = doJSON(t, router, http.MethodPost, base+"/schedule", "")
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%v", code, body)
	}
	data, _ = body["data"].(map[string]any)
	fixtures, _ := data["fixtures"].([]any)
	if len(fixtures) != 12 {
		t.Fatalf("expected 12 fixtures, got %d", len(fixtures))
	}
	first, _ := fixtures[0].(map[string]any)
	fixtureID, _ := first["id"].(string)

	code, body = doJSON(t, router, http.MethodPost, base+"/schedule", "")
	if code != http.StatusConflict {
		t.Fatalf("expected 409 on second schedule, got %d body=%v", code, body)
	}

	code, body = doJSON(t, router, http.MethodPut, base+"/score-policy", `{"points_win":2,"points_draw":1,"points_loss":0}`)
	if code != http.StatusConflict {
		t.Fatalf("expected 409 on locked policy, got %d body=%v", code, body)
	}

	code, body = doJSON(t, router, http.MethodPut, base+"/fixtures/"+fixtureID+"/result", `{"home_goals":2,"away_goals":1}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200 on result, got %d body=%v", code, body)
	}

	code, body = doJSON(t, router, http.MethodPut, base+"/fixtures/"+fixtureID+"/result", `{"home_goals":0,"away_goals":0}`)
	if code != http.StatusConflict {
		t.Fatalf("expected 409 on played fixture, got %d body=%v", code, body)
	}

	code, body = doJSON(t, router, http.MethodGet, base+"/standings", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200 on standings, got %d body=%v", code, body)
	}
	data, _ = body["data"].(map[string]any)
	rows, _ := data["rows"].([]any)
	if len(rows) != 4 {
		t.Fatalf("expected 4 standing rows, got %d", len(rows))
	}
	top, _ := rows[0].(map[string]any)
	if top["team_id"] != first["home_team_id"] || top["points"] != float64(3) {
		t.Fatalf("unexpected leader: %v", top)
	}

	code, body = doJSON(t, router, http.MethodGet, base+"/fixtures?status=played", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	played, _ := body["data"].([]any)
	if len(played) != 1 {
		t.Fatalf("expected 1 played fixture, got %d", len(played))
	}
}

func TestRouter_PathErrors(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "bad year", method: http.MethodGet, path: "/v1/leagues/premier-league/seasons/twenty", want: http.StatusBadRequest},
		{name: "unknown season", method: http.MethodGet, path: "/v1/leagues/serie-z/seasons/2026", want: http.StatusNotFound},
		{name: "unknown fixture", method: http.MethodPut, path: "/v1/leagues/premier-league/seasons/2026/fixtures/nope/status", want: http.StatusNotFound},
		{name: "known league", method: http.MethodGet, path: "/v1/leagues/premier-league", want: http.StatusOK},
		{name: "unknown league", method: http.MethodGet, path: "/v1/leagues/serie-z", want: http.StatusNotFound},
		{name: "known team", method: http.MethodGet, path: "/v1/teams/eng-ars", want: http.StatusOK},
		{name: "unknown team", method: http.MethodGet, path: "/v1/teams/nope", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := ""
			if tt.method == http.MethodPut {
				body = `{"status":"POSTPONED"}`
			}
			code, resp := doJSON(t, router, tt.method, tt.path, body)
			if code != tt.want {
				t.Fatalf("expected %d, got %d body=%v", tt.want, code, resp)
			}
		})
	}
}

func TestRouter_ScheduleYear(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	code, body := doJSON(t, router, http.MethodPost, "/v1/seasons/2026/schedule", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%v", code, body)
	}
	data, _ := body["data"].(map[string]any)
	if data["scheduled_count"] != float64(2) || data["failed_count"] != float64(0) {
		t.Fatalf("unexpected bulk result: %v", data)
	}

	code, body = doJSON(t, router, http.MethodGet, "/v1/seasons/2026/standings", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%v", code, body)
	}
	tables, _ := body["data"].([]any)
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
}

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimit(0.001, 1, next)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", second.Code)
	}

	health := httptest.NewRecorder()
	handler.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if health.Code != http.StatusOK {
		t.Fatalf("expected health check to bypass limiter, got %d", health.Code)
	}
}
