package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/league-season/internal/domain/fixture"
	"github.com/riskibarqy/league-season/internal/usecase"
)

func (h *Handler) CreateLeagueSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeagueSeason")
	defer span.End()

	var req createLeagueSeasonRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: start_date must be YYYY-MM-DD", usecase.ErrInvalidInput))
		return
	}

	item, err := h.seasonService.CreateLeagueSeason(ctx, usecase.CreateLeagueSeasonInput{
		LeagueID:              req.LeagueID,
		Year:                  req.Year,
		MeetingsPerPair:       req.GamePolicy.MeetingsPerPair,
		MinDaysBetweenMatches: req.GamePolicy.MinDaysBetweenMatches,
		HorizonDays:           req.GamePolicy.HorizonDays,
		Score:                 req.ScorePolicy.toInput(),
		StartDate:             startDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create league season failed", "league_id", req.LeagueID, "year", req.Year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueSeasonToDTO(item))
}

func (h *Handler) ListLeagueSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueSeasons")
	defer span.End()

	year, err := pathYear(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasons, err := h.seasonService.ListLeagueSeasons(ctx, year)
	if err != nil {
		h.logger.ErrorContext(ctx, "list league seasons failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueSeasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, leagueSeasonToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeagueSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueSeason")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.GetLeagueSeason(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "get league season failed", "season", key.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueSeasonToDTO(item))
}

func (h *Handler) AddSeasonTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddSeasonTeam")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req addMemberRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	added, err := h.seasonService.AddTeam(ctx, key, req.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "add season team failed", "season", key.String(), "team_id", req.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"team_id": req.ID, "added": added})
}

func (h *Handler) AddSeasonReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddSeasonReferee")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req addMemberRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	added, err := h.seasonService.AddReferee(ctx, key, req.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "add season referee failed", "season", key.String(), "referee_id", req.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"referee_id": req.ID, "added": added})
}

func (h *Handler) ChangeScorePolicy(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ChangeScorePolicy")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req scorePolicyRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.ChangeScorePolicy(ctx, key, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "change score policy failed", "season", key.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueSeasonToDTO(item))
}

func (h *Handler) ChangeGamePolicy(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ChangeGamePolicy")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req gamePolicyRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.ChangeGamePolicy(ctx, key, usecase.GamePolicyInput{
		MeetingsPerPair:       req.MeetingsPerPair,
		MinDaysBetweenMatches: req.MinDaysBetweenMatches,
		HorizonDays:           req.HorizonDays,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "change game policy failed", "season", key.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueSeasonToDTO(item))
}

func (h *Handler) ScheduleMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleMatches")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.seasonService.ScheduleMatches(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "schedule matches failed", "season", key.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, scheduleToDTO(result))
}

func (h *Handler) ResetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetSchedule")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.seasonService.ResetSchedule(ctx, key); err != nil {
		h.logger.WarnContext(ctx, "reset schedule failed", "season", key.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"season_id": key.ID(), "status": "reset"})
}

func (h *Handler) ReassignReferees(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReassignReferees")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.seasonService.ReassignReferees(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "reassign referees failed", "season", key.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assignmentDTO{
		Assigned:        result.Assigned,
		Fixtures:        fixturesToDTO(result.Fixtures),
		RefereeFailures: failuresToDTO(result.Failures),
	})
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.seasonService.ListFixtures(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "season", key.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		want := fixture.NormalizeStatus(status)
		filtered := make([]fixture.Fixture, 0, len(items))
		for _, item := range items {
			if fixture.NormalizeStatus(item.Status) == want {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTO(items))
}

func (h *Handler) ReportResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReportResult")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	var req reportResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.ReportResult(ctx, key, fixtureID, fixture.Result{
		HomeGoals:           req.HomeGoals,
		AwayGoals:           req.AwayGoals,
		Forfeit:             req.Forfeit,
		ForfeitWinnerTeamID: strings.TrimSpace(req.ForfeitWinnerTeamID),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "report result failed", "season", key.String(), "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}

func (h *Handler) SetFixtureStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetFixtureStatus")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	var req setFixtureStatusRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.SetFixtureStatus(ctx, key, fixtureID, req.Status)
	if err != nil {
		h.logger.WarnContext(ctx, "set fixture status failed", "season", key.String(), "fixture_id", fixtureID, "status", req.Status, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.seasonService.GetStandings(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "season", key.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonStandingsDTO{
		LeagueID: key.LeagueID,
		Year:     key.Year,
		Rows:     standingsToDTO(rows),
	})
}

// ListTeamFixtures returns the fixtures of one team within a league season.
func (h *Handler) ListTeamFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamFixtures")
	defer span.End()

	key, err := pathSeasonKey(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	schedule, err := h.seasonService.TeamFixtures(ctx, key.Year, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team fixtures failed", "season", key.String(), "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	seasonID := key.ID()
	items := make([]fixture.Fixture, 0, len(schedule.Fixtures))
	for _, f := range schedule.Fixtures {
		if f.SeasonID == seasonID {
			items = append(items, f)
		}
	}

	writeSuccess(ctx, w, http.StatusOK, teamScheduleDTO{
		TeamID:   schedule.TeamID,
		Fixtures: fixturesToDTO(items),
	})
}

func (h *Handler) ScheduleYear(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleYear")
	defer span.End()

	year, err := pathYear(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.seasonService.ScheduleYear(ctx, year)
	if err != nil {
		h.logger.ErrorContext(ctx, "schedule year failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bulkScheduleToDTO(result))
}

func (h *Handler) StandingsForYear(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StandingsForYear")
	defer span.End()

	year, err := pathYear(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tables, err := h.seasonService.StandingsForYear(ctx, year)
	if err != nil {
		h.logger.ErrorContext(ctx, "standings for year failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonStandingsDTO, 0, len(tables))
	for _, t := range tables {
		items = append(items, seasonStandingsDTO{
			LeagueID: t.Key.LeagueID,
			Year:     t.Key.Year,
			Rows:     standingsToDTO(t.Rows),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
