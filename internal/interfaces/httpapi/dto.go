package httpapi

import (
	"time"

	"github.com/riskibarqy/league-season/internal/domain/fixture"
	"github.com/riskibarqy/league-season/internal/domain/league"
	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/domain/leaguestanding"
	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/domain/team"
	"github.com/riskibarqy/league-season/internal/usecase"
)

const dateLayout = "2006-01-02"

type createLeagueRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type createSeasonRequest struct {
	Year int `json:"year" validate:"required,gte=1950"`
}

type registerTeamRequest struct {
	ID     string `json:"id" validate:"omitempty,max=64"`
	Name   string `json:"name" validate:"required,max=120"`
	Short  string `json:"short" validate:"omitempty,max=8"`
	Active *bool  `json:"active"`
}

type registerRefereeRequest struct {
	ID     string `json:"id" validate:"omitempty,max=64"`
	Name   string `json:"name" validate:"required,max=120"`
	Level  string `json:"level" validate:"required"`
	Active *bool  `json:"active"`
}

type scorePolicyRequest struct {
	PointsWin   int      `json:"points_win" validate:"gte=0"`
	PointsDraw  int      `json:"points_draw" validate:"gte=0"`
	PointsLoss  int      `json:"points_loss" validate:"gte=0"`
	TieBreakers []string `json:"tie_breakers" validate:"omitempty,dive,required"`
}

func (r scorePolicyRequest) toInput() usecase.ScorePolicyInput {
	return usecase.ScorePolicyInput{
		PointsWin:   r.PointsWin,
		PointsDraw:  r.PointsDraw,
		PointsLoss:  r.PointsLoss,
		TieBreakers: r.TieBreakers,
	}
}

type gamePolicyRequest struct {
	MeetingsPerPair       int `json:"meetings_per_pair" validate:"required,gte=1"`
	MinDaysBetweenMatches int `json:"min_days_between_matches" validate:"gte=0"`
	HorizonDays           int `json:"horizon_days" validate:"gte=0"`
}

type createLeagueSeasonRequest struct {
	LeagueID    string             `json:"league_id" validate:"required"`
	Year        int                `json:"year" validate:"required,gte=1950"`
	StartDate   string             `json:"start_date" validate:"required,datetime=2006-01-02"`
	GamePolicy  gamePolicyRequest  `json:"game_policy"`
	ScorePolicy scorePolicyRequest `json:"score_policy"`
}

type addMemberRequest struct {
	ID string `json:"id" validate:"required"`
}

type reportResultRequest struct {
	HomeGoals           int    `json:"home_goals" validate:"gte=0"`
	AwayGoals           int    `json:"away_goals" validate:"gte=0"`
	Forfeit             bool   `json:"forfeit"`
	ForfeitWinnerTeamID string `json:"forfeit_winner_team_id" validate:"required_if=Forfeit true"`
}

type setFixtureStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type leagueDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type seasonDTO struct {
	Year int `json:"year"`
}

type teamDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Short  string `json:"short,omitempty"`
	Active bool   `json:"active"`
}

type refereeDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Level  string `json:"level"`
	Active bool   `json:"active"`
}

type scorePolicyDTO struct {
	PointsWin   int      `json:"points_win"`
	PointsDraw  int      `json:"points_draw"`
	PointsLoss  int      `json:"points_loss"`
	TieBreakers []string `json:"tie_breakers"`
}

type gamePolicyDTO struct {
	MeetingsPerPair       int `json:"meetings_per_pair"`
	MinDaysBetweenMatches int `json:"min_days_between_matches"`
	HorizonDays           int `json:"horizon_days"`
}

type leagueSeasonDTO struct {
	ID           string         `json:"id"`
	LeagueID     string         `json:"league_id"`
	Year         int            `json:"year"`
	State        string         `json:"state"`
	StartDate    string         `json:"start_date"`
	GamePolicy   gamePolicyDTO  `json:"game_policy"`
	ScorePolicy  scorePolicyDTO `json:"score_policy"`
	Teams        []teamDTO      `json:"teams"`
	RefereeIDs   []string       `json:"referee_ids"`
	FixtureCount int            `json:"fixture_count"`
}

type resultDTO struct {
	HomeGoals           int    `json:"home_goals"`
	AwayGoals           int    `json:"away_goals"`
	Forfeit             bool   `json:"forfeit"`
	ForfeitWinnerTeamID string `json:"forfeit_winner_team_id,omitempty"`
}

type fixtureDTO struct {
	ID                  string     `json:"id"`
	SeasonID            string     `json:"season_id"`
	Round               int        `json:"round"`
	HomeTeamID          string     `json:"home_team_id"`
	AwayTeamID          string     `json:"away_team_id"`
	ScheduledAt         string     `json:"scheduled_at"`
	MainRefereeID       string     `json:"main_referee_id,omitempty"`
	AssistantRefereeIDs []string   `json:"assistant_referee_ids"`
	Status              string     `json:"status"`
	Result              *resultDTO `json:"result,omitempty"`
}

type roundDTO struct {
	Number       int    `json:"number"`
	Date         string `json:"date"`
	ByeTeamID    string `json:"bye_team_id,omitempty"`
	FixtureCount int    `json:"fixture_count"`
}

type refereeFailureDTO struct {
	FixtureID string `json:"fixture_id"`
	Date      string `json:"date"`
	Message   string `json:"message"`
}

type scheduleDTO struct {
	LeagueID        string              `json:"league_id"`
	Year            int                 `json:"year"`
	Fixtures        []fixtureDTO        `json:"fixtures"`
	Rounds          []roundDTO          `json:"rounds"`
	RefereeFailures []refereeFailureDTO `json:"referee_failures"`
}

type assignmentDTO struct {
	Assigned        int                 `json:"assigned"`
	Fixtures        []fixtureDTO        `json:"fixtures"`
	RefereeFailures []refereeFailureDTO `json:"referee_failures"`
}

type standingDTO struct {
	Rank           int    `json:"rank"`
	TeamID         string `json:"team_id"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
	Form           string `json:"form"`
}

type seasonStandingsDTO struct {
	LeagueID string        `json:"league_id"`
	Year     int           `json:"year"`
	Rows     []standingDTO `json:"rows"`
}

type bulkScheduleItemDTO struct {
	LeagueID        string `json:"league_id"`
	Year            int    `json:"year"`
	Status          string `json:"status"`
	Fixtures        int    `json:"fixtures"`
	RefereeFailures int    `json:"referee_failures"`
	DurationMs      int64  `json:"duration_ms"`
	Message         string `json:"message,omitempty"`
}

type bulkScheduleDTO struct {
	Year           int                   `json:"year"`
	WorkerCount    int                   `json:"worker_count"`
	ScheduledCount int                   `json:"scheduled_count"`
	SkippedCount   int                   `json:"skipped_count"`
	FailedCount    int                   `json:"failed_count"`
	Items          []bulkScheduleItemDTO `json:"items"`
}

type teamScheduleDTO struct {
	TeamID   string       `json:"team_id"`
	Fixtures []fixtureDTO `json:"fixtures"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{ID: v.ID, Name: v.Name}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{ID: v.ID, Name: v.Name, Short: v.Short, Active: v.Active}
}

func refereeToDTO(v referee.Referee) refereeDTO {
	return refereeDTO{ID: v.ID, Name: v.Name, Level: v.Qualification.String(), Active: v.Active}
}

func leagueSeasonToDTO(v leagueseason.LeagueSeason) leagueSeasonDTO {
	teams := make([]teamDTO, 0, len(v.Teams))
	for _, t := range v.Teams {
		teams = append(teams, teamToDTO(t))
	}
	refereeIDs := append([]string{}, v.RefereeIDs...)

	return leagueSeasonDTO{
		ID:        v.ID(),
		LeagueID:  v.Key.LeagueID,
		Year:      v.Key.Year,
		State:     string(v.State()),
		StartDate: formatDate(v.StartDate),
		GamePolicy: gamePolicyDTO{
			MeetingsPerPair:       v.GamePolicy.MeetingsPerPair,
			MinDaysBetweenMatches: v.GamePolicy.MinDaysBetweenMatches,
			HorizonDays:           v.GamePolicy.Horizon(),
		},
		ScorePolicy: scorePolicyDTO{
			PointsWin:   v.ScorePolicy.PointsWin,
			PointsDraw:  v.ScorePolicy.PointsDraw,
			PointsLoss:  v.ScorePolicy.PointsLoss,
			TieBreakers: v.ScorePolicy.TieBreakerStrings(),
		},
		Teams:        teams,
		RefereeIDs:   refereeIDs,
		FixtureCount: len(v.Fixtures),
	}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	out := fixtureDTO{
		ID:                  v.ID,
		SeasonID:            v.SeasonID,
		Round:               v.Round,
		HomeTeamID:          v.HomeTeamID,
		AwayTeamID:          v.AwayTeamID,
		ScheduledAt:         v.ScheduledAt.UTC().Format(time.RFC3339),
		MainRefereeID:       v.MainRefereeID,
		AssistantRefereeIDs: append([]string{}, v.AssistantRefereeIDs...),
		Status:              fixture.NormalizeStatus(v.Status),
	}
	if v.Result != nil {
		out.Result = &resultDTO{
			HomeGoals:           v.Result.HomeGoals,
			AwayGoals:           v.Result.AwayGoals,
			Forfeit:             v.Result.Forfeit,
			ForfeitWinnerTeamID: v.Result.ForfeitWinnerTeamID,
		}
	}
	return out
}

func fixturesToDTO(items []fixture.Fixture) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fixtureToDTO(item))
	}
	return out
}

func failuresToDTO(items []referee.Failure) []refereeFailureDTO {
	out := make([]refereeFailureDTO, 0, len(items))
	for _, item := range items {
		msg := ""
		if item.Err != nil {
			msg = item.Err.Error()
		}
		out = append(out, refereeFailureDTO{FixtureID: item.FixtureID, Date: item.Date, Message: msg})
	}
	return out
}

func scheduleToDTO(v usecase.ScheduleResult) scheduleDTO {
	rounds := make([]roundDTO, 0, len(v.Rounds))
	for _, r := range v.Rounds {
		rounds = append(rounds, roundDTO{
			Number:       r.Number,
			Date:         formatDate(r.Date),
			ByeTeamID:    r.ByeTeamID,
			FixtureCount: r.FixtureCount,
		})
	}
	return scheduleDTO{
		LeagueID:        v.Key.LeagueID,
		Year:            v.Key.Year,
		Fixtures:        fixturesToDTO(v.Fixtures),
		Rounds:          rounds,
		RefereeFailures: failuresToDTO(v.Failures),
	}
}

func standingsToDTO(rows []leaguestanding.Row) []standingDTO {
	out := make([]standingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, standingDTO{
			Rank:           r.Rank,
			TeamID:         r.TeamID,
			Played:         r.Played,
			Won:            r.Won,
			Drawn:          r.Drawn,
			Lost:           r.Lost,
			GoalsFor:       r.GoalsFor,
			GoalsAgainst:   r.GoalsAgainst,
			GoalDifference: r.GoalDifference,
			Points:         r.Points,
			Form:           r.Form,
		})
	}
	return out
}

func bulkScheduleToDTO(v usecase.BulkScheduleResult) bulkScheduleDTO {
	items := make([]bulkScheduleItemDTO, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, bulkScheduleItemDTO{
			LeagueID:        item.Key.LeagueID,
			Year:            item.Key.Year,
			Status:          item.Status,
			Fixtures:        item.Fixtures,
			RefereeFailures: item.RefereeFailures,
			DurationMs:      item.DurationMs,
			Message:         item.Message,
		})
	}
	return bulkScheduleDTO{
		Year:           v.Year,
		WorkerCount:    v.WorkerCount,
		ScheduledCount: v.ScheduledCount,
		SkippedCount:   v.SkippedCount,
		FailedCount:    v.FailedCount,
		Items:          items,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
