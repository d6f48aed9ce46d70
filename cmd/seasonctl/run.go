package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/league-season/internal/domain/fixture"
	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/domain/leaguestanding"
	"github.com/riskibarqy/league-season/internal/domain/policy"
	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/domain/team"
)

const dateLayout = "2006-01-02"

type teamInput struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active *bool  `json:"active"`
}

type refereeInput struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Level  string `json:"level"`
	Active *bool  `json:"active"`
}

type rulesInput struct {
	MinMainLevel         string `json:"min_main_level"`
	MinAssistantLevel    string `json:"min_assistant_level"`
	AssistantsPerFixture *int   `json:"assistants_per_fixture"`
}

type seasonInput struct {
	LeagueID              string         `json:"league_id"`
	Year                  int            `json:"year"`
	StartDate             string         `json:"start_date"`
	MeetingsPerPair       int            `json:"meetings_per_pair"`
	MinDaysBetweenMatches int            `json:"min_days_between_matches"`
	HorizonDays           int            `json:"horizon_days"`
	Teams                 []teamInput    `json:"teams"`
	Referees              []refereeInput `json:"referees"`
	RefereeRules          *rulesInput    `json:"referee_rules"`
}

type resultJSON struct {
	HomeGoals           int    `json:"home_goals"`
	AwayGoals           int    `json:"away_goals"`
	Forfeit             bool   `json:"forfeit,omitempty"`
	ForfeitWinnerTeamID string `json:"forfeit_winner_team_id,omitempty"`
}

type fixtureJSON struct {
	ID                  string      `json:"id"`
	SeasonID            string      `json:"season_id,omitempty"`
	Round               int         `json:"round"`
	HomeTeamID          string      `json:"home_team_id"`
	AwayTeamID          string      `json:"away_team_id"`
	ScheduledAt         time.Time   `json:"scheduled_at"`
	MainRefereeID       string      `json:"main_referee_id,omitempty"`
	AssistantRefereeIDs []string    `json:"assistant_referee_ids,omitempty"`
	Status              string      `json:"status"`
	Result              *resultJSON `json:"result,omitempty"`
}

type roundJSON struct {
	Number       int    `json:"number"`
	Date         string `json:"date"`
	ByeTeamID    string `json:"bye_team_id,omitempty"`
	FixtureCount int    `json:"fixture_count"`
}

type failureJSON struct {
	FixtureID string `json:"fixture_id"`
	Date      string `json:"date"`
	Message   string `json:"message"`
}

type teamJSON struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type scheduleOutput struct {
	SeasonID        string        `json:"season_id"`
	Teams           []teamJSON    `json:"teams,omitempty"`
	Fixtures        []fixtureJSON `json:"fixtures"`
	Rounds          []roundJSON   `json:"rounds"`
	RefereeFailures []failureJSON `json:"referee_failures"`
}

type standingJSON struct {
	Rank           int    `json:"rank"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name,omitempty"`
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

type standingsOptions struct {
	win         int
	draw        int
	loss        int
	tieBreakers string
}

func runSchedule(in io.Reader, out io.Writer) error {
	var input seasonInput
	decoder := sonic.ConfigDefault.NewDecoder(in)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		return fmt.Errorf("decode season definition: %w", err)
	}

	key := leagueseason.Key{LeagueID: strings.TrimSpace(input.LeagueID), Year: input.Year}
	if err := key.Validate(); err != nil {
		return err
	}
	start, err := time.Parse(dateLayout, strings.TrimSpace(input.StartDate))
	if err != nil {
		return fmt.Errorf("start_date must be YYYY-MM-DD: %w", err)
	}
	gp, err := policy.NewGamePolicy(input.MeetingsPerPair, input.MinDaysBetweenMatches)
	if err != nil {
		return err
	}
	gp = gp.WithHorizon(input.HorizonDays)

	teams := make([]team.Team, 0, len(input.Teams))
	for _, t := range input.Teams {
		item := team.Team{ID: strings.TrimSpace(t.ID), Name: strings.TrimSpace(t.Name), Active: flagOrTrue(t.Active)}
		if item.Name == "" {
			item.Name = item.ID
		}
		if err := item.Validate(); err != nil {
			return err
		}
		teams = append(teams, item)
	}

	referees, err := buildReferees(input.Referees)
	if err != nil {
		return err
	}
	rules, err := buildRules(input.RefereeRules)
	if err != nil {
		return err
	}

	schedule, err := fixture.Generate(teams, gp, start)
	if err != nil {
		return err
	}
	schedule = schedule.ForSeason(key.ID())
	if err := fixture.CheckSchedule(schedule.Fixtures, team.IDs(team.ActiveOnly(teams)), gp.MeetingsPerPair); err != nil {
		return err
	}

	assignment := referee.Assign(schedule.Fixtures, referees, rules)
	if err := referee.CheckAssignments(assignment.Fixtures); err != nil {
		return err
	}
	for _, failure := range assignment.Failures {
		logger.Warn("fixture left without referee", "fixture_id", failure.FixtureID, "date", failure.Date, "error", failure.Err)
	}

	result := scheduleOutput{
		SeasonID:        key.ID(),
		Teams:           make([]teamJSON, 0, len(teams)),
		Fixtures:        make([]fixtureJSON, 0, len(assignment.Fixtures)),
		Rounds:          make([]roundJSON, 0, len(schedule.Rounds)),
		RefereeFailures: make([]failureJSON, 0, len(assignment.Failures)),
	}
	for _, t := range teams {
		result.Teams = append(result.Teams, teamJSON{ID: t.ID, Name: t.Name, Active: t.Active})
	}
	for _, f := range assignment.Fixtures {
		result.Fixtures = append(result.Fixtures, fixtureToJSON(f))
	}
	for _, r := range schedule.Rounds {
		result.Rounds = append(result.Rounds, roundJSON{
			Number:       r.Number,
			Date:         r.Date.UTC().Format(dateLayout),
			ByeTeamID:    r.ByeTeamID,
			FixtureCount: r.FixtureCount,
		})
	}
	for _, failure := range assignment.Failures {
		result.RefereeFailures = append(result.RefereeFailures, failureJSON{
			FixtureID: failure.FixtureID,
			Date:      failure.Date,
			Message:   failure.Err.Error(),
		})
	}

	return writeJSON(out, result)
}

// runStandings accepts either the schedule output or a bare fixtures array.
// Team names, used by the alphabetical tie-breaker, come from the schedule
// output only.
func runStandings(in io.Reader, out io.Writer, opts standingsOptions) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read fixtures: %w", err)
	}

	var items []fixtureJSON
	names := make(map[string]string)
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		err = sonic.UnmarshalString(trimmed, &items)
	} else {
		var doc scheduleOutput
		err = sonic.UnmarshalString(trimmed, &doc)
		items = doc.Fixtures
		for _, t := range doc.Teams {
			names[t.ID] = t.Name
		}
	}
	if err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	tbs, err := policy.ParseTieBreakers(opts.tieBreakers)
	if err != nil {
		return err
	}
	sp, err := policy.NewScorePolicy(opts.win, opts.draw, opts.loss, tbs...)
	if err != nil {
		return err
	}

	fixtures := make([]fixture.Fixture, 0, len(items))
	roster := make([]string, 0)
	seen := make(map[string]struct{})
	for _, item := range items {
		f := fixtureFromJSON(item)
		fixtures = append(fixtures, f)
		for _, id := range []string{f.HomeTeamID, f.AwayTeamID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				roster = append(roster, id)
			}
		}
	}

	rows, err := leaguestanding.Compute(fixtures, sp, leaguestanding.WithRoster(roster), leaguestanding.WithTeamNames(names))
	if err != nil {
		return err
	}

	table := make([]standingJSON, 0, len(rows))
	for _, r := range rows {
		table = append(table, standingJSON{
			Rank:           r.Rank,
			TeamID:         r.TeamID,
			TeamName:       names[r.TeamID],
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
	return writeJSON(out, table)
}

func buildReferees(items []refereeInput) ([]referee.Referee, error) {
	out := make([]referee.Referee, 0, len(items))
	for _, r := range items {
		level, err := referee.ParseLevel(r.Level)
		if err != nil {
			return nil, err
		}
		item := referee.Referee{
			ID:            strings.TrimSpace(r.ID),
			Name:          strings.TrimSpace(r.Name),
			Qualification: level,
			Active:        flagOrTrue(r.Active),
		}
		if item.Name == "" {
			item.Name = item.ID
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func buildRules(in *rulesInput) (referee.Rules, error) {
	rules := referee.DefaultRules()
	if in == nil {
		return rules, nil
	}
	if strings.TrimSpace(in.MinMainLevel) != "" {
		level, err := referee.ParseLevel(in.MinMainLevel)
		if err != nil {
			return referee.Rules{}, err
		}
		rules.MinMainLevel = level
	}
	if strings.TrimSpace(in.MinAssistantLevel) != "" {
		level, err := referee.ParseLevel(in.MinAssistantLevel)
		if err != nil {
			return referee.Rules{}, err
		}
		rules.MinAssistantLevel = level
	}
	if in.AssistantsPerFixture != nil {
		rules.AssistantsPerFixture = *in.AssistantsPerFixture
	}
	return rules, rules.Validate()
}

func fixtureToJSON(f fixture.Fixture) fixtureJSON {
	out := fixtureJSON{
		ID:                  f.ID,
		SeasonID:            f.SeasonID,
		Round:               f.Round,
		HomeTeamID:          f.HomeTeamID,
		AwayTeamID:          f.AwayTeamID,
		ScheduledAt:         f.ScheduledAt.UTC(),
		MainRefereeID:       f.MainRefereeID,
		AssistantRefereeIDs: f.AssistantRefereeIDs,
		Status:              fixture.NormalizeStatus(f.Status),
	}
	if f.Result != nil {
		out.Result = &resultJSON{
			HomeGoals:           f.Result.HomeGoals,
			AwayGoals:           f.Result.AwayGoals,
			Forfeit:             f.Result.Forfeit,
			ForfeitWinnerTeamID: f.Result.ForfeitWinnerTeamID,
		}
	}
	return out
}

func fixtureFromJSON(in fixtureJSON) fixture.Fixture {
	out := fixture.Fixture{
		ID:                  in.ID,
		SeasonID:            in.SeasonID,
		Round:               in.Round,
		HomeTeamID:          in.HomeTeamID,
		AwayTeamID:          in.AwayTeamID,
		ScheduledAt:         in.ScheduledAt,
		MainRefereeID:       in.MainRefereeID,
		AssistantRefereeIDs: in.AssistantRefereeIDs,
		Status:              fixture.NormalizeStatus(in.Status),
	}
	if in.Result != nil {
		out.Result = &fixture.Result{
			HomeGoals:           in.Result.HomeGoals,
			AwayGoals:           in.Result.AwayGoals,
			Forfeit:             in.Result.Forfeit,
			ForfeitWinnerTeamID: in.Result.ForfeitWinnerTeamID,
		}
	}
	return out
}

func writeJSON(out io.Writer, v any) error {
	body, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = out.Write(append(body, '\n'))
	return err
}

func flagOrTrue(v *bool) bool {
	return v == nil || *v
}
