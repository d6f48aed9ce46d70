package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/league-season/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo leagues, teams, referees and configuring
// seasons into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(what, query string, arg any) error {
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return fmt.Errorf("bind seed %s query: %w", what, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed %s: %w", what, err)
		}
		return nil
	}

	for _, s := range memory.SeedSeasons() {
		if err := exec(fmt.Sprintf("season %d", s.Year), `
INSERT INTO seasons (year) VALUES (:year)
ON CONFLICT (year) DO NOTHING`, map[string]any{"year": s.Year}); err != nil {
			return err
		}
	}

	for _, l := range memory.SeedLeagues() {
		if err := exec("league "+l.ID, `
INSERT INTO leagues (public_id, name)
VALUES (:public_id, :name)
ON CONFLICT (public_id) DO NOTHING`, leagueInsertModel{PublicID: l.ID, Name: l.Name}); err != nil {
			return err
		}
	}

	for _, t := range memory.SeedTeams() {
		if err := exec("team "+t.ID, `
INSERT INTO teams (public_id, name, short, active)
VALUES (:public_id, :name, :short, :active)
ON CONFLICT (public_id) DO NOTHING`, teamInsertModel{PublicID: t.ID, Name: t.Name, Short: t.Short, Active: t.Active}); err != nil {
			return err
		}
	}

	for _, r := range memory.SeedReferees() {
		if err := exec("referee "+r.ID, `
INSERT INTO referees (public_id, name, qualification, active)
VALUES (:public_id, :name, :qualification, :active)
ON CONFLICT (public_id) DO NOTHING`, refereeInsertModel{
			PublicID:      r.ID,
			Name:          r.Name,
			Qualification: int(r.Qualification),
			Active:        r.Active,
		}); err != nil {
			return err
		}
	}

	for _, item := range memory.SeedLeagueSeasons() {
		model := leagueSeasonInsertFromDomain(item)
		if err := exec("league season "+model.PublicID, `
INSERT INTO league_seasons (
    public_id, league_public_id, season_year, meetings_per_pair, min_days_between_matches,
    horizon_days, points_win, points_draw, points_loss, tie_breakers, start_date,
    team_public_ids, referee_public_ids
) VALUES (
    :public_id, :league_public_id, :season_year, :meetings_per_pair, :min_days_between_matches,
    :horizon_days, :points_win, :points_draw, :points_loss, :tie_breakers, :start_date,
    :team_public_ids, :referee_public_ids
)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":                model.PublicID,
			"league_public_id":         model.LeagueID,
			"season_year":              model.SeasonYear,
			"meetings_per_pair":        model.MeetingsPerPair,
			"min_days_between_matches": model.MinDaysBetweenMatches,
			"horizon_days":             model.HorizonDays,
			"points_win":               model.PointsWin,
			"points_draw":              model.PointsDraw,
			"points_loss":              model.PointsLoss,
			"tie_breakers":             model.TieBreakers,
			"start_date":               model.StartDate,
			"team_public_ids":          model.TeamIDs,
			"referee_public_ids":       model.RefereeIDs,
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
