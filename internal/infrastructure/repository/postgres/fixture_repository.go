package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/league-season/internal/domain/fixture"
	qb "github.com/riskibarqy/league-season/internal/platform/querybuilder"
	"github.com/riskibarqy/league-season/internal/platform/resilience"
)

// fixtureInsertBatch bounds the bind parameters of one multi-row insert.
const fixtureInsertBatch = 200

type FixtureRepository struct {
	store
}

func NewFixtureRepository(db *sqlx.DB, breaker *resilience.CircuitBreaker) *FixtureRepository {
	return &FixtureRepository{store: newStore(db, breaker)}
}

// SaveFixtures replaces the season's fixtures in one transaction; an empty
// list clears them.
func (r *FixtureRepository) SaveFixtures(ctx context.Context, seasonID string, items []fixture.Fixture) error {
	return r.tx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		clearQuery, clearArgs, err := qb.DeleteFrom("fixtures").
			Where(qb.Eq("league_season_public_id", seasonID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build clear fixtures query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
			return fmt.Errorf("clear fixtures season=%s: %w", seasonID, err)
		}

		for start := 0; start < len(items); start += fixtureInsertBatch {
			end := min(start+fixtureInsertBatch, len(items))
			models := make([]fixtureInsertModel, 0, end-start)
			for _, item := range items[start:end] {
				models = append(models, fixtureInsertFromDomain(seasonID, item))
			}

			query, args, err := qb.InsertModels("fixtures", models, "")
			if err != nil {
				return fmt.Errorf("build insert fixtures query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert fixtures season=%s: %w", seasonID, err)
			}
		}
		return nil
	})
}

func (r *FixtureRepository) SaveAssignments(ctx context.Context, items []fixture.Fixture) error {
	return r.tx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, item := range items {
			query, args, err := qb.Update("fixtures").
				Set("main_referee_public_id", nullString(item.MainRefereeID)).
				Set("assistant_referee_public_ids", assistantArray(item.AssistantRefereeIDs)).
				SetExpr("updated_at", "NOW()").
				Where(qb.Eq("public_id", item.ID), qb.IsNull("deleted_at")).
				ToSQL()
			if err != nil {
				return fmt.Errorf("build update assignment query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("update assignment fixture=%s: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *FixtureRepository) UpdateResult(ctx context.Context, item fixture.Fixture) error {
	var home, away sql.NullInt64
	var forfeit bool
	var winner sql.NullString
	if item.Result != nil {
		home = sql.NullInt64{Int64: int64(item.Result.HomeGoals), Valid: true}
		away = sql.NullInt64{Int64: int64(item.Result.AwayGoals), Valid: true}
		forfeit = item.Result.Forfeit
		winner = nullString(item.Result.ForfeitWinnerTeamID)
	}

	query, args, err := qb.Update("fixtures").
		Set("status", fixture.NormalizeStatus(item.Status)).
		Set("scheduled_at", item.ScheduledAt.UTC()).
		Set("home_goals", home).
		Set("away_goals", away).
		Set("forfeit", forfeit).
		Set("forfeit_winner_team_public_id", winner).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", item.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update fixture result query: %w", err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update fixture result fixture=%s: %w", item.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("update fixture result fixture=%s: no row updated", item.ID)
	}
	return nil
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, seasonID string) ([]fixture.Fixture, error) {
	return r.list(ctx, qb.Eq("league_season_public_id", seasonID))
}

func (r *FixtureRepository) ListPlayed(ctx context.Context, seasonID string) ([]fixture.Fixture, error) {
	return r.list(ctx,
		qb.Eq("league_season_public_id", seasonID),
		qb.Eq("status", fixture.StatusPlayed),
	)
}

func (r *FixtureRepository) list(ctx context.Context, conds ...qb.Condition) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(append(conds, qb.IsNull("deleted_at"))...).
		OrderBy("round", "scheduled_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixtureFromRow(row))
	}
	return out, nil
}

func fixtureInsertFromDomain(seasonID string, item fixture.Fixture) fixtureInsertModel {
	return fixtureInsertModel{
		PublicID:            item.ID,
		LeagueSeasonID:      seasonID,
		Round:               item.Round,
		HomeTeamID:          item.HomeTeamID,
		AwayTeamID:          item.AwayTeamID,
		ScheduledAt:         item.ScheduledAt.UTC(),
		MainRefereeID:       nullString(item.MainRefereeID),
		AssistantRefereeIDs: assistantArray(item.AssistantRefereeIDs),
		Status:              fixture.NormalizeStatus(item.Status),
	}
}

// fixtureFromRow leaves Result nil unless both goal columns are set, so a
// played row with missing goals surfaces as a data integrity fault upstream.
func fixtureFromRow(row fixtureTableModel) fixture.Fixture {
	out := fixture.Fixture{
		ID:            row.PublicID,
		SeasonID:      row.LeagueSeasonID,
		Round:         row.Round,
		HomeTeamID:    row.HomeTeamID,
		AwayTeamID:    row.AwayTeamID,
		ScheduledAt:   row.ScheduledAt.UTC(),
		MainRefereeID: row.MainRefereeID.String,
		Status:        fixture.NormalizeStatus(row.Status),
	}
	if len(row.AssistantRefereeIDs) > 0 {
		out.AssistantRefereeIDs = append([]string(nil), row.AssistantRefereeIDs...)
	}
	if row.HomeGoals.Valid && row.AwayGoals.Valid {
		out.Result = &fixture.Result{
			HomeGoals:           int(row.HomeGoals.Int64),
			AwayGoals:           int(row.AwayGoals.Int64),
			Forfeit:             row.Forfeit,
			ForfeitWinnerTeamID: row.ForfeitWinnerTeamID.String,
		}
	}
	return out
}

func assistantArray(ids []string) pq.StringArray {
	if ids == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(ids)
}
