package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/domain/team"
	qb "github.com/riskibarqy/league-season/internal/platform/querybuilder"
	"github.com/riskibarqy/league-season/internal/platform/resilience"
)

const (
	teamUpsertSuffix = `ON CONFLICT (public_id) DO UPDATE SET
    name = EXCLUDED.name,
    short = EXCLUDED.short,
    active = EXCLUDED.active,
    updated_at = NOW(),
    deleted_at = NULL`
	refereeUpsertSuffix = `ON CONFLICT (public_id) DO UPDATE SET
    name = EXCLUDED.name,
    qualification = EXCLUDED.qualification,
    active = EXCLUDED.active,
    updated_at = NOW(),
    deleted_at = NULL`
)

type TeamRepository struct {
	store
}

func NewTeamRepository(db *sqlx.DB, breaker *resilience.CircuitBreaker) *TeamRepository {
	return &TeamRepository{store: newStore(db, breaker)}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}
	return teamsFromRows(rows), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("public_id", teamID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	found, err := r.get(ctx, &row, query, args...)
	if err != nil {
		return team.Team{}, false, fmt.Errorf("get team=%s: %w", teamID, err)
	}
	if !found {
		return team.Team{}, false, nil
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.Team) error {
	query, args, err := qb.InsertModel("teams", teamInsertModel{
		PublicID: item.ID,
		Name:     item.Name,
		Short:    item.Short,
		Active:   item.Active,
	}, teamUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert team query: %w", err)
	}
	if _, err := r.exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team=%s: %w", item.ID, err)
	}
	return nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:     row.PublicID,
		Name:   row.Name,
		Short:  row.Short,
		Active: row.Active,
	}
}

func teamsFromRows(rows []teamTableModel) []team.Team {
	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out
}

type RefereeRepository struct {
	store
}

func NewRefereeRepository(db *sqlx.DB, breaker *resilience.CircuitBreaker) *RefereeRepository {
	return &RefereeRepository{store: newStore(db, breaker)}
}

func (r *RefereeRepository) ListActive(ctx context.Context) ([]referee.Referee, error) {
	query, args, err := qb.Select("*").From("referees").
		Where(qb.Eq("active", true), qb.IsNull("deleted_at")).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active referees query: %w", err)
	}

	var rows []refereeTableModel
	if err := r.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active referees: %w", err)
	}

	out := make([]referee.Referee, 0, len(rows))
	for _, row := range rows {
		out = append(out, refereeFromRow(row))
	}
	return out, nil
}

func (r *RefereeRepository) GetByID(ctx context.Context, refereeID string) (referee.Referee, bool, error) {
	query, args, err := qb.Select("*").From("referees").
		Where(qb.Eq("public_id", refereeID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return referee.Referee{}, false, fmt.Errorf("build get referee query: %w", err)
	}

	var row refereeTableModel
	found, err := r.get(ctx, &row, query, args...)
	if err != nil {
		return referee.Referee{}, false, fmt.Errorf("get referee=%s: %w", refereeID, err)
	}
	if !found {
		return referee.Referee{}, false, nil
	}
	return refereeFromRow(row), true, nil
}

func (r *RefereeRepository) Upsert(ctx context.Context, item referee.Referee) error {
	query, args, err := qb.InsertModel("referees", refereeInsertModel{
		PublicID:      item.ID,
		Name:          item.Name,
		Qualification: int(item.Qualification),
		Active:        item.Active,
	}, refereeUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert referee query: %w", err)
	}
	if _, err := r.exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert referee=%s: %w", item.ID, err)
	}
	return nil
}

func refereeFromRow(row refereeTableModel) referee.Referee {
	return referee.Referee{
		ID:            row.PublicID,
		Name:          row.Name,
		Qualification: referee.Level(row.Qualification),
		Active:        row.Active,
	}
}
