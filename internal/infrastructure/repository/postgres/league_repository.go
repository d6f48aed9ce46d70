package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/league-season/internal/domain/league"
	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	qb "github.com/riskibarqy/league-season/internal/platform/querybuilder"
	"github.com/riskibarqy/league-season/internal/platform/resilience"
)

type LeagueRepository struct {
	store
}

func NewLeagueRepository(db *sqlx.DB, breaker *resilience.CircuitBreaker) *LeagueRepository {
	return &LeagueRepository{store: newStore(db, breaker)}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.League{ID: row.PublicID, Name: row.Name})
	}
	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	return r.getBy(ctx, qb.Eq("public_id", leagueID))
}

func (r *LeagueRepository) GetByName(ctx context.Context, name string) (league.League, bool, error) {
	return r.getBy(ctx, qb.Expr("LOWER(name) = LOWER(?)", name))
}

func (r *LeagueRepository) getBy(ctx context.Context, cond qb.Condition) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(cond, qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	found, err := r.get(ctx, &row, query, args...)
	if err != nil {
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}
	if !found {
		return league.League{}, false, nil
	}
	return league.League{ID: row.PublicID, Name: row.Name}, true, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	query, args, err := qb.InsertModel("leagues", leagueInsertModel{
		PublicID: item.ID,
		Name:     item.Name,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert league query: %w", err)
	}
	if _, err := r.exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert league=%s: %w", item.ID, leagueseason.ErrAlreadyExists)
		}
		return fmt.Errorf("insert league=%s: %w", item.ID, err)
	}
	return nil
}

func (r *LeagueRepository) ListSeasons(ctx context.Context) ([]league.Season, error) {
	query, args, err := qb.Select("year", "created_at").From("seasons").
		OrderBy("year").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}

	out := make([]league.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.Season{Year: row.Year})
	}
	return out, nil
}

func (r *LeagueRepository) GetSeason(ctx context.Context, year int) (league.Season, bool, error) {
	query, args, err := qb.Select("year", "created_at").From("seasons").
		Where(qb.Eq("year", year)).
		ToSQL()
	if err != nil {
		return league.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	found, err := r.get(ctx, &row, query, args...)
	if err != nil {
		return league.Season{}, false, fmt.Errorf("get season=%d: %w", year, err)
	}
	if !found {
		return league.Season{}, false, nil
	}
	return league.Season{Year: row.Year}, true, nil
}

func (r *LeagueRepository) CreateSeason(ctx context.Context, item league.Season) error {
	query, args, err := qb.InsertInto("seasons").
		Columns("year").
		Values(item.Year).
		Suffix("ON CONFLICT (year) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert season query: %w", err)
	}
	if _, err := r.exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert season=%d: %w", item.Year, err)
	}
	return nil
}
