package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/domain/policy"
	"github.com/riskibarqy/league-season/internal/domain/team"
	qb "github.com/riskibarqy/league-season/internal/platform/querybuilder"
	"github.com/riskibarqy/league-season/internal/platform/resilience"
)

// LeagueSeasonRepository stores the roster as team ids; FindTeams joins them
// back against the team registry.
type LeagueSeasonRepository struct {
	store
}

func NewLeagueSeasonRepository(db *sqlx.DB, breaker *resilience.CircuitBreaker) *LeagueSeasonRepository {
	return &LeagueSeasonRepository{store: newStore(db, breaker)}
}

func (r *LeagueSeasonRepository) Create(ctx context.Context, item leagueseason.LeagueSeason) error {
	query, args, err := qb.InsertModel("league_seasons", leagueSeasonInsertFromDomain(item), "")
	if err != nil {
		return fmt.Errorf("build insert league season query: %w", err)
	}
	if _, err := r.exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert league season=%s: %w", item.Key, leagueseason.ErrAlreadyExists)
		}
		return fmt.Errorf("insert league season=%s: %w", item.Key, err)
	}
	return nil
}

func (r *LeagueSeasonRepository) GetByKey(ctx context.Context, key leagueseason.Key) (leagueseason.LeagueSeason, bool, error) {
	query, args, err := qb.Select("*").From("league_seasons").
		Where(
			qb.Eq("league_public_id", key.LeagueID),
			qb.Eq("season_year", key.Year),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return leagueseason.LeagueSeason{}, false, fmt.Errorf("build get league season query: %w", err)
	}

	var row leagueSeasonTableModel
	found, err := r.get(ctx, &row, query, args...)
	if err != nil {
		return leagueseason.LeagueSeason{}, false, fmt.Errorf("get league season=%s: %w", key, err)
	}
	if !found {
		return leagueseason.LeagueSeason{}, false, nil
	}

	teams, err := r.teamsByIDs(ctx, row.TeamIDs)
	if err != nil {
		return leagueseason.LeagueSeason{}, false, err
	}
	item, err := leagueSeasonFromRow(row, teams)
	if err != nil {
		return leagueseason.LeagueSeason{}, false, err
	}
	return item, true, nil
}

func (r *LeagueSeasonRepository) ListByYear(ctx context.Context, year int) ([]leagueseason.LeagueSeason, error) {
	query, args, err := qb.Select("*").From("league_seasons").
		Where(qb.Eq("season_year", year), qb.IsNull("deleted_at")).
		OrderBy("league_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list league seasons query: %w", err)
	}

	var rows []leagueSeasonTableModel
	if err := r.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list league seasons year=%d: %w", year, err)
	}

	ids := make([]string, 0)
	for _, row := range rows {
		ids = append(ids, row.TeamIDs...)
	}
	teams, err := r.teamsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]leagueseason.LeagueSeason, 0, len(rows))
	for _, row := range rows {
		item, err := leagueSeasonFromRow(row, teams)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *LeagueSeasonRepository) Save(ctx context.Context, item leagueseason.LeagueSeason) error {
	model := leagueSeasonInsertFromDomain(item)
	query, args, err := qb.Update("league_seasons").
		Set("meetings_per_pair", model.MeetingsPerPair).
		Set("min_days_between_matches", model.MinDaysBetweenMatches).
		Set("horizon_days", model.HorizonDays).
		Set("points_win", model.PointsWin).
		Set("points_draw", model.PointsDraw).
		Set("points_loss", model.PointsLoss).
		Set("tie_breakers", model.TieBreakers).
		Set("start_date", model.StartDate).
		Set("team_public_ids", model.TeamIDs).
		Set("referee_public_ids", model.RefereeIDs).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", model.PublicID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update league season query: %w", err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update league season=%s: %w", item.Key, err)
	}
	if affected == 0 {
		return fmt.Errorf("update league season=%s: no row updated", item.Key)
	}
	return nil
}

func (r *LeagueSeasonRepository) FindTeams(ctx context.Context, key leagueseason.Key) ([]team.Team, error) {
	query, args, err := qb.Select("team_public_ids").From("league_seasons").
		Where(
			qb.Eq("league_public_id", key.LeagueID),
			qb.Eq("season_year", key.Year),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build find teams query: %w", err)
	}

	var ids pq.StringArray
	found, err := r.get(ctx, &ids, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find teams league season=%s: %w", key, err)
	}
	if !found {
		return nil, fmt.Errorf("find teams league season=%s: not found", key)
	}

	byID, err := r.teamsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *LeagueSeasonRepository) teamsByIDs(ctx context.Context, ids []string) (map[string]team.Team, error) {
	out := make(map[string]team.Team, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := qb.Select("*").From("teams").
		Where(qb.Expr("public_id = ANY(?)", pq.Array(ids)), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roster teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roster teams: %w", err)
	}
	for _, row := range rows {
		out[row.PublicID] = teamFromRow(row)
	}
	return out, nil
}

func leagueSeasonInsertFromDomain(item leagueseason.LeagueSeason) leagueSeasonInsertModel {
	refereeIDs := item.RefereeIDs
	if refereeIDs == nil {
		refereeIDs = []string{}
	}
	return leagueSeasonInsertModel{
		PublicID:              item.ID(),
		LeagueID:              item.Key.LeagueID,
		SeasonYear:            item.Key.Year,
		MeetingsPerPair:       item.GamePolicy.MeetingsPerPair,
		MinDaysBetweenMatches: item.GamePolicy.MinDaysBetweenMatches,
		HorizonDays:           item.GamePolicy.HorizonDays,
		PointsWin:             item.ScorePolicy.PointsWin,
		PointsDraw:            item.ScorePolicy.PointsDraw,
		PointsLoss:            item.ScorePolicy.PointsLoss,
		TieBreakers:           item.ScorePolicy.TieBreakerStrings(),
		StartDate:             item.StartDate.UTC(),
		TeamIDs:               team.IDs(item.Teams),
		RefereeIDs:            refereeIDs,
	}
}

// leagueSeasonFromRow keeps roster order; ids no longer in the registry are
// dropped.
func leagueSeasonFromRow(row leagueSeasonTableModel, teams map[string]team.Team) (leagueseason.LeagueSeason, error) {
	tbs, err := policy.ParseTieBreakers(strings.Join(row.TieBreakers, ","))
	if err != nil {
		return leagueseason.LeagueSeason{}, fmt.Errorf("decode tie breakers league season=%s: %w", row.PublicID, err)
	}
	sp, err := policy.NewScorePolicy(row.PointsWin, row.PointsDraw, row.PointsLoss, tbs...)
	if err != nil {
		return leagueseason.LeagueSeason{}, fmt.Errorf("decode score policy league season=%s: %w", row.PublicID, err)
	}

	roster := make([]team.Team, 0, len(row.TeamIDs))
	for _, id := range row.TeamIDs {
		if t, ok := teams[id]; ok {
			roster = append(roster, t)
		}
	}

	return leagueseason.LeagueSeason{
		Key: leagueseason.Key{LeagueID: row.LeagueID, Year: row.SeasonYear},
		GamePolicy: policy.GamePolicy{
			MeetingsPerPair:       row.MeetingsPerPair,
			MinDaysBetweenMatches: row.MinDaysBetweenMatches,
			HorizonDays:           row.HorizonDays,
		},
		ScorePolicy: sp,
		StartDate:   row.StartDate.UTC(),
		Teams:       roster,
		RefereeIDs:  append([]string(nil), row.RefereeIDs...),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
