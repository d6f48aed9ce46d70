package postgres

import (
	"time"

	"github.com/lib/pq"
)

type leagueSeasonTableModel struct {
	ID                    int64          `db:"id"`
	PublicID              string         `db:"public_id"`
	LeagueID              string         `db:"league_public_id"`
	SeasonYear            int            `db:"season_year"`
	MeetingsPerPair       int            `db:"meetings_per_pair"`
	MinDaysBetweenMatches int            `db:"min_days_between_matches"`
	HorizonDays           int            `db:"horizon_days"`
	PointsWin             int            `db:"points_win"`
	PointsDraw            int            `db:"points_draw"`
	PointsLoss            int            `db:"points_loss"`
	TieBreakers           pq.StringArray `db:"tie_breakers"`
	StartDate             time.Time      `db:"start_date"`
	TeamIDs               pq.StringArray `db:"team_public_ids"`
	RefereeIDs            pq.StringArray `db:"referee_public_ids"`
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"`
	DeletedAt             *time.Time     `db:"deleted_at"`
}

type leagueSeasonInsertModel struct {
	PublicID              string         `db:"public_id"`
	LeagueID              string         `db:"league_public_id"`
	SeasonYear            int            `db:"season_year"`
	MeetingsPerPair       int            `db:"meetings_per_pair"`
	MinDaysBetweenMatches int            `db:"min_days_between_matches"`
	HorizonDays           int            `db:"horizon_days"`
	PointsWin             int            `db:"points_win"`
	PointsDraw            int            `db:"points_draw"`
	PointsLoss            int            `db:"points_loss"`
	TieBreakers           pq.StringArray `db:"tie_breakers"`
	StartDate             time.Time      `db:"start_date"`
	TeamIDs               pq.StringArray `db:"team_public_ids"`
	RefereeIDs            pq.StringArray `db:"referee_public_ids"`
}
