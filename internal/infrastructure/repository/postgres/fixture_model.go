package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type fixtureTableModel struct {
	ID                  int64          `db:"id"`
	PublicID            string         `db:"public_id"`
	LeagueSeasonID      string         `db:"league_season_public_id"`
	Round               int            `db:"round"`
	HomeTeamID          string         `db:"home_team_public_id"`
	AwayTeamID          string         `db:"away_team_public_id"`
	ScheduledAt         time.Time      `db:"scheduled_at"`
	MainRefereeID       sql.NullString `db:"main_referee_public_id"`
	AssistantRefereeIDs pq.StringArray `db:"assistant_referee_public_ids"`
	Status              string         `db:"status"`
	HomeGoals           sql.NullInt64  `db:"home_goals"`
	AwayGoals           sql.NullInt64  `db:"away_goals"`
	Forfeit             bool           `db:"forfeit"`
	ForfeitWinnerTeamID sql.NullString `db:"forfeit_winner_team_public_id"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
	DeletedAt           *time.Time     `db:"deleted_at"`
}

type fixtureInsertModel struct {
	PublicID            string         `db:"public_id"`
	LeagueSeasonID      string         `db:"league_season_public_id"`
	Round               int            `db:"round"`
	HomeTeamID          string         `db:"home_team_public_id"`
	AwayTeamID          string         `db:"away_team_public_id"`
	ScheduledAt         time.Time      `db:"scheduled_at"`
	MainRefereeID       sql.NullString `db:"main_referee_public_id"`
	AssistantRefereeIDs pq.StringArray `db:"assistant_referee_public_ids"`
	Status              string         `db:"status"`
}
