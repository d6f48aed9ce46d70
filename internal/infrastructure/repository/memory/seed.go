package memory

import (
	"time"

	"github.com/riskibarqy/league-season/internal/domain/league"
	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/domain/policy"
	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/domain/team"
)

const (
	LeagueIDLiga1Indonesia = "liga-1-indonesia"
	LeagueIDPremierLeague  = "premier-league"

	SeedYear = 2026
)

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDLiga1Indonesia, Name: "Liga 1 Indonesia"},
		{ID: LeagueIDPremierLeague, Name: "Premier League"},
	}
}

func SeedSeasons() []league.Season {
	return []league.Season{{Year: SeedYear - 1}, {Year: SeedYear}}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "idn-persija", Name: "Persija Jakarta", Short: "PSJ", Active: true},
		{ID: "idn-persib", Name: "Persib Bandung", Short: "PSB", Active: true},
		{ID: "idn-persebaya", Name: "Persebaya Surabaya", Short: "PRB", Active: true},
		{ID: "idn-baliutd", Name: "Bali United", Short: "BU", Active: true},
		{ID: "eng-ars", Name: "Arsenal", Short: "ARS", Active: true},
		{ID: "eng-liv", Name: "Liverpool", Short: "LIV", Active: true},
		{ID: "eng-che", Name: "Chelsea", Short: "CHE", Active: true},
	}
}

func SeedReferees() []referee.Referee {
	return []referee.Referee{
		{ID: "ref-thoriq", Name: "Thoriq Alkatiri", Qualification: referee.LevelInternational, Active: true},
		{ID: "ref-yudi", Name: "Yudi Nurcahya", Qualification: referee.LevelNational, Active: true},
		{ID: "ref-naufal", Name: "Naufal Adya", Qualification: referee.LevelRegional, Active: true},
		{ID: "ref-aprisman", Name: "Aprisman Aranda", Qualification: referee.LevelTrainee, Active: true},
		{ID: "ref-oliver", Name: "Michael Oliver", Qualification: referee.LevelInternational, Active: true},
		{ID: "ref-taylor", Name: "Anthony Taylor", Qualification: referee.LevelInternational, Active: true},
		{ID: "ref-retired", Name: "Mike Dean", Qualification: referee.LevelInternational, Active: false},
	}
}

// SeedLeagueSeasons returns configuring seasons for SeedYear, ready to be
// scheduled.
func SeedLeagueSeasons() []leagueseason.LeagueSeason {
	teams := SeedTeams()
	start := time.Date(SeedYear, time.August, 1, 0, 0, 0, 0, time.UTC)
	double, _ := policy.NewGamePolicy(2, 3)
	single, _ := policy.NewGamePolicy(1, 6)

	return []leagueseason.LeagueSeason{
		{
			Key:         leagueseason.Key{LeagueID: LeagueIDLiga1Indonesia, Year: SeedYear},
			GamePolicy:  double,
			ScorePolicy: policy.DefaultScorePolicy(),
			StartDate:   start,
			Teams:       teams[:4],
			RefereeIDs:  []string{"ref-aprisman", "ref-naufal", "ref-thoriq", "ref-yudi"},
		},
		{
			Key:         leagueseason.Key{LeagueID: LeagueIDPremierLeague, Year: SeedYear},
			GamePolicy:  single,
			ScorePolicy: policy.DefaultScorePolicy(),
			StartDate:   start.AddDate(0, 0, 15),
			Teams:       teams[4:],
			RefereeIDs:  []string{"ref-oliver", "ref-taylor"},
		},
	}
}
