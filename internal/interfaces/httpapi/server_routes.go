package httpapi

import "net/http"

const seasonPath = "/v1/leagues/{leagueID}/seasons/{year}"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerRegistryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/leagues", handler.CreateLeague)
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("POST /v1/seasons", handler.CreateSeason)
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("POST /v1/teams", handler.RegisterTeam)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("POST /v1/referees", handler.RegisterReferee)
	mux.HandleFunc("GET /v1/referees", handler.ListReferees)
}

func registerLeagueSeasonRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/league-seasons", handler.CreateLeagueSeason)
	mux.HandleFunc("GET /v1/seasons/{year}/league-seasons", handler.ListLeagueSeasons)
	mux.HandleFunc("POST /v1/seasons/{year}/schedule", handler.ScheduleYear)
	mux.HandleFunc("GET /v1/seasons/{year}/standings", handler.StandingsForYear)

	mux.HandleFunc("GET "+seasonPath, handler.GetLeagueSeason)
	mux.HandleFunc("POST "+seasonPath+"/teams", handler.AddSeasonTeam)
	mux.HandleFunc("POST "+seasonPath+"/referees", handler.AddSeasonReferee)
	mux.HandleFunc("PUT "+seasonPath+"/score-policy", handler.ChangeScorePolicy)
	mux.HandleFunc("PUT "+seasonPath+"/game-policy", handler.ChangeGamePolicy)
	mux.HandleFunc("POST "+seasonPath+"/schedule", handler.ScheduleMatches)
	mux.HandleFunc("DELETE "+seasonPath+"/schedule", handler.ResetSchedule)
	mux.HandleFunc("POST "+seasonPath+"/referee-assignments", handler.ReassignReferees)
	mux.HandleFunc("GET "+seasonPath+"/fixtures", handler.ListFixtures)
	mux.HandleFunc("PUT "+seasonPath+"/fixtures/{fixtureID}/result", handler.ReportResult)
	mux.HandleFunc("PUT "+seasonPath+"/fixtures/{fixtureID}/status", handler.SetFixtureStatus)
	mux.HandleFunc("GET "+seasonPath+"/standings", handler.GetStandings)
	mux.HandleFunc("GET "+seasonPath+"/teams/{teamID}/fixtures", handler.ListTeamFixtures)
}
