package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/riskibarqy/league-season/internal/domain/fixture"
	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/domain/leaguestanding"
	"github.com/riskibarqy/league-season/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-season/internal/platform/logging"
)

// slowFixtureRepository holds the first ListPlayed call after it has read
// its rows, until release is closed.
type slowFixtureRepository struct {
	fixture.Repository
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (r *slowFixtureRepository) ListPlayed(ctx context.Context, seasonID string) ([]fixture.Fixture, error) {
	items, err := r.Repository.ListPlayed(ctx, seasonID)
	first := false
	r.once.Do(func() { first = true })
	if first {
		close(r.entered)
		<-r.release
	}
	return items, err
}

type standingsReply struct {
	rows []leaguestanding.Row
	err  error
}

func rowOf(rows []leaguestanding.Row, teamID string) (leaguestanding.Row, bool) {
	for _, r := range rows {
		if r.TeamID == teamID {
			return r, true
		}
	}
	return leaguestanding.Row{}, false
}

func TestSeasonService_GetStandings_SeesResultReportedDuringSlowRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	fixtures := &slowFixtureRepository{
		Repository: memory.NewFixtureRepository(nil),
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	service := NewSeasonService(SeasonRepositories{
		League:       memory.NewLeagueRepository(memory.SeedLeagues(), memory.SeedSeasons()),
		LeagueSeason: memory.NewLeagueSeasonRepository(memory.SeedLeagueSeasons(), teamRepo),
		Team:         teamRepo,
		Referee:      memory.NewRefereeRepository(memory.SeedReferees()),
		Fixture:      fixtures,
	}, DefaultSeasonServiceConfig(), logging.NewNop())

	key := leagueseason.Key{LeagueID: memory.LeagueIDLiga1Indonesia, Year: memory.SeedYear}
	scheduled, err := service.ScheduleMatches(ctx, key)
	if err != nil {
		t.Fatalf("schedule matches: %v", err)
	}
	opener := scheduled.Fixtures[0]

	first := make(chan standingsReply, 1)
	go func() {
		rows, err := service.GetStandings(ctx, key)
		first <- standingsReply{rows: rows, err: err}
	}()
	<-fixtures.entered

	if _, err := service.ReportResult(ctx, key, opener.ID, fixture.Result{HomeGoals: 2, AwayGoals: 1}); err != nil {
		t.Fatalf("report result: %v", err)
	}

	second := make(chan standingsReply, 1)
	go func() {
		rows, err := service.GetStandings(ctx, key)
		second <- standingsReply{rows: rows, err: err}
	}()
	close(fixtures.release)

	if reply := <-first; reply.err != nil {
		t.Fatalf("first read: %v", reply.err)
	}
	reply := <-second
	if reply.err != nil {
		t.Fatalf("second read: %v", reply.err)
	}
	home, ok := rowOf(reply.rows, opener.HomeTeamID)
	if !ok || home.Played != 1 || home.Points != 3 {
		t.Fatalf("read after the result must include it, got %+v", home)
	}

	rows, err := service.GetStandings(ctx, key)
	if err != nil {
		t.Fatalf("third read: %v", err)
	}
	if away, _ := rowOf(rows, opener.AwayTeamID); away.Played != 1 || away.Lost != 1 {
		t.Fatalf("unexpected away row: %+v", away)
	}
}
