package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-season/internal/domain/fixture"
	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/domain/team"
)

func TestLeagueSeasonRepository_CreateAndSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seeds := SeedLeagueSeasons()
	repo := NewLeagueSeasonRepository(nil, NewTeamRepository(SeedTeams()))

	if err := repo.Create(ctx, seeds[0]); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, seeds[0]); !errors.Is(err, leagueseason.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	item, ok, err := repo.GetByKey(ctx, seeds[0].Key)
	if err != nil || !ok {
		t.Fatalf("get by key: ok=%v err=%v", ok, err)
	}
	item.Teams = item.Teams[:2]
	if err := repo.Save(ctx, item); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, _, _ := repo.GetByKey(ctx, seeds[0].Key)
	if len(reloaded.Teams) != 2 {
		t.Fatalf("expected 2 teams after save, got %d", len(reloaded.Teams))
	}
	if err := repo.Save(ctx, seeds[1]); !errors.Is(err, ErrLeagueSeasonNotFound) {
		t.Fatalf("expected ErrLeagueSeasonNotFound, got %v", err)
	}
}

func TestLeagueSeasonRepository_FindTeamsReflectsRegistry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teams := NewTeamRepository(SeedTeams())
	repo := NewLeagueSeasonRepository(SeedLeagueSeasons(), teams)
	key := leagueseason.Key{LeagueID: LeagueIDPremierLeague, Year: SeedYear}

	if err := teams.Upsert(ctx, team.Team{ID: "eng-che", Name: "Chelsea", Active: false}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := repo.FindTeams(ctx, key)
	if err != nil {
		t.Fatalf("find teams: %v", err)
	}
	if len(got) != 3 || len(team.ActiveOnly(got)) != 2 {
		t.Fatalf("unexpected roster: %+v", got)
	}

	seasons, _ := repo.ListByYear(ctx, SeedYear)
	if len(seasons) != 2 || seasons[0].Key.LeagueID != LeagueIDLiga1Indonesia {
		t.Fatalf("unexpected seasons: %+v", seasons)
	}
}

func TestFixtureRepository_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFixtureRepository(nil)
	items := []fixture.Fixture{
		{ID: "s:2", Round: 2, HomeTeamID: "B", AwayTeamID: "A", Status: fixture.StatusScheduled},
		{ID: "s:1", Round: 1, HomeTeamID: "A", AwayTeamID: "B", Status: fixture.StatusScheduled},
	}
	if err := repo.SaveFixtures(ctx, "s", items); err != nil {
		t.Fatalf("save fixtures: %v", err)
	}

	played := items[1].Clone()
	played.SeasonID = "s"
	played.Status = fixture.StatusPlayed
	played.Result = &fixture.Result{HomeGoals: 1}
	played.MainRefereeID = "ignored"
	if err := repo.UpdateResult(ctx, played); err != nil {
		t.Fatalf("update result: %v", err)
	}
	if err := repo.SaveAssignments(ctx, []fixture.Fixture{{ID: "s:2", SeasonID: "s", MainRefereeID: "ref"}}); err != nil {
		t.Fatalf("save assignments: %v", err)
	}

	all, _ := repo.ListBySeason(ctx, "s")
	if len(all) != 2 || all[0].ID != "s:1" || all[0].MainRefereeID != "" || all[1].MainRefereeID != "ref" {
		t.Fatalf("unexpected fixtures: %+v", all)
	}
	onlyPlayed, _ := repo.ListPlayed(ctx, "s")
	if len(onlyPlayed) != 1 || onlyPlayed[0].Result.HomeGoals != 1 {
		t.Fatalf("unexpected played fixtures: %+v", onlyPlayed)
	}

	if err := repo.UpdateResult(ctx, fixture.Fixture{ID: "missing", SeasonID: "s"}); !errors.Is(err, ErrFixtureNotFound) {
		t.Fatalf("expected ErrFixtureNotFound, got %v", err)
	}
	if err := repo.SaveFixtures(ctx, "s", nil); err != nil {
		t.Fatalf("clear fixtures: %v", err)
	}
	if all, _ := repo.ListBySeason(ctx, "s"); len(all) != 0 {
		t.Fatalf("expected no fixtures after clear, got %d", len(all))
	}
}
