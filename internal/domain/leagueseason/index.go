package leagueseason

import (
	"sort"

	"github.com/riskibarqy/league-season/internal/domain/fixture"
)

// Index answers reverse lookups over a set of league seasons. Seasons own
// their teams and fixtures; teams hold no back-references, so these questions
// are answered here instead.
type Index struct {
	seasonsByTeam  map[string][]Key
	teamsBySeason  map[Key][]string
	fixturesByTeam map[string][]fixture.Fixture
}

func NewIndex(seasons []LeagueSeason) *Index {
	idx := &Index{
		seasonsByTeam:  make(map[string][]Key),
		teamsBySeason:  make(map[Key][]string, len(seasons)),
		fixturesByTeam: make(map[string][]fixture.Fixture),
	}

	for _, s := range seasons {
		ids := make([]string, 0, len(s.Teams))
		for _, t := range s.Teams {
			ids = append(ids, t.ID)
			idx.seasonsByTeam[t.ID] = append(idx.seasonsByTeam[t.ID], s.Key)
		}
		sort.Strings(ids)
		idx.teamsBySeason[s.Key] = ids

		for _, f := range s.Fixtures {
			idx.fixturesByTeam[f.HomeTeamID] = append(idx.fixturesByTeam[f.HomeTeamID], f.Clone())
			idx.fixturesByTeam[f.AwayTeamID] = append(idx.fixturesByTeam[f.AwayTeamID], f.Clone())
		}
	}

	for id, keys := range idx.seasonsByTeam {
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].Year != keys[j].Year {
				return keys[i].Year < keys[j].Year
			}
			return keys[i].LeagueID < keys[j].LeagueID
		})
		idx.seasonsByTeam[id] = keys
	}
	for id, items := range idx.fixturesByTeam {
		sort.SliceStable(items, func(i, j int) bool {
			if !items[i].ScheduledAt.Equal(items[j].ScheduledAt) {
				return items[i].ScheduledAt.Before(items[j].ScheduledAt)
			}
			return items[i].ID < items[j].ID
		})
		idx.fixturesByTeam[id] = items
	}

	return idx
}

func (i *Index) SeasonsForTeam(teamID string) []Key {
	return append([]Key(nil), i.seasonsByTeam[teamID]...)
}

func (i *Index) TeamsIn(key Key) []string {
	return append([]string(nil), i.teamsBySeason[key]...)
}

// FixturesForTeam returns the team's fixtures in date order.
func (i *Index) FixturesForTeam(teamID string) []fixture.Fixture {
	return fixture.CloneAll(i.fixturesByTeam[teamID])
}
