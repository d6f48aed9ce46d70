package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/domain/leaguestanding"
)

const (
	bulkStatusScheduled = "scheduled"
	bulkStatusSkipped   = "skipped"
	bulkStatusFailed    = "failed"
)

type BulkScheduleItem struct {
	Key             leagueseason.Key
	Status          string
	Fixtures        int
	RefereeFailures int
	DurationMs      int64
	Message         string
}

type BulkScheduleResult struct {
	Year           int
	WorkerCount    int
	ScheduledCount int
	SkippedCount   int
	FailedCount    int
	Items          []BulkScheduleItem
}

// ScheduleYear schedules every league season of the year that is still being
// configured. Seasons are independent, so they run on a bounded worker pool;
// one failing season does not stop the others.
func (s *SeasonService) ScheduleYear(ctx context.Context, year int) (BulkScheduleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ScheduleYear")
	defer span.End()

	seasons, err := s.repos.LeagueSeason.ListByYear(ctx, year)
	if err != nil {
		return BulkScheduleResult{}, classify("list league seasons", err)
	}

	result := BulkScheduleResult{Year: year, WorkerCount: s.cfg.BulkWorkers}
	if len(seasons) == 0 {
		return result, nil
	}

	workers, err := ants.NewPool(s.cfg.BulkWorkers, ants.WithPanicHandler(func(p any) {
		s.logger.Error("schedule worker panicked", "panic", fmt.Sprint(p))
	}))
	if err != nil {
		return BulkScheduleResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	items := make([]BulkScheduleItem, len(seasons))
	var wg sync.WaitGroup
	for i, item := range seasons {
		i, key := i, item.Key
		items[i] = BulkScheduleItem{Key: key, Status: bulkStatusFailed, Message: "not run"}
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()
			items[i] = s.scheduleOne(ctx, key)
		}); err != nil {
			wg.Done()
			items[i].Message = err.Error()
		}
	}
	wg.Wait()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Key.LeagueID < items[j].Key.LeagueID
	})
	for _, item := range items {
		switch item.Status {
		case bulkStatusScheduled:
			result.ScheduledCount++
		case bulkStatusSkipped:
			result.SkippedCount++
		default:
			result.FailedCount++
		}
	}
	result.Items = items

	s.logger.InfoContext(ctx, "bulk schedule finished",
		"year", year,
		"scheduled", result.ScheduledCount,
		"skipped", result.SkippedCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func (s *SeasonService) scheduleOne(ctx context.Context, key leagueseason.Key) BulkScheduleItem {
	start := time.Now()
	item := BulkScheduleItem{Key: key}

	out, err := s.ScheduleMatches(ctx, key)
	item.DurationMs = time.Since(start).Milliseconds()
	switch {
	case err == nil:
		item.Status = bulkStatusScheduled
		item.Fixtures = len(out.Fixtures)
		item.RefereeFailures = len(out.Failures)
	case errors.Is(err, leagueseason.ErrScheduleExists):
		item.Status = bulkStatusSkipped
		item.Message = "already scheduled"
	default:
		item.Status = bulkStatusFailed
		item.Message = err.Error()
		s.logger.WarnContext(ctx, "bulk schedule failed for league season", "league_id", key.LeagueID, "year", key.Year, "error", err)
	}
	return item
}

type SeasonStandings struct {
	Key  leagueseason.Key
	Rows []leaguestanding.Row
}

// StandingsForYear computes the tables of every league season of the year in
// parallel. Any failure fails the whole call.
func (s *SeasonService) StandingsForYear(ctx context.Context, year int) ([]SeasonStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.StandingsForYear")
	defer span.End()

	seasons, err := s.repos.LeagueSeason.ListByYear(ctx, year)
	if err != nil {
		return nil, classify("list league seasons", err)
	}

	p := pool.NewWithResults[SeasonStandings]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(s.cfg.BulkWorkers)
	for _, item := range seasons {
		key := item.Key
		p.Go(func(ctx context.Context) (SeasonStandings, error) {
			rows, err := s.GetStandings(ctx, key)
			if err != nil {
				return SeasonStandings{}, err
			}
			return SeasonStandings{Key: key, Rows: rows}, nil
		})
	}

	out, err := p.Wait()
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key.LeagueID < out[j].Key.LeagueID
	})
	return out, nil
}
