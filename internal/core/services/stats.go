package services

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
	"github.com/nullsec-labs/evecrop/internal/core/ports/driven"
	"github.com/nullsec-labs/evecrop/internal/logger"
)

// StatsService computes farm statistics across the roster, fanning out one
// task per character. A failing character is logged and skipped; it never
// aborts its siblings.
type StatsService struct {
	api     driven.SkillAPI
	roster  *RosterService
	tracked domain.SkillSet

	// now is the aggregation reference time. Overridable in tests.
	now func() time.Time
}

// NewStatsService creates a stats service tracking the given skill IDs.
func NewStatsService(api driven.SkillAPI, roster *RosterService, tracked domain.SkillSet) *StatsService {
	return &StatsService{
		api:     api,
		roster:  roster,
		tracked: tracked,
		now:     time.Now,
	}
}

// characterResult pairs one character's outcome with its name so failures
// can be reported without blanking the rest of the report.
type characterResult struct {
	name string
	stat domain.FarmStat
	err  error
}

// ComputeAll refreshes, fetches and aggregates stats for every character
// (or the one matching filter), returning them sorted by points descending.
func (s *StatsService) ComputeAll(ctx context.Context, filter string) ([]domain.FarmStat, error) {
	var records []domain.CharacterRecord
	if filter != "" {
		rec, err := s.roster.Find(filter)
		if err != nil {
			return nil, err
		}
		records = []domain.CharacterRecord{*rec}
	} else {
		var err error
		records, err = s.roster.List()
		if err != nil {
			return nil, err
		}
	}

	results := make([]characterResult, len(records))
	g, gctx := errgroup.WithContext(ctx)
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			stat, err := s.computeOne(gctx, rec)
			results[i] = characterResult{name: rec.Name, stat: stat, err: err}
			// Task errors are carried in the result so one bad character
			// cannot cancel its siblings.
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := make([]domain.FarmStat, 0, len(results))
	for _, res := range results {
		if res.err != nil {
			logger.Warn("stats for %s failed: %v", res.name, res.err)
			continue
		}
		stats = append(stats, res.stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Points > stats[j].Points
	})
	return stats, nil
}

// computeOne runs the per-character pipeline: refresh token, sum trained SP
// for tracked skills, aggregate the queue, combine.
func (s *StatsService) computeOne(ctx context.Context, rec domain.CharacterRecord) (domain.FarmStat, error) {
	logger.Info("Refreshing API token for %s", rec.Name)
	pair, err := s.api.Refresh(ctx, rec.RefreshToken)
	if err != nil {
		return domain.FarmStat{}, err
	}

	logger.Info("Pulling skills for %s", rec.Name)
	skills, err := s.api.Skills(ctx, pair.AccessToken, rec.ID)
	if err != nil {
		return domain.FarmStat{}, err
	}
	var trainedSP int64
	for _, skill := range skills {
		if s.tracked.Contains(skill.SkillID) {
			logger.Debug("%s: trained skill %d has %d SP", rec.Name, skill.SkillID, skill.Skillpoints)
			trainedSP += skill.Skillpoints
		}
	}

	logger.Info("Pulling queue for %s", rec.Name)
	queue, err := s.api.SkillQueue(ctx, pair.AccessToken, rec.ID)
	if err != nil {
		return domain.FarmStat{}, err
	}
	stat, err := domain.Aggregate(queue, s.now(), s.tracked)
	if err != nil {
		return domain.FarmStat{}, err
	}

	stat.Name = rec.Name
	stat.Points += trainedSP
	return stat, nil
}

// Refresh forces a token refresh for one character and returns the record
// with the fresh token pair for diagnostic output.
func (s *StatsService) Refresh(ctx context.Context, name string) (*domain.CharacterRecord, domain.TokenPair, error) {
	rec, err := s.roster.Find(name)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}
	pair, err := s.api.Refresh(ctx, rec.RefreshToken)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}
	return rec, pair, nil
}
