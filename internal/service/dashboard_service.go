package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"anoa.com/plusgems/internal/dto"
	"anoa.com/plusgems/internal/model"
	"anoa.com/plusgems/internal/repository"
	"anoa.com/plusgems/pkg/apperror"
	"github.com/redis/go-redis/v9"
)

const (
	dashboardRecordsKey = "dashboard:records"
	feedLimit           = 20
)

type DashboardService interface {
	GetDashboard(ctx context.Context, filter dto.DashboardFilter) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo        repository.NominationRepository
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewDashboardService(repo repository.NominationRepository, redisClient *redis.Client, cacheTTL time.Duration) DashboardService {
	return &dashboardService{
		repo:        repo,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, filter dto.DashboardFilter) (*dto.DashboardResponse, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	records, err = applyFilter(records, filter)
	if err != nil {
		return nil, err
	}

	topN := DefaultFlowTopN
	if filter.TopN != nil {
		topN = *filter.TopN
	}

	return &dto.DashboardResponse{
		KPIs:               SummarizeKPIs(records),
		Feed:               BuildFeed(records, feedLimit),
		Ranking:            BuildRanking(records),
		PillarDistribution: BuildPillarDistribution(records),
		TimeSeries:         BuildTimeSeries(records),
		FlowGraph:          BuildFlowGraph(records, topN),
	}, nil
}

// loadRecords fetches the full denormalized record set, memoized in Redis
// for a few minutes to absorb repeated dashboard reads. Without Redis the
// query runs every time.
func (s *dashboardService) loadRecords(ctx context.Context) ([]model.NominationRecord, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, dashboardRecordsKey).Result()
		if err == nil {
			var records []model.NominationRecord
			if err := json.Unmarshal([]byte(cached), &records); err == nil {
				return records, nil
			}
			// Corrupt cache entry: fall through and reload.
		} else if err != redis.Nil {
			log.Printf("dashboard cache read failed: %v", err)
		}
	}

	records, err := s.repo.ListRecords(ctx, repository.NominationFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	if s.redisClient != nil {
		if payload, err := json.Marshal(records); err == nil {
			if err := s.redisClient.Set(ctx, dashboardRecordsKey, payload, s.cacheTTL).Err(); err != nil {
				log.Printf("dashboard cache write failed: %v", err)
			}
		}
	}

	return records, nil
}

// applyFilter narrows the record set in memory, mirroring the dashboard's
// filter expander: date range, hero names (either role), pillars, status.
func applyFilter(records []model.NominationRecord, filter dto.DashboardFilter) ([]model.NominationRecord, error) {
	var from, to *time.Time
	if filter.From != "" {
		t, err := time.Parse("2006-01-02", filter.From)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid from date", apperror.ErrInvalidInput)
		}
		from = &t
	}
	if filter.To != "" {
		t, err := time.Parse("2006-01-02", filter.To)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid to date", apperror.ErrInvalidInput)
		}
		// Inclusive end of day.
		end := t.Add(24 * time.Hour)
		to = &end
	}

	heroes := toSet(filter.Heroes)
	pillars := toSet(filter.Pillars)

	filtered := make([]model.NominationRecord, 0, len(records))
	for _, rec := range records {
		if from != nil && rec.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !rec.CreatedAt.Before(*to) {
			continue
		}
		if len(heroes) > 0 {
			_, nominee := heroes[rec.NomineeName]
			_, nominator := heroes[rec.NominatorName]
			if !nominee && !nominator {
				continue
			}
		}
		if len(pillars) > 0 {
			if _, ok := pillars[rec.PillarName]; !ok {
				continue
			}
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered, nil
}
