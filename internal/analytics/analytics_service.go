package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	analyticserrors "talentflow/internal/analytics/errors"
	"talentflow/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultCacheTTL = 5 * time.Minute

func MetricsCacheKey(companyID string) string {
	return fmt.Sprintf("analytics:metrics:%s", companyID)
}

// RecordSource supplies the active profile snapshot of a company.
type RecordSource interface {
	Records(ctx context.Context, companyID string) ([]ProfileRecord, error)
}

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	Performance(ctx context.Context, companyID string, sortBy MetricKey, dir Direction) ([]PerformanceMetric, error)
	Teams(ctx context.Context, companyID string) ([]TeamInsight, error)
	TeamReport(ctx context.Context, companyID string) ([]byte, error)
	Hierarchy(ctx context.Context, companyID string) (Hierarchy, error)
}

// snapshot is what gets cached per company. Every dashboard derives from it.
type snapshot struct {
	Records []ProfileRecord     `json:"records"`
	Metrics []PerformanceMetric `json:"metrics"`
}

type service struct {
	repo     Repository
	source   RecordSource
	rdb      *redis.Client
	sf       *singleflight.Group
	weights  Weights
	cacheTTL time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, source RecordSource, rdb *redis.Client, weights Weights, cacheTTL time.Duration, logger *zap.Logger) Service {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &service{
		repo:     repo,
		source:   source,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		weights:  weights,
		cacheTTL: cacheTTL,
		now:      time.Now,
		logger:   logger.Named("analytics.service"),
	}
}

func (s *service) Performance(ctx context.Context, companyID string, sortBy MetricKey, dir Direction) ([]PerformanceMetric, error) {
	if sortBy == "" {
		sortBy = MetricEngagementScore
	}

	snap, err := s.snapshot(ctx, companyID)
	if err != nil {
		return nil, err
	}

	ranked, err := RankByMetric(snap.Metrics, sortBy, dir)
	if errors.Is(err, ErrUnknownMetric) {
		return nil, analyticserrors.ErrUnknownMetric.WithDetails(map[string]string{"sort_by": string(sortBy)})
	}
	return ranked, err
}

// Teams lists team insights by name with the unassigned bucket last.
func (s *service) Teams(ctx context.Context, companyID string) ([]TeamInsight, error) {
	snap, err := s.snapshot(ctx, companyID)
	if err != nil {
		return nil, err
	}

	byTeam := AggregateByTeam(snap.Records, snap.Metrics)
	out := make([]TeamInsight, 0, len(byTeam))
	for _, insight := range byTeam {
		out = append(out, insight)
	}
	sort.Slice(out, func(i, j int) bool {
		if (out[i].TeamName == NoTeamName) != (out[j].TeamName == NoTeamName) {
			return out[j].TeamName == NoTeamName
		}
		return strings.ToLower(out[i].TeamName) < strings.ToLower(out[j].TeamName)
	})
	return out, nil
}

func (s *service) TeamReport(ctx context.Context, companyID string) ([]byte, error) {
	teams, err := s.Teams(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := RenderTeamReport(&buf, teams, s.now()); err != nil {
		s.logger.Error("render team report failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, analyticserrors.ErrReportFailed
	}
	return buf.Bytes(), nil
}

func (s *service) Hierarchy(ctx context.Context, companyID string) (Hierarchy, error) {
	snap, err := s.snapshot(ctx, companyID)
	if err != nil {
		return Hierarchy{}, err
	}
	return BuildOrganizationalHierarchy(snap.Records), nil
}

func (s *service) snapshot(ctx context.Context, companyID string) (snapshot, error) {
	cacheKey := MetricsCacheKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var snap snapshot
			if json.Unmarshal([]byte(cached), &snap) == nil {
				return snap, nil
			}
			s.logger.Warn("discarding unreadable analytics cache", zap.String("company_id", companyID))
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("analytics cache read failed", zap.String("company_id", companyID), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		snap, err := s.build(ctx, companyID)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(snap); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("failed to cache analytics", zap.String("company_id", companyID), zap.Error(err))
				}
			}
		}
		return snap, nil
	})
	if err != nil {
		return snapshot{}, err
	}
	return v.(snapshot), nil
}

func (s *service) build(ctx context.Context, companyID string) (snapshot, error) {
	records, err := s.source.Records(ctx, companyID)
	if err != nil {
		s.logger.Error("load profiles for analytics failed", zap.String("company_id", companyID), zap.Error(err))
		return snapshot{}, err
	}

	plans, err := s.repo.CompletedPlanCounts(ctx, companyID)
	if err != nil {
		return snapshot{}, s.persistenceError("development plans", companyID, err)
	}
	scores, err := s.repo.CompetencyScores(ctx, companyID)
	if err != nil {
		return snapshot{}, s.persistenceError("competency ratings", companyID, err)
	}
	achievements, err := s.repo.AchievementCounts(ctx, companyID)
	if err != nil {
		return snapshot{}, s.persistenceError("achievements", companyID, err)
	}

	metrics := make([]PerformanceMetric, 0, len(records))
	for _, r := range records {
		avg := AverageCompetencyRating(scores[r.ID])
		metrics = append(metrics, PerformanceMetric{
			ProfileID:           r.ID,
			FullName:            r.FullName,
			TeamName:            r.TeamName(),
			Level:               r.Level,
			Points:              r.Points,
			CompletedPlans:      plans[r.ID],
			Achievements:        achievements[r.ID],
			AvgCompetencyRating: avg,
			EngagementScore:     ComputeEngagementScore(r.Points, plans[r.ID], achievements[r.ID], avg, s.weights),
		})
	}

	s.logger.Debug("analytics snapshot built",
		zap.String("company_id", companyID),
		zap.Int("profiles", len(records)),
	)
	return snapshot{Records: records, Metrics: metrics}, nil
}

func (s *service) persistenceError(what, companyID string, err error) error {
	s.logger.Error("load analytics data failed",
		zap.String("source", what),
		zap.String("company_id", companyID),
		zap.Error(err),
	)
	return apperror.Persistence(err, "Failed to load "+what)
}
