package analytics_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"talentflow/internal/analytics"
	analyticserrors "talentflow/internal/analytics/errors"
	analyticsMock "talentflow/internal/analytics/mock"
	"talentflow/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const cacheTTL = 5 * time.Minute

type serviceDeps struct {
	repo      *analyticsMock.MockRepository
	source    *analyticsMock.MockRecordSource
	redismock redismock.ClientMock
	service   analytics.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	deps := &serviceDeps{
		repo:      analyticsMock.NewMockRepository(ctrl),
		source:    analyticsMock.NewMockRecordSource(ctrl),
		redismock: redisMock,
	}
	deps.service = analytics.NewService(deps.repo, deps.source, rdb, analytics.DefaultWeights(), cacheTTL, zap.NewNop())
	return deps
}

func sampleRecords() []analytics.ProfileRecord {
	return []analytics.ProfileRecord{
		{ID: "p1", FullName: "Ana", Role: "employee", Level: "pleno", Points: 200, HardSkills: []string{"Go"}, Team: &analytics.TeamRef{ID: "t1", Name: "Plataforma"}},
		{ID: "p2", FullName: "Bruno", Role: "employee", Level: "junior", Points: 50, SoftSkills: []string{"Escuta"}},
	}
}

func expectedMetrics() []analytics.PerformanceMetric {
	return []analytics.PerformanceMetric{
		{ProfileID: "p1", FullName: "Ana", TeamName: "Plataforma", Level: "pleno", Points: 200, CompletedPlans: 2, Achievements: 1, AvgCompetencyRating: 4, EngagementScore: 100},
		{ProfileID: "p2", FullName: "Bruno", TeamName: analytics.NoTeamName, Level: "junior", Points: 50, Achievements: 3, EngagementScore: 35},
	}
}

func cachedPayload(t *testing.T, records []analytics.ProfileRecord, metrics []analytics.PerformanceMetric) []byte {
	t.Helper()
	payload, err := json.Marshal(struct {
		Records []analytics.ProfileRecord     `json:"records"`
		Metrics []analytics.PerformanceMetric `json:"metrics"`
	}{records, metrics})
	assert.NoError(t, err)
	return payload
}

func (d *serviceDeps) expectBuild(ctx context.Context, companyID string) {
	d.source.EXPECT().Records(ctx, companyID).Return(sampleRecords(), nil)
	d.repo.EXPECT().CompletedPlanCounts(ctx, companyID).Return(map[string]int{"p1": 2}, nil)
	d.repo.EXPECT().CompetencyScores(ctx, companyID).Return(map[string][]analytics.CompetencyScore{
		"p1": {{Self: ptr(4), Manager: ptr(5)}, {Self: ptr(3)}},
	}, nil)
	d.repo.EXPECT().AchievementCounts(ctx, companyID).Return(map[string]int{"p1": 1, "p2": 3}, nil)
}

func TestAnalyticsService_Performance(t *testing.T) {
	ctx := context.Background()
	companyID := "c-1"
	key := analytics.MetricsCacheKey(companyID)

	t.Run("cache miss computes and caches metrics", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(key).RedisNil()
		deps.expectBuild(ctx, companyID)
		deps.redismock.ExpectSet(key, cachedPayload(t, sampleRecords(), expectedMetrics()), cacheTTL).SetVal("OK")

		got, err := deps.service.Performance(ctx, companyID, "", analytics.Descending)

		assert.NoError(t, err)
		assert.Equal(t, expectedMetrics(), got)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(key).SetVal(string(cachedPayload(t, sampleRecords(), expectedMetrics())))

		got, err := deps.service.Performance(ctx, companyID, analytics.MetricPoints, analytics.Ascending)

		assert.NoError(t, err)
		assert.Equal(t, "Bruno", got[0].FullName)
		assert.Equal(t, "Ana", got[1].FullName)
	})

	t.Run("unknown metric", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(key).SetVal(string(cachedPayload(t, sampleRecords(), expectedMetrics())))

		_, err := deps.service.Performance(ctx, companyID, "salary", analytics.Descending)

		assert.ErrorIs(t, err, analyticserrors.ErrUnknownMetric)
		assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
	})

	t.Run("repository failure is a persistence error and is not cached", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(key).RedisNil()
		deps.source.EXPECT().Records(ctx, companyID).Return(sampleRecords(), nil)
		deps.repo.EXPECT().CompletedPlanCounts(ctx, companyID).Return(nil, errors.New("db down"))

		_, err := deps.service.Performance(ctx, companyID, "", analytics.Descending)

		assert.Equal(t, apperror.KindPersistenceFailed, apperror.KindOf(err))
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestAnalyticsService_Teams(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	records := append(sampleRecords(), analytics.ProfileRecord{
		ID: "p3", FullName: "Carla", Role: "employee", Level: "senior", Points: 10, Team: &analytics.TeamRef{ID: "t2", Name: "Dados"},
	})
	deps.redismock.ExpectGet(analytics.MetricsCacheKey("c-1")).SetVal(string(cachedPayload(t, records, expectedMetrics())))

	got, err := deps.service.Teams(ctx, "c-1")

	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "Dados", got[0].TeamName)
	assert.Equal(t, "Plataforma", got[1].TeamName)
	assert.Equal(t, analytics.NoTeamName, got[2].TeamName)
	assert.Equal(t, 100.0, got[1].AveragePerformance)
}

func TestAnalyticsService_TeamReport(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.redismock.ExpectGet(analytics.MetricsCacheKey("c-1")).SetVal(string(cachedPayload(t, sampleRecords(), expectedMetrics())))

	pdf, err := deps.service.TeamReport(ctx, "c-1")

	assert.NoError(t, err)
	assert.True(t, len(pdf) > 4)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestAnalyticsService_Hierarchy(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	records := []analytics.ProfileRecord{
		{ID: "m1", FullName: "Marta", Role: "manager"},
		{ID: "e1", FullName: "Ana", Role: "employee", Manager: &analytics.ManagerRef{ID: "m1", FullName: "Marta"}},
		{ID: "e2", FullName: "Bruno", Role: "employee"},
	}
	deps.redismock.ExpectGet(analytics.MetricsCacheKey("c-1")).SetVal(string(cachedPayload(t, records, nil)))

	got, err := deps.service.Hierarchy(ctx, "c-1")

	assert.NoError(t, err)
	assert.Len(t, got.Managers, 1)
	assert.Len(t, got.Managers[0].Members, 1)
	assert.Equal(t, "e2", got.Unassigned[0].ID)
}
