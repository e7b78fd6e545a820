package analytics

import (
	"context"

	"talentflow/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=analytics_repo.go -destination=mock/analytics_repo_mock.go -package=mock
type Repository interface {
	CompletedPlanCounts(ctx context.Context, companyID string) (map[string]int, error)
	CompetencyScores(ctx context.Context, companyID string) (map[string][]CompetencyScore, error)
	AchievementCounts(ctx context.Context, companyID string) (map[string]int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type profileCount struct {
	ProfileID string
	Total     int
}

func (r *repository) CompletedPlanCounts(ctx context.Context, companyID string) (map[string]int, error) {
	var rows []profileCount
	err := r.db.WithContext(ctx).
		Model(&DevelopmentPlan{}).
		Scopes(tenant.Scope(companyID)).
		Select("profile_id, COUNT(*) AS total").
		Where("status = ?", PlanStatusCompleted).
		Group("profile_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return countsByProfile(rows), nil
}

func (r *repository) AchievementCounts(ctx context.Context, companyID string) (map[string]int, error) {
	var rows []profileCount
	err := r.db.WithContext(ctx).
		Model(&Achievement{}).
		Scopes(tenant.Scope(companyID)).
		Select("profile_id, COUNT(*) AS total").
		Group("profile_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return countsByProfile(rows), nil
}

func (r *repository) CompetencyScores(ctx context.Context, companyID string) (map[string][]CompetencyScore, error) {
	var ratings []CompetencyRating
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at ASC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string][]CompetencyScore)
	for _, rt := range ratings {
		pid := rt.ProfileID.String()
		out[pid] = append(out[pid], CompetencyScore{Self: rt.SelfRating, Manager: rt.ManagerRating})
	}
	return out, nil
}

func countsByProfile(rows []profileCount) map[string]int {
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.ProfileID] = row.Total
	}
	return out
}
