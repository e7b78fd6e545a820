package notification

import (
	"context"
	"time"

	"talentflow/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByProfile(ctx context.Context, companyID, profileID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, companyID, profileID, id string, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) ListByProfile(ctx context.Context, companyID, profileID string, unreadOnly bool) ([]Notification, error) {
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("profile_id = ?", profileID)
	if unreadOnly {
		q = q.Where("read_at IS NULL")
	}

	var items []Notification
	err := q.Order("created_at DESC").Limit(100).Find(&items).Error
	return items, err
}

func (r *repository) MarkRead(ctx context.Context, companyID, profileID, id string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND profile_id = ?", id, profileID).
		Update("read_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
