package careertrack

import (
	"context"
	"database/sql"

	"talentflow/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=careertrack_repo.go -destination=mock/careertrack_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ExistsForProfile(ctx context.Context, profileID string) (bool, error)
	Create(ctx context.Context, track *CareerTrack) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) ExistsForProfile(ctx context.Context, profileID string) (bool, error) {
	var count int64
	err := connection.Conn(ctx, r.db, r.tx).
		Model(&CareerTrack{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, track *CareerTrack) error {
	return connection.Conn(ctx, r.db, r.tx).Create(track).Error
}
