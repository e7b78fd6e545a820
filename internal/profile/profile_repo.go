package profile

import (
	"context"
	"database/sql"

	"talentflow/internal/shared/connection"
	"talentflow/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAllByCompany(ctx context.Context, companyID string, filter Filter) ([]Profile, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	UpdateStatus(ctx context.Context, companyID, id, status string) error
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

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter Filter) ([]Profile, error) {
	q := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Preload("Team").
		Preload("Manager")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.TeamID != "" {
		q = q.Where("team_id = ?", filter.TeamID)
	}

	var profiles []Profile
	err := q.Order("full_name ASC").Find(&profiles).Error
	return profiles, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Profile, error) {
	var p Profile
	err := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Preload("Team").
		Preload("Manager").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Profile) error {
	return connection.Conn(ctx, r.db, r.tx).
		Omit(clause.Associations).
		Save(p).Error
}

func (r *repository) UpdateStatus(ctx context.Context, companyID, id, status string) error {
	res := connection.Conn(ctx, r.db, r.tx).
		Model(&Profile{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
