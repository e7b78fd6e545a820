package team

import (
	"context"
	"database/sql"

	"talentflow/internal/shared/connection"
	"talentflow/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=team_repo.go -destination=mock/team_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Team) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Team, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Team, error)
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

func (r *repository) Create(ctx context.Context, t *Team) error {
	return connection.Conn(ctx, r.db, r.tx).Create(t).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Team, error) {
	var teams []Team
	err := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Team, error) {
	var t Team
	err := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}
