package team

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	teamerrors "talentflow/internal/team/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const teamCacheTTL = 30 * time.Minute

func GetTeamsCacheKey(companyID string) string {
	return fmt.Sprintf("teams:all:%s", companyID)
}

//go:generate mockgen -source=team_service.go -destination=mock/team_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateTeamRequest) (TeamResponse, error)
	GetAll(ctx context.Context, companyID string) ([]TeamResponse, error)
	GetByID(ctx context.Context, companyID, id string) (TeamResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger *zap.Logger) Service {
	return &service{db: db, repo: repo, rdb: rdb, logger: logger.Named("team.service")}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateTeamRequest) (TeamResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TeamResponse{}, teamerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create team begin tx failed", zap.Error(err))
		return TeamResponse{}, err
	}
	defer tx.Rollback()

	t := &Team{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if err := s.repo.WithTx(tx).Create(ctx, t); err != nil {
		s.logger.Error("create team persist failed", zap.Error(err))
		return TeamResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create team commit failed", zap.Error(err))
		return TeamResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, GetTeamsCacheKey(companyID)).Err(); err != nil {
			s.logger.Error("failed to invalidate teams cache", zap.Error(err))
		}
	}

	s.logger.Info("create team success", zap.String("team_id", t.ID.String()))
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]TeamResponse, error) {
	cacheKey := GetTeamsCacheKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []TeamResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	teams, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get all teams failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	resp := mapToListResponse(teams)

	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, payload, teamCacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache teams", zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (TeamResponse, error) {
	t, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return TeamResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return teamerrors.ErrTeamNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return teamerrors.ErrTeamAlreadyExists
	}
	return err
}

func mapToResponse(t Team) TeamResponse {
	resp := TeamResponse{
		ID:          t.ID.String(),
		CompanyID:   t.CompanyID.String(),
		Name:        t.Name,
		Description: t.Description,
	}
	if !t.CreatedAt.IsZero() {
		resp.CreatedAt = t.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(teams []Team) []TeamResponse {
	res := make([]TeamResponse, len(teams))
	for i, t := range teams {
		res[i] = mapToResponse(t)
	}
	return res
}
