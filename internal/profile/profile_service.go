package profile

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"talentflow/internal/analytics"
	"talentflow/internal/domain"
	profileerrors "talentflow/internal/profile/errors"
	"talentflow/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, companyID string, filter Filter) ([]ProfileResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ProfileResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateProfileRequest) (ProfileResponse, error)
	Deactivate(ctx context.Context, companyID, id string) error
	Records(ctx context.Context, companyID string) ([]analytics.ProfileRecord, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger *zap.Logger) Service {
	return &service{db: db, repo: repo, rdb: rdb, logger: logger.Named("profile.service")}
}

func (s *service) GetAll(ctx context.Context, companyID string, filter Filter) ([]ProfileResponse, error) {
	profiles, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("get all profiles failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(profiles), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ProfileResponse, error) {
	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateProfileRequest) (ProfileResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update profile requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("profile_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update profile begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}

	managerID, err := s.resolveManager(ctx, qtx, companyID, p.ID, req.ManagerID)
	if err != nil {
		return ProfileResponse{}, err
	}

	p.FullName = strings.TrimSpace(req.FullName)
	p.Role = req.Role
	p.Level = req.Level
	p.Points = req.Points
	p.Position = req.Position
	p.Phone = req.Phone
	p.Bio = req.Bio
	p.Formation = req.Formation
	p.HardSkills = req.HardSkills
	p.SoftSkills = req.SoftSkills
	p.ManagerID = managerID
	p.TeamID = uuidPtr(req.TeamID)

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("update profile persist failed", zap.String("profile_id", id), zap.Error(err))
		return ProfileResponse{}, mapRepositoryError(err)
	}

	updated, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update profile commit failed", zap.Error(err))
		return ProfileResponse{}, err
	}

	s.invalidateAnalytics(ctx, companyID)
	s.logger.Info("update profile success", zap.String("request_id", rid), zap.String("profile_id", id))
	return mapToResponse(*updated), nil
}

// resolveManager checks that the new manager exists in the company and that
// the assignment keeps the reporting lines acyclic.
func (s *service) resolveManager(ctx context.Context, qtx Repository, companyID string, profileID uuid.UUID, raw *string) (*uuid.UUID, error) {
	managerID := uuidPtr(raw)
	if managerID == nil {
		return nil, nil
	}
	if *managerID == profileID {
		return nil, profileerrors.ErrReportingCycle
	}

	profiles, err := qtx.FindAllByCompany(ctx, companyID, Filter{})
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	records := make([]analytics.ProfileRecord, 0, len(profiles))
	found := false
	for _, p := range profiles {
		if p.ID == *managerID {
			found = true
		}
		records = append(records, ToRecord(p))
	}
	if !found {
		return nil, profileerrors.ErrManagerNotFound
	}

	err = analytics.DetectReportingCycle(records, profileID.String(), managerID.String())
	if errors.Is(err, analytics.ErrReportingCycle) {
		s.logger.Warn("update profile rejected reporting cycle",
			zap.String("profile_id", profileID.String()),
			zap.String("manager_id", managerID.String()),
		)
		return nil, profileerrors.ErrReportingCycle
	}
	return managerID, err
}

func (s *service) Deactivate(ctx context.Context, companyID, id string) error {
	if err := s.repo.UpdateStatus(ctx, companyID, id, domain.StatusInactive); err != nil {
		return mapRepositoryError(err)
	}
	s.invalidateAnalytics(ctx, companyID)
	s.logger.Info("profile deactivated", zap.String("company_id", companyID), zap.String("profile_id", id))
	return nil
}

// Records returns the active profiles of a company in the shape the
// aggregation engine consumes.
func (s *service) Records(ctx context.Context, companyID string) ([]analytics.ProfileRecord, error) {
	profiles, err := s.repo.FindAllByCompany(ctx, companyID, Filter{Status: domain.StatusActive})
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	records := make([]analytics.ProfileRecord, len(profiles))
	for i, p := range profiles {
		records[i] = ToRecord(p)
	}
	return records, nil
}

func (s *service) invalidateAnalytics(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, analytics.MetricsCacheKey(companyID)).Err(); err != nil {
		s.logger.Warn("failed to invalidate analytics cache", zap.String("company_id", companyID), zap.Error(err))
	}
}

func ToRecord(p Profile) analytics.ProfileRecord {
	rec := analytics.ProfileRecord{
		ID:         p.ID.String(),
		FullName:   p.FullName,
		Email:      p.Email,
		Role:       p.Role,
		Level:      p.Level,
		Status:     p.Status,
		Points:     p.Points,
		HardSkills: []string(p.HardSkills),
		SoftSkills: []string(p.SoftSkills),
	}
	if p.Team != nil {
		rec.Team = &analytics.TeamRef{ID: p.Team.ID.String(), Name: p.Team.Name}
	}
	if p.ManagerID != nil {
		rec.Manager = &analytics.ManagerRef{ID: p.ManagerID.String()}
		if p.Manager != nil {
			rec.Manager.FullName = p.Manager.FullName
		}
	}
	return rec
}

func uuidPtr(s *string) *uuid.UUID {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	return &id
}

func mapToResponse(p Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:          p.ID.String(),
		CompanyID:   p.CompanyID.String(),
		UserID:      p.UserID.String(),
		FullName:    p.FullName,
		Email:       p.Email,
		Role:        p.Role,
		Level:       p.Level,
		Status:      p.Status,
		Points:      p.Points,
		Position:    p.Position,
		Phone:       p.Phone,
		Bio:         p.Bio,
		Formation:   p.Formation,
		HardSkills:  nonNil(p.HardSkills),
		SoftSkills:  nonNil(p.SoftSkills),
		IsOnboarded: p.IsOnboarded,
	}
	if p.OnboardedAt != nil {
		resp.OnboardedAt = p.OnboardedAt.UTC().Format(time.RFC3339)
	}
	if p.Team != nil {
		resp.Team = &TeamResponse{ID: p.Team.ID.String(), Name: p.Team.Name}
	}
	if p.Manager != nil {
		resp.Manager = &ManagerResponse{ID: p.Manager.ID.String(), FullName: p.Manager.FullName}
	}
	return resp
}

func mapToListResponse(profiles []Profile) []ProfileResponse {
	res := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		res[i] = mapToResponse(p)
	}
	return res
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
