package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	notificationerrors "talentflow/internal/notification/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	// CreateWelcome returns created=false when the source event was already handled.
	CreateWelcome(ctx context.Context, req WelcomeRequest) (bool, error)
	ListForProfile(ctx context.Context, companyID, profileID string, unreadOnly bool) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, companyID, profileID, id string) error
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, now: time.Now, logger: logger.Named("notification.service")}
}

func (s *service) CreateWelcome(ctx context.Context, req WelcomeRequest) (bool, error) {
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil || req.SourceEventID == "" {
		return false, notificationerrors.ErrInvalidWelcome
	}
	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		return false, notificationerrors.ErrInvalidWelcome
	}

	source := req.SourceEventID
	n := &Notification{
		ID:            uuid.New(),
		CompanyID:     companyID,
		ProfileID:     profileID,
		SourceEventID: &source,
		Type:          TypeWelcome,
		Title:         "Bem-vindo(a) ao TalentFlow!",
		Message:       welcomeMessage(req.FullName),
		CreatedAt:     s.now().UTC(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		if isDuplicateSource(err) {
			s.logger.Info("welcome notification already exists, skipping",
				zap.String("profile_id", req.ProfileID),
				zap.String("source_event_id", source),
			)
			return false, nil
		}
		s.logger.Error("create welcome notification failed", zap.String("profile_id", req.ProfileID), zap.Error(err))
		return false, err
	}

	s.logger.Info("welcome notification created",
		zap.String("notification_id", n.ID.String()),
		zap.String("profile_id", req.ProfileID),
	)
	return true, nil
}

func (s *service) ListForProfile(ctx context.Context, companyID, profileID string, unreadOnly bool) ([]NotificationResponse, error) {
	items, err := s.repo.ListByProfile(ctx, companyID, profileID, unreadOnly)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("profile_id", profileID), zap.Error(err))
		return nil, err
	}
	resp := make([]NotificationResponse, len(items))
	for i, n := range items {
		resp[i] = mapToResponse(n)
	}
	return resp, nil
}

func (s *service) MarkRead(ctx context.Context, companyID, profileID, id string) error {
	err := s.repo.MarkRead(ctx, companyID, profileID, id, s.now().UTC())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notificationerrors.ErrNotificationNotFound
	}
	return err
}

func welcomeMessage(fullName string) string {
	if fullName == "" {
		return "Seu onboarding foi concluído. Sua trilha de carreira já está disponível."
	}
	return fmt.Sprintf("Olá, %s! Seu onboarding foi concluído. Sua trilha de carreira já está disponível.", fullName)
}

func isDuplicateSource(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.ReadAt != nil,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		resp.ReadAt = n.ReadAt.UTC().Format(time.RFC3339)
	}
	return resp
}
