package onboarding

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"talentflow/internal/analytics"
	"talentflow/internal/careertrack"
	"talentflow/internal/diagnostics"
	"talentflow/internal/domain"
	"talentflow/internal/events"
	"talentflow/internal/messaging/kafka"
	onboardingerrors "talentflow/internal/onboarding/errors"
	"talentflow/internal/profile"
	profileerrors "talentflow/internal/profile/errors"
	"talentflow/internal/shared/apperror"
	"talentflow/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const diagComponent = "onboarding"

//go:generate mockgen -source=onboarding_service.go -destination=mock/onboarding_service_mock.go -package=mock
type Service interface {
	Load(ctx context.Context, companyID, profileID string) (StateResponse, error)
	Next(ctx context.Context, companyID, profileID string, draft Draft) (StateResponse, error)
	Previous(ctx context.Context, companyID, profileID string, draft Draft) (StateResponse, error)
	Complete(ctx context.Context, companyID, profileID string, draft Draft) (StateResponse, error)
}

type service struct {
	db       *sql.DB
	profiles profile.Repository
	tracks   careertrack.Repository
	outbox   kafka.OutboxRepository
	store    DraftStore
	wizard   *Wizard
	rdb      *redis.Client
	diag     *diagnostics.Service
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	profiles profile.Repository,
	tracks careertrack.Repository,
	outbox kafka.OutboxRepository,
	store DraftStore,
	rdb *redis.Client,
	diag *diagnostics.Service,
) Service {
	return &service{
		db:       db,
		profiles: profiles,
		tracks:   tracks,
		outbox:   outbox,
		store:    store,
		wizard:   NewWizard(),
		rdb:      rdb,
		diag:     diag,
		now:      time.Now,
		logger:   diag.Logger("onboarding.service"),
	}
}

func (s *service) Load(ctx context.Context, companyID, profileID string) (StateResponse, error) {
	s.diag.Track(ctx, diagComponent, "load", profileID)

	p, err := s.findProfile(ctx, companyID, profileID)
	if err != nil {
		return StateResponse{}, err
	}
	if p.IsOnboarded {
		s.clearStaleDraft(ctx, companyID, profileID)
		return toResponse(completedState(*p)), nil
	}

	state, err := s.store.Load(ctx, companyID, profileID)
	if err != nil {
		s.logger.Error("load onboarding draft failed", zap.String("profile_id", profileID), zap.Error(err))
		return StateResponse{}, apperror.Persistence(err, "Failed to load onboarding draft")
	}
	if state != nil {
		return toResponse(*state), nil
	}

	fresh := NewState(DraftFromProfile(*p))
	fresh.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, companyID, profileID, fresh); err != nil {
		s.logger.Error("create onboarding draft failed", zap.String("profile_id", profileID), zap.Error(err))
		return StateResponse{}, apperror.Persistence(err, "Failed to start onboarding")
	}
	s.logger.Info("onboarding started", zap.String("profile_id", profileID))
	return toResponse(fresh), nil
}

func (s *service) Next(ctx context.Context, companyID, profileID string, draft Draft) (StateResponse, error) {
	return s.move(ctx, companyID, profileID, "next", draft, s.wizard.Next)
}

func (s *service) Previous(ctx context.Context, companyID, profileID string, draft Draft) (StateResponse, error) {
	return s.move(ctx, companyID, profileID, "previous", draft, s.wizard.Previous)
}

// move applies one wizard transition under the per-profile lock and
// checkpoints the result.
func (s *service) move(
	ctx context.Context,
	companyID, profileID, action string,
	draft Draft,
	step func(State) (State, error),
) (StateResponse, error) {
	s.diag.Track(ctx, diagComponent, action, profileID)

	release, err := s.lock(ctx, companyID, profileID)
	if err != nil {
		return StateResponse{}, err
	}
	defer release()

	p, err := s.findProfile(ctx, companyID, profileID)
	if err != nil {
		return StateResponse{}, err
	}
	if p.IsOnboarded {
		s.clearStaleDraft(ctx, companyID, profileID)
		return StateResponse{}, onboardingerrors.ErrAlreadyCompleted
	}

	state, err := s.currentState(ctx, companyID, profileID, *p)
	if err != nil {
		return StateResponse{}, err
	}
	state.Draft = draft

	moved, err := step(state)
	if err != nil {
		s.logger.Debug("onboarding transition rejected",
			zap.String("profile_id", profileID),
			zap.String("action", action),
			zap.Int("step", int(state.Step)),
			zap.Error(err),
		)
		return StateResponse{}, err
	}

	moved.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, companyID, profileID, moved); err != nil {
		s.logger.Error("checkpoint onboarding draft failed",
			zap.String("profile_id", profileID),
			zap.String("action", action),
			zap.Error(err),
		)
		return StateResponse{}, apperror.Persistence(err, "Failed to save onboarding progress")
	}

	s.logger.Debug("onboarding transition",
		zap.String("profile_id", profileID),
		zap.String("action", action),
		zap.Int("from", int(state.Step)),
		zap.Int("to", int(moved.Step)),
	)
	return toResponse(moved), nil
}

// Complete folds the draft into the profile, creates the default career track
// and records onboarding_completed in the outbox in one transaction. The
// welcome notification is produced from that event.
func (s *service) Complete(ctx context.Context, companyID, profileID string, draft Draft) (StateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.diag.Track(ctx, diagComponent, "complete", profileID)

	release, err := s.lock(ctx, companyID, profileID)
	if err != nil {
		return StateResponse{}, err
	}
	defer release()

	p, err := s.findProfile(ctx, companyID, profileID)
	if err != nil {
		return StateResponse{}, err
	}
	if p.IsOnboarded {
		done := completedState(*p)
		if err := s.store.Delete(ctx, companyID, profileID); err != nil {
			s.logger.Warn("onboarding draft cleanup retry failed", zap.String("profile_id", profileID), zap.Error(err))
			return toResponse(done), onboardingerrors.PartialCompletion(err)
		}
		return toResponse(done), nil
	}
	if p.Status != domain.StatusActive {
		return StateResponse{}, onboardingerrors.ErrProfileInactive
	}

	state, err := s.currentState(ctx, companyID, profileID, *p)
	if err != nil {
		return StateResponse{}, err
	}
	state.Draft = draft

	done, err := s.wizard.Complete(state)
	if err != nil {
		return StateResponse{}, err
	}

	now := s.now().UTC()
	if err := s.persistCompletion(ctx, p, done.Draft, now, rid); err != nil {
		s.logger.Error("complete onboarding failed",
			zap.String("request_id", rid),
			zap.String("profile_id", profileID),
			zap.Error(err),
		)
		return StateResponse{}, apperror.Persistence(err, "Failed to complete onboarding")
	}
	done.UpdatedAt = now
	s.invalidateAnalytics(ctx, companyID)

	if err := s.store.Delete(ctx, companyID, profileID); err != nil {
		s.logger.Warn("onboarding completed but draft cleanup failed",
			zap.String("request_id", rid),
			zap.String("profile_id", profileID),
			zap.Error(err),
		)
		return toResponse(done), onboardingerrors.PartialCompletion(err)
	}

	s.logger.Info("onboarding completed",
		zap.String("request_id", rid),
		zap.String("profile_id", profileID),
		zap.String("company_id", companyID),
	)
	return toResponse(done), nil
}

func (s *service) persistCompletion(ctx context.Context, p *profile.Profile, d Draft, now time.Time, rid string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	applyDraft(p, d, now)
	if err := s.profiles.WithTx(tx).Update(ctx, p); err != nil {
		return err
	}

	qTracks := s.tracks.WithTx(tx)
	exists, err := qTracks.ExistsForProfile(ctx, p.ID.String())
	if err != nil {
		return err
	}
	var trackID string
	if !exists {
		track := careertrack.NewDefault(p.CompanyID, p.ID, p.Level, d.CareerObjectives, now)
		if err := qTracks.Create(ctx, track); err != nil {
			return err
		}
		trackID = track.ID.String()
	}

	event := events.OnboardingCompletedEvent{
		EventID:       uuid.NewString(),
		EventType:     events.OnboardingCompletedType,
		RequestID:     rid,
		ProfileID:     p.ID.String(),
		CompanyID:     p.CompanyID.String(),
		FullName:      p.FullName,
		CareerTrackID: trackID,
		OccurredAt:    now,
	}
	outboxEvent, err := kafka.NewOutboxEvent("profile", p.ID.String(), event.EventType, events.OnboardingLifecycleTopic, rid, event)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) lock(ctx context.Context, companyID, profileID string) (func(), error) {
	token, err := s.store.Lock(ctx, companyID, profileID)
	if err != nil {
		if errors.Is(err, onboardingerrors.ErrTransitionInProgress) {
			s.logger.Info("onboarding transition already in flight", zap.String("profile_id", profileID))
			return nil, err
		}
		s.logger.Error("acquire onboarding lock failed", zap.String("profile_id", profileID), zap.Error(err))
		return nil, apperror.Persistence(err, "Failed to start onboarding transition")
	}
	return func() {
		if err := s.store.Unlock(context.WithoutCancel(ctx), companyID, profileID, token); err != nil {
			s.logger.Warn("release onboarding lock failed", zap.String("profile_id", profileID), zap.Error(err))
		}
	}, nil
}

func (s *service) findProfile(ctx context.Context, companyID, profileID string) (*profile.Profile, error) {
	p, err := s.profiles.FindByIDAndCompany(ctx, companyID, profileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, profileerrors.ErrProfileNotFound
	}
	if err != nil {
		s.logger.Error("load profile for onboarding failed", zap.String("profile_id", profileID), zap.Error(err))
		return nil, apperror.Persistence(err, "Failed to load profile")
	}
	return p, nil
}

func (s *service) currentState(ctx context.Context, companyID, profileID string, p profile.Profile) (State, error) {
	state, err := s.store.Load(ctx, companyID, profileID)
	if err != nil {
		s.logger.Error("load onboarding draft failed", zap.String("profile_id", profileID), zap.Error(err))
		return State{}, apperror.Persistence(err, "Failed to load onboarding draft")
	}
	if state == nil {
		return NewState(DraftFromProfile(p)), nil
	}
	return *state, nil
}

// clearStaleDraft removes a draft left behind by a completion whose cleanup failed.
func (s *service) clearStaleDraft(ctx context.Context, companyID, profileID string) {
	if err := s.store.Delete(ctx, companyID, profileID); err != nil {
		s.logger.Warn("stale onboarding draft cleanup failed", zap.String("profile_id", profileID), zap.Error(err))
	}
}

func (s *service) invalidateAnalytics(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, analytics.MetricsCacheKey(companyID)).Err(); err != nil {
		s.logger.Warn("failed to invalidate analytics cache", zap.String("company_id", companyID), zap.Error(err))
	}
}

func completedState(p profile.Profile) State {
	s := State{Step: LastStep, Status: StatusCompleted, Draft: DraftFromProfile(p)}
	if p.OnboardedAt != nil {
		s.UpdatedAt = *p.OnboardedAt
	}
	return s
}
