package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"talentflow/internal/events"
	"talentflow/internal/notification"
	notificationerrors "talentflow/internal/notification/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

const (
	defaultRetryInitial = 500 * time.Millisecond
	defaultRetryMax     = 30 * time.Second
)

type options struct {
	retryInitial time.Duration
	retryMax     time.Duration
}

type Option func(*options)

// WithRetryBackoff bounds the delay between attempts at a failed message.
func WithRetryBackoff(initial, max time.Duration) Option {
	return func(o *options) {
		o.retryInitial = initial
		o.retryMax = max
	}
}

// ConsumeOnboardingLifecycle handles messages in order. A message failing with
// a retryable error is retried with backoff until it is handled or ctx ends;
// it is never skipped.
func ConsumeOnboardingLifecycle(
	ctx context.Context,
	reader MessageReader,
	notificationService notification.Service,
	logger *zap.Logger,
	opts ...Option,
) {
	o := options{retryInitial: defaultRetryInitial, retryMax: defaultRetryMax}
	for _, opt := range opts {
		opt(&o)
	}

	log := logger.Named("kafka.consumer.onboarding_lifecycle")
	log.Info("onboarding lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("onboarding lifecycle consumer stopped")
				return
			}
			log.Error("fetch onboarding lifecycle message failed", zap.Error(err))
			continue
		}

		if !handleWithRetry(ctx, msg, notificationService, log, o) {
			log.Info("onboarding lifecycle consumer stopped")
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit onboarding lifecycle message failed", zap.Error(err))
		}
	}
}

// handleWithRetry returns false only when ctx ends before msg is handled.
func handleWithRetry(
	ctx context.Context,
	msg kafkago.Message,
	notificationService notification.Service,
	log *zap.Logger,
	o options,
) bool {
	delay := o.retryInitial
	for attempt := 1; ; attempt++ {
		err := HandleOnboardingMessage(ctx, msg, notificationService, log)
		if err == nil {
			return true
		}

		log.Warn("onboarding lifecycle message will be retried",
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		delay *= 2
		if delay > o.retryMax {
			delay = o.retryMax
		}
	}
}

// HandleOnboardingMessage returns nil when msg may be committed. Undecodable,
// unknown and invalid events are logged and committed so they do not block
// the partition; any other error is retryable.
func HandleOnboardingMessage(
	ctx context.Context,
	msg kafkago.Message,
	notificationService notification.Service,
	log *zap.Logger,
) error {
	var event events.OnboardingCompletedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode onboarding event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return nil
	}
	if event.EventType != events.OnboardingCompletedType {
		log.Debug("skipping onboarding event", zap.String("event_type", event.EventType))
		return nil
	}

	created, err := notificationService.CreateWelcome(ctx, notification.WelcomeRequest{
		CompanyID:     event.CompanyID,
		ProfileID:     event.ProfileID,
		SourceEventID: event.EventID,
		FullName:      event.FullName,
	})
	if errors.Is(err, notificationerrors.ErrInvalidWelcome) {
		log.Error("dropping invalid onboarding event",
			zap.String("event_id", event.EventID),
			zap.String("profile_id", event.ProfileID),
			zap.Error(err),
		)
		return nil
	}
	if err != nil {
		log.Error("create welcome notification failed",
			zap.String("request_id", event.RequestID),
			zap.String("profile_id", event.ProfileID),
			zap.String("company_id", event.CompanyID),
			zap.Error(err),
		)
		return err
	}

	log.Info("onboarding_completed handled",
		zap.String("request_id", event.RequestID),
		zap.String("profile_id", event.ProfileID),
		zap.Bool("notification_created", created),
	)
	return nil
}
