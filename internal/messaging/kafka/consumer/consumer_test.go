package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"talentflow/internal/events"
	"talentflow/internal/messaging/kafka/consumer"
	"talentflow/internal/notification"
	notificationerrors "talentflow/internal/notification/errors"
	notificationMock "talentflow/internal/notification/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func completedMessage(t *testing.T) kafkago.Message {
	body, err := json.Marshal(events.OnboardingCompletedEvent{
		EventID:    "evt-1",
		EventType:  events.OnboardingCompletedType,
		ProfileID:  "p-1",
		CompanyID:  "c-1",
		FullName:   "Ana Souza",
		OccurredAt: time.Now().UTC(),
	})
	assert.NoError(t, err)
	return kafkago.Message{Topic: events.OnboardingLifecycleTopic, Value: body}
}

func TestHandleOnboardingMessage(t *testing.T) {
	ctx := context.Background()
	want := notification.WelcomeRequest{CompanyID: "c-1", ProfileID: "p-1", SourceEventID: "evt-1", FullName: "Ana Souza"}

	t.Run("creates the welcome notification", func(t *testing.T) {
		svc := notificationMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().CreateWelcome(ctx, want).Return(true, nil)

		assert.NoError(t, consumer.HandleOnboardingMessage(ctx, completedMessage(t), svc, zap.NewNop()))
	})

	t.Run("redelivery is committed without a second notification", func(t *testing.T) {
		svc := notificationMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().CreateWelcome(ctx, want).Return(false, nil)

		assert.NoError(t, consumer.HandleOnboardingMessage(ctx, completedMessage(t), svc, zap.NewNop()))
	})

	t.Run("storage failure is retryable", func(t *testing.T) {
		svc := notificationMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().CreateWelcome(ctx, want).Return(false, errors.New("db down"))

		assert.EqualError(t, consumer.HandleOnboardingMessage(ctx, completedMessage(t), svc, zap.NewNop()), "db down")
	})

	t.Run("invalid event is committed", func(t *testing.T) {
		svc := notificationMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().CreateWelcome(ctx, want).Return(false, notificationerrors.ErrInvalidWelcome)

		assert.NoError(t, consumer.HandleOnboardingMessage(ctx, completedMessage(t), svc, zap.NewNop()))
	})

	t.Run("garbage is committed", func(t *testing.T) {
		svc := notificationMock.NewMockService(gomock.NewController(t))

		assert.NoError(t, consumer.HandleOnboardingMessage(ctx, kafkago.Message{Value: []byte("{")}, svc, zap.NewNop()))
	})
}

type fakeReader struct {
	msgs      []kafkago.Message
	fetched   int
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.msgs) == 0 {
		f.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := f.msgs[0]
	f.msgs = f.msgs[1:]
	f.fetched++
	return m, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.committed = append(f.committed, msgs...)
	return nil
}

func TestConsumeOnboardingLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := notificationMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().CreateWelcome(gomock.Any(), gomock.Any()).Return(true, nil)

	reader := &fakeReader{msgs: []kafkago.Message{completedMessage(t)}, cancel: cancel}

	consumer.ConsumeOnboardingLifecycle(ctx, reader, svc, zap.NewNop())

	assert.Len(t, reader.committed, 1)
}

func TestConsumeOnboardingLifecycleRetriesFailedMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := completedMessage(t)
	first.Offset = 7
	second := completedMessage(t)
	second.Offset = 8

	svc := notificationMock.NewMockService(gomock.NewController(t))
	gomock.InOrder(
		svc.EXPECT().CreateWelcome(gomock.Any(), gomock.Any()).Return(false, errors.New("db down")),
		svc.EXPECT().CreateWelcome(gomock.Any(), gomock.Any()).Return(true, nil),
		svc.EXPECT().CreateWelcome(gomock.Any(), gomock.Any()).Return(false, nil),
	)

	reader := &fakeReader{msgs: []kafkago.Message{first, second}, cancel: cancel}

	consumer.ConsumeOnboardingLifecycle(ctx, reader, svc, zap.NewNop(),
		consumer.WithRetryBackoff(time.Millisecond, time.Millisecond))

	assert.Equal(t, 2, reader.fetched)
	if assert.Len(t, reader.committed, 2) {
		assert.Equal(t, int64(7), reader.committed[0].Offset)
		assert.Equal(t, int64(8), reader.committed[1].Offset)
	}
}

func TestConsumeOnboardingLifecycleStopsRetryingOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := notificationMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().CreateWelcome(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, notification.WelcomeRequest) (bool, error) {
			cancel()
			return false, errors.New("db down")
		},
	)

	reader := &fakeReader{msgs: []kafkago.Message{completedMessage(t)}, cancel: cancel}

	consumer.ConsumeOnboardingLifecycle(ctx, reader, svc, zap.NewNop(),
		consumer.WithRetryBackoff(time.Hour, time.Hour))

	assert.Empty(t, reader.committed)
}
