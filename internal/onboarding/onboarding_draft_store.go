package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	onboardingerrors "talentflow/internal/onboarding/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const unlockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

func DraftKey(companyID, profileID string) string {
	return fmt.Sprintf("onboarding:draft:%s:%s", companyID, profileID)
}

func LockKey(companyID, profileID string) string {
	return fmt.Sprintf("onboarding:lock:%s:%s", companyID, profileID)
}

//go:generate mockgen -source=onboarding_draft_store.go -destination=mock/onboarding_draft_store_mock.go -package=mock
type DraftStore interface {
	// Load returns nil when no checkpoint exists.
	Load(ctx context.Context, companyID, profileID string) (*State, error)
	Save(ctx context.Context, companyID, profileID string, state State) error
	Delete(ctx context.Context, companyID, profileID string) error
	// Lock returns a token for Unlock, or ErrTransitionInProgress when held.
	Lock(ctx context.Context, companyID, profileID string) (string, error)
	Unlock(ctx context.Context, companyID, profileID, token string) error
}

type redisDraftStore struct {
	rdb      *redis.Client
	draftTTL time.Duration
	lockTTL  time.Duration
	newToken func() string
}

func NewRedisDraftStore(rdb *redis.Client, draftTTL, lockTTL time.Duration) DraftStore {
	return &redisDraftStore{
		rdb:      rdb,
		draftTTL: draftTTL,
		lockTTL:  lockTTL,
		newToken: uuid.NewString,
	}
}

func (s *redisDraftStore) Load(ctx context.Context, companyID, profileID string) (*State, error) {
	raw, err := s.rdb.Get(ctx, DraftKey(companyID, profileID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode onboarding draft: %w", err)
	}
	if !state.Step.Valid() {
		state.Step = FirstStep
	}
	return &state, nil
}

func (s *redisDraftStore) Save(ctx context.Context, companyID, profileID string, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, DraftKey(companyID, profileID), payload, s.draftTTL).Err()
}

func (s *redisDraftStore) Delete(ctx context.Context, companyID, profileID string) error {
	return s.rdb.Del(ctx, DraftKey(companyID, profileID)).Err()
}

func (s *redisDraftStore) Lock(ctx context.Context, companyID, profileID string) (string, error) {
	token := s.newToken()
	ok, err := s.rdb.SetNX(ctx, LockKey(companyID, profileID), token, s.lockTTL).Result()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", onboardingerrors.ErrTransitionInProgress
	}
	return token, nil
}

func (s *redisDraftStore) Unlock(ctx context.Context, companyID, profileID, token string) error {
	return s.rdb.Eval(ctx, unlockScript, []string{LockKey(companyID, profileID)}, token).Err()
}
