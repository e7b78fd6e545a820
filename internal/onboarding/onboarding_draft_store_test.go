package onboarding

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	onboardingerrors "talentflow/internal/onboarding/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func newTestStore() (*redisDraftStore, redismock.ClientMock) {
	rdb, mock := redismock.NewClientMock()
	store := NewRedisDraftStore(rdb, time.Hour, 30*time.Second).(*redisDraftStore)
	store.newToken = func() string { return "token-1" }
	return store, mock
}

func TestRedisDraftStore_LoadMissing(t *testing.T) {
	store, mock := newTestStore()
	mock.ExpectGet(DraftKey("c-1", "p-1")).RedisNil()

	state, err := store.Load(context.Background(), "c-1", "p-1")

	assert.NoError(t, err)
	assert.Nil(t, state)
}

func TestRedisDraftStore_SaveAndLoad(t *testing.T) {
	store, mock := newTestStore()
	ctx := context.Background()

	state := State{Step: StepSkills, Status: StatusInProgress, Draft: Draft{FullName: "Ana", HardSkills: []string{"Go"}}}
	payload, _ := json.Marshal(state)

	mock.ExpectSet(DraftKey("c-1", "p-1"), payload, time.Hour).SetVal("OK")
	mock.ExpectGet(DraftKey("c-1", "p-1")).SetVal(string(payload))

	assert.NoError(t, store.Save(ctx, "c-1", "p-1", state))
	loaded, err := store.Load(ctx, "c-1", "p-1")

	assert.NoError(t, err)
	assert.Equal(t, StepSkills, loaded.Step)
	assert.Equal(t, []string{"Go"}, loaded.Draft.HardSkills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisDraftStore_LoadClampsStep(t *testing.T) {
	store, mock := newTestStore()
	mock.ExpectGet(DraftKey("c-1", "p-1")).SetVal(`{"current_step":9,"status":"in_progress"}`)

	state, err := store.Load(context.Background(), "c-1", "p-1")

	assert.NoError(t, err)
	assert.Equal(t, FirstStep, state.Step)
}

func TestRedisDraftStore_Lock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquires and releases", func(t *testing.T) {
		store, mock := newTestStore()
		mock.ExpectSetNX(LockKey("c-1", "p-1"), "token-1", 30*time.Second).SetVal(true)
		mock.ExpectEval(unlockScript, []string{LockKey("c-1", "p-1")}, "token-1").SetVal(int64(1))

		token, err := store.Lock(ctx, "c-1", "p-1")
		assert.NoError(t, err)
		assert.Equal(t, "token-1", token)
		assert.NoError(t, store.Unlock(ctx, "c-1", "p-1", token))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("busy", func(t *testing.T) {
		store, mock := newTestStore()
		mock.ExpectSetNX(LockKey("c-1", "p-1"), "token-1", 30*time.Second).SetVal(false)

		_, err := store.Lock(ctx, "c-1", "p-1")

		assert.ErrorIs(t, err, onboardingerrors.ErrTransitionInProgress)
	})
}
