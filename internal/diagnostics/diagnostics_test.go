package diagnostics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTrack_FlagsBurstOverThreshold(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := New(zap.New(core), Config{LoopWindow: time.Second, LoopThreshold: 3})

	frozen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		assert.False(t, svc.Track(ctx, "onboarding", "next", "p-1"))
	}
	assert.True(t, svc.Track(ctx, "onboarding", "next", "p-1"))

	// other keys have their own budget
	assert.False(t, svc.Track(ctx, "onboarding", "next", "p-2"))

	assert.Equal(t, map[string]int{"onboarding:next:p-1": 1}, svc.SuspectedLoops())

	entries := logs.FilterMessage("suspected loop").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "diagnostics", entries[0].LoggerName)
	assert.Equal(t, "p-1", entries[0].ContextMap()["key"])
}

func TestTrack_RefillsOverTime(t *testing.T) {
	svc := New(zap.NewNop(), Config{LoopWindow: time.Second, LoopThreshold: 2})

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	assert.False(t, svc.Track(ctx, "c", "a", "k"))
	assert.False(t, svc.Track(ctx, "c", "a", "k"))
	assert.True(t, svc.Track(ctx, "c", "a", "k"))

	now = now.Add(time.Second)
	assert.False(t, svc.Track(ctx, "c", "a", "k"))
}

func TestTrack_EvictsIdleKeys(t *testing.T) {
	svc := New(zap.NewNop(), Config{LoopWindow: time.Second, LoopThreshold: 1})

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	assert.False(t, svc.Track(ctx, "onboarding", "next", "p-1"))
	assert.True(t, svc.Track(ctx, "onboarding", "next", "p-1"))
	assert.Len(t, svc.entries, 1)

	now = now.Add(500 * time.Millisecond)
	assert.False(t, svc.Track(ctx, "onboarding", "next", "p-2"))
	assert.Len(t, svc.entries, 2)

	now = now.Add(time.Second)
	assert.False(t, svc.Track(ctx, "onboarding", "next", "p-3"))

	assert.Len(t, svc.entries, 1)
	assert.Contains(t, svc.entries, "onboarding:next:p-3")
	assert.Empty(t, svc.SuspectedLoops())
}

func TestLogger_IsNamed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := New(zap.New(core), Config{})

	svc.Logger("analytics.service").Info("hello")

	assert.Equal(t, "analytics.service", logs.All()[0].LoggerName)
	assert.Equal(t, 20, svc.cfg.LoopThreshold)
}
