// Package diagnostics owns the process-wide logger and flags actions that
// repeat faster than a configured rate, which usually means a client or a
// handler is stuck in a loop. One Service is built in main and injected.
package diagnostics

import (
	"context"
	"strings"
	"sync"
	"time"

	"talentflow/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Config struct {
	LoopWindow    time.Duration
	LoopThreshold int
}

type tracked struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	loops    int
}

type Service struct {
	root      *zap.Logger
	log       *zap.Logger
	cfg       Config
	now       func() time.Time
	mu        sync.Mutex
	entries   map[string]*tracked
	lastSweep time.Time
}

func New(logger *zap.Logger, cfg Config) *Service {
	if cfg.LoopWindow <= 0 {
		cfg.LoopWindow = 10 * time.Second
	}
	if cfg.LoopThreshold <= 0 {
		cfg.LoopThreshold = 20
	}
	return &Service{
		root:    logger,
		log:     logger.Named("diagnostics"),
		cfg:     cfg,
		now:     time.Now,
		entries: make(map[string]*tracked),
	}
}

// Logger returns the root logger named after component.
func (s *Service) Logger(component string) *zap.Logger {
	return s.root.Named(component)
}

// Track records one occurrence of action for key and reports whether the
// occurrence exceeded LoopThreshold within LoopWindow.
func (s *Service) Track(ctx context.Context, component, action, key string) bool {
	id := strings.Join([]string{component, action, key}, ":")

	s.mu.Lock()
	now := s.now()
	s.sweep(now)
	entry, ok := s.entries[id]
	if !ok {
		every := s.cfg.LoopWindow / time.Duration(s.cfg.LoopThreshold)
		entry = &tracked{limiter: rate.NewLimiter(rate.Every(every), s.cfg.LoopThreshold)}
		s.entries[id] = entry
	}
	entry.lastSeen = now
	allowed := entry.limiter.AllowN(now, 1)
	if !allowed {
		entry.loops++
	}
	s.mu.Unlock()

	if allowed {
		return false
	}

	s.log.Warn("suspected loop",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("component", component),
		zap.String("action", action),
		zap.String("key", key),
		zap.Int("threshold", s.cfg.LoopThreshold),
		zap.Duration("window", s.cfg.LoopWindow),
	)
	return true
}

// sweep drops keys idle for a full window, at most once per window. The
// bucket of such a key is already full. Caller holds s.mu.
func (s *Service) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.cfg.LoopWindow {
		return
	}
	s.lastSweep = now
	for id, entry := range s.entries {
		if now.Sub(entry.lastSeen) >= s.cfg.LoopWindow {
			delete(s.entries, id)
		}
	}
}

// SuspectedLoops returns how many tracked occurrences were over the limit, per
// component:action:key, for keys still active.
func (s *Service) SuspectedLoops() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int)
	for k, entry := range s.entries {
		if entry.loops > 0 {
			out[k] = entry.loops
		}
	}
	return out
}

// Close flushes buffered log entries.
func (s *Service) Close() error {
	return s.root.Sync()
}
