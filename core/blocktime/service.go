package blocktime

import (
	"context"
	"sync"
	"time"
)

// Svc holds the current simulated chain time. Engines read it through their
// own TimeService interfaces; drivers move it forward between actions the
// way block timestamps move forward between transactions.
type Svc struct {
	mu  sync.RWMutex
	now time.Time

	listeners []func(context.Context, time.Time)
}

func New(now time.Time) *Svc {
	return &Svc{now: now}
}

// GetTimeNow returns the current chain time.
func (s *Svc) GetTimeNow() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

// SetTimeNow sets the chain time and notifies listeners. Going backwards is
// not supported, earlier times are ignored.
func (s *Svc) SetTimeNow(ctx context.Context, t time.Time) {
	s.mu.Lock()
	if t.Before(s.now) {
		s.mu.Unlock()
		return
	}
	s.now = t
	fns := s.listeners
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ctx, t)
	}
}

// Forward advances the chain time by d.
func (s *Svc) Forward(ctx context.Context, d time.Duration) {
	s.SetTimeNow(ctx, s.GetTimeNow().Add(d))
}

// NotifyOnTick registers functions to be called on every time update.
func (s *Svc) NotifyOnTick(fns ...func(context.Context, time.Time)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fns...)
}
