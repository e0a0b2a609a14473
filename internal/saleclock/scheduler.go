package saleclock

import (
	"context"
	"sync"
	"time"
)

// PhaseChange is emitted whenever the derived phase differs from the
// previously observed one.
type PhaseChange struct {
	From Phase
	To   Phase
	At   time.Time
}

// WindowSource yields the current sale window; the scheduler re-reads it on
// every tick so admin edits to the config take effect mid-day.
type WindowSource func() Window

// Scheduler re-derives the phase on a fixed tick and fans out changes to
// subscribers. The clock functions stay pure; all timing lives here.
type Scheduler struct {
	source   WindowSource
	interval time.Duration
	loc      *time.Location

	mu   sync.Mutex
	subs []chan PhaseChange
	last Phase
}

func NewScheduler(source WindowSource, interval time.Duration, loc *time.Location) *Scheduler {
	return &Scheduler{
		source:   source,
		interval: interval,
		loc:      loc,
	}
}

// Subscribe registers a listener. Slow listeners drop events rather than
// blocking the tick loop.
func (s *Scheduler) Subscribe() <-chan PhaseChange {
	ch := make(chan PhaseChange, 4)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// Run ticks until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	s.last = PhaseAt(time.Now().In(s.loc), s.source())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.tick(now.In(s.loc))
		}
	}
}

func (s *Scheduler) tick(now time.Time) {
	phase := PhaseAt(now, s.source())

	s.mu.Lock()
	defer s.mu.Unlock()
	if phase == s.last {
		return
	}
	change := PhaseChange{From: s.last, To: phase, At: now}
	s.last = phase
	for _, ch := range s.subs {
		select {
		case ch <- change:
		default:
		}
	}
}
