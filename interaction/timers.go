package interaction

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Scheduler queues delayed callbacks keyed to an entity id, used to sync a
// state transition with an external audio cue. Tasks run on the calling
// thread when Advance is called from the game loop, never on a background
// goroutine, so store ownership stays single-threaded.
//
// Callbacks must tolerate stale ids: store operations are idempotent
// no-ops on absent ids, so a timer outliving its entity is safe without
// cancellation bookkeeping.
type Scheduler struct {
	now   func() time.Time
	tasks []timerTask
}

type timerTask struct {
	due time.Time
	id  uuid.UUID
	fn  func(uuid.UUID)
}

// NewScheduler creates a scheduler on the wall clock.
func NewScheduler() *Scheduler {
	return &Scheduler{now: time.Now}
}

// SetClock overrides the time source for tests.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}

// After queues fn to run with the given id once delay has elapsed.
func (s *Scheduler) After(delay time.Duration, id uuid.UUID, fn func(uuid.UUID)) {
	s.tasks = append(s.tasks, timerTask{due: s.now().Add(delay), id: id, fn: fn})
}

// Cancel drops all queued tasks for an id. Purely an optimization; stale
// tasks are harmless either way.
func (s *Scheduler) Cancel(id uuid.UUID) {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.id != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

// Advance runs every task whose due time has passed, in due order, and
// returns how many ran.
func (s *Scheduler) Advance() int {
	now := s.now()

	var due []timerTask
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.due.After(now) {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept

	sort.SliceStable(due, func(i, j int) bool { return due[i].due.Before(due[j].due) })
	for _, t := range due {
		t.fn(t.id)
	}
	return len(due)
}

// Len returns the number of queued tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}
