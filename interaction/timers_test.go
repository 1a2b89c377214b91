package interaction

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"renderblocks/components"
)

func TestSchedulerRunsDueTasks(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler()
	s.SetClock(clock.now)

	var ran []uuid.UUID
	a := uuid.New()
	b := uuid.New()
	s.After(100*time.Millisecond, a, func(id uuid.UUID) { ran = append(ran, id) })
	s.After(300*time.Millisecond, b, func(id uuid.UUID) { ran = append(ran, id) })

	if n := s.Advance(); n != 0 {
		t.Errorf("nothing is due yet, ran %d", n)
	}

	clock.advance(150 * time.Millisecond)
	if n := s.Advance(); n != 1 {
		t.Fatalf("ran %d tasks, want 1", n)
	}
	if len(ran) != 1 || ran[0] != a {
		t.Error("wrong task ran first")
	}

	clock.advance(200 * time.Millisecond)
	s.Advance()
	if len(ran) != 2 || ran[1] != b {
		t.Error("second task did not run")
	}
	if s.Len() != 0 {
		t.Errorf("queue should be empty, has %d", s.Len())
	}
}

func TestSchedulerRunsInDueOrder(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler()
	s.SetClock(clock.now)

	var order []int
	s.After(200*time.Millisecond, uuid.New(), func(uuid.UUID) { order = append(order, 2) })
	s.After(100*time.Millisecond, uuid.New(), func(uuid.UUID) { order = append(order, 1) })

	clock.advance(time.Second)
	s.Advance()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("run order = %v, want [1 2]", order)
	}
}

func TestSchedulerCancel(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler()
	s.SetClock(clock.now)

	id := uuid.New()
	ran := false
	s.After(100*time.Millisecond, id, func(uuid.UUID) { ran = true })
	s.Cancel(id)

	clock.advance(time.Second)
	s.Advance()
	if ran {
		t.Error("cancelled task must not run")
	}
}

func TestScheduledHalveFires(t *testing.T) {
	m, st, clock := newTestMachine()
	id := spawn(t, m, clock, 8, 200, 200)

	m.ScheduleHalve(id, SneezeDelay)
	m.Update()
	if st.Len() != 1 {
		t.Fatal("halve must not fire before the delay")
	}

	clock.advance(SneezeDelay + time.Millisecond)
	m.Update()

	var values []int
	for _, snap := range st.Query() {
		values = append(values, snap.Value)
	}
	if len(values) != 2 || values[0] != 4 || values[1] != 4 {
		t.Errorf("values after scheduled halve = %v, want [4 4]", values)
	}
}

func TestScheduledHalveOnStaleIDIsNoOp(t *testing.T) {
	m, st, clock := newTestMachine()
	id := spawn(t, m, clock, 8, 200, 200)

	m.ScheduleHalve(id, SneezeDelay)
	m.Remove(id)

	other, _ := m.Spawn(3, components.Position{X: 500, Y: 500})
	clock.advance(SneezeDelay + time.Millisecond)
	m.Update()

	// The stale timer must not touch the unrelated block.
	snap, ok := st.Get(other)
	if !ok || snap.Value != 3 {
		t.Error("stale timer mutated an unrelated block")
	}
	if st.Len() != 1 {
		t.Errorf("store has %d blocks, want 1", st.Len())
	}
}
