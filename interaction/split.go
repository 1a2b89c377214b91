package interaction

import (
	"time"

	"github.com/google/uuid"

	"renderblocks/components"
	"renderblocks/layout"
	"renderblocks/store"
)

// SneezeDelay is how long a sneeze-triggered halve waits before mutating
// the store, so the visual split lands mid-sound.
const SneezeDelay = 500 * time.Millisecond

// Split performs the generic subtract-split: one block of value v becomes
// blocks of v-amount and amount. Returns false with no state change if the
// id is absent, the block is a zero block, or amount is out of the open
// range (0, v) — a split must produce two strictly positive values.
func (m *Machine) Split(id uuid.UUID, amount int) bool {
	_, _, ok := m.splitInto(id, amount, true, false)
	return ok
}

// Duplicate performs the value-preserving duplication of a one: the source
// is destroyed and two blocks of value 1 are created adjacent. This is the
// modeled exception to the split-sum invariant (1 + 1 != 1), distinct from
// subtract-split. Returns false for any other value.
func (m *Machine) Duplicate(id uuid.UUID) bool {
	snap, ok := m.store.Get(id)
	if !ok || snap.Zero || snap.Value != 1 {
		return false
	}

	p1, p2 := m.placePair(snap, layout.SizeOf(1), layout.SizeOf(1))

	m.store.Remove(id)
	a, err := m.store.Create(1, p1)
	if err != nil {
		return false
	}
	b, err := m.store.Create(1, p2)
	if err != nil {
		return false
	}

	m.signals.emitDuplicate(DuplicateEvent{
		Source:  id,
		Results: [2]uuid.UUID{a, b},
	})
	return true
}

// Halve splits a block evenly: n/2 + n/2 when even, floor and ceil halves
// when odd. Halving a one is the only path that creates a zero block: the
// source becomes one block of value 1 plus a numeral-0 placeholder.
func (m *Machine) Halve(id uuid.UUID) bool {
	snap, ok := m.store.Get(id)
	if !ok || snap.Zero {
		return false
	}

	if snap.Value == 1 {
		zeroSize := components.Size{Width: layout.CubeSize, Height: layout.CubeSize}
		p1, p2 := m.placePair(snap, layout.SizeOf(1), zeroSize)

		m.store.Remove(id)
		one, err := m.store.Create(1, p1)
		if err != nil {
			return false
		}
		zero := m.store.CreateZero(p2)

		m.signals.emitSplit(SplitEvent{
			Source:  id,
			Results: [2]uuid.UUID{one, zero},
			Values:  [2]int{1, 0},
			Halved:  true,
			Zero:    true,
		})
		return true
	}

	lo := snap.Value / 2
	a, b, ok := m.splitInto(id, lo, false, true)
	if !ok {
		return false
	}
	m.signals.emitSplit(SplitEvent{
		Source:  id,
		Results: [2]uuid.UUID{a, b},
		Values:  [2]int{snap.Value - lo, lo},
		Halved:  true,
	})
	return true
}

// ScheduleHalve queues a halve after the sneeze delay. The callback is
// keyed to the id and is a safe no-op if the block is gone by then.
func (m *Machine) ScheduleHalve(id uuid.UUID, delay time.Duration) {
	m.sched.After(delay, id, func(staleID uuid.UUID) {
		m.Halve(staleID)
	})
}

// splitInto removes the source and creates the remaining/subtracted pair.
// The emit flag suppresses the split signal when a variant fires its own.
func (m *Machine) splitInto(id uuid.UUID, amount int, emit, halved bool) (uuid.UUID, uuid.UUID, bool) {
	snap, ok := m.store.Get(id)
	if !ok || snap.Zero {
		return uuid.Nil, uuid.Nil, false
	}
	if amount <= 0 || amount >= snap.Value {
		return uuid.Nil, uuid.Nil, false
	}

	remaining := snap.Value - amount
	p1, p2 := m.placePair(snap, layout.SizeOf(remaining), layout.SizeOf(amount))

	m.store.Remove(id)
	a, err := m.store.Create(remaining, p1)
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	b, err := m.store.Create(amount, p2)
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}

	if emit {
		m.signals.emitSplit(SplitEvent{
			Source:  id,
			Results: [2]uuid.UUID{a, b},
			Values:  [2]int{remaining, amount},
			Halved:  halved,
		})
	}
	return a, b, true
}

// placePair lays the two result blocks side by side near the source,
// preferring a horizontal arrangement, falling back to vertical stacking,
// and to opposite corners when neither fits. Everything is clamped to the
// canvas.
func (m *Machine) placePair(src store.Snapshot, s1, s2 components.Size) (components.Position, components.Position) {
	gap := layout.GroupGap

	// Horizontal: second block to the right of the first.
	if src.Pos.X+s1.Width+gap+s2.Width <= m.canvasW {
		p1 := components.ClampToCanvas(src.Pos, s1, m.canvasW, m.canvasH)
		p2 := components.ClampToCanvas(components.Position{
			X: p1.X + s1.Width + gap,
			Y: p1.Y,
		}, s2, m.canvasW, m.canvasH)
		return p1, p2
	}

	// Vertical: second block below the first.
	if src.Pos.Y+s1.Height+gap+s2.Height <= m.canvasH {
		p1 := components.ClampToCanvas(src.Pos, s1, m.canvasW, m.canvasH)
		p2 := components.ClampToCanvas(components.Position{
			X: p1.X,
			Y: p1.Y + s1.Height + gap,
		}, s2, m.canvasW, m.canvasH)
		return p1, p2
	}

	// Last resort: opposite corners.
	p1 := components.ClampToCanvas(components.Position{}, s1, m.canvasW, m.canvasH)
	p2 := components.ClampToCanvas(components.Position{
		X: m.canvasW - s2.Width,
		Y: m.canvasH - s2.Height,
	}, s2, m.canvasW, m.canvasH)
	return p1, p2
}
