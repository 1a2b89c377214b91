// Package interaction orchestrates the drag, merge, and split transitions
// over the block store. It is the sole owner of the store and of the
// transient pending-combination preview; rendering and input collaborators
// only call the operations defined here.
package interaction

import (
	"time"

	"github.com/google/uuid"

	"renderblocks/components"
	"renderblocks/store"
)

// Timing defaults. The creation cooldown ignores input on a block for a
// short window after it appears, so the gesture that created it cannot
// immediately drag or merge it. The preview interval rate-limits the
// drag-time overlap check; correctness never depends on it because the
// drop always recomputes.
const (
	CreationCooldown = 150 * time.Millisecond
	PreviewInterval  = 50 * time.Millisecond
)

// PendingCombination is the transient preview state while a dragged block
// overlaps another. It drives the "+" affordance and has no effect on
// committed state until the drop finalizes.
type PendingCombination struct {
	DraggingID uuid.UUID
	TargetID   uuid.UUID
	Midpoint   components.Position
}

// Machine is the interaction state machine.
type Machine struct {
	store            *store.Store
	canvasW, canvasH float32

	signals Signals
	sched   *Scheduler

	pending     *PendingCombination
	lastPreview time.Time

	now func() time.Time
}

// New creates a machine over the given store and canvas bounds.
func New(st *store.Store, canvasW, canvasH float32) *Machine {
	return &Machine{
		store:   st,
		canvasW: canvasW,
		canvasH: canvasH,
		sched:   NewScheduler(),
		now:     time.Now,
	}
}

// SetSignals installs the fire-and-forget collaborator hooks.
func (m *Machine) SetSignals(sig Signals) {
	m.signals = sig
}

// SetClock overrides the time source for the machine and its scheduler.
func (m *Machine) SetClock(now func() time.Time) {
	m.now = now
	m.sched.SetClock(now)
}

// Store exposes the underlying store for query surfaces.
func (m *Machine) Store() *store.Store {
	return m.store
}

// Pending returns the current preview combination, if any.
func (m *Machine) Pending() (PendingCombination, bool) {
	if m.pending == nil {
		return PendingCombination{}, false
	}
	return *m.pending, true
}

// Update advances due timers. Called once per frame by the game loop.
func (m *Machine) Update() {
	m.sched.Advance()
}

// Spawn creates a block, clamped onto the canvas. It is the entry point
// behind every "create a block" affordance.
func (m *Machine) Spawn(value int, pos components.Position) (uuid.UUID, error) {
	id, err := m.store.Create(value, pos)
	if err != nil {
		return uuid.Nil, err
	}
	snap, _ := m.store.Get(id)
	m.store.UpdatePosition(id, components.ClampToCanvas(pos, snap.Size(), m.canvasW, m.canvasH))
	return id, nil
}

// Remove deletes a block directly (trash drop), bypassing merge and split
// logic. Absent ids are a no-op.
func (m *Machine) Remove(id uuid.UUID) {
	if m.pending != nil && (m.pending.DraggingID == id || m.pending.TargetID == id) {
		m.pending = nil
	}
	m.store.Remove(id)
}

// OnDragStart marks a block as held. Returns false if the id is absent or
// the block is still inside its creation cooldown.
func (m *Machine) OnDragStart(id uuid.UUID) bool {
	snap, ok := m.store.Get(id)
	if !ok {
		return false
	}
	if m.inCooldown(snap) {
		return false
	}
	m.store.SetDragging(id, true)
	return true
}

// OnDrag commits the new drag position and refreshes the overlap preview,
// coalesced to one evaluation per preview interval.
func (m *Machine) OnDrag(id uuid.UUID, pos components.Position) {
	if _, ok := m.store.Get(id); !ok {
		return
	}
	m.store.UpdatePosition(id, pos)

	now := m.now()
	if now.Sub(m.lastPreview) < PreviewInterval {
		return
	}
	m.lastPreview = now
	m.CheckOverlap(id, pos)
}

// CheckOverlap evaluates the dragged block's box at a proposed position
// against all other non-dragged blocks in store order and records the
// first overlap as the pending combination. Preview only: committed
// positions and values are never touched here.
func (m *Machine) CheckOverlap(draggedID uuid.UUID, proposed components.Position) {
	snap, ok := m.store.Get(draggedID)
	if !ok {
		m.pending = nil
		return
	}

	box := components.Bounds(proposed, snap.Size())
	if target, ok := m.firstOverlap(draggedID, box); ok {
		mid := midpoint(box, target.Bounds())
		m.pending = &PendingCombination{
			DraggingID: draggedID,
			TargetID:   target.ID,
			Midpoint:   mid,
		}
		return
	}
	m.pending = nil
}

// OnDragEnd finalizes a drag: the authoritative overlap recomputation at
// the drop point, followed by the merge transition if one is found.
// Returns true if a merge or zero absorption happened.
func (m *Machine) OnDragEnd(id uuid.UUID, finalPos components.Position) bool {
	defer func() { m.pending = nil }()

	snap, ok := m.store.Get(id)
	if !ok {
		return false
	}
	m.store.SetDragging(id, false)

	committed := components.ClampToCanvas(finalPos, snap.Size(), m.canvasW, m.canvasH)
	m.store.UpdatePosition(id, committed)

	// Fresh check at the drop point; the last preview sample may be stale.
	box := components.Bounds(committed, snap.Size())
	target, ok := m.firstOverlap(id, box)
	if !ok {
		return false
	}

	if snap.Zero || target.Zero {
		return m.absorbZero(snap, target, committed)
	}
	return m.merge(snap, target, committed)
}

// merge combines the dragged block and the target into one block of their
// summed value, centered between the two sources and clamped on canvas.
// The removals and the creation are a single atomic transition from the
// caller's point of view.
func (m *Machine) merge(dragged, target store.Snapshot, draggedPos components.Position) bool {
	newValue := dragged.Value + target.Value

	a := components.Bounds(draggedPos, dragged.Size()).Center()
	b := target.Bounds().Center()
	center := components.Position{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}

	m.store.Remove(dragged.ID)
	m.store.Remove(target.ID)

	id, err := m.store.Create(newValue, components.Position{})
	if err != nil {
		return false
	}
	snap, _ := m.store.Get(id)
	size := snap.Size()
	pos := components.ClampToCanvas(components.Position{
		X: center.X - size.Width/2,
		Y: center.Y - size.Height/2,
	}, size, m.canvasW, m.canvasH)
	m.store.UpdatePosition(id, pos)

	m.signals.emitMerge(MergeEvent{
		Result:  id,
		Value:   newValue,
		Sources: [2]uuid.UUID{dragged.ID, target.ID},
		At:      center,
	})
	return true
}

// absorbZero removes whichever side is the zero block; the other block's
// value is unchanged (0 + n = n).
func (m *Machine) absorbZero(dragged, target store.Snapshot, draggedPos components.Position) bool {
	zero, kept := dragged, target
	if target.Zero && !dragged.Zero {
		zero, kept = target, dragged
	}

	a := components.Bounds(draggedPos, dragged.Size()).Center()
	b := target.Bounds().Center()

	m.store.Remove(zero.ID)
	m.signals.emitMerge(MergeEvent{
		Result:  kept.ID,
		Value:   kept.Value,
		Sources: [2]uuid.UUID{zero.ID, kept.ID},
		At:      components.Position{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2},
	})
	return true
}

// firstOverlap scans all other blocks in store order and returns the first
// whose box overlaps. Store order is the documented tie-break when the box
// overlaps several blocks at once.
func (m *Machine) firstOverlap(draggedID uuid.UUID, box components.BoundingBox) (store.Snapshot, bool) {
	for _, other := range m.store.Query() {
		if other.ID == draggedID || other.Dragging {
			continue
		}
		if m.inCooldown(other) {
			continue
		}
		if components.Overlaps(box, other.Bounds()) {
			return other, true
		}
	}
	return store.Snapshot{}, false
}

func (m *Machine) inCooldown(snap store.Snapshot) bool {
	return m.now().Sub(snap.CreatedAt) < CreationCooldown
}

func midpoint(a, b components.BoundingBox) components.Position {
	ca := a.Center()
	cb := b.Center()
	return components.Position{X: (ca.X + cb.X) / 2, Y: (ca.Y + cb.Y) / 2}
}
