// Package telemetry tracks session activity: windowed interaction counts,
// value distribution stats, and CSV export for later analysis.
package telemetry

import "github.com/google/uuid"

// EventType identifies interaction events.
type EventType uint8

const (
	EventSpawn EventType = iota
	EventMerge
	EventSplit
	EventDuplicate
	EventZeroAbsorb
	EventRemove
)

// Event represents a single interaction event.
type Event struct {
	Type EventType
	Tick int32

	// Block the event centers on: the result of a merge/split, the
	// spawned or removed block.
	BlockID uuid.UUID
	Value   int

	// Optional second participant (merge source, split remainder).
	OtherID uuid.UUID
}

// NewSpawnEvent records a block creation.
func NewSpawnEvent(tick int32, id uuid.UUID, value int) Event {
	return Event{Type: EventSpawn, Tick: tick, BlockID: id, Value: value}
}

// NewMergeEvent records two blocks combining into one.
func NewMergeEvent(tick int32, result uuid.UUID, value int, consumed uuid.UUID) Event {
	return Event{Type: EventMerge, Tick: tick, BlockID: result, Value: value, OtherID: consumed}
}

// NewSplitEvent records one block dividing into two.
func NewSplitEvent(tick int32, first uuid.UUID, firstValue int, second uuid.UUID) Event {
	return Event{Type: EventSplit, Tick: tick, BlockID: first, Value: firstValue, OtherID: second}
}

// NewDuplicateEvent records a value-preserving duplication.
func NewDuplicateEvent(tick int32, first, second uuid.UUID) Event {
	return Event{Type: EventDuplicate, Tick: tick, BlockID: first, Value: 1, OtherID: second}
}

// NewZeroAbsorbEvent records a zero block annihilating on contact.
func NewZeroAbsorbEvent(tick int32, target uuid.UUID, zero uuid.UUID) Event {
	return Event{Type: EventZeroAbsorb, Tick: tick, BlockID: target, OtherID: zero}
}

// NewRemoveEvent records a direct deletion (trash drop).
func NewRemoveEvent(tick int32, id uuid.UUID, value int) Event {
	return Event{Type: EventRemove, Tick: tick, BlockID: id, Value: value}
}
