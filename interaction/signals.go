package interaction

import (
	"github.com/google/uuid"

	"renderblocks/components"
)

// MergeEvent describes a completed merge, or a zero-block absorption when
// one source is a zero block.
type MergeEvent struct {
	Result  uuid.UUID
	Value   int
	Sources [2]uuid.UUID
	At      components.Position
}

// SplitEvent describes a completed subtract-split or halve.
type SplitEvent struct {
	Source  uuid.UUID
	Results [2]uuid.UUID
	Values  [2]int
	Halved  bool
	Zero    bool // the second result is a zero block (halving a one)
}

// DuplicateEvent describes a completed value-preserving duplication.
type DuplicateEvent struct {
	Source  uuid.UUID
	Results [2]uuid.UUID
}

// Signals are fire-and-forget hooks for the audio/animation collaborators.
// Nil fields are skipped; no return value is expected.
type Signals struct {
	MergeCompleted     func(MergeEvent)
	SplitCompleted     func(SplitEvent)
	DuplicateCompleted func(DuplicateEvent)
}

func (s Signals) emitMerge(ev MergeEvent) {
	if s.MergeCompleted != nil {
		s.MergeCompleted(ev)
	}
}

func (s Signals) emitSplit(ev SplitEvent) {
	if s.SplitCompleted != nil {
		s.SplitCompleted(ev)
	}
}

func (s Signals) emitDuplicate(ev DuplicateEvent) {
	if s.DuplicateCompleted != nil {
		s.DuplicateCompleted(ev)
	}
}
