package components

import (
	"time"

	"github.com/google/uuid"
)

// Block holds a block entity's quantity. The value is immutable after
// creation: merges and splits destroy the old entities and create new ones
// rather than rewriting Value in place.
type Block struct {
	Value int
}

// Meta holds per-entity bookkeeping.
type Meta struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Dragging  bool

	// Zero marks the value-less numeral-0 placeholder created by halving
	// a block of value 1. It has no value-driven geometry and annihilates
	// on contact with any other block.
	Zero bool
}
