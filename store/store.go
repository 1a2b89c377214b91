// Package store holds the authoritative set of live block entities.
// All operations are synchronous and immediately consistent; the store is
// owned by the interaction machine and never mutated by collaborators
// directly.
package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"renderblocks/components"
	"renderblocks/layout"
)

// ErrInvalidValue rejects creation with a negative value. It is the only
// hard validation failure in the core; everything else is an expected
// negative outcome reported by a boolean.
var ErrInvalidValue = errors.New("store: block value must be a non-negative integer")

// Snapshot is a read-only view of one block entity.
type Snapshot struct {
	ID        uuid.UUID
	Value     int
	Pos       components.Position
	Dragging  bool
	CreatedAt time.Time
	Zero      bool
}

// Size returns the block's derived size. A zero block renders as a single
// numeral glyph with a cube-sized footprint.
func (s Snapshot) Size() components.Size {
	if s.Zero {
		return components.Size{Width: layout.CubeSize, Height: layout.CubeSize}
	}
	return layout.SizeOf(s.Value)
}

// Bounds returns the block's bounding box, recomputed on demand.
func (s Snapshot) Bounds() components.BoundingBox {
	return components.Bounds(s.Pos, s.Size())
}

// Store is the block entity container. Entities live in an ark ECS world;
// the id index and order slice preserve the opaque-id surface and the
// insertion-order query contract.
type Store struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Block, components.Position, components.Meta]

	blockMap *ecs.Map1[components.Block]
	posMap   *ecs.Map1[components.Position]
	metaMap  *ecs.Map1[components.Meta]

	entities map[uuid.UUID]ecs.Entity
	order    []uuid.UUID

	now func() time.Time
}

// New creates an empty store.
func New() *Store {
	world := ecs.NewWorld()
	return &Store{
		world:    world,
		mapper:   ecs.NewMap3[components.Block, components.Position, components.Meta](world),
		blockMap: ecs.NewMap1[components.Block](world),
		posMap:   ecs.NewMap1[components.Position](world),
		metaMap:  ecs.NewMap1[components.Meta](world),
		entities: make(map[uuid.UUID]ecs.Entity),
		now:      time.Now,
	}
}

// SetClock overrides the creation timestamp source. Tests use this to
// exercise the post-creation cooldown window deterministically.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Create adds a block with the given value and returns its fresh id.
func (s *Store) Create(value int, pos components.Position) (uuid.UUID, error) {
	if value < 0 {
		return uuid.Nil, ErrInvalidValue
	}
	return s.create(value, pos, false), nil
}

// CreateZero adds a value-less numeral-0 placeholder block.
func (s *Store) CreateZero(pos components.Position) uuid.UUID {
	return s.create(0, pos, true)
}

func (s *Store) create(value int, pos components.Position, zero bool) uuid.UUID {
	id := uuid.New()
	block := components.Block{Value: value}
	position := components.Position{X: pos.X, Y: pos.Y}
	meta := components.Meta{ID: id, CreatedAt: s.now(), Zero: zero}

	entity := s.mapper.NewEntity(&block, &position, &meta)
	s.entities[id] = entity
	s.order = append(s.order, id)
	return id
}

// Remove deletes a block. Absent ids are a no-op, which keeps delayed
// callbacks acting on stale ids safe by construction.
func (s *Store) Remove(id uuid.UUID) {
	entity, ok := s.entities[id]
	if !ok {
		return
	}
	s.mapper.Remove(entity)
	delete(s.entities, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// UpdatePosition moves a block. No-op if the id is absent.
func (s *Store) UpdatePosition(id uuid.UUID, pos components.Position) {
	entity, ok := s.entities[id]
	if !ok {
		return
	}
	p := s.posMap.Get(entity)
	p.X = pos.X
	p.Y = pos.Y
}

// SetDragging marks or unmarks a block as actively held.
func (s *Store) SetDragging(id uuid.UUID, dragging bool) {
	entity, ok := s.entities[id]
	if !ok {
		return
	}
	s.metaMap.Get(entity).Dragging = dragging
}

// Get returns a snapshot of one block.
func (s *Store) Get(id uuid.UUID) (Snapshot, bool) {
	entity, ok := s.entities[id]
	if !ok {
		return Snapshot{}, false
	}
	return s.snapshot(entity), true
}

// Query returns all blocks in insertion order. Merge and split results
// append at the tail after their sources are filtered out, so the most
// recently created block draws on top.
func (s *Store) Query() []Snapshot {
	out := make([]Snapshot, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.snapshot(s.entities[id]))
	}
	return out
}

// Len returns the number of live blocks, zero blocks included.
func (s *Store) Len() int {
	return len(s.order)
}

// TotalValue sums all block values. Zero blocks contribute nothing.
// Conservation tracking compares this across merge/split transitions.
func (s *Store) TotalValue() int {
	total := 0
	for _, entity := range s.entities {
		total += s.blockMap.Get(entity).Value
	}
	return total
}

func (s *Store) snapshot(entity ecs.Entity) Snapshot {
	block := s.blockMap.Get(entity)
	pos := s.posMap.Get(entity)
	meta := s.metaMap.Get(entity)
	return Snapshot{
		ID:        meta.ID,
		Value:     block.Value,
		Pos:       components.Position{X: pos.X, Y: pos.Y},
		Dragging:  meta.Dragging,
		CreatedAt: meta.CreatedAt,
		Zero:      meta.Zero,
	}
}
