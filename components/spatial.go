// Package components defines the plain data types shared across the block
// playground: canvas geometry and the ECS component structs for block
// entities.
package components

// Position represents a point in canvas space.
type Position struct {
	X, Y float32
}

// Size represents a width/height pair. Sizes are always derived from a
// block's value, never stored on the entity.
type Size struct {
	Width, Height float32
}

// BoundingBox is an axis-aligned rectangle, derived on demand from
// (Position, Size) so it can never go stale relative to the value.
type BoundingBox struct {
	X, Y          float32
	Width, Height float32
}

// Bounds builds the bounding box for a block at pos with the given size.
func Bounds(pos Position, size Size) BoundingBox {
	return BoundingBox{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

// Center returns the box midpoint.
func (b BoundingBox) Center() Position {
	return Position{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Overlaps reports whether two boxes overlap strictly on both axes.
// Edge-touching rectangles do not count as overlapping.
func Overlaps(a, b BoundingBox) bool {
	return a.X < b.X+b.Width && a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}

// ClampToCanvas shifts pos so a block of the given size stays fully inside
// a canvas of canvasW x canvasH. Blocks larger than the canvas pin to the
// top-left corner.
func ClampToCanvas(pos Position, size Size, canvasW, canvasH float32) Position {
	maxX := canvasW - size.Width
	maxY := canvasH - size.Height
	if pos.X > maxX {
		pos.X = maxX
	}
	if pos.Y > maxY {
		pos.Y = maxY
	}
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	return pos
}
