// Package layout maps whole numbers to deterministic 2D arrangements of
// unit cubes and place-value squares, and assigns the place-value-based
// coloring for each cell. All functions are pure: the same value always
// yields the same cell sequence, and cell index order is the contract the
// coloring and face rules build on.
package layout

import "renderblocks/components"

// Cube geometry in canvas units.
const (
	CubeSize float32 = 40
	CubeGap  float32 = 2

	// Pitch is the center-to-center distance between adjacent cubes.
	Pitch = CubeSize + CubeGap

	// SquareSide is the side of a place-value square (hundreds and up),
	// the footprint of a 10x10 cube grid.
	SquareSide = 10*CubeSize + 9*CubeGap

	// SquareGap separates stacked place squares.
	SquareGap = CubeGap

	// GroupGap separates a place-square stack from its remainder layout.
	GroupGap float32 = 16
)

// Cell is one drawable unit of a block: a unit cube (Place 0) or a
// place-value square (Place >= 2; tens are rendered as loose cubes, so
// Place 1 never appears).
type Cell struct {
	X, Y  float32
	Place uint8
}

// Side returns the cell's square side length.
func (c Cell) Side() float32 {
	if c.Place >= 2 {
		return SquareSide
	}
	return CubeSize
}

// Plan is the full layout of one value: the ordered cell sequence and the
// union bounding size. Index 0 is the visually lowest cell of the highest
// place group.
type Plan struct {
	Cells []Cell
	Size  components.Size
}

// Layout computes the cell arrangement for a non-negative value.
// Values below 100 produce exactly value unit cubes; larger values strip
// the highest place into fixed-size squares and recurse on the remainder,
// which sits to the right, bottom-aligned.
func Layout(value int) Plan {
	if value <= 0 {
		return Plan{}
	}
	if value < 100 {
		return subHundred(value)
	}

	place, unit := highestPlace(value)
	count := value / unit
	rem := value % unit

	squares := placeSquares(count, place)
	if rem == 0 {
		return squares
	}

	rest := Layout(rem)
	height := squares.Size.Height
	if rest.Size.Height > height {
		height = rest.Size.Height
	}

	cells := make([]Cell, 0, len(squares.Cells)+len(rest.Cells))
	squareDY := height - squares.Size.Height
	for _, c := range squares.Cells {
		c.Y += squareDY
		cells = append(cells, c)
	}
	restDX := squares.Size.Width + GroupGap
	restDY := height - rest.Size.Height
	for _, c := range rest.Cells {
		c.X += restDX
		c.Y += restDY
		cells = append(cells, c)
	}

	return Plan{
		Cells: cells,
		Size: components.Size{
			Width:  restDX + rest.Size.Width,
			Height: height,
		},
	}
}

// SizeOf returns just the bounding size for a value.
func SizeOf(value int) components.Size {
	return Layout(value).Size
}

// subHundred lays out 1..99 as unit cubes.
func subHundred(v int) Plan {
	switch {
	case v == 4:
		return cubeGrid(v, 2)
	case v == 7:
		return cubeGrid(v, 1) // single column, reserved for rainbow coloring
	case v == 9:
		return cubeGrid(v, 3)
	case v <= 5:
		return cubeGrid(v, 1)
	}

	cols := 2
	if v >= 30 {
		cols = v / 10
	}
	return cubeGrid(v, cols)
}

// cubeGrid fills count cubes into cols columns, row-major with row 0 at
// the bottom of the stack, so lower indices are visually lower.
func cubeGrid(count, cols int) Plan {
	rows := (count + cols - 1) / cols
	cells := make([]Cell, count)
	for i := 0; i < count; i++ {
		row := i / cols
		col := i % cols
		cells[i] = Cell{
			X: float32(col) * Pitch,
			Y: float32(rows-1-row) * Pitch,
		}
	}
	return Plan{
		Cells: cells,
		Size: components.Size{
			Width:  float32(cols)*Pitch - CubeGap,
			Height: float32(rows)*Pitch - CubeGap,
		},
	}
}

// placeSquares arranges count place-value squares left-to-right and
// bottom-to-top: one column for 1-3 squares, two for 4-6, three beyond.
func placeSquares(count int, place uint8) Plan {
	cols := 1
	switch {
	case count > 6:
		cols = 3
	case count > 3:
		cols = 2
	}
	rows := (count + cols - 1) / cols

	pitch := SquareSide + SquareGap
	cells := make([]Cell, count)
	for i := 0; i < count; i++ {
		row := i / cols
		col := i % cols
		cells[i] = Cell{
			X:     float32(col) * pitch,
			Y:     float32(rows-1-row) * pitch,
			Place: place,
		}
	}
	return Plan{
		Cells: cells,
		Size: components.Size{
			Width:  float32(cols)*pitch - SquareGap,
			Height: float32(rows)*pitch - SquareGap,
		},
	}
}

// highestPlace returns the exponent and power of ten of a value's highest
// place, starting at hundreds. 345 -> (2, 100); 12345 -> (4, 10000).
func highestPlace(value int) (place uint8, unit int) {
	place = 2
	unit = 100
	for value/unit >= 10 {
		place++
		unit *= 10
	}
	return place, unit
}
