package layout

// Eye selects the eye treatment for a block's face cell.
type Eye uint8

const (
	EyePlain Eye = iota
	EyeStarBlue
	EyeStarRed
)

// FaceIndex returns the index of the cell that carries the face: the
// topmost cell (minimum Y), tie-broken by leftmost (minimum X).
// Returns -1 for an empty plan.
func FaceIndex(p Plan) int {
	face := -1
	for i, c := range p.Cells {
		if face < 0 {
			face = i
			continue
		}
		best := p.Cells[face]
		if c.Y < best.Y || (c.Y == best.Y && c.X < best.X) {
			face = i
		}
	}
	return face
}

// EyeCount returns how many eyes the face cell renders.
func EyeCount(value int) int {
	if value == 1 {
		return 1
	}
	return 2
}

// EyeStyle returns the eye treatment: star eyes for the five and ten
// milestones, plain otherwise.
func EyeStyle(value int) Eye {
	switch value {
	case 5, 50:
		return EyeStarBlue
	case 10, 100:
		return EyeStarRed
	}
	return EyePlain
}
