package layout

import "image/color"

// palette is the fixed 10-color brand sequence, indexed by digit 1-10.
// Index 0 is unused (digit 0 has no cells).
var palette = [11]color.RGBA{
	1:  {R: 0xE5, G: 0x39, B: 0x35, A: 0xFF}, // red
	2:  {R: 0xF5, G: 0x7C, B: 0x00, A: 0xFF}, // orange
	3:  {R: 0xFD, G: 0xD8, B: 0x35, A: 0xFF}, // yellow
	4:  {R: 0x43, G: 0xA0, B: 0x47, A: 0xFF}, // green
	5:  {R: 0x00, G: 0xAC, B: 0xC1, A: 0xFF}, // cyan
	6:  {R: 0x39, G: 0x49, B: 0xAB, A: 0xFF}, // indigo
	7:  {R: 0x8E, G: 0x24, B: 0xAA, A: 0xFF}, // violet
	8:  {R: 0xD8, G: 0x1B, B: 0x60, A: 0xFF}, // magenta
	9:  {R: 0x75, G: 0x75, B: 0x75, A: 0xFF}, // gray
	10: {R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF}, // white
}

// grayBands is the three-band gradient for a primary nine, lightest first.
// Band 0 fills the bottom third of the group.
var grayBands = [3]color.RGBA{
	{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF},
	{R: 0x75, G: 0x75, B: 0x75, A: 0xFF},
	{R: 0x42, G: 0x42, B: 0x42, A: 0xFF},
}

// Primary returns the saturated brand color for a digit 1-10.
func Primary(digit int) color.RGBA {
	if digit < 1 || digit > 10 {
		return palette[10]
	}
	return palette[digit]
}

// Pale returns the desaturated variant used for tens and thousands groups.
func Pale(digit int) color.RGBA {
	return paleOf(Primary(digit))
}

// paleOf blends a color 60% toward white.
func paleOf(c color.RGBA) color.RGBA {
	blend := func(v uint8) uint8 {
		return v + uint8(float32(255-v)*0.6)
	}
	return color.RGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: c.A}
}

// group is one place-value run of cells in layout index order.
type group struct {
	digit int   // 1..9
	place uint8 // 0 units, 1 tens, 2 hundreds, ...
	count int   // cells in this group
	pale  bool
}

// groupsOf decomposes a value into its place groups, highest place first,
// matching the cell order Layout produces. Units and tens contribute one
// cube per unit of quantity; hundreds and above contribute one square per
// digit count.
func groupsOf(value int) []group {
	if value <= 0 {
		return nil
	}

	var places []group
	unit := 1
	for p := uint8(0); unit <= value; p++ {
		digit := (value / unit) % 10
		if p >= 2 && value/unit < 10 {
			// Highest place absorbs everything above it; Layout strips it
			// in a single group of 1..9 squares.
			digit = value / unit
		}
		if digit > 0 {
			count := digit
			if p == 1 {
				count = digit * 10
			}
			places = append(places, group{
				digit: digit,
				place: p,
				count: count,
				pale:  p%2 == 1,
			})
		}
		unit *= 10
	}

	// Reverse to highest-place-first.
	for i, j := 0, len(places)-1; i < j; i, j = i+1, j-1 {
		places[i], places[j] = places[j], places[i]
	}
	return places
}

// ColorAt returns the fill for a cell index in the layout of value, plus
// the outline color if the cell's place group carries one. Outlines mark
// the boundary of every group except units; values below ten have none.
func ColorAt(value, index int) (fill color.RGBA, outline color.RGBA, outlined bool) {
	for _, g := range groupsOf(value) {
		if index >= g.count {
			index -= g.count
			continue
		}

		switch {
		case g.digit == 7:
			// Rainbow: cycle the full palette by position within the group.
			fill = palette[index%10+1]
		case g.digit == 9 && !g.pale:
			fill = grayBands[index*3/g.count]
		default:
			fill = palette[g.digit]
		}
		if g.pale {
			fill = paleOf(fill)
		}

		if g.place > 0 {
			return fill, Primary(g.digit), true
		}
		return fill, color.RGBA{}, false
	}

	// Index beyond the cell count; deterministic fallback.
	return palette[10], color.RGBA{}, false
}
