package layout

import (
	"math"
	"testing"
)

func TestLayoutDeterminism(t *testing.T) {
	for _, v := range []int{0, 1, 4, 7, 9, 13, 42, 73, 99, 100, 345, 999, 1234, 7007} {
		a := Layout(v)
		b := Layout(v)

		if a.Size != b.Size {
			t.Errorf("value %d: sizes differ: %v vs %v", v, a.Size, b.Size)
		}
		if len(a.Cells) != len(b.Cells) {
			t.Fatalf("value %d: cell counts differ: %d vs %d", v, len(a.Cells), len(b.Cells))
		}
		for i := range a.Cells {
			if a.Cells[i] != b.Cells[i] {
				t.Errorf("value %d: cell %d differs: %v vs %v", v, i, a.Cells[i], b.Cells[i])
			}
		}
	}
}

func TestLayoutCubeCountBelowHundred(t *testing.T) {
	for v := 0; v < 100; v++ {
		p := Layout(v)
		if len(p.Cells) != v {
			t.Errorf("value %d: got %d cells, want %d", v, len(p.Cells), v)
		}
		for i, c := range p.Cells {
			if c.Place != 0 {
				t.Errorf("value %d: cell %d has place %d, want unit cube", v, i, c.Place)
			}
		}
	}
}

func TestLayoutZero(t *testing.T) {
	p := Layout(0)
	if len(p.Cells) != 0 {
		t.Errorf("expected empty plan, got %d cells", len(p.Cells))
	}
	if p.Size.Width != 0 || p.Size.Height != 0 {
		t.Errorf("expected zero size, got %v", p.Size)
	}
}

func TestLayoutSpecialShapes(t *testing.T) {
	tests := []struct {
		value      int
		wantW      float32
		wantH      float32
	}{
		{value: 4, wantW: 2*Pitch - CubeGap, wantH: 2*Pitch - CubeGap},   // 2x2 square
		{value: 7, wantW: CubeSize, wantH: 7*Pitch - CubeGap},            // single column
		{value: 9, wantW: 3*Pitch - CubeGap, wantH: 3*Pitch - CubeGap},   // 3x3 square
		{value: 3, wantW: CubeSize, wantH: 3*Pitch - CubeGap},            // column
		{value: 6, wantW: 2*Pitch - CubeGap, wantH: 3*Pitch - CubeGap},   // 2 columns
		{value: 73, wantW: 7*Pitch - CubeGap, wantH: 11*Pitch - CubeGap}, // tens-digit columns
	}

	for _, tc := range tests {
		p := Layout(tc.value)
		if math.Abs(float64(p.Size.Width-tc.wantW)) > 0.01 {
			t.Errorf("value %d: width = %f, want %f", tc.value, p.Size.Width, tc.wantW)
		}
		if math.Abs(float64(p.Size.Height-tc.wantH)) > 0.01 {
			t.Errorf("value %d: height = %f, want %f", tc.value, p.Size.Height, tc.wantH)
		}
	}
}

func TestLayoutColumnIndexOrderBottomUp(t *testing.T) {
	p := Layout(3)
	// Index 0 is the bottom cube, so Y decreases with index.
	for i := 1; i < len(p.Cells); i++ {
		if p.Cells[i].Y >= p.Cells[i-1].Y {
			t.Errorf("cell %d at y=%f is not above cell %d at y=%f",
				i, p.Cells[i].Y, i-1, p.Cells[i-1].Y)
		}
	}
	if p.Cells[0].Y != 2*Pitch {
		t.Errorf("bottom cube y = %f, want %f", p.Cells[0].Y, 2*Pitch)
	}
}

func TestLayoutHundreds(t *testing.T) {
	// 345 = 3 hundred-squares (single column) + sub-layout of 45.
	p := Layout(345)

	if len(p.Cells) != 3+45 {
		t.Fatalf("got %d cells, want 48", len(p.Cells))
	}

	for i := 0; i < 3; i++ {
		if p.Cells[i].Place != 2 {
			t.Errorf("cell %d place = %d, want 2", i, p.Cells[i].Place)
		}
	}
	for i := 3; i < len(p.Cells); i++ {
		if p.Cells[i].Place != 0 {
			t.Errorf("cell %d place = %d, want 0", i, p.Cells[i].Place)
		}
	}

	// Remainder sits fully to the right of the hundred stack.
	squaresRight := p.Cells[0].X + SquareSide
	for i := 3; i < len(p.Cells); i++ {
		if p.Cells[i].X < squaresRight+GroupGap-0.01 {
			t.Errorf("remainder cell %d at x=%f overlaps the hundreds stack", i, p.Cells[i].X)
		}
	}

	// Bottom alignment: lowest cube of the remainder and lowest square
	// share a bottom edge.
	squareBottom := p.Cells[0].Y + SquareSide
	remBottom := float32(0)
	for i := 3; i < len(p.Cells); i++ {
		if b := p.Cells[i].Y + CubeSize; b > remBottom {
			remBottom = b
		}
	}
	if math.Abs(float64(squareBottom-remBottom)) > 0.01 {
		t.Errorf("bottoms not aligned: squares %f vs remainder %f", squareBottom, remBottom)
	}
}

func TestLayoutHundredsColumnRule(t *testing.T) {
	tests := []struct {
		hundreds int
		wantCols int
	}{
		{1, 1}, {3, 1}, {4, 2}, {6, 2}, {7, 3}, {9, 3},
	}

	for _, tc := range tests {
		p := Layout(tc.hundreds * 100)
		distinct := map[float32]bool{}
		for _, c := range p.Cells {
			distinct[c.X] = true
		}
		if len(distinct) != tc.wantCols {
			t.Errorf("%d hundreds: got %d columns, want %d", tc.hundreds, len(distinct), tc.wantCols)
		}
	}
}

func TestLayoutThousands(t *testing.T) {
	// 1234 = one thousand-square, two hundred-squares, 34 cubes.
	p := Layout(1234)

	var thousands, hundreds, cubes int
	for _, c := range p.Cells {
		switch c.Place {
		case 3:
			thousands++
		case 2:
			hundreds++
		case 0:
			cubes++
		}
	}
	if thousands != 1 || hundreds != 2 || cubes != 34 {
		t.Errorf("got %d thousands, %d hundreds, %d cubes; want 1, 2, 34",
			thousands, hundreds, cubes)
	}

	// Place groups appear highest first.
	if p.Cells[0].Place != 3 {
		t.Errorf("first cell place = %d, want 3", p.Cells[0].Place)
	}
}

func TestLayoutPlaceBlockCountInvariant(t *testing.T) {
	// Every unit of quantity is represented exactly once: place squares
	// count their place's digit, cubes count themselves.
	for _, v := range []int{100, 250, 999, 1000, 4071, 9999} {
		p := Layout(v)
		total := 0
		for _, c := range p.Cells {
			if c.Place >= 2 {
				unit := 1
				for i := uint8(0); i < c.Place; i++ {
					unit *= 10
				}
				total += unit
			} else {
				total++
			}
		}
		if total != v {
			t.Errorf("value %d: cells sum to %d", v, total)
		}
	}
}
