// Package ui renders the control panel beside the canvas.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"renderblocks/store"
)

// Actions reports what the user triggered on the panel this frame.
type Actions struct {
	Spawn      bool
	SpawnValue int

	Split       bool
	SplitAmount int

	Duplicate bool
	Halve     bool
	Sneeze    bool
	Remove    bool
}

// Panel is the right-side control panel.
type Panel struct {
	x, y          int32
	width, height int32
	maxSpawn      int

	spawnValue  float32
	splitAmount float32
}

// NewPanel creates a panel at the given screen position.
func NewPanel(x, y, width, height int32, maxSpawn int) *Panel {
	if maxSpawn < 1 {
		maxSpawn = 1
	}
	return &Panel{
		x:          x,
		y:          y,
		width:      width,
		height:     height,
		maxSpawn:   maxSpawn,
		spawnValue: 7,
	}
}

// Move repositions the panel after a window resize.
func (p *Panel) Move(x, y, height int32) {
	p.x = x
	p.y = y
	p.height = height
}

// Draw renders the panel and returns the triggered actions. Immediate-mode
// widgets report clicks during drawing, so this runs inside the frame.
func (p *Panel) Draw(selected *store.Snapshot) Actions {
	var actions Actions

	rl.DrawRectangle(p.x, p.y, p.width, p.height, rl.Color{R: 236, G: 236, B: 236, A: 255})
	rl.DrawLine(p.x, p.y, p.x, p.y+p.height, rl.Gray)

	padding := float32(16)
	x := float32(p.x) + padding
	w := float32(p.width) - padding*2
	y := float32(p.y) + padding

	rl.DrawText("Blocks", int32(x), int32(y), 20, rl.DarkGray)
	y += 36

	// Spawn section
	rl.DrawText("New block value", int32(x), int32(y), 14, rl.Gray)
	y += 18
	p.spawnValue = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w - 60, Height: 20},
		"1", fmt.Sprintf("%d", p.maxSpawn),
		p.spawnValue, 1, float32(p.maxSpawn),
	)
	rl.DrawText(fmt.Sprintf("%d", int(p.spawnValue)), int32(x+w-50), int32(y+2), 16, rl.DarkGray)
	y += 30

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: 30}, "Spawn") {
		actions.Spawn = true
		actions.SpawnValue = int(p.spawnValue)
	}
	y += 50

	rl.DrawLine(int32(x), int32(y), int32(x+w), int32(y), rl.LightGray)
	y += 16

	if selected == nil {
		rl.DrawText("Click a block to select it", int32(x), int32(y), 14, rl.Gray)
		return actions
	}

	if selected.Zero {
		rl.DrawText("Selected: empty block", int32(x), int32(y), 16, rl.DarkGray)
		y += 30
		if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: 30}, "Remove") {
			actions.Remove = true
		}
		return actions
	}

	rl.DrawText(fmt.Sprintf("Selected: %d", selected.Value), int32(x), int32(y), 16, rl.DarkGray)
	y += 30

	// Split section: take-away amount must leave a positive remainder
	if selected.Value > 1 {
		rl.DrawText("Take away", int32(x), int32(y), 14, rl.Gray)
		y += 18
		maxAmount := float32(selected.Value - 1)
		if p.splitAmount < 1 || p.splitAmount > maxAmount {
			p.splitAmount = 1
		}
		p.splitAmount = gui.SliderBar(
			rl.Rectangle{X: x, Y: y, Width: w - 60, Height: 20},
			"1", fmt.Sprintf("%d", selected.Value-1),
			p.splitAmount, 1, maxAmount,
		)
		rl.DrawText(fmt.Sprintf("%d", int(p.splitAmount)), int32(x+w-50), int32(y+2), 16, rl.DarkGray)
		y += 30

		if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: 30}, "Split") {
			actions.Split = true
			actions.SplitAmount = int(p.splitAmount)
		}
		y += 40
	}

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: 30}, "Halve") {
		actions.Halve = true
	}
	if gui.Button(rl.Rectangle{X: x + 130, Y: y, Width: 120, Height: 30}, "Sneeze") {
		actions.Sneeze = true
	}
	y += 40

	if selected.Value == 1 {
		if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: 30}, "Duplicate") {
			actions.Duplicate = true
		}
		y += 40
	}

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: 30}, "Remove") {
		actions.Remove = true
	}

	return actions
}
