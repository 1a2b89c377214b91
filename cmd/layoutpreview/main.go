// Layout preview tool - interactive visualization of block arrangements.
//
// Usage: go run ./cmd/layoutpreview
package main

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"renderblocks/layout"
)

const (
	windowWidth  = 1100
	windowHeight = 760
	previewSize  = 720
	panelWidth   = windowWidth - previewSize - 30
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Block Layout Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	value := float32(7)
	showFace := true

	for !rl.WindowShouldClose() {
		// Arrow keys step the value for precise inspection
		if rl.IsKeyPressed(rl.KeyRight) {
			value++
		}
		if rl.IsKeyPressed(rl.KeyLeft) && value > 0 {
			value--
		}

		plan := layout.Layout(int(value))

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawPlan(plan, int(value), showFace)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Block Layout", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Value", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		value = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "2000",
			value, 0, 2000,
		)
		rl.DrawText(fmt.Sprintf("%d", int(value)), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(showFace, "Hide Face", "Show Face")) {
			showFace = !showFace
		}
		panelY += 45

		// Stats
		rl.DrawText(fmt.Sprintf("Cells: %d", len(plan.Cells)), int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 22
		rl.DrawText(fmt.Sprintf("Size: %.0f x %.0f", plan.Size.Width, plan.Size.Height), int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 22
		rl.DrawText(fmt.Sprintf("Face cell: %d", layout.FaceIndex(plan)), int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 30

		rl.DrawText("Left/Right arrows step by 1", int32(panelX), int32(panelY), 12, rl.LightGray)

		rl.EndDrawing()
	}
}

// drawPlan renders the plan scaled to fit the preview square.
func drawPlan(plan layout.Plan, value int, showFace bool) {
	scale := float32(1)
	margin := float32(30)
	avail := float32(previewSize) - margin*2
	if plan.Size.Width > 0 && plan.Size.Height > 0 {
		sx := avail / plan.Size.Width
		sy := avail / plan.Size.Height
		scale = sx
		if sy < scale {
			scale = sy
		}
		if scale > 1 {
			scale = 1
		}
	}

	originX := 10 + margin + (avail-plan.Size.Width*scale)/2
	originY := 10 + margin + (avail-plan.Size.Height*scale)/2

	for i, cell := range plan.Cells {
		fill, outline, outlined := layout.ColorAt(value, i)
		side := cell.Side() * scale
		rect := rl.Rectangle{
			X:      originX + cell.X*scale,
			Y:      originY + cell.Y*scale,
			Width:  side,
			Height: side,
		}
		rl.DrawRectangleRec(rect, toRl(fill))
		if outlined {
			rl.DrawRectangleLinesEx(rect, 2, toRl(outline))
		} else {
			rl.DrawRectangleLinesEx(rect, 1, rl.Color{R: 0, G: 0, B: 0, A: 50})
		}
	}

	if showFace {
		if face := layout.FaceIndex(plan); face >= 0 {
			cell := plan.Cells[face]
			side := cell.Side() * scale
			cx := originX + cell.X*scale + side/2
			cy := originY + cell.Y*scale + side*0.35
			r := side * 0.08
			if layout.EyeCount(value) == 1 {
				rl.DrawCircleV(rl.Vector2{X: cx, Y: cy}, r, rl.Black)
			} else {
				rl.DrawCircleV(rl.Vector2{X: cx - side*0.2, Y: cy}, r, rl.Black)
				rl.DrawCircleV(rl.Vector2{X: cx + side*0.2, Y: cy}, r, rl.Black)
			}
		}
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func toRl(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
