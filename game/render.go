package game

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"renderblocks/components"
	"renderblocks/config"
	"renderblocks/interaction"
	"renderblocks/layout"
	"renderblocks/store"
	"renderblocks/ui"
)

var (
	canvasBackground = rl.Color{R: 245, G: 243, B: 238, A: 255}
	canvasBorder     = rl.Color{R: 200, G: 196, B: 188, A: 255}
	cubeEdge         = rl.Color{R: 0, G: 0, B: 0, A: 40}
	zeroFill         = rl.Color{R: 224, G: 224, B: 224, A: 255}
	zeroEdge         = rl.Color{R: 117, G: 117, B: 117, A: 255}
	selectionColor   = rl.Color{R: 33, G: 150, B: 243, A: 200}
	trashColor       = rl.Color{R: 229, G: 57, B: 53, A: 60}
	plusColor        = rl.Color{R: 56, G: 142, B: 60, A: 255}
)

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	g.drawCanvas()
	g.drawBlocks()
	g.drawPending()
	g.drawSelection()
	g.drawTrashZone()
	g.drawHUD()

	if g.panel != nil {
		var sel *store.Snapshot
		if g.hasSelected {
			if snap, ok := g.store.Get(g.selected); ok {
				sel = &snap
			}
		}
		g.applyPanelActions(g.panel.Draw(sel))
	}

	rl.EndDrawing()
}

// drawCanvas fills the canvas area and its border.
func (g *Game) drawCanvas() {
	x0, y0 := g.camera.WorldToScreen(0, 0)
	x1, y1 := g.camera.WorldToScreen(g.canvasW, g.canvasH)
	rl.DrawRectangleRec(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, canvasBackground)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, 2, canvasBorder)
}

// drawBlocks renders every block, the dragged one last so it stays on top.
func (g *Game) drawBlocks() {
	var dragging *store.Snapshot
	for _, snap := range g.store.Query() {
		if snap.Dragging {
			s := snap
			dragging = &s
			continue
		}
		g.drawBlock(snap)
	}
	if dragging != nil {
		g.drawBlock(*dragging)
	}
}

// drawBlock renders one block from its layout plan.
func (g *Game) drawBlock(snap store.Snapshot) {
	box := snap.Bounds()
	cx, cy := box.Center().X, box.Center().Y
	half := box.Width
	if box.Height > half {
		half = box.Height
	}
	if !g.camera.IsVisible(cx, cy, half) {
		return
	}

	if snap.Zero {
		g.drawZeroBlock(snap)
		return
	}

	plan := g.plan(snap.Value)
	zoom := g.camera.Zoom

	for i, cell := range plan.Cells {
		fill, outline, outlined := layout.ColorAt(snap.Value, i)
		sx, sy := g.camera.WorldToScreen(snap.Pos.X+cell.X, snap.Pos.Y+cell.Y)
		side := cell.Side() * zoom
		rect := rl.Rectangle{X: sx, Y: sy, Width: side, Height: side}

		rl.DrawRectangleRec(rect, toRl(fill))
		if outlined {
			rl.DrawRectangleLinesEx(rect, 2*zoom, toRl(outline))
		} else {
			rl.DrawRectangleLinesEx(rect, 1, cubeEdge)
		}
	}

	g.drawFace(snap, plan)
}

// drawFace renders the eyes on the face cell.
func (g *Game) drawFace(snap store.Snapshot, plan layout.Plan) {
	face := layout.FaceIndex(plan)
	if face < 0 {
		return
	}
	cell := plan.Cells[face]
	side := cell.Side()
	zoom := g.camera.Zoom

	// Eyes sit in the upper third of the face cell.
	eyeY := snap.Pos.Y + cell.Y + side*0.35
	eyeR := side * 0.08 * zoom
	style := layout.EyeStyle(snap.Value)

	if layout.EyeCount(snap.Value) == 1 {
		sx, sy := g.camera.WorldToScreen(snap.Pos.X+cell.X+side/2, eyeY)
		g.drawEye(sx, sy, eyeR, style)
		return
	}
	lx, ly := g.camera.WorldToScreen(snap.Pos.X+cell.X+side*0.3, eyeY)
	rx, ry := g.camera.WorldToScreen(snap.Pos.X+cell.X+side*0.7, eyeY)
	g.drawEye(lx, ly, eyeR, style)
	g.drawEye(rx, ry, eyeR, style)
}

func (g *Game) drawEye(x, y, r float32, style layout.Eye) {
	switch style {
	case layout.EyeStarBlue:
		drawStar(x, y, r*2.2, rl.Color{R: 30, G: 136, B: 229, A: 255})
	case layout.EyeStarRed:
		drawStar(x, y, r*2.2, rl.Color{R: 229, G: 57, B: 53, A: 255})
	default:
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, r, rl.Black)
	}
}

// drawStar draws a six-point star from two opposed triangles.
func drawStar(x, y, r float32, c rl.Color) {
	center := rl.Vector2{X: x, Y: y}
	rl.DrawPoly(center, 3, r, -90, c)
	rl.DrawPoly(center, 3, r, 90, c)
}

// drawZeroBlock renders the empty block: a single outlined cube-sized
// square carrying a "0" numeral instead of any unit cubes.
func (g *Game) drawZeroBlock(snap store.Snapshot) {
	zoom := g.camera.Zoom
	sx, sy := g.camera.WorldToScreen(snap.Pos.X, snap.Pos.Y)
	side := layout.CubeSize * zoom
	rect := rl.Rectangle{X: sx, Y: sy, Width: side, Height: side}

	rl.DrawRectangleRec(rect, zeroFill)
	rl.DrawRectangleLinesEx(rect, 2*zoom, zeroEdge)

	fontSize := int32(side * 0.6)
	textW := rl.MeasureText("0", fontSize)
	rl.DrawText("0", int32(sx)+int32(side/2)-textW/2, int32(sy)+int32(side*0.2), fontSize, zeroEdge)
}

// drawPending renders the "+" affordance at the preview midpoint.
func (g *Game) drawPending() {
	pending, ok := g.machine.Pending()
	if !ok {
		return
	}
	sx, sy := g.camera.WorldToScreen(pending.Midpoint.X, pending.Midpoint.Y)
	fontSize := int32(32 * g.camera.Zoom)
	textW := rl.MeasureText("+", fontSize)
	rl.DrawText("+", int32(sx)-textW/2, int32(sy)-fontSize/2, fontSize, plusColor)
}

// drawSelection outlines the selected block.
func (g *Game) drawSelection() {
	if !g.hasSelected {
		return
	}
	snap, ok := g.store.Get(g.selected)
	if !ok {
		g.hasSelected = false
		return
	}
	box := snap.Bounds()
	sx, sy := g.camera.WorldToScreen(box.X, box.Y)
	zoom := g.camera.Zoom
	pad := 4 * zoom
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X:      sx - pad,
		Y:      sy - pad,
		Width:  box.Width*zoom + pad*2,
		Height: box.Height*zoom + pad*2,
	}, 2, selectionColor)
}

// drawTrashZone renders the delete target in the viewport corner.
func (g *Game) drawTrashZone() {
	rect := g.trashRect()
	rl.DrawRectangleRec(rect, trashColor)
	rl.DrawRectangleLinesEx(rect, 2, rl.Color{R: 229, G: 57, B: 53, A: 255})

	fontSize := int32(14)
	textW := rl.MeasureText("trash", fontSize)
	rl.DrawText("trash",
		int32(rect.X)+int32(rect.Width/2)-textW/2,
		int32(rect.Y)+int32(rect.Height/2)-fontSize/2,
		fontSize, rl.Color{R: 229, G: 57, B: 53, A: 255})
}

// trashRect returns the screen-space trash zone in the bottom-right of the
// canvas viewport, just left of the panel.
func (g *Game) trashRect() rl.Rectangle {
	cfg := config.Cfg()
	size := float32(cfg.UI.TrashZoneSize)
	return rl.Rectangle{
		X:      g.screenW - float32(cfg.UI.PanelWidth) - size - 12,
		Y:      g.screenH - size - 12,
		Width:  size,
		Height: size,
	}
}

func (g *Game) mouseOverTrash(x, y float32) bool {
	rect := g.trashRect()
	return x >= rect.X && x <= rect.X+rect.Width && y >= rect.Y && y <= rect.Y+rect.Height
}

// drawHUD renders the status line.
func (g *Game) drawHUD() {
	rl.DrawText(fmt.Sprintf("blocks: %d  total: %d", g.store.Len(), g.store.TotalValue()), 10, 10, 20, rl.DarkGray)
	if g.paused {
		rl.DrawText("PAUSED", 10, 35, 20, rl.Orange)
	}
}

// applyPanelActions executes the actions the panel reported this frame.
func (g *Game) applyPanelActions(actions ui.Actions) {
	if actions.Spawn {
		size := layout.SizeOf(actions.SpawnValue)
		minX, minY, maxX, maxY := g.camera.VisibleWorldBounds()
		pos := components.Position{
			X: (minX+maxX)/2 - size.Width/2,
			Y: (minY+maxY)/2 - size.Height/2,
		}
		if _, err := g.Spawn(actions.SpawnValue, pos); err != nil {
			return
		}
	}
	if !g.hasSelected {
		return
	}
	if actions.Split {
		g.machine.Split(g.selected, actions.SplitAmount)
	}
	if actions.Duplicate {
		g.machine.Duplicate(g.selected)
	}
	if actions.Halve {
		g.machine.Halve(g.selected)
	}
	if actions.Sneeze {
		g.machine.ScheduleHalve(g.selected, interaction.SneezeDelay)
	}
	if actions.Remove {
		g.RemoveBlock(g.selected)
	}
}

// toRl converts a stdlib color to a raylib color.
func toRl(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
