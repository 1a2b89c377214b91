package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"renderblocks/components"
	"renderblocks/config"
	"renderblocks/interaction"
	"renderblocks/store"
)

// handleInput processes mouse and keyboard input for one frame.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	g.handleCameraInput()
	g.handleMouse()
	g.handleSelectionKeys()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW = w
	g.screenH = h

	panelW := float32(config.Cfg().UI.PanelWidth)
	if g.camera != nil {
		g.camera.Resize(w-panelW, h)
	}
	if g.panel != nil {
		g.panel.Move(int32(w)-int32(panelW), 0, int32(h))
	}
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	if g.camera == nil {
		return
	}

	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(config.Cfg().Camera.PanSpeed) * rl.GetFrameTime()

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}

	// Don't zoom while the cursor is over the panel
	if g.mouseOverPanel() {
		return
	}

	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		g.camera.ZoomBy(1.0 + wheelMove*0.1)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

// handleMouse drives the drag lifecycle: pick up on press, track while
// held, and drop (trash, merge, or plain move) on release.
func (g *Game) handleMouse() {
	if g.camera == nil {
		return
	}

	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !g.mouseOverPanel() {
		wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
		if snap, ok := g.blockAt(wx, wy); ok {
			g.selected = snap.ID
			g.hasSelected = true
			if g.machine.OnDragStart(snap.ID) {
				g.dragged = snap.ID
				g.isDragging = true
				g.dragOffset = components.Position{X: wx - snap.Pos.X, Y: wy - snap.Pos.Y}
			}
		} else {
			g.hasSelected = false
		}
	}

	if g.isDragging && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
		g.machine.OnDrag(g.dragged, components.Position{
			X: wx - g.dragOffset.X,
			Y: wy - g.dragOffset.Y,
		})
	}

	if g.isDragging && rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		id := g.dragged
		g.isDragging = false

		if g.mouseOverTrash(mouse.X, mouse.Y) {
			g.RemoveBlock(id)
			return
		}

		wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
		g.machine.OnDragEnd(id, components.Position{
			X: wx - g.dragOffset.X,
			Y: wy - g.dragOffset.Y,
		})
	}
}

// handleSelectionKeys applies split shortcuts to the selected block.
func (g *Game) handleSelectionKeys() {
	if !g.hasSelected {
		return
	}

	if rl.IsKeyPressed(rl.KeyD) {
		g.machine.Duplicate(g.selected)
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.machine.Halve(g.selected)
	}
	if rl.IsKeyPressed(rl.KeyS) {
		g.machine.ScheduleHalve(g.selected, interaction.SneezeDelay)
	}
	if rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyBackspace) {
		g.RemoveBlock(g.selected)
	}
}

// blockAt returns the topmost block containing the canvas point. Later
// store entries render on top, so the scan runs back to front.
func (g *Game) blockAt(wx, wy float32) (snap store.Snapshot, ok bool) {
	blocks := g.store.Query()
	for i := len(blocks) - 1; i >= 0; i-- {
		box := blocks[i].Bounds()
		if wx >= box.X && wx <= box.X+box.Width && wy >= box.Y && wy <= box.Y+box.Height {
			return blocks[i], true
		}
	}
	return snap, false
}

func (g *Game) mouseOverPanel() bool {
	panelX := g.screenW - float32(config.Cfg().UI.PanelWidth)
	return rl.GetMousePosition().X >= panelX
}
