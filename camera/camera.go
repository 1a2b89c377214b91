// Package camera provides a 2D camera system for viewport control.
package camera

// Camera controls the viewport into the block canvas.
// The canvas is bounded: panning clamps so the view never leaves it.
type Camera struct {
	// Position is the camera center in canvas coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Canvas dimensions (for view clamping)
	CanvasW, CanvasH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the canvas with 1:1 zoom.
func New(viewportW, viewportH, canvasW, canvasH float32) *Camera {
	// Compute minimum zoom so the viewport never exceeds canvas bounds.
	// At zoom Z, the visible canvas area is (viewportW/Z, viewportH/Z),
	// so we need Z >= viewportW/canvasW AND Z >= viewportH/canvasH.
	minZoomX := viewportW / canvasW
	minZoomY := viewportH / canvasH
	minZoom := minZoomX
	if minZoomY > minZoom {
		minZoom = minZoomY
	}

	c := &Camera{
		X:         canvasW / 2,
		Y:         canvasH / 2,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		CanvasW:   canvasW,
		CanvasH:   canvasH,
		MinZoom:   minZoom,
		MaxZoom:   4.0,
	}
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.clampPosition()
	return c
}

// WorldToScreen converts canvas coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to canvas coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible returns true if a box at (wx, wy) with the given half-extent
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, halfExtent float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + halfExtent
	halfH := c.ViewportH/(2*c.Zoom) + halfExtent
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	minZoomX := viewportW / c.CanvasW
	minZoomY := viewportH / c.CanvasH
	c.MinZoom = minZoomX
	if minZoomY > c.MinZoom {
		c.MinZoom = minZoomY
	}
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.clampPosition()
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clampPosition()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampPosition()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.Zoom = 1.0
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.X = c.CanvasW / 2
	c.Y = c.CanvasH / 2
	c.clampPosition()
}

// VisibleWorldBounds returns the canvas-coordinate bounds of the visible
// area as (minX, minY, maxX, maxY).
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// clampPosition keeps the visible area inside the canvas. When the visible
// extent exceeds the canvas on an axis the camera centers on that axis.
func (c *Camera) clampPosition() {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	if halfW*2 >= c.CanvasW {
		c.X = c.CanvasW / 2
	} else {
		c.X = clamp(c.X, halfW, c.CanvasW-halfW)
	}
	if halfH*2 >= c.CanvasH {
		c.Y = c.CanvasH / 2
	} else {
		c.Y = clamp(c.Y, halfH, c.CanvasH-halfH)
	}
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
