package editor

import (
	"github.com/olefasting/fishfight/core"
)

const (
	cameraPanSpeed  = 320.0
	cameraZoomStep  = 0.1
	cameraZoomMin   = 0.25
	cameraZoomMax   = 4.0
	edgePanDistance = 32.0
)

// Camera holds the editor viewport: a world-space position and a zoom
// factor. Panning and zooming are applied in FixedUpdate so they stay
// framerate independent.
type Camera struct {
	Position core.Vec2
	Zoom     float32

	panVelocity core.Vec2
	zoomDelta   float32
	viewport    core.Size
}

func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// SetViewport records the screen size used for conversions and edge
// panning.
func (c *Camera) SetViewport(size core.Size) {
	c.viewport = size
}

// ToWorld converts a screen position to world space.
func (c *Camera) ToWorld(screen core.Vec2) core.Vec2 {
	return c.Position.Add(screen.Div(c.Zoom))
}

// ToScreen converts a world position to screen space.
func (c *Camera) ToScreen(world core.Vec2) core.Vec2 {
	return world.Sub(c.Position).Mul(c.Zoom)
}

// ViewRect returns the visible world-space rectangle.
func (c *Camera) ViewRect() core.Rect {
	return core.NewRect(c.Position.X, c.Position.Y, c.viewport.Width/c.Zoom, c.viewport.Height/c.Zoom)
}

// Pan requests a pan in the given direction, applied on the next fixed
// step. Direction components are -1, 0 or 1.
func (c *Camera) Pan(direction core.Vec2) {
	c.panVelocity = direction.Mul(cameraPanSpeed)
}

// PanEdge pans when the cursor is held near a viewport edge, for dragging
// objects past the visible area.
func (c *Camera) PanEdge(cursorScreen core.Vec2) {
	var direction core.Vec2
	if cursorScreen.X < edgePanDistance {
		direction.X = -1
	} else if cursorScreen.X > c.viewport.Width-edgePanDistance {
		direction.X = 1
	}
	if cursorScreen.Y < edgePanDistance {
		direction.Y = -1
	} else if cursorScreen.Y > c.viewport.Height-edgePanDistance {
		direction.Y = 1
	}
	if !direction.IsZero() {
		c.Pan(direction)
	}
}

// ZoomBy requests a zoom change, applied on the next fixed step.
func (c *Camera) ZoomBy(delta float32) {
	c.zoomDelta += delta
}

// FixedUpdate applies the accumulated pan and zoom requests.
func (c *Camera) FixedUpdate(dt float32) {
	if !c.panVelocity.IsZero() {
		c.Position = c.Position.Add(c.panVelocity.Mul(dt / c.Zoom))
		c.panVelocity = core.Vec2{}
	}
	if c.zoomDelta != 0 {
		// Zoom toward the viewport center so the view does not jump.
		center := c.ToWorld(core.Vec2{X: c.viewport.Width / 2, Y: c.viewport.Height / 2})
		c.Zoom = core.ClampF(c.Zoom+c.zoomDelta*cameraZoomStep, cameraZoomMin, cameraZoomMax)
		c.Position = center.Sub(core.Vec2{X: c.viewport.Width / 2, Y: c.viewport.Height / 2}.Div(c.Zoom))
		c.zoomDelta = 0
	}
}
