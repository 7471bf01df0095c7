// Package view holds the editor camera and the world-to-screen projection.
package view

import "github.com/younwookim/leveleditor/internal/domain/geom"

// Camera is the viewport size in pixels and the world-space point shown at
// its center. Input mutates it, rendering reads it.
type Camera struct {
	Width  int
	Height int
	Center geom.Vec2
}

// NewCamera returns a camera of the given viewport size centered on the origin.
func NewCamera(width, height int) *Camera {
	return &Camera{Width: width, Height: height}
}

// Pan moves the camera center by (dx, dy) world units.
func (c *Camera) Pan(dx, dy float64) {
	c.Center.X += dx
	c.Center.Y += dy
}
