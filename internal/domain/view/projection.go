package view

import "github.com/younwookim/leveleditor/internal/domain/geom"

// Projection maps world meters (y up) to screen pixels (y down).
type Projection struct {
	Camera         *Camera
	PixelsPerMeter float64
}

// ToScreen returns the pixel position of a world point. The camera center
// lands in the middle of the viewport.
func (p Projection) ToScreen(world geom.Vec2) (x, y float32) {
	rel := world.Sub(p.Camera.Center).Scale(p.PixelsPerMeter)
	x = float32(float64(p.Camera.Width)/2 + rel.X)
	y = float32(float64(p.Camera.Height)/2 - rel.Y)
	return x, y
}
