package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/younwookim/leveleditor/internal/domain/geom"
)

// Body is a handle to a body living in a World. Queries read the live
// transform, so they always reflect the latest Step.
type Body struct {
	world *World
	b2    *box2d.B2Body
}

// Valid reports whether the body still exists in an open world.
func (b *Body) Valid() bool {
	return b != nil && b.b2 != nil && !b.world.closed
}

// Position returns the body origin in world meters.
func (b *Body) Position() geom.Vec2 {
	if !b.Valid() {
		return geom.Vec2{}
	}
	return fromB2(b.b2.GetPosition())
}

// Angle returns the body rotation in radians.
func (b *Body) Angle() float64 {
	if !b.Valid() {
		return 0
	}
	return b.b2.GetAngle()
}

// LinearVelocity returns the velocity of the body origin.
func (b *Body) LinearVelocity() geom.Vec2 {
	if !b.Valid() {
		return geom.Vec2{}
	}
	return fromB2(b.b2.GetLinearVelocity())
}

// Dynamic reports whether the body is moved by the simulation.
func (b *Body) Dynamic() bool {
	return b.Valid() && b.b2.GetType() == box2d.B2BodyType.B2_dynamicBody
}
