// Package physics wraps the box2d world behind the small surface the editor
// needs: gravity, fixed stepping, force clearing and body lifecycle.
package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/younwookim/leveleditor/internal/domain/geom"
)

// StepConfig is one fixed simulation step.
type StepConfig struct {
	Dt                 float64
	VelocityIterations int
	PositionIterations int
}

// BoxDef describes a dynamic rectangular body.
type BoxDef struct {
	Center      geom.Vec2
	HalfExtents geom.Vec2
	Velocity    geom.Vec2
	Angle       float64
	Density     float64
	Friction    float64
}

// World owns a box2d world. Every Body created here is invalid once Destroy
// has been called.
type World struct {
	b2     box2d.B2World
	closed bool
}

// NewWorld creates a world with the given gravity.
func NewWorld(gravity geom.Vec2) *World {
	return &World{b2: box2d.MakeB2World(toB2(gravity))}
}

// Gravity returns the current gravity vector.
func (w *World) Gravity() geom.Vec2 {
	return fromB2(w.b2.GetGravity())
}

// SetGravity replaces the gravity vector used by the next Step.
func (w *World) SetGravity(g geom.Vec2) {
	w.b2.SetGravity(toB2(g))
}

// Step advances the simulation by one fixed step.
func (w *World) Step(cfg StepConfig) {
	w.b2.Step(cfg.Dt, cfg.VelocityIterations, cfg.PositionIterations)
}

// ClearForces zeroes the forces accumulated on every body.
func (w *World) ClearForces() {
	w.b2.ClearForces()
}

// BodyCount returns the number of bodies in the world.
func (w *World) BodyCount() int {
	return w.b2.GetBodyCount()
}

// Closed reports whether Destroy has been called.
func (w *World) Closed() bool {
	return w.closed
}

// CreateDynamicBox adds a dynamic box body with a polygon fixture.
func (w *World) CreateDynamicBox(def BoxDef) *Body {
	w.mustBeOpen()

	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_dynamicBody
	bd.Position = toB2(def.Center)
	bd.Angle = def.Angle
	bd.LinearVelocity = toB2(def.Velocity)
	body := w.b2.CreateBody(&bd)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(def.HalfExtents.X, def.HalfExtents.Y)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = def.Density
	fd.Friction = def.Friction
	body.CreateFixtureFromDef(&fd)

	return &Body{world: w, b2: body}
}

// CreateStaticEdge adds an immovable line segment from a to b.
func (w *World) CreateStaticEdge(a, b geom.Vec2) *Body {
	w.mustBeOpen()

	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_staticBody
	body := w.b2.CreateBody(&bd)

	shape := box2d.MakeB2EdgeShape()
	shape.Set(toB2(a), toB2(b))
	body.CreateFixture(&shape, 0)

	return &Body{world: w, b2: body}
}

// DestroyBody removes b from the world. Releasing the same body twice, or a
// body after the world is gone, is a no-op.
func (w *World) DestroyBody(b *Body) {
	if b == nil || b.b2 == nil || b.world != w || w.closed {
		return
	}
	w.b2.DestroyBody(b.b2)
	b.b2 = nil
}

// Destroy removes every remaining body and closes the world.
func (w *World) Destroy() {
	if w.closed {
		return
	}
	for body := w.b2.GetBodyList(); body != nil; {
		next := body.GetNext()
		w.b2.DestroyBody(body)
		body = next
	}
	w.closed = true
}

func (w *World) mustBeOpen() {
	if w.closed {
		panic("physics: body created in a destroyed world")
	}
}

func toB2(v geom.Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}

func fromB2(v box2d.B2Vec2) geom.Vec2 {
	return geom.Vec2{X: v.X, Y: v.Y}
}
