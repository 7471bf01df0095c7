package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/leveleditor/internal/domain/geom"
	"github.com/younwookim/leveleditor/internal/infrastructure/physics"
)

var colorEdge = color.RGBA{120, 200, 120, 255}

// EdgeParams describes a static ground segment
type EdgeParams struct {
	Start geom.Vec2
	End   geom.Vec2
}

// Edge is a static line segment
type Edge struct {
	id     EntityID
	world  *physics.World
	body   *physics.Body
	start  geom.Vec2
	end    geom.Vec2
	active bool
}

// NewEdge creates the static edge body in world.
func NewEdge(world *physics.World, p EdgeParams) *Edge {
	return &Edge{
		world:  world,
		body:   world.CreateStaticEdge(p.Start, p.End),
		start:  p.Start,
		end:    p.End,
		active: true,
	}
}

func (e *Edge) ID() EntityID { return e.id }
func (e *Edge) setID(id EntityID) { e.id = id }
func (e *Edge) Kind() Kind { return KindEdge }
func (e *Edge) Active() bool { return e.active }
func (e *Edge) SetActive(a bool) { e.active = a }
func (e *Edge) Body() *physics.Body { return e.body }

// Release destroys the backing body
func (e *Edge) Release() {
	e.world.DestroyBody(e.body)
}

// Endpoints returns the segment in world space, following the body transform.
func (e *Edge) Endpoints() (geom.Vec2, geom.Vec2) {
	pos := e.body.Position()
	angle := e.body.Angle()
	return pos.Add(e.start.Rotate(angle)), pos.Add(e.end.Rotate(angle))
}

// Outline returns the screen-space segment as x0, y0, x1, y1
func (e *Edge) Outline(ctx RenderContext) []float32 {
	a, b := e.Endpoints()
	x0, y0 := ctx.Projection.ToScreen(a)
	x1, y1 := ctx.Projection.ToScreen(b)
	return []float32{x0, y0, x1, y1}
}

// Render strokes the segment
func (e *Edge) Render(screen *ebiten.Image, ctx RenderContext) {
	if !e.body.Valid() {
		return
	}
	pts := e.Outline(ctx)
	vector.StrokeLine(screen, pts[0], pts[1], pts[2], pts[3], ctx.LineWidth, colorEdge, true)
}
