package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/leveleditor/internal/domain/geom"
	"github.com/younwookim/leveleditor/internal/infrastructure/physics"
)

var colorBox = color.RGBA{230, 120, 80, 255}

// BoxParams describes a dynamic box
type BoxParams struct {
	Origin      geom.Vec2
	HalfExtents geom.Vec2
	Velocity    geom.Vec2
	Angle       float64
	Density     float64
	Friction    float64
}

// Box is a dynamic rectangular body
type Box struct {
	id          EntityID
	world       *physics.World
	body        *physics.Body
	halfExtents geom.Vec2
	active      bool
}

// NewBox creates the box body in world and returns the entity bound to it.
func NewBox(world *physics.World, p BoxParams) *Box {
	body := world.CreateDynamicBox(physics.BoxDef{
		Center:      p.Origin,
		HalfExtents: p.HalfExtents,
		Velocity:    p.Velocity,
		Angle:       p.Angle,
		Density:     p.Density,
		Friction:    p.Friction,
	})
	return &Box{
		world:       world,
		body:        body,
		halfExtents: p.HalfExtents,
		active:      true,
	}
}

func (b *Box) ID() EntityID { return b.id }
func (b *Box) setID(id EntityID) { b.id = id }
func (b *Box) Kind() Kind { return KindBox }
func (b *Box) Active() bool { return b.active }

// SetActive sets the flag read by List.RemoveInactive. Nothing in the editor
// clears it today.
func (b *Box) SetActive(a bool) { b.active = a }

func (b *Box) Body() *physics.Body { return b.body }

// Release destroys the backing body
func (b *Box) Release() {
	b.world.DestroyBody(b.body)
}

// Corners returns the four world-space corners, counter-clockwise from the
// bottom-left in body space.
func (b *Box) Corners() [4]geom.Vec2 {
	pos := b.body.Position()
	angle := b.body.Angle()
	hx, hy := b.halfExtents.X, b.halfExtents.Y

	local := [4]geom.Vec2{
		{X: -hx, Y: -hy},
		{X: hx, Y: -hy},
		{X: hx, Y: hy},
		{X: -hx, Y: hy},
	}
	var out [4]geom.Vec2
	for i, v := range local {
		out[i] = pos.Add(v.Rotate(angle))
	}
	return out
}

// Outline returns the screen-space corners as x0, y0, x1, y1, ...
func (b *Box) Outline(ctx RenderContext) []float32 {
	corners := b.Corners()
	pts := make([]float32, 0, len(corners)*2)
	for _, c := range corners {
		x, y := ctx.Projection.ToScreen(c)
		pts = append(pts, x, y)
	}
	return pts
}

// Render strokes the box outline
func (b *Box) Render(screen *ebiten.Image, ctx RenderContext) {
	if !b.body.Valid() {
		return
	}
	pts := b.Outline(ctx)
	n := len(pts) / 2
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vector.StrokeLine(screen, pts[2*i], pts[2*i+1], pts[2*j], pts[2*j+1], ctx.LineWidth, colorBox, true)
	}
}
