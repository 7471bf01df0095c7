package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/leveleditor/internal/domain/geom"
	"github.com/younwookim/leveleditor/internal/infrastructure/physics"
)

func demoEdge() EdgeParams {
	return EdgeParams{Start: geom.V(-3, -2), End: geom.V(3, -2)}
}

func TestNewEdge_CreatesStaticBody(t *testing.T) {
	world := physics.NewWorld(geom.V(0, -10))

	edge := NewEdge(world, demoEdge())

	assert.Equal(t, 1, world.BodyCount())
	assert.Equal(t, KindEdge, edge.Kind())
	assert.True(t, edge.Active())
	assert.False(t, edge.Body().Dynamic())
}

func TestEdge_EndpointsDoNotMove(t *testing.T) {
	world := physics.NewWorld(geom.V(0, -10))
	edge := NewEdge(world, demoEdge())

	for i := 0; i < 30; i++ {
		world.Step(step)
	}

	a, b := edge.Endpoints()
	assert.Equal(t, geom.V(-3, -2), a)
	assert.Equal(t, geom.V(3, -2), b)
}

func TestEdge_Outline(t *testing.T) {
	world := physics.NewWorld(geom.V(0, -10))
	edge := NewEdge(world, demoEdge())

	pts := edge.Outline(testContext())

	assert.InDeltaSlice(t, []float32{100, 500, 700, 500}, pts, 1e-3)
}

func TestEdge_OutlineFollowsCamera(t *testing.T) {
	world := physics.NewWorld(geom.V(0, -10))
	edge := NewEdge(world, demoEdge())
	ctx := testContext()
	ctx.Projection.Camera.Pan(0.5, 0)

	pts := edge.Outline(ctx)

	assert.InDelta(t, 50, pts[0], 1e-3, "panning right shifts the world left by 0.5 m")
}

func TestEdge_Release(t *testing.T) {
	world := physics.NewWorld(geom.V(0, -10))
	edge := NewEdge(world, demoEdge())

	edge.Release()
	edge.Release()

	assert.Equal(t, 0, world.BodyCount())
}

func TestBoxFallsOntoEdge(t *testing.T) {
	world := physics.NewWorld(geom.V(0, -10))
	NewEdge(world, demoEdge())
	box := NewBox(world, demoBox())

	for i := 0; i < 300; i++ {
		world.Step(step)
		world.ClearForces()
	}

	// Resting on the ground at y = -2 with a 0.25 half height
	assert.InDelta(t, -1.75, box.Body().Position().Y, 0.05)
}
