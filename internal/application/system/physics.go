package system

import (
	"github.com/younwookim/leveleditor/internal/domain/geom"
	"github.com/younwookim/leveleditor/internal/infrastructure/config"
	"github.com/younwookim/leveleditor/internal/infrastructure/physics"
)

// PhysicsSystem advances the world exactly one fixed step per presented frame.
// There is no accumulator: simulation speed follows the presentation rate.
type PhysicsSystem struct {
	world   *physics.World
	step    physics.StepConfig
	pending bool
	steps   int
}

// NewPhysicsSystem creates a new physics system stepping world with cfg
func NewPhysicsSystem(cfg config.PhysicsConfig, world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{
		world: world,
		step: physics.StepConfig{
			Dt:                 cfg.TimeStep(),
			VelocityIterations: cfg.VelocityIterations,
			PositionIterations: cfg.PositionIterations,
		},
	}
}

// FramePresented records that a frame has been shown and owes a step.
func (s *PhysicsSystem) FramePresented() {
	s.pending = true
}

// Update runs the step owed by the last presented frame, then clears forces.
// It reports whether a step ran.
func (s *PhysicsSystem) Update() bool {
	if !s.pending {
		return false
	}
	s.world.Step(s.step)
	s.world.ClearForces()
	s.pending = false
	s.steps++
	return true
}

// GravityY returns the vertical gravity currently set in the world
func (s *PhysicsSystem) GravityY() float64 {
	return s.world.Gravity().Y
}

// SetGravityY writes an edited vertical gravity back into the world
func (s *PhysicsSystem) SetGravityY(y float64) {
	g := s.world.Gravity()
	s.world.SetGravity(geom.V(g.X, y))
}

// Steps returns the number of steps run so far
func (s *PhysicsSystem) Steps() int {
	return s.steps
}

// StepConfig returns the fixed step used by Update
func (s *PhysicsSystem) StepConfig() physics.StepConfig {
	return s.step
}
