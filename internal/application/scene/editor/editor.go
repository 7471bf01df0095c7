// Package editor provides the level editor scene: one physics world, the
// entities living in it, a camera and the control bar.
package editor

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/leveleditor/internal/application/scene"
	"github.com/younwookim/leveleditor/internal/application/state"
	"github.com/younwookim/leveleditor/internal/application/system"
	"github.com/younwookim/leveleditor/internal/application/ui"
	"github.com/younwookim/leveleditor/internal/domain/entity"
	"github.com/younwookim/leveleditor/internal/domain/geom"
	"github.com/younwookim/leveleditor/internal/domain/view"
	"github.com/younwookim/leveleditor/internal/infrastructure/config"
	"github.com/younwookim/leveleditor/internal/infrastructure/physics"
)

// EventSource yields the input events of the current frame
type EventSource interface {
	Poll() []system.Event
}

// Controls declares and draws the immediate-mode control bar
type Controls interface {
	Update(st *ui.State, act ui.Actions) error
	Draw(screen *ebiten.Image)
}

// Editor is the level editor scene.
//
// A frame runs across ebiten's Update and Draw:
//
//	Update: step physics owed by the previous presented frame, clear forces,
//	        drain input, declare the control bar, write gravity back
//	Draw:   clear, draw the control bar, render entities, adopt the edited
//	        clear color, mark the frame presented
//
// The world must outlive every entity; OnExit releases entities first.
type Editor struct {
	settings *config.Settings
	events   EventSource
	controls Controls

	world    *physics.World
	physics  *system.PhysicsSystem
	entities *entity.List
	camera   *view.Camera

	ui         ui.State
	clearColor color.RGBA
	run        state.RunState

	rendererLogged bool
}

// New builds the physics world from settings and seeds it with one box and
// one ground edge.
func New(cfg *config.Settings, events EventSource, controls Controls) *Editor {
	world := physics.NewWorld(toVec(cfg.Physics.Gravity))

	e := &Editor{
		settings: cfg,
		events:   events,
		controls: controls,
		world:    world,
		physics:  system.NewPhysicsSystem(cfg.Physics, world),
		entities: entity.NewList(),
		camera:   view.NewCamera(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
		ui:       ui.NewState(cfg.UI),
		run:      state.StateRunning,
	}
	e.clearColor = e.ui.ClearRGBA()

	e.LoadBox()
	e.LoadEdge()

	return e
}

// OnEnter logs the display and view parameters.
func (e *Editor) OnEnter() {
	if m := ebiten.Monitor(); m != nil {
		w, h := m.Size()
		log.Printf("Monitor %q is %dx%d", m.Name(), w, h)
	}
	log.Printf("Width of the screen: %d", e.camera.Width)
	log.Printf("Height of the screen: %d", e.camera.Height)
	log.Printf("The rendering scale is %v pixels per meter", e.settings.Render.PixelsPerMeter)
}

// OnExit releases every entity, then the physics world.
func (e *Editor) OnExit() {
	if e.run == state.StateClosed {
		return
	}
	e.entities.Clear()
	e.world.Destroy()
	e.run = state.StateClosed
}

// Update runs the input, UI and simulation half of a frame.
// The physics step uses the fixed 1/hertz step, not dt.
func (e *Editor) Update(_ float64) (scene.Scene, error) {
	if !e.run.Open() {
		return nil, scene.ErrQuit
	}

	e.physics.Update()

	if e.pollEvents() {
		e.run = state.StateClosing
		return nil, scene.ErrQuit
	}

	e.ui.GravityY = e.physics.GravityY()
	e.ui.EntityCount = e.entities.Len()
	if err := e.controls.Update(&e.ui, e.actions()); err != nil {
		return nil, fmt.Errorf("control bar: %w", err)
	}

	e.physics.SetGravityY(e.ui.GravityY)

	return nil, nil
}

// Draw renders the frame. Entities are drawn over the control bar.
func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(e.clearColor)
	e.controls.Draw(screen)

	ctx := e.renderContext()
	e.entities.Each(func(en entity.Entity) {
		en.Render(screen, ctx)
	})

	ebitenutil.DebugPrintAt(screen, e.statusLine(), 8, screen.Bounds().Dy()-20)

	e.endFrame()
}

// logRenderer reports the graphics library once. ebiten only knows it after
// the first frame has been drawn.
func (e *Editor) logRenderer() {
	if e.rendererLogged {
		return
	}
	var info ebiten.DebugInfo
	ebiten.ReadDebugInfo(&info)
	if info.GraphicsLibrary == ebiten.GraphicsLibraryUnknown {
		return
	}
	log.Printf("Current renderer: %v", info.GraphicsLibrary)
	e.rendererLogged = true
}

// endFrame adopts the edited clear color for the next frame and records the
// presentation, which the next Update pays with one physics step.
func (e *Editor) endFrame() {
	e.logRenderer()
	e.clearColor = e.ui.ClearRGBA()
	e.physics.FramePresented()
}

// pollEvents drains this frame's input. It reports true as soon as a quit is
// seen; events after it in the same batch are dropped.
func (e *Editor) pollEvents() (quit bool) {
	for _, ev := range e.events.Poll() {
		if ev.Kind == system.EventQuit {
			log.Printf("Window close requested, quitting")
			return true
		}

		cmd := system.CommandForKey(ev.Key)
		switch cmd {
		case system.CommandNone:
			continue
		case system.CommandQuit:
			log.Printf("%v pressed, quitting", ev.Key)
			return true
		case system.CommandSpawnBox:
			e.LoadBox()
		default:
			e.camera.Pan(cmd.PanDelta(e.settings.Camera.PanStep))
		}
		log.Printf("%v key pressed", ev.Key)
	}
	return false
}

func (e *Editor) statusLine() string {
	c := e.camera.Center
	return fmt.Sprintf("camera (%.1f, %.1f)  entities %d  [R] box  [WASD] pan  [Esc] quit",
		c.X, c.Y, e.entities.Len())
}

func (e *Editor) actions() ui.Actions {
	return ui.Actions{
		LoadBox:       e.LoadBox,
		LoadEdge:      e.LoadEdge,
		ClearEntities: e.ClearEntities,
	}
}

func (e *Editor) renderContext() entity.RenderContext {
	return entity.RenderContext{
		Projection: view.Projection{
			Camera:         e.camera,
			PixelsPerMeter: e.settings.Render.PixelsPerMeter,
		},
		LineWidth: float32(e.settings.Render.LineWidth),
	}
}

// LoadBox adds a box with the demo parameters
func (e *Editor) LoadBox() {
	b := e.settings.Demo.Box
	e.entities.Add(entity.NewBox(e.world, entity.BoxParams{
		Origin:      toVec(b.Origin),
		HalfExtents: toVec(b.HalfExtents),
		Velocity:    toVec(b.Velocity),
		Angle:       b.Angle,
		Density:     b.Density,
		Friction:    b.Friction,
	}))
}

// LoadEdge adds a ground edge with the demo parameters
func (e *Editor) LoadEdge() {
	ed := e.settings.Demo.Edge
	e.entities.Add(entity.NewEdge(e.world, entity.EdgeParams{
		Start: toVec(ed.Start),
		End:   toVec(ed.End),
	}))
}

// ClearEntities removes every entity and its body
func (e *Editor) ClearEntities() {
	e.entities.Clear()
}

// RemoveInactive drops entities whose active flag is false. The frame loop
// does not call it: no entity deactivates itself.
func (e *Editor) RemoveInactive() int {
	return e.entities.RemoveInactive()
}

// Entities returns the entity collection
func (e *Editor) Entities() *entity.List {
	return e.entities
}

// Camera returns the editor camera
func (e *Editor) Camera() *view.Camera {
	return e.camera
}

// World returns the physics world
func (e *Editor) World() *physics.World {
	return e.world
}

// UIState returns the control bar state
func (e *Editor) UIState() *ui.State {
	return &e.ui
}

// State returns the run state
func (e *Editor) State() state.RunState {
	return e.run
}

// ClearColor returns the color the next frame is cleared with
func (e *Editor) ClearColor() color.RGBA {
	return e.clearColor
}

// Steps returns the number of physics steps run
func (e *Editor) Steps() int {
	return e.physics.Steps()
}

func toVec(v config.Vec2) geom.Vec2 {
	return geom.V(v.X, v.Y)
}
