package config

import (
	"errors"
	"fmt"
)

// Default returns the built-in settings. settings.json overrides any field it sets.
func Default() *Settings {
	return &Settings{
		Display: DisplayConfig{
			Title:        "Level Editor",
			ScreenWidth:  1280,
			ScreenHeight: 720,
			Vsync:        true,
		},
		Physics: PhysicsConfig{
			Hertz:              60,
			VelocityIterations: 8,
			PositionIterations: 3,
			Gravity:            Vec2{X: 0, Y: -10},
		},
		Render: RenderConfig{
			PixelsPerMeter: 80,
			LineWidth:      2,
		},
		Camera: CameraConfig{PanStep: 0.5},
		UI: UIConfig{
			ClearColor: [3]float64{0.45, 0.55, 0.60},
			GravityMin: -10,
			GravityMax: 0,
		},
		Demo: DemoConfig{
			Box: BoxConfig{
				Origin:      Vec2{X: 0, Y: 4},
				HalfExtents: Vec2{X: 0.5, Y: 0.5},
				Velocity:    Vec2{X: 0, Y: 0},
				Angle:       0.25,
				Density:     1,
				Friction:    0.3,
			},
			Edge: EdgeConfig{
				Start: Vec2{X: -3, Y: -2},
				End:   Vec2{X: 3, Y: -2},
			},
		},
	}
}

// Validate reports every setting the editor cannot run with
func (s *Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(s.Display.ScreenWidth > 0 && s.Display.ScreenHeight > 0,
		"display: screen size must be positive, got %dx%d", s.Display.ScreenWidth, s.Display.ScreenHeight)
	check(s.Physics.Hertz > 0, "physics: hertz must be positive, got %v", s.Physics.Hertz)
	check(s.Physics.VelocityIterations > 0, "physics: velocityIterations must be positive, got %d", s.Physics.VelocityIterations)
	check(s.Physics.PositionIterations > 0, "physics: positionIterations must be positive, got %d", s.Physics.PositionIterations)
	check(s.Render.PixelsPerMeter > 0, "render: pixelsPerMeter must be positive, got %v", s.Render.PixelsPerMeter)
	check(s.Render.LineWidth > 0, "render: lineWidth must be positive, got %v", s.Render.LineWidth)
	check(s.UI.GravityMin < s.UI.GravityMax, "ui: gravity range [%v, %v] is empty", s.UI.GravityMin, s.UI.GravityMax)
	check(s.Physics.Gravity.Y >= s.UI.GravityMin && s.Physics.Gravity.Y <= s.UI.GravityMax,
		"physics: gravity.y = %v is outside the ui gravity range [%v, %v]", s.Physics.Gravity.Y, s.UI.GravityMin, s.UI.GravityMax)
	for i, c := range s.UI.ClearColor {
		check(c >= 0 && c <= 1, "ui: clearColor[%d] = %v is outside [0, 1]", i, c)
	}
	check(s.Demo.Box.HalfExtents.X > 0 && s.Demo.Box.HalfExtents.Y > 0,
		"demo.box: halfExtents must be positive, got (%v, %v)", s.Demo.Box.HalfExtents.X, s.Demo.Box.HalfExtents.Y)
	check(s.Demo.Box.Density > 0, "demo.box: density must be positive, got %v", s.Demo.Box.Density)
	check(s.Demo.Edge.Start != s.Demo.Edge.End, "demo.edge: start and end must differ")

	return errors.Join(errs...)
}
