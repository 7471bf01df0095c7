package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadSettings(t *testing.T) {
	loader := NewLoader("../../../cmd/editor/configs")

	cfg, err := loader.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
	assert.Equal(t, 720, cfg.Display.ScreenHeight)
	assert.True(t, cfg.Display.Vsync)
	assert.Equal(t, 60.0, cfg.Physics.Hertz)
	assert.Equal(t, 8, cfg.Physics.VelocityIterations)
	assert.Equal(t, 3, cfg.Physics.PositionIterations)
	assert.Equal(t, Vec2{X: 0, Y: -10}, cfg.Physics.Gravity)
	assert.Equal(t, 0.5, cfg.Camera.PanStep)
	assert.Equal(t, -10.0, cfg.UI.GravityMin)
	assert.Equal(t, 0.0, cfg.UI.GravityMax)
	assert.Equal(t, Vec2{X: -3, Y: -2}, cfg.Demo.Edge.Start)
	assert.Equal(t, Vec2{X: 3, Y: -2}, cfg.Demo.Edge.End)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		SettingsFile: {Data: []byte(`{"physics": {"hertz": 120}}`)},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, 120.0, cfg.Physics.Hertz)
	assert.Equal(t, 8, cfg.Physics.VelocityIterations, "unset fields keep defaults")
	assert.Equal(t, Default().Display, cfg.Display)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{
			name:    "missing file",
			fsys:    fstest.MapFS{},
			wantErr: "failed to read settings.json",
		},
		{
			name:    "malformed json",
			fsys:    fstest.MapFS{SettingsFile: {Data: []byte(`{"display": `)}},
			wantErr: "failed to parse settings.json",
		},
		{
			name:    "unknown field",
			fsys:    fstest.MapFS{SettingsFile: {Data: []byte(`{"displya": {}}`)}},
			wantErr: "failed to parse settings.json",
		},
		{
			name:    "invalid value",
			fsys:    fstest.MapFS{SettingsFile: {Data: []byte(`{"physics": {"hertz": 0}}`)}},
			wantErr: "physics: hertz must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "mem").LoadSettings()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr string
	}{
		{"defaults are valid", func(s *Settings) {}, ""},
		{"zero width", func(s *Settings) { s.Display.ScreenWidth = 0 }, "screen size"},
		{"zero velocity iterations", func(s *Settings) { s.Physics.VelocityIterations = 0 }, "velocityIterations"},
		{"zero position iterations", func(s *Settings) { s.Physics.PositionIterations = -1 }, "positionIterations"},
		{"zero scale", func(s *Settings) { s.Render.PixelsPerMeter = 0 }, "pixelsPerMeter"},
		{"inverted gravity range", func(s *Settings) { s.UI.GravityMin = 1 }, "gravity range"},
		{"gravity below slider range", func(s *Settings) { s.Physics.Gravity.Y = -20 }, "gravity.y = -20"},
		{"gravity above slider range", func(s *Settings) { s.Physics.Gravity.Y = 5 }, "outside the ui gravity range"},
		{"gravity at range bound", func(s *Settings) { s.Physics.Gravity.Y = 0 }, ""},
		{"color out of range", func(s *Settings) { s.UI.ClearColor[2] = 1.5 }, "clearColor[2]"},
		{"flat box", func(s *Settings) { s.Demo.Box.HalfExtents.Y = 0 }, "halfExtents"},
		{"degenerate edge", func(s *Settings) { s.Demo.Edge.End = s.Demo.Edge.Start }, "start and end must differ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)

			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPhysicsConfig_TimeStep(t *testing.T) {
	p := PhysicsConfig{Hertz: 60}
	assert.InDelta(t, 1.0/60.0, p.TimeStep(), 1e-12)
}
