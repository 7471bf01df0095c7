package config

// Settings is the root config for settings.json
type Settings struct {
	Display DisplayConfig `json:"display"`
	Physics PhysicsConfig `json:"physics"`
	Render  RenderConfig  `json:"render"`
	Camera  CameraConfig  `json:"camera"`
	UI      UIConfig      `json:"ui"`
	Demo    DemoConfig    `json:"demo"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Vsync        bool   `json:"vsync"`
}

// PhysicsConfig tunes the fixed simulation step.
// One step of 1/Hertz seconds runs per presented frame.
type PhysicsConfig struct {
	Hertz              float64 `json:"hertz"`
	VelocityIterations int     `json:"velocityIterations"`
	PositionIterations int     `json:"positionIterations"`
	Gravity            Vec2    `json:"gravity"`
}

// TimeStep returns the duration of one physics step in seconds
func (p PhysicsConfig) TimeStep() float64 {
	return 1.0 / p.Hertz
}

type RenderConfig struct {
	PixelsPerMeter float64 `json:"pixelsPerMeter"`
	LineWidth      float64 `json:"lineWidth"`
}

type CameraConfig struct {
	PanStep float64 `json:"panStep"` // World units per key press
}

// UIConfig holds the initial state of the control bar
type UIConfig struct {
	ShowDemoWindow    bool       `json:"showDemoWindow"`
	ShowAnotherWindow bool       `json:"showAnotherWindow"`
	ClearColor        [3]float64 `json:"clearColor"` // RGB, each 0..1
	GravityMin        float64    `json:"gravityMin"`
	GravityMax        float64    `json:"gravityMax"`
}

type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
