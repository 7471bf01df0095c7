package config

// DemoConfig holds the fixed parameters used whenever a demo entity is loaded
type DemoConfig struct {
	Box  BoxConfig  `json:"box"`
	Edge EdgeConfig `json:"edge"`
}

type BoxConfig struct {
	Origin      Vec2    `json:"origin"`
	HalfExtents Vec2    `json:"halfExtents"`
	Velocity    Vec2    `json:"velocity"`
	Angle       float64 `json:"angle"` // Radians
	Density     float64 `json:"density"`
	Friction    float64 `json:"friction"`
}

type EdgeConfig struct {
	Start Vec2 `json:"start"`
	End   Vec2 `json:"end"`
}
