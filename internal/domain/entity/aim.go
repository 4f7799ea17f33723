package entity

import "math"

// AimConfig holds the cannon's rotation limits and rates (degrees, degrees/sec)
type AimConfig struct {
	MinYaw           float64 `json:"minYaw"`
	MaxYaw           float64 `json:"maxYaw"`
	MinElevation     float64 `json:"minElevation"`
	MaxElevation     float64 `json:"maxElevation"`
	DefaultYaw       float64 `json:"defaultYaw"`
	DefaultElevation float64 `json:"defaultElevation"`
	YawSpeed         float64 `json:"yawSpeed"`
	ElevationSpeed   float64 `json:"elevationSpeed"`
}

// DefaultAimConfig returns the default configuration
func DefaultAimConfig() AimConfig {
	return AimConfig{
		MinYaw:           -20,
		MaxYaw:           20,
		MinElevation:     5,
		MaxElevation:     60,
		DefaultYaw:       0,
		DefaultElevation: 30,
		YawSpeed:         10,
		ElevationSpeed:   5,
	}
}

// Aim is the cannon's horizontal (yaw) and vertical (elevation) angle state
type Aim struct {
	Config    AimConfig
	Yaw       float64 // degrees, 0 = +Z
	Elevation float64 // degrees above horizontal
}

// NewAim creates an aim state, filling zero rates with defaults
func NewAim(cfg AimConfig) *Aim {
	def := DefaultAimConfig()
	if cfg.YawSpeed == 0 {
		cfg.YawSpeed = def.YawSpeed
	}
	if cfg.ElevationSpeed == 0 {
		cfg.ElevationSpeed = def.ElevationSpeed
	}
	if cfg.MinYaw == 0 && cfg.MaxYaw == 0 {
		cfg.MinYaw, cfg.MaxYaw = def.MinYaw, def.MaxYaw
	}
	if cfg.MinElevation == 0 && cfg.MaxElevation == 0 {
		cfg.MinElevation, cfg.MaxElevation = def.MinElevation, def.MaxElevation
	}

	a := &Aim{Config: cfg}
	a.Yaw = clampF(cfg.DefaultYaw, cfg.MinYaw, cfg.MaxYaw)
	a.Elevation = clampF(cfg.DefaultElevation, cfg.MinElevation, cfg.MaxElevation)
	return a
}

// Rotate applies per-tick axis input. Each axis moves by axis*speed*dt and is
// clamped independently. Returns true if either angle changed.
func (a *Aim) Rotate(yawAxis, elevationAxis, dt float64) bool {
	prevYaw, prevElev := a.Yaw, a.Elevation

	if yawAxis != 0 {
		a.Yaw = clampF(a.Yaw+yawAxis*a.Config.YawSpeed*dt, a.Config.MinYaw, a.Config.MaxYaw)
	}
	if elevationAxis != 0 {
		a.Elevation = clampF(a.Elevation+elevationAxis*a.Config.ElevationSpeed*dt, a.Config.MinElevation, a.Config.MaxElevation)
	}

	return a.Yaw != prevYaw || a.Elevation != prevElev
}

// Direction returns the unit barrel direction
func (a *Aim) Direction() Vec3 {
	yaw := a.Yaw * math.Pi / 180
	el := a.Elevation * math.Pi / 180
	return Vec3{
		X: math.Sin(yaw) * math.Cos(el),
		Y: math.Sin(el),
		Z: math.Cos(yaw) * math.Cos(el),
	}
}

// ElevationRad returns the elevation in radians
func (a *Aim) ElevationRad() float64 {
	return a.Elevation * math.Pi / 180
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
