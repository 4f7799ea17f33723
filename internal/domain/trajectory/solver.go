// Package trajectory computes ballistic flight paths.
//
// StepSimulate is the single integrator behind both live projectile flight and
// the aiming preview, so a preview generated with the host's fixed time step
// matches the path a projectile will actually fly.
package trajectory

import (
	"math"

	"github.com/younwookim/artillery/internal/domain/entity"
)

// minCos is the |cos(angle)| below which the closed-form model is undefined.
const minCos = 1e-6

// Config holds trajectory physics constants
type Config struct {
	Gravity           float64 // down-force accumulation rate (units/sec)
	Drag              float64 // fractional velocity loss per second
	DownForceConstant float64 // k in velocity + down*downForce²*k
	MaxDownForce      float64 // down-force clamp
	SimulationSpeed   float64 // time scale applied to dt
	TimeStep          float64 // preview step, should equal the host tick
	PreviewMaxLength  float64 // default preview length
	MaxPreviewSteps   int     // hard cap on preview iterations
}

// DefaultConfig returns the default trajectory constants
func DefaultConfig() Config {
	return Config{
		Gravity:           9.8,
		Drag:              0.5,
		DownForceConstant: 0.8,
		MaxDownForce:      9.8,
		SimulationSpeed:   1,
		TimeStep:          1.0 / 60.0,
		PreviewMaxLength:  100,
		MaxPreviewSteps:   10000,
	}
}

// FlightState is the integrator's owned state value
type FlightState struct {
	Position  entity.Vec3
	Velocity  entity.Vec3
	DownForce float64
}

// Solver evaluates trajectories for one set of constants. It holds no
// per-call state and is safe to share.
type Solver struct {
	cfg Config
}

// NewSolver creates a solver. Zero simulation speed, time step and step cap
// fall back to defaults.
func NewSolver(cfg Config) *Solver {
	def := DefaultConfig()
	if cfg.SimulationSpeed == 0 {
		cfg.SimulationSpeed = def.SimulationSpeed
	}
	if cfg.TimeStep <= 0 {
		cfg.TimeStep = def.TimeStep
	}
	if cfg.MaxPreviewSteps <= 0 {
		cfg.MaxPreviewSteps = def.MaxPreviewSteps
	}
	return &Solver{cfg: cfg}
}

// Config returns the solver constants
func (s *Solver) Config() Config {
	return s.cfg
}

// ClosedFormHeight returns the no-drag height at a horizontal distance:
// d·tan(a) − g·d²/(2·v²·cos²(a)). Returns 0 when speed is zero, cos(a)≈0 or
// any input is non-finite.
func (s *Solver) ClosedFormHeight(distance, angle, initialSpeed float64) float64 {
	if initialSpeed == 0 || !finite(distance) || !finite(angle) || !finite(initialSpeed) {
		return 0
	}
	c := math.Cos(angle)
	if math.Abs(c) < minCos {
		return 0
	}
	h := distance*math.Tan(angle) - s.cfg.Gravity*distance*distance/(2*initialSpeed*initialSpeed*c*c)
	if !finite(h) {
		return 0
	}
	return h
}

// ClosedFormPath samples ClosedFormHeight every spacing units of horizontal
// distance along forward's ground projection, up to maxDistance. Empty when
// the closed-form model is undefined for the inputs.
func (s *Solver) ClosedFormPath(origin, forward entity.Vec3, angle, initialSpeed, maxDistance, spacing float64) []entity.Vec3 {
	ground := forward.Horizontal().Normalize()
	if ground.IsZero() || initialSpeed <= 0 || spacing <= 0 || maxDistance <= 0 {
		return nil
	}
	if math.Abs(math.Cos(angle)) < minCos || !finite(angle) || !finite(initialSpeed) {
		return nil
	}

	n := int(maxDistance/spacing) + 1
	if n > s.cfg.MaxPreviewSteps {
		n = s.cfg.MaxPreviewSteps
	}
	path := make([]entity.Vec3, 0, n+1)
	for i := 0; i < n; i++ {
		d := float64(i) * spacing
		p := origin.Add(ground.Scale(d))
		p.Y += s.ClosedFormHeight(d, angle, initialSpeed)
		path = append(path, p)
	}
	return path
}

// ResultingVelocity is the velocity actually travelled during a step:
// the stored velocity plus the superlinear down-force pull.
func (s *Solver) ResultingVelocity(velocity entity.Vec3, downForce float64) entity.Vec3 {
	return velocity.Add(entity.Down.Scale(downForce * downForce * s.cfg.DownForceConstant))
}

// StepSimulate advances one tick. Position moves by the resulting velocity,
// then velocity decays by drag and down-force accumulates toward its clamp.
func (s *Solver) StepSimulate(state FlightState, dt float64) FlightState {
	step := dt * s.cfg.SimulationSpeed

	resulting := s.ResultingVelocity(state.Velocity, state.DownForce)

	return FlightState{
		Position:  state.Position.Add(resulting.Scale(step)),
		Velocity:  state.Velocity.Scale(1 - s.cfg.Drag*step),
		DownForce: clamp(state.DownForce+s.cfg.Gravity*step, 0, s.cfg.MaxDownForce),
	}
}

// GeneratePreviewPath steps from origin with the configured time step until
// the straight-line distance from origin exceeds maxLength. The first sample
// is origin. Returns nil for zero or non-finite velocity or a non-positive
// length. The path never exceeds MaxPreviewSteps+1 samples.
func (s *Solver) GeneratePreviewPath(origin, velocity entity.Vec3, maxLength float64) []entity.Vec3 {
	if velocity.IsZero() || !velocity.IsFinite() || !origin.IsFinite() || maxLength <= 0 || !finite(maxLength) {
		return nil
	}

	maxSq := maxLength * maxLength
	path := []entity.Vec3{origin}
	state := FlightState{Position: origin, Velocity: velocity}

	for i := 0; i < s.cfg.MaxPreviewSteps; i++ {
		next := s.StepSimulate(state, s.cfg.TimeStep)
		if !next.Position.IsFinite() {
			return nil
		}
		path = append(path, next.Position)
		if next.Position.Sub(origin).LenSq() > maxSq {
			return path
		}
		state = next
	}

	// Step cap reached before leaving the preview radius
	return path
}

// Preview generates a preview path with the configured default length
func (s *Solver) Preview(origin, velocity entity.Vec3) []entity.Vec3 {
	return s.GeneratePreviewPath(origin, velocity, s.cfg.PreviewMaxLength)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
