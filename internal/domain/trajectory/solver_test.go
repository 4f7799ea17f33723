package trajectory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/artillery/internal/domain/entity"
)

func TestClosedFormHeight_ZeroDistance(t *testing.T) {
	s := NewSolver(DefaultConfig())

	for _, deg := range []float64{1, 15, 30, 45, 60, 89} {
		for _, speed := range []float64{0.5, 1, 10, 100} {
			angle := deg * math.Pi / 180
			assert.Equal(t, 0.0, s.ClosedFormHeight(0, angle, speed), "deg=%v speed=%v", deg, speed)
		}
	}
}

func TestClosedFormHeight_DecreasesWithSpeed(t *testing.T) {
	s := NewSolver(DefaultConfig())
	angle := 30 * math.Pi / 180
	distance := 10.0

	prev := math.Inf(1)
	for speed := 50.0; speed > 0.5; speed -= 0.5 {
		h := s.ClosedFormHeight(distance, angle, speed)
		assert.Less(t, h, prev, "speed=%v", speed)
		prev = h
	}
}

func TestClosedFormHeight_Guards(t *testing.T) {
	s := NewSolver(DefaultConfig())

	tests := []struct {
		name     string
		distance float64
		angle    float64
		speed    float64
	}{
		{"zero speed", 10, 0.5, 0},
		{"vertical", 10, math.Pi / 2, 10},
		{"nan angle", 10, math.NaN(), 10},
		{"inf distance", math.Inf(1), 0.5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := s.ClosedFormHeight(tt.distance, tt.angle, tt.speed)
			assert.Equal(t, 0.0, h)
		})
	}
}

func TestClosedFormPath_MaxHeight(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSolver(cfg)

	speed := 10.0
	angle := math.Pi / 4
	path := s.ClosedFormPath(entity.Vec3{}, entity.Forward, angle, speed, 20, 0.001)
	require.NotEmpty(t, path)

	maxY := math.Inf(-1)
	for _, p := range path {
		maxY = math.Max(maxY, p.Y)
	}

	expected := speed * speed * math.Sin(angle) * math.Sin(angle) / (2 * cfg.Gravity)
	assert.InDelta(t, expected, maxY, 1e-4)
}

func TestClosedFormPath_Degenerate(t *testing.T) {
	s := NewSolver(DefaultConfig())

	assert.Empty(t, s.ClosedFormPath(entity.Vec3{}, entity.Up, 0.5, 10, 20, 1), "no ground projection")
	assert.Empty(t, s.ClosedFormPath(entity.Vec3{}, entity.Forward, 0.5, 0, 20, 1), "zero speed")
	assert.Empty(t, s.ClosedFormPath(entity.Vec3{}, entity.Forward, math.Pi/2, 10, 20, 1), "vertical")
	assert.Empty(t, s.ClosedFormPath(entity.Vec3{}, entity.Forward, 0.5, 10, 20, 0), "zero spacing")
}

func TestStepSimulate_NoDragNoGravity(t *testing.T) {
	s := NewSolver(Config{DownForceConstant: 0.8, MaxDownForce: 9.8})

	state := FlightState{
		Position: entity.Vec3{X: 1.25, Y: 3.5, Z: -2},
		Velocity: entity.Vec3{X: 3.3, Y: 7.1, Z: 11.9},
	}
	dt := 1.0 / 60.0

	next := s.StepSimulate(state, dt)

	assert.Equal(t, state.Position.Add(state.Velocity.Scale(dt)), next.Position)
	assert.Equal(t, state.Velocity, next.Velocity)
	assert.Equal(t, 0.0, next.DownForce)
}

func TestStepSimulate_DragDecaysSpeed(t *testing.T) {
	s := NewSolver(DefaultConfig())
	state := FlightState{Velocity: entity.Vec3{Y: 5, Z: 20}}

	prev := state.Velocity.Len()
	for i := 0; i < 120; i++ {
		state = s.StepSimulate(state, 1.0/60.0)
		speed := state.Velocity.Len()
		assert.Less(t, speed, prev)
		prev = speed
	}
}

func TestStepSimulate_DownForceMonotonicAndClamped(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSolver(cfg)
	state := FlightState{Velocity: entity.Vec3{Z: 10}}

	prev := 0.0
	for i := 0; i < 600; i++ {
		state = s.StepSimulate(state, 1.0/60.0)
		assert.GreaterOrEqual(t, state.DownForce, prev)
		assert.LessOrEqual(t, state.DownForce, cfg.MaxDownForce)
		prev = state.DownForce
	}
	assert.Equal(t, cfg.MaxDownForce, state.DownForce)
}

func TestStepSimulate_ResultingVelocityUsesPreviousDownForce(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSolver(cfg)
	state := FlightState{Velocity: entity.Vec3{Z: 10}, DownForce: 2}

	next := s.StepSimulate(state, 0.1)

	pull := 2 * 2 * cfg.DownForceConstant
	assert.InDelta(t, -pull*0.1, next.Position.Y, 1e-12)
	assert.InDelta(t, 1.0, next.Position.Z, 1e-12)
	assert.InDelta(t, 2+cfg.Gravity*0.1, next.DownForce, 1e-12)
	assert.InDelta(t, 10*(1-cfg.Drag*0.1), next.Velocity.Z, 1e-12)
}

func TestGeneratePreviewPath_StartsAtOriginAndBounded(t *testing.T) {
	s := NewSolver(DefaultConfig())
	origin := entity.Vec3{X: 2, Y: 1, Z: -3}
	velocity := entity.Vec3{Y: 15, Z: 30}
	maxLength := 40.0

	path := s.GeneratePreviewPath(origin, velocity, maxLength)
	require.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, origin, path[0])

	// Every sample but the last is inside the radius
	for _, p := range path[:len(path)-1] {
		assert.LessOrEqual(t, p.Sub(origin).LenSq(), maxLength*maxLength)
	}

	// The last sample overshoots by at most one step
	last := path[len(path)-1]
	prev := path[len(path)-2]
	stepLen := last.Sub(prev).Len()
	assert.Greater(t, last.Sub(origin).Len(), maxLength)
	assert.LessOrEqual(t, last.Sub(origin).Len(), maxLength+stepLen)
}

func TestGeneratePreviewPath_Deterministic(t *testing.T) {
	s := NewSolver(DefaultConfig())
	origin := entity.Vec3{Y: 1}
	velocity := entity.Vec3{X: 1, Y: 10, Z: 25}

	a := s.GeneratePreviewPath(origin, velocity, 100)
	b := s.GeneratePreviewPath(origin, velocity, 100)
	assert.Equal(t, a, b)
}

func TestGeneratePreviewPath_MatchesStepSimulate(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSolver(cfg)
	origin := entity.Vec3{Y: 2}
	velocity := entity.Vec3{Y: 8, Z: 20}

	path := s.GeneratePreviewPath(origin, velocity, 50)

	state := FlightState{Position: origin, Velocity: velocity}
	for i := 1; i < len(path); i++ {
		state = s.StepSimulate(state, cfg.TimeStep)
		assert.Equal(t, state.Position, path[i])
	}
}

func TestGeneratePreviewPath_Degenerate(t *testing.T) {
	s := NewSolver(DefaultConfig())

	assert.Nil(t, s.GeneratePreviewPath(entity.Vec3{}, entity.Vec3{}, 100), "zero velocity")
	assert.Nil(t, s.GeneratePreviewPath(entity.Vec3{}, entity.Vec3{Z: math.NaN()}, 100), "nan velocity")
	assert.Nil(t, s.GeneratePreviewPath(entity.Vec3{}, entity.Forward, 0), "zero length")
	assert.Nil(t, s.GeneratePreviewPath(entity.Vec3{}, entity.Forward, -1), "negative length")
}

func TestGeneratePreviewPath_StepCap(t *testing.T) {
	// No gravity and heavy drag: the path converges inside the radius
	s := NewSolver(Config{Drag: 30, TimeStep: 1.0 / 60.0, MaxPreviewSteps: 50})

	path := s.GeneratePreviewPath(entity.Vec3{}, entity.Vec3{Z: 1}, 100)
	assert.Len(t, path, 51)
}

func TestNewSolver_Defaults(t *testing.T) {
	s := NewSolver(Config{})
	cfg := s.Config()

	assert.Equal(t, 1.0, cfg.SimulationSpeed)
	assert.Equal(t, 1.0/60.0, cfg.TimeStep)
	assert.Equal(t, 10000, cfg.MaxPreviewSteps)
}
