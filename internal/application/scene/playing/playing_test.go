package playing

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/artillery/internal/application/replay"
	"github.com/younwookim/artillery/internal/application/scene"
	"github.com/younwookim/artillery/internal/application/state"
	"github.com/younwookim/artillery/internal/application/system"
	"github.com/younwookim/artillery/internal/domain/collision"
	"github.com/younwookim/artillery/internal/domain/entity"
	"github.com/younwookim/artillery/internal/infrastructure/arena"
	"github.com/younwookim/artillery/internal/infrastructure/config"
)

var (
	_ scene.Scene             = (*Playing)(nil)
	_ collision.EffectSpawner = (*Playing)(nil)
)

const testDT = 1.0 / 60.0

// createTestConfig creates a minimal config for testing
func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics: config.DefaultPhysicsConfig(),
		Arena:   &config.ArenaConfig{ID: "test", Name: "test"},
	}
}

func createTestArena() *arena.Arena {
	a := arena.New("test", 0)
	a.Spawn = entity.Vec3{Y: 1}
	a.AddBox(entity.Vec3{X: -20, Y: 0, Z: 8}, entity.Vec3{X: 20, Y: 20, Z: 9},
		&entity.Surface{Name: "wall", Layer: entity.LayerWall, DecalEligible: true})
	return a
}

func newTestPlaying(cfg *config.GameConfig, opts Options) *Playing {
	opts.Logger = log.New(io.Discard)
	return New(cfg, createTestArena(), opts)
}

func settle(p *Playing, maxTicks int) {
	for i := 0; i < maxTicks && p.Range().Projectiles.ActiveCount() > 0; i++ {
		p.step(system.InputState{}, testDT)
	}
}

func TestNewPlaying(t *testing.T) {
	p := newTestPlaying(createTestConfig(), Options{})

	require.NotNil(t, p)
	assert.Equal(t, state.StateAiming, p.State())
	assert.Nil(t, p.recorder)
	assert.Nil(t, p.replayer)
	assert.Equal(t, "test", p.Range().Arena.Name)
	assert.NotEmpty(t, p.Range().Cannon.Preview())
}

func TestPlaying_FireKicksScreenShake(t *testing.T) {
	cfg := createTestConfig()
	p := newTestPlaying(cfg, Options{})

	p.step(system.InputState{Fire: true}, testDT)

	assert.Equal(t, 1, p.shots)
	assert.InDelta(t, cfg.Physics.Feedback.ScreenShake.Intensity*cfg.Physics.Feedback.ScreenShake.Decay, p.shake, 1e-9)

	for i := 0; i < 200; i++ {
		p.step(system.InputState{}, testDT)
	}
	assert.Zero(t, p.shake, "shake decays to rest")
}

func TestPlaying_ScreenShakeDisabled(t *testing.T) {
	cfg := createTestConfig()
	cfg.Physics.Feedback.ScreenShake.Enabled = false
	p := newTestPlaying(cfg, Options{})

	p.step(system.InputState{Fire: true}, testDT)
	p.SpawnExplosion(entity.Vec3{}, entity.Up)
	assert.Zero(t, p.shake)
}

func TestPlaying_CountsImpacts(t *testing.T) {
	p := newTestPlaying(createTestConfig(), Options{})

	p.step(system.InputState{Fire: true}, testDT)
	settle(p, 600)

	assert.Equal(t, 1, p.impacts)
	require.NotNil(t, p.lastImpact)
	assert.True(t, p.lastImpact.Hit.Hit)
}

func TestPlaying_PauseToggle(t *testing.T) {
	p := newTestPlaying(createTestConfig(), Options{})

	p.step(system.InputState{Pause: true}, testDT)
	assert.Equal(t, state.StatePaused, p.State())

	p.step(system.InputState{Fire: true}, testDT)
	assert.Zero(t, p.shots, "no firing while paused")

	p.step(system.InputState{Pause: true}, testDT)
	assert.Equal(t, state.StateAiming, p.State())
}

func TestPlaying_RestartResetsStats(t *testing.T) {
	p := newTestPlaying(createTestConfig(), Options{})

	p.step(system.InputState{Fire: true}, testDT)
	settle(p, 600)
	require.Equal(t, 1, p.impacts)

	p.step(system.InputState{Restart: true}, testDT)
	assert.Zero(t, p.shots)
	assert.Zero(t, p.impacts)
	assert.Nil(t, p.lastImpact)
	assert.True(t, p.Range().Idle())
}

func TestPlaying_RecordsAndSavesOnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	p := newTestPlaying(createTestConfig(), Options{RecordPath: path})
	require.NotNil(t, p.recorder)

	p.step(system.InputState{Yaw: 1}, testDT)
	p.step(system.InputState{Fire: true}, testDT)
	p.step(system.InputState{}, testDT)
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "test", data.Arena)
	require.Len(t, data.Frames, 3)
	assert.Equal(t, 1.0, data.Frames[0].Y)
	assert.True(t, data.Frames[1].Fi)
	assert.Equal(t, 0, p.Range().Projectiles.ActiveCount(), "pools cleared on exit")
}

func TestPlaying_ReplayDrivesTheCannon(t *testing.T) {
	data := replay.CreateTestReplayData(3, system.InputState{Fire: true})
	p := newTestPlaying(createTestConfig(), Options{Replay: &data})
	assert.Equal(t, state.StateReplaying, p.State())
	assert.Nil(t, p.recorder, "no recording while replaying")

	// Live input is ignored during playback
	for i := 0; i < 3; i++ {
		p.step(system.InputState{Yaw: 1}, testDT)
	}
	assert.Equal(t, 3, p.shots)
	assert.Equal(t, 0.0, p.Range().Cannon.Aim.Yaw)
	assert.Equal(t, state.StateReplaying, p.State())

	p.step(system.InputState{Fire: true}, testDT)
	assert.Equal(t, state.StateReplayFinished, p.State())
	assert.Equal(t, 3, p.shots)

	p.restartReplay()
	assert.Equal(t, state.StateReplaying, p.State())
	assert.Zero(t, p.shots)
	assert.True(t, p.Range().Idle())
	p.step(system.InputState{}, testDT)
	assert.Equal(t, 1, p.shots)
}

func TestPlaying_SpawnDecalAcceptsNilAnchor(t *testing.T) {
	p := newTestPlaying(createTestConfig(), Options{})
	assert.NotPanics(t, func() {
		p.SpawnDecal(entity.Vec3{}, entity.Up, nil)
	})
}

func TestView_Project(t *testing.T) {
	side := view{originX: 20, originY: 200, scaleX: 4, scaleY: 4}
	x, y := side.project(entity.Vec3{X: 3, Y: 2, Z: 10})
	assert.Equal(t, 60.0, x)
	assert.Equal(t, 192.0, y)

	top := view{originX: 20, originY: 28, scaleX: 4, scaleY: 2, top: true}
	x, y = top.project(entity.Vec3{X: 3, Y: 2, Z: 10})
	assert.Equal(t, 60.0, x)
	assert.Equal(t, 22.0, y)

	moved := side.offset(1, -1)
	x, y = moved.project(entity.Vec3{})
	assert.Equal(t, 21.0, x)
	assert.Equal(t, 199.0, y)
}
