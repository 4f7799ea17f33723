package replay

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/artillery/internal/application/system"
	"github.com/younwookim/artillery/internal/domain/entity"
	"github.com/younwookim/artillery/internal/infrastructure/arena"
	"github.com/younwookim/artillery/internal/infrastructure/config"
)

// maxSettleTicks bounds how long Run keeps stepping after the last
// recorded frame while projectiles are still in flight
const maxSettleTicks = 10000

// ImpactRecord is one terminated flight in a headless run
type ImpactRecord struct {
	Tick      int         `json:"tick"`
	Shot      int         `json:"shot"` // firing order, from 1
	Position  entity.Vec3 `json:"position"`
	Surface   string      `json:"surface,omitempty"`
	Ricochets int         `json:"ricochets"`
}

// Summary is the outcome of a headless replay
type Summary struct {
	Session     string         `json:"session"`
	Arena       string         `json:"arena"`
	Frames      int            `json:"frames"`
	Ticks       int            `json:"ticks"`
	Shots       int            `json:"shots"`
	FailedShots int            `json:"failedShots"`
	Impacts     []ImpactRecord `json:"impacts"`
}

// Run plays data against a fresh range over a without rendering. After
// the last frame it keeps ticking with no input until every projectile
// has landed. Shots are numbered in firing order rather than by their
// random ids, so the same recording always produces the same summary.
func Run(cfg *config.PhysicsConfig, a *arena.Arena, data ReplayData, logger *log.Logger) (*Summary, error) {
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("failed to run replay: %w", ErrNoFrames)
	}
	if logger == nil {
		logger = log.Default()
	}
	if a != nil && data.Arena != "" && data.Arena != a.Name {
		logger.Warn("replay recorded in a different arena", "recorded", data.Arena, "arena", a.Name)
	}

	dt := data.TimeStep
	if dt <= 0 {
		dt = cfg.TimeStep()
	}

	r := system.NewRange(cfg, a, nil, logger)
	summary := &Summary{
		Session: data.Session,
		Arena:   r.Arena.Name,
		Frames:  len(data.Frames),
		Impacts: []ImpactRecord{},
	}

	order := make(map[string]int)
	r.Cannon.OnFire = func(shot entity.ShotParameters) {
		summary.Shots++
		order[shot.ID] = summary.Shots
	}
	r.Projectiles.OnImpact = func(impact system.Impact) {
		rec := ImpactRecord{
			Tick:      r.Ticks(),
			Shot:      order[impact.ShotID],
			Position:  impact.Position,
			Ricochets: impact.Ricochets,
		}
		if impact.Hit.Surface != nil {
			rec.Surface = impact.Hit.Surface.Name
		}
		summary.Impacts = append(summary.Impacts, rec)
	}

	replayer := NewReplayer(data)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		if err := r.Tick(input, dt); err != nil {
			summary.FailedShots++
		}
	}

	for i := 0; i < maxSettleTicks && r.Projectiles.ActiveCount() > 0 && !r.Paused(); i++ {
		_ = r.Tick(system.InputState{}, dt)
	}
	if n := r.Projectiles.ActiveCount(); n > 0 {
		logger.Warn("replay ended with projectiles in flight", "count", n, "paused", r.Paused())
	}

	summary.Ticks = r.Ticks()
	logger.Info("replay finished",
		"session", summary.Session,
		"frames", summary.Frames,
		"shots", summary.Shots,
		"impacts", len(summary.Impacts))
	return summary, nil
}
