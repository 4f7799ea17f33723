package system

import (
	"github.com/younwookim/artillery/internal/domain/entity"
	"github.com/younwookim/artillery/internal/infrastructure/arena"
	"github.com/younwookim/artillery/internal/infrastructure/config"
)

// LoadArena converts an ArenaConfig into an Arena
func LoadArena(cfg *config.ArenaConfig) *arena.Arena {
	a := arena.New(cfg.Name, cfg.GroundY)
	if cfg.Name == "" {
		a.Name = cfg.ID
	}

	switch {
	case cfg.NoGround:
		a.Ground = nil
	case cfg.Ground != nil:
		a.Ground = cfg.Ground.Surface()
	}

	for _, o := range cfg.Obstacles {
		a.AddBox(o.Min, o.Max, o.Surface())
	}

	a.Spawn = cfg.Spawn
	if a.Spawn.IsZero() {
		a.Spawn = entity.Vec3{Y: cfg.GroundY + 1}
	}
	return a
}
