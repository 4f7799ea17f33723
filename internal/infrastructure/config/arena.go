package config

import (
	"fmt"

	"github.com/younwookim/artillery/internal/domain/entity"
)

// ArenaConfig is the root config for arena JSON files
type ArenaConfig struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	GroundY   float64          `json:"groundY"`
	Ground    *SurfaceConfig   `json:"ground"` // nil = default ground surface
	NoGround  bool             `json:"noGround"`
	Spawn     entity.Vec3      `json:"spawn"`
	Obstacles []ObstacleConfig `json:"obstacles"`
}

type SurfaceConfig struct {
	Name   string       `json:"name"`
	Layer  entity.Layer `json:"layer"`
	Decals bool         `json:"decals"`
}

// ObstacleConfig is an axis-aligned box
type ObstacleConfig struct {
	SurfaceConfig
	Min entity.Vec3 `json:"min"`
	Max entity.Vec3 `json:"max"`
}

// Surface converts to a domain surface
func (c SurfaceConfig) Surface() *entity.Surface {
	return &entity.Surface{
		Name:          c.Name,
		Layer:         c.Layer,
		DecalEligible: c.Decals,
	}
}

// Validate checks layer ranges and box extents
func (c *ArenaConfig) Validate() error {
	if c.Ground != nil && c.Ground.Layer > 31 {
		return fmt.Errorf("%w: arena %s: ground layer %d out of range", ErrInvalid, c.ID, c.Ground.Layer)
	}
	for i, o := range c.Obstacles {
		if o.Layer > 31 {
			return fmt.Errorf("%w: arena %s: obstacle %d layer %d out of range", ErrInvalid, c.ID, i, o.Layer)
		}
		if !o.Min.IsFinite() || !o.Max.IsFinite() {
			return fmt.Errorf("%w: arena %s: obstacle %d has non-finite bounds", ErrInvalid, c.ID, i)
		}
		if o.Min.X == o.Max.X || o.Min.Y == o.Max.Y || o.Min.Z == o.Max.Z {
			return fmt.Errorf("%w: arena %s: obstacle %d is flat", ErrInvalid, c.ID, i)
		}
	}
	return nil
}
