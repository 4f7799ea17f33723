// Package arena is a static firing range: an infinite ground plane plus
// axis-aligned box obstacles. It implements collision.Query for hosts that
// have no physics engine of their own (the ebiten game, the terminal
// sandbox, replays).
package arena

import (
	"math"

	"github.com/younwookim/artillery/internal/domain/entity"
)

// Box is an axis-aligned obstacle
type Box struct {
	Min, Max entity.Vec3
	Surface  *entity.Surface
}

// Center returns the box center
func (b Box) Center() entity.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Contains reports whether p lies inside or on the box
func (b Box) Contains(p entity.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Arena holds the range geometry
type Arena struct {
	Name    string
	GroundY float64
	Ground  *entity.Surface // nil disables the ground plane
	Boxes   []Box
	Spawn   entity.Vec3 // cannon mount point
}

// New creates an arena with a ground plane at groundY
func New(name string, groundY float64) *Arena {
	return &Arena{
		Name:    name,
		GroundY: groundY,
		Ground:  &entity.Surface{Name: "ground", Layer: entity.LayerGround},
	}
}

// AddBox adds an obstacle. Min and max corners may be given in any order.
func (a *Arena) AddBox(min, max entity.Vec3, surface *entity.Surface) {
	lo := entity.Vec3{X: math.Min(min.X, max.X), Y: math.Min(min.Y, max.Y), Z: math.Min(min.Z, max.Z)}
	hi := entity.Vec3{X: math.Max(min.X, max.X), Y: math.Max(min.Y, max.Y), Z: math.Max(min.Z, max.Z)}
	a.Boxes = append(a.Boxes, Box{Min: lo, Max: hi, Surface: surface})
}

// Cast returns the nearest surface hit along direction within maxDistance.
// Surfaces whose layer is not in filter are ignored, as are boxes that
// contain the origin.
func (a *Arena) Cast(origin, direction entity.Vec3, maxDistance float64, filter entity.LayerMask) entity.CollisionResult {
	dir := direction.Normalize()
	if dir.IsZero() || maxDistance <= 0 || !origin.IsFinite() {
		return entity.NoHit
	}

	best := entity.NoHit
	bestT := maxDistance

	if a.Ground != nil && filter.Has(a.Ground.Layer) && dir.Y < 0 && origin.Y >= a.GroundY {
		t := (a.GroundY - origin.Y) / dir.Y
		if t <= bestT {
			bestT = t
			best = entity.CollisionResult{
				Hit:     true,
				Point:   entity.Vec3{X: origin.X + dir.X*t, Y: a.GroundY, Z: origin.Z + dir.Z*t},
				Normal:  entity.Up,
				Surface: a.Ground,
			}
		}
	}

	for i := range a.Boxes {
		b := &a.Boxes[i]
		if b.Surface != nil && !filter.Has(b.Surface.Layer) {
			continue
		}
		t, normal, ok := raySlab(origin, dir, b.Min, b.Max)
		if !ok || t > bestT {
			continue
		}
		bestT = t
		best = entity.CollisionResult{
			Hit:     true,
			Point:   origin.Add(dir.Scale(t)),
			Normal:  normal,
			Surface: b.Surface,
		}
	}

	return best
}

// raySlab intersects a ray with an AABB. Returns the entry distance and the
// face normal. Rays starting inside the box do not hit it.
func raySlab(origin, dir, min, max entity.Vec3) (float64, entity.Vec3, bool) {
	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	lo := [3]float64{min.X, min.Y, min.Z}
	hi := [3]float64{max.X, max.Y, max.Z}

	tEnter := math.Inf(-1)
	tExit := math.Inf(1)
	enterAxis := -1
	enterSign := 0.0

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return 0, entity.Vec3{}, false
			}
			continue
		}
		inv := 1 / d[axis]
		t1 := (lo[axis] - o[axis]) * inv
		t2 := (hi[axis] - o[axis]) * inv
		sign := -1.0 // entering through the min face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tEnter {
			tEnter = t1
			enterAxis = axis
			enterSign = sign
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter > tExit {
			return 0, entity.Vec3{}, false
		}
	}

	if enterAxis < 0 || tEnter < 0 || tExit < 0 {
		return 0, entity.Vec3{}, false
	}

	var n [3]float64
	n[enterAxis] = enterSign
	return tEnter, entity.Vec3{X: n[0], Y: n[1], Z: n[2]}, true
}
