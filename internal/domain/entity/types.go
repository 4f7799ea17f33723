package entity

// Layer is a collision layer index (0-31)
type Layer uint8

// LayerMask selects which layers a collision cast considers
type LayerMask uint32

// AllLayers matches every layer
const AllLayers LayerMask = 0xFFFFFFFF

const (
	LayerDefault Layer = 0
	LayerGround  Layer = 6
	LayerWall    Layer = 7
)

// MaskOf builds a mask from the given layers
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << l
	}
	return m
}

// Has reports whether the mask includes the layer
func (m LayerMask) Has(l Layer) bool {
	return m&(1<<l) != 0
}

// Surface is a collidable object a projectile can strike
type Surface struct {
	Name          string
	Layer         Layer
	DecalEligible bool // hit decals are anchored to this surface
}

// CollisionResult is the outcome of a single cast.
// The zero value is the "no hit" sentinel.
type CollisionResult struct {
	Hit     bool
	Point   Vec3
	Normal  Vec3 // unit length when Hit
	Surface *Surface
}

// NoHit is the empty collision result
var NoHit = CollisionResult{}

// Valid reports whether a hit carries usable geometry.
// A result with Hit=false is always valid.
func (r CollisionResult) Valid() bool {
	if !r.Hit {
		return true
	}
	if !r.Point.IsFinite() || !r.Normal.IsFinite() {
		return false
	}
	return r.Normal.LenSq() > 1e-12
}

// Phase is the flight phase of a projectile
type Phase int

const (
	PhaseIdle Phase = iota // pooled, not launched
	PhaseFlying
	PhaseRicocheting
	PhaseTerminated
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseFlying:
		return "Flying"
	case PhaseRicocheting:
		return "Ricocheting"
	case PhaseTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// InFlight returns true while the projectile is still being stepped
func (p Phase) InFlight() bool {
	return p == PhaseFlying || p == PhaseRicocheting
}
