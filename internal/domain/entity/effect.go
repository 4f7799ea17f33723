package entity

// EffectKind identifies a pooled terminal effect
type EffectKind int

const (
	EffectExplosion EffectKind = iota
)

// Effect is a short-lived impact effect. Pooled; Start re-arms it.
type Effect struct {
	Kind        EffectKind
	Position    Vec3
	Orientation Vec3 // unit forward
	Age         float64
	Lifetime    float64
}

// Start places and re-arms the effect
func (e *Effect) Start(kind EffectKind, position, orientation Vec3, lifetime float64) {
	e.Kind = kind
	e.Position = position
	e.Orientation = orientation
	e.Age = 0
	e.Lifetime = lifetime
}

// Update ages the effect. Returns false once it has expired.
func (e *Effect) Update(dt float64) bool {
	e.Age += dt
	return e.Alive()
}

// Alive returns true while the effect is still playing
func (e *Effect) Alive() bool {
	return e.Age < e.Lifetime
}

// Progress returns 0..1 through the effect's lifetime
func (e *Effect) Progress() float64 {
	if e.Lifetime <= 0 {
		return 1
	}
	p := e.Age / e.Lifetime
	if p > 1 {
		return 1
	}
	return p
}

// Reset clears the effect for reuse
func (e *Effect) Reset() {
	*e = Effect{}
}

// Decal is a hit mark anchored to a surface
type Decal struct {
	Position Vec3
	Normal   Vec3
	Anchor   *Surface
}
