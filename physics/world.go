package physics

import (
	"github.com/lixenwraith/vi-maze/vmath"
)

// Config holds world tunables. Velocities are pixels per tick, accelerations pixels per tick².
type Config struct {
	Width, Height float64
	Gravity       vmath.Vec2 // Applied only while gravity is enabled
	FrictionAir   float64    // Fraction of velocity lost per tick, [0, 1)
	Restitution   float64    // 0 = inelastic, 1 = perfectly elastic
	MaxSpeed      float64    // 0 = uncapped
}

type pairKey struct {
	a, b BodyID
}

func makePairKey(a, b BodyID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// World is a minimal rigid-body simulation: axis-aligned rectangles and circles,
// no rotation, equal masses. Single-threaded; all calls must come from the game loop.
type World struct {
	cfg            Config
	bodies         []*Body
	byID           map[BodyID]*Body
	nextID         BodyID
	gravityEnabled bool

	// Pairs touching at the end of the previous step, for collision-start detection
	touching map[pairKey]struct{}
}

// NewWorld creates an empty world with gravity disabled
func NewWorld(cfg Config) *World {
	return &World{
		cfg:      cfg,
		byID:     make(map[BodyID]*Body),
		touching: make(map[pairKey]struct{}),
	}
}

// Config returns the world configuration
func (w *World) Config() Config {
	return w.cfg
}

func (w *World) add(b *Body) BodyID {
	w.nextID++
	b.ID = w.nextID
	w.bodies = append(w.bodies, b)
	w.byID[b.ID] = b
	return b.ID
}

// AddRect adds an axis-aligned rectangle centered at center
func (w *World) AddRect(center vmath.Vec2, width, height float64, label string, static bool) BodyID {
	return w.add(&Body{
		Label:  label,
		Shape:  ShapeRect,
		Pos:    center,
		HalfW:  width / 2,
		HalfH:  height / 2,
		Static: static,
	})
}

// AddCircle adds a dynamic circle
func (w *World) AddCircle(center vmath.Vec2, radius float64, label string) BodyID {
	return w.add(&Body{
		Label:  label,
		Shape:  ShapeCircle,
		Pos:    center,
		Radius: radius,
	})
}

// Body returns the body for id, nil if unknown
func (w *World) Body(id BodyID) *Body {
	return w.byID[id]
}

// Bodies returns all bodies in insertion order. The slice is owned by the world.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Velocity returns the body's velocity, zero for unknown ids
func (w *World) Velocity(id BodyID) vmath.Vec2 {
	if b := w.byID[id]; b != nil {
		return b.Vel
	}
	return vmath.Vec2{}
}

// SetVelocity overrides the body's velocity
func (w *World) SetVelocity(id BodyID, v vmath.Vec2) {
	if b := w.byID[id]; b != nil {
		SetImpulse(b, v)
	}
}

// SetStatic toggles whether a body participates in integration.
// A body turning static loses its velocity.
func (w *World) SetStatic(id BodyID, static bool) {
	b := w.byID[id]
	if b == nil {
		return
	}
	b.Static = static
	if static {
		b.Vel = vmath.Vec2{}
	}
}

// SetGravity enables or disables the configured gravity
func (w *World) SetGravity(enabled bool) {
	w.gravityEnabled = enabled
}

// GravityEnabled reports the gravity switch
func (w *World) GravityEnabled() bool {
	return w.gravityEnabled
}

// Step advances the simulation one tick and returns pairs that started touching.
// Pairs of two static bodies are never reported.
func (w *World) Step() []Contact {
	var accel vmath.Vec2
	if w.gravityEnabled {
		accel = w.cfg.Gravity
	}

	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		Integrate(b, accel, w.cfg.FrictionAir)
		CapSpeed(b, w.cfg.MaxSpeed)
	}

	current := make(map[pairKey]struct{}, len(w.touching))
	var started []Contact

	for i, a := range w.bodies {
		for _, b := range w.bodies[i+1:] {
			if a.Static && b.Static {
				continue
			}
			m, ok := Collide(a, b)
			if !ok {
				continue
			}

			key := makePairKey(a.ID, b.ID)
			current[key] = struct{}{}
			if _, was := w.touching[key]; !was {
				started = append(started, Contact{A: a, B: b})
			}

			Resolve(a, b, m, w.cfg.Restitution)
		}
	}
	w.touching = current

	if w.cfg.Width > 0 && w.cfg.Height > 0 {
		for _, b := range w.bodies {
			if !b.Static {
				ReflectBounds(b, w.cfg.Width, w.cfg.Height, w.cfg.Restitution)
			}
		}
	}

	return started
}
