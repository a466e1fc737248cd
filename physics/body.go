package physics

import (
	"github.com/lixenwraith/vi-maze/vmath"
)

// BodyID identifies a body within a World. Zero is never assigned.
type BodyID uint32

// ShapeKind discriminates body geometry
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Body is an axis-aligned rectangle or a circle in world pixels
type Body struct {
	ID    BodyID
	Label string
	Shape ShapeKind

	Pos vmath.Vec2 // Center
	Vel vmath.Vec2 // Pixels per tick

	HalfW, HalfH float64 // ShapeRect
	Radius       float64 // ShapeCircle

	// Static bodies are never integrated and never moved by collision response
	Static bool
}

// Bounds returns the axis-aligned bounding box
func (b *Body) Bounds() (min, max vmath.Vec2) {
	switch b.Shape {
	case ShapeCircle:
		r := vmath.V(b.Radius, b.Radius)
		return b.Pos.Sub(r), b.Pos.Add(r)
	default:
		h := vmath.V(b.HalfW, b.HalfH)
		return b.Pos.Sub(h), b.Pos.Add(h)
	}
}

// Contact is a pair of bodies that started touching during a step
type Contact struct {
	A, B *Body
}

// Labels returns both labels in body order
func (c Contact) Labels() (string, string) {
	return c.A.Label, c.B.Label
}
