package physics

import (
	"math"

	"github.com/lixenwraith/vi-maze/vmath"
)

// ContactSlop is the gap, in pixels, within which bodies still count as touching
const ContactSlop = 0.5

// Manifold describes an overlap between two bodies
type Manifold struct {
	Normal vmath.Vec2 // Unit vector pointing from A to B
	Depth  float64    // Penetration, <= 0 when only touching
}

// Collide runs the narrow phase for a pair.
// ok is true when the shapes overlap or are within ContactSlop of each other.
func Collide(a, b *Body) (m Manifold, ok bool) {
	switch {
	case a.Shape == ShapeRect && b.Shape == ShapeRect:
		return rectRect(a, b)
	case a.Shape == ShapeCircle && b.Shape == ShapeCircle:
		return circleCircle(a, b)
	case a.Shape == ShapeCircle:
		m, ok = circleRect(a, b)
		return m, ok
	default:
		m, ok = circleRect(b, a)
		m.Normal = m.Normal.Neg()
		return m, ok
	}
}

// Resolve separates overlapping bodies and removes approaching velocity.
// Static bodies are never moved.
func Resolve(a, b *Body, m Manifold, restitution float64) {
	if m.Depth <= 0 || (a.Static && b.Static) {
		return
	}
	n := m.Normal

	switch {
	case a.Static:
		b.Pos = b.Pos.Add(n.Scale(m.Depth))
		b.Vel = b.Vel.Bounce(n, restitution)
	case b.Static:
		a.Pos = a.Pos.Sub(n.Scale(m.Depth))
		a.Vel = a.Vel.Bounce(n.Neg(), restitution)
	default:
		half := n.Scale(m.Depth / 2)
		a.Pos = a.Pos.Sub(half)
		b.Pos = b.Pos.Add(half)

		// Equal masses: split the normal impulse
		vn := b.Vel.Sub(a.Vel).Dot(n)
		if vn < 0 {
			j := -(1 + restitution) * vn / 2
			ApplyImpulse(a, n.Scale(-j))
			ApplyImpulse(b, n.Scale(j))
		}
	}
}

func rectRect(a, b *Body) (Manifold, bool) {
	dx := b.Pos.X - a.Pos.X
	dy := b.Pos.Y - a.Pos.Y
	ox := a.HalfW + b.HalfW - math.Abs(dx)
	oy := a.HalfH + b.HalfH - math.Abs(dy)
	if ox < -ContactSlop || oy < -ContactSlop {
		return Manifold{}, false
	}
	if ox < oy {
		return Manifold{Normal: vmath.V(sign(dx), 0), Depth: ox}, true
	}
	return Manifold{Normal: vmath.V(0, sign(dy)), Depth: oy}, true
}

func circleCircle(a, b *Body) (Manifold, bool) {
	d := b.Pos.Sub(a.Pos)
	r := a.Radius + b.Radius
	reach := r + ContactSlop
	distSq := d.MagnitudeSq()
	if distSq > reach*reach {
		return Manifold{}, false
	}
	dist := math.Sqrt(distSq)
	if dist == 0 {
		return Manifold{Normal: vmath.V(1, 0), Depth: r}, true
	}
	return Manifold{Normal: d.Scale(1 / dist), Depth: r - dist}, true
}

// circleRect returns a manifold with the normal pointing from the circle to the rect
func circleRect(c, r *Body) (Manifold, bool) {
	lo, hi := r.Bounds()
	closest := vmath.V(
		vmath.Clamp(c.Pos.X, lo.X, hi.X),
		vmath.Clamp(c.Pos.Y, lo.Y, hi.Y),
	)
	d := c.Pos.Sub(closest)
	reach := c.Radius + ContactSlop
	distSq := d.MagnitudeSq()
	if distSq > reach*reach {
		return Manifold{}, false
	}

	if distSq > 0 {
		dist := math.Sqrt(distSq)
		// d points rect -> circle
		return Manifold{Normal: d.Scale(-1 / dist), Depth: c.Radius - dist}, true
	}

	// Center inside the rect: push out along the shallowest face
	left := c.Pos.X - lo.X
	right := hi.X - c.Pos.X
	top := c.Pos.Y - lo.Y
	bottom := hi.Y - c.Pos.Y

	out, depth := vmath.V(-1, 0), left
	if right < depth {
		out, depth = vmath.V(1, 0), right
	}
	if top < depth {
		out, depth = vmath.V(0, -1), top
	}
	if bottom < depth {
		out, depth = vmath.V(0, 1), bottom
	}
	return Manifold{Normal: out.Neg(), Depth: depth + c.Radius}, true
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
