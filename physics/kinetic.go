package physics

import (
	"github.com/lixenwraith/vi-maze/vmath"
)

// Integrate performs one tick of semi-implicit Euler: v = (v + a) * (1 - drag); p = p + v
func Integrate(b *Body, accel vmath.Vec2, frictionAir float64) {
	b.Vel = b.Vel.Add(accel)
	if frictionAir > 0 {
		b.Vel = b.Vel.Scale(1 - frictionAir)
	}
	b.Pos = b.Pos.Add(b.Vel)
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(b *Body, impulse vmath.Vec2) {
	b.Vel = b.Vel.Add(impulse)
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(b *Body, vel vmath.Vec2) {
	b.Vel = vel
}

// ReflectBoundsX keeps the body's bounding box within [minX, maxX], returns true if reflection occurred
func ReflectBoundsX(b *Body, minX, maxX, restitution float64) bool {
	lo, hi := b.Bounds()
	half := (hi.X - lo.X) / 2
	if lo.X < minX {
		b.Pos.X = minX + half
		if b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X * restitution
		}
		return true
	}
	if hi.X > maxX {
		b.Pos.X = maxX - half
		if b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X * restitution
		}
		return true
	}
	return false
}

// ReflectBoundsY keeps the body's bounding box within [minY, maxY], returns true if reflection occurred
func ReflectBoundsY(b *Body, minY, maxY, restitution float64) bool {
	lo, hi := b.Bounds()
	half := (hi.Y - lo.Y) / 2
	if lo.Y < minY {
		b.Pos.Y = minY + half
		if b.Vel.Y < 0 {
			b.Vel.Y = -b.Vel.Y * restitution
		}
		return true
	}
	if hi.Y > maxY {
		b.Pos.Y = maxY - half
		if b.Vel.Y > 0 {
			b.Vel.Y = -b.Vel.Y * restitution
		}
		return true
	}
	return false
}

// ReflectBounds handles both axes, returns true if any reflection occurred
func ReflectBounds(b *Body, width, height, restitution float64) bool {
	rx := ReflectBoundsX(b, 0, width, restitution)
	ry := ReflectBoundsY(b, 0, height, restitution)
	return rx || ry
}
