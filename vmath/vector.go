package vmath

import "math"

// Vec2 is a 2D vector in world pixels
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) MagnitudeSq() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Magnitude() float64   { return math.Sqrt(v.MagnitudeSq()) }
func (v Vec2) Neg() Vec2            { return Vec2{-v.X, -v.Y} }

// ClampMagnitude limits the vector to maxMag while preserving direction
func (v Vec2) ClampMagnitude(maxMag float64) Vec2 {
	mag := v.Magnitude()
	if mag <= maxMag || mag == 0 {
		return v
	}
	return v.Scale(maxMag / mag)
}

// Bounce removes the component of v moving into the surface with unit normal n,
// restitution 0 stops, 1 reflects fully. Velocity moving away is returned unchanged.
func (v Vec2) Bounce(n Vec2, restitution float64) Vec2 {
	into := v.Dot(n)
	if into >= 0 {
		return v
	}
	return v.Sub(n.Scale((1 + restitution) * into))
}
