package physics

// CapSpeed limits the velocity magnitude to maxSpeed, 0 disables the cap
// Returns true if velocity was clamped
func CapSpeed(b *Body, maxSpeed float64) bool {
	if maxSpeed <= 0 {
		return false
	}
	if b.Vel.MagnitudeSq() <= maxSpeed*maxSpeed {
		return false
	}
	b.Vel = b.Vel.ClampMagnitude(maxSpeed)
	return true
}
