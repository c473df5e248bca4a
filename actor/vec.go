package actor

import "github.com/go-gl/mathgl/mgl64"

// Cross returns the z component of the 3D cross product (a.x, a.y, 0) x (b.x, b.y, 0).
// Positive when b is counter-clockwise from a.
func Cross(a, b mgl64.Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Perp rotates v by +90 degrees
func Perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v[1], v[0]}
}

// RPerp rotates v by -90 degrees
func RPerp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v[1], -v[0]}
}

// Lerp returns a + (b-a)*t, computed as a*(1-t) + b*t
func Lerp(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Normalize returns the unit vector of v, or the zero vector when v has no length.
// mgl64's Normalize divides by zero for that case.
func Normalize(v mgl64.Vec2) mgl64.Vec2 {
	if v[0] == 0 && v[1] == 0 {
		return v
	}

	return v.Normalize()
}
