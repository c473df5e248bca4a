package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a rigid placement in the plane: a rotation followed by a translation.
// InverseRotation is kept alongside Rotation so world directions can be brought back into
// polygon space without recomputing the transpose on every support query.
type Transform struct {
	Position        mgl64.Vec2
	Rotation        mgl64.Mat2
	InverseRotation mgl64.Mat2
}

// NewTransform creates a transform at position, rotated by angle radians
func NewTransform(position mgl64.Vec2, angle float64) Transform {
	var t Transform
	t.SetPosition(position)
	t.SetRotation(angle)

	return t
}

// IdentityTransform creates a transform at the origin with no rotation
func IdentityTransform() Transform {
	return Transform{
		Position:        mgl64.Vec2{0, 0},
		Rotation:        mgl64.Ident2(),
		InverseRotation: mgl64.Ident2(),
	}
}

func (t *Transform) SetPosition(position mgl64.Vec2) {
	t.Position = position
}

func (t *Transform) SetRotation(angle float64) {
	t.Rotation = mgl64.Rotate2D(angle)
	t.InverseRotation = t.Rotation.Transpose()
}

// Rotate maps a local direction to world space
func (t Transform) Rotate(v mgl64.Vec2) mgl64.Vec2 {
	return t.Rotation.Mul2x1(v)
}

// Unrotate maps a world direction to local space
func (t Transform) Unrotate(v mgl64.Vec2) mgl64.Vec2 {
	return t.InverseRotation.Mul2x1(v)
}

// Apply maps a local point to world space
func (t Transform) Apply(p mgl64.Vec2) mgl64.Vec2 {
	return t.Rotation.Mul2x1(p).Add(t.Position)
}

// Untransform maps a world point to local space
func (t Transform) Untransform(p mgl64.Vec2) mgl64.Vec2 {
	return t.InverseRotation.Mul2x1(p.Sub(t.Position))
}
