package actor

import "github.com/go-gl/mathgl/mgl64"

// Body places a polygon in the world for the duration of a query.
// The polygon is shared and read-only; the transform is owned by the caller.
type Body struct {
	Id        any
	Shape     *Polygon
	Transform Transform
	// A trigger reports overlaps as trigger events instead of collision events
	IsTrigger bool
}

// NewBody creates a body from a shape and its transform
func NewBody(shape *Polygon, transform Transform) *Body {
	return &Body{Shape: shape, Transform: transform}
}

// SupportWorld returns the index and world position of the vertex farthest along the
// world-space direction.
func (b *Body) SupportWorld(direction mgl64.Vec2) (int, mgl64.Vec2) {
	// The support search happens in polygon space, so the direction is unrotated first
	index := b.Shape.Support(b.Transform.Unrotate(direction))
	return index, b.WorldVertex(index)
}

// WorldVertex returns the i-th vertex in world space
func (b *Body) WorldVertex(i int) mgl64.Vec2 {
	return b.Transform.Apply(b.Shape.Vertices[i])
}

// WorldVertices returns every vertex in world space
func (b *Body) WorldVertices() []mgl64.Vec2 {
	result := make([]mgl64.Vec2, len(b.Shape.Vertices))
	for i := range b.Shape.Vertices {
		result[i] = b.WorldVertex(i)
	}
	return result
}
