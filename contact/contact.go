// Package contact holds the output of manifold generation: the contact points between two
// overlapping polygons and the edges they were clipped from.
package contact

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ContactPoint is a world-space contact between two polygons.
// Depth is negative when the polygons penetrate.
type ContactPoint struct {
	Position mgl64.Vec2
	Normal   mgl64.Vec2
	Depth    float64
}

// Edge is a world-space polygon edge from V1 to V2
type Edge struct {
	V1 mgl64.Vec2
	V2 mgl64.Vec2
}

// Direction returns V2 - V1
func (e Edge) Direction() mgl64.Vec2 {
	return e.V2.Sub(e.V1)
}

// Manifold is the set of contact points produced by clipping the incident edge against the
// reference edge.
//
// Flip is true when the reference edge belongs to shape A.
type Manifold struct {
	Points    []ContactPoint
	Reference Edge
	Incident  Edge
	Flip      bool
}

// Deepest returns the most penetrating point, or false for an empty manifold
func (m Manifold) Deepest() (ContactPoint, bool) {
	if len(m.Points) == 0 {
		return ContactPoint{}, false
	}

	deepest := m.Points[0]
	for _, p := range m.Points[1:] {
		if p.Depth < deepest.Depth {
			deepest = p
		}
	}

	return deepest, true
}

// Len returns the number of contact points
func (m Manifold) Len() int {
	return len(m.Points)
}
