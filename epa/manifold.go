package epa

import (
	"math"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/contact"
	"github.com/go-gl/mathgl/mgl64"
)

// BuildManifold creates up to two contact points between two bodies using reference/incident
// edge clipping.
//
// Algorithm:
//  1. Find the separation edge of A along normal and of B along -normal
//  2. The edge most perpendicular to the normal becomes the reference, the other the incident
//  3. Clip the incident edge against the two side planes of the reference edge
//  4. Keep the clipped points lying behind the reference edge, with their depth negated
//
// normal is a world-space unit vector pointing from A toward B. Polygons must be
// counter-clockwise: the left side of the reference edge is taken as its interior.
//
// Returns false when fewer than two points survive a clip stage. A true result may still
// carry no point when nothing penetrates.
func BuildManifold(a, b *actor.Body, normal mgl64.Vec2) (contact.Manifold, bool) {
	if a.Shape.Validate() != nil || b.Shape.Validate() != nil {
		return contact.Manifold{}, false
	}

	e1 := findSeparationEdge(a, normal)
	e2 := findSeparationEdge(b, normal.Mul(-1))

	// The reference edge separates both polygons as little as possible
	var manifold contact.Manifold
	if math.Abs(e1.Direction().Dot(normal)) <= math.Abs(e2.Direction().Dot(normal)) {
		manifold.Reference = e1
		manifold.Incident = e2
		manifold.Flip = true
	} else {
		manifold.Reference = e2
		manifold.Incident = e1
		manifold.Flip = false
	}

	ref := manifold.Reference
	refNormal := actor.Normalize(ref.Direction())

	// Side plane through V1
	points := clipSegment(manifold.Incident.V1, manifold.Incident.V2, refNormal, refNormal.Dot(ref.V1))
	if len(points) < 2 {
		return manifold, false
	}

	// Side plane through V2
	points = clipSegment(points[0], points[1], refNormal.Mul(-1), -refNormal.Dot(ref.V2))
	if len(points) < 2 {
		return manifold, false
	}

	refPerp := actor.Perp(refNormal)
	offset := refPerp.Dot(ref.V1)

	manifold.Points = make([]contact.ContactPoint, 0, 2)
	for _, p := range points[:2] {
		depth := refPerp.Dot(p) - offset
		if depth > 0 {
			manifold.Points = append(manifold.Points, contact.ContactPoint{
				Position: p,
				Normal:   normal,
				Depth:    -depth,
			})
		}
	}

	return manifold, true
}

// findSeparationEdge returns the edge of the body adjacent to its support vertex along
// direction that is the most perpendicular to direction.
func findSeparationEdge(body *actor.Body, direction mgl64.Vec2) contact.Edge {
	vertices := body.Shape.Vertices
	n := len(vertices)
	local := body.Transform.Unrotate(direction)
	index := body.Shape.Support(local)

	v := vertices[index]
	prev := vertices[(index+n-1)%n]
	next := vertices[(index+1)%n]

	l := v.Sub(next)
	r := v.Sub(prev)

	if r.Dot(local) <= l.Dot(local) {
		return contact.Edge{
			V1: body.Transform.Apply(prev),
			V2: body.Transform.Apply(v),
		}
	}

	return contact.Edge{
		V1: body.Transform.Apply(v),
		V2: body.Transform.Apply(next),
	}
}

// clipSegment keeps the points of the segment (v1, v2) whose signed distance
// dot(normal, p) - offset is non-negative, adding the crossing point when they straddle the plane.
func clipSegment(v1, v2, normal mgl64.Vec2, offset float64) []mgl64.Vec2 {
	d1 := normal.Dot(v1) - offset
	d2 := normal.Dot(v2) - offset

	points := make([]mgl64.Vec2, 0, 2)
	if d1 >= 0 {
		points = append(points, v1)
	}
	if d2 >= 0 {
		points = append(points, v2)
	}

	if d1*d2 < 0 {
		delta := v2.Sub(v1)
		points = append(points, v1.Add(delta.Mul(d1/(d1-d2))))
	}

	return points
}
