package actor

import "github.com/go-gl/mathgl/mgl64"

// ConvexHull returns the convex hull of points using gift wrapping.
//
// The walk starts at the rightmost point (lowest on ties) and always moves to the candidate
// leaving every other point on its left, so the hull comes out counter-clockwise.
// Collinear candidates resolve to the farthest one, which drops points lying inside hull edges.
func ConvexHull(points []mgl64.Vec2) []mgl64.Vec2 {
	n := len(points)
	if n < 3 {
		hull := make([]mgl64.Vec2, n)
		copy(hull, points)
		return hull
	}

	start := 0
	for i := 1; i < n; i++ {
		if points[i].X() > points[start].X() ||
			(points[i].X() == points[start].X() && points[i].Y() < points[start].Y()) {
			start = i
		}
	}

	var hull []mgl64.Vec2
	current := start
	// A hull can never hold more than n points; the bound protects against NaN input
	for range n {
		hull = append(hull, points[current])

		candidate := 0
		for j := 1; j < n; j++ {
			if candidate == current {
				candidate = j
				continue
			}

			r := points[candidate].Sub(points[current])
			v := points[j].Sub(points[current])
			c := Cross(r, v)
			if c < 0 {
				candidate = j
			}
			if c == 0 && v.LenSqr() > r.LenSqr() {
				candidate = j
			}
		}

		current = candidate
		if current == start {
			break
		}
	}

	return hull
}

// MinkowskiDifference returns the hull of { b - a : a in A, b in B } in world space.
// The origin lies inside it exactly when the two bodies overlap.
func MinkowskiDifference(a, b *Body) []mgl64.Vec2 {
	worldA := a.WorldVertices()
	worldB := b.WorldVertices()

	points := make([]mgl64.Vec2, 0, len(worldA)*len(worldB))
	for _, pa := range worldA {
		for _, pb := range worldB {
			points = append(points, pb.Sub(pa))
		}
	}

	return ConvexHull(points)
}
